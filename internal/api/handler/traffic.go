package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/web-traffic-api/internal/usecases/checking"
	"github.com/vfg2006/web-traffic-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Limite de meses retornados pelo histórico quando o chamador não informa
const defaultHistoryLimit = 12

type CheckDomainsRequest struct {
	Domains      []string `json:"domains"`
	ForceRefresh bool     `json:"force_refresh"`
	DryRun       bool     `json:"dry_run"`
}

type LatestResultsRequest struct {
	Domains []string `json:"domains"`
}

// CheckDomains verifica as métricas de tráfego de um lote de domínios
func CheckDomains(service checking.TrafficChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckDomains")

		var req CheckDomainsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.Domains) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lista de domínios não pode ser vazia", nil)
			return
		}

		result, err := service.CheckDomains(r.Context(), req.Domains, checking.CheckOptions{
			ForceRefresh: req.ForceRefresh,
			DryRun:       req.DryRun,
		})
		if err != nil {
			logrus.WithError(err).Error("Erro ao verificar domínios")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de verificação")
		}
	}
}

// GetLatestResults devolve os últimos snapshots conhecidos sem raspar
func GetLatestResults(service checking.TrafficChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetLatestResults")

		var req LatestResultsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.Domains) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lista de domínios não pode ser vazia", nil)
			return
		}

		result, err := service.GetLatestResults(r.Context(), req.Domains)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar últimos resultados")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar últimos resultados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de resultados")
		}
	}
}

// GetDomainHistory devolve a série mensal persistida de um domínio
func GetDomainHistory(service checking.TrafficChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDomainHistory")

		domainName := httprouter.ParamsFromContext(r.Context()).ByName("domain")
		if domainName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Domínio não fornecido", nil)
			return
		}

		// Com ?month=YYYY-MM a resposta é o snapshot daquele mês apenas
		if month := r.URL.Query().Get("month"); month != "" {
			snapshot, err := service.GetDomainMonth(r.Context(), domainName, month)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
				return
			}
			if snapshot == nil {
				apiErrors.WriteError(w, apiErrors.ErrDomainNotFound, "Sem snapshot para o domínio no mês informado", nil)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(snapshot); err != nil {
				logrus.WithError(err).Error("Erro ao enviar resposta de snapshot mensal")
			}
			return
		}

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		history, err := service.GetDomainHistory(r.Context(), domainName, limit)
		if err != nil {
			logrus.WithError(err).WithField("domain", domainName).Error("Erro ao consultar histórico do domínio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico do domínio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"domain":  domainName,
			"history": history,
		}); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de histórico")
		}
	}
}

// GetAvailablePeriods devolve os períodos mensais presentes na base
func GetAvailablePeriods(service checking.TrafficChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAvailablePeriods")

		periods, err := service.GetAvailablePeriods(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar períodos disponíveis", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de períodos")
		}
	}
}
