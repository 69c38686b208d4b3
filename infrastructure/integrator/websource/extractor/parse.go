package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// Limites de sanidade das métricas. Valores fora do limite são descartados
// como "não encontrado", nunca tratados como erro: a busca continua no
// próximo candidato.
const (
	minPagesPerVisit = 0.1
	maxPagesPerVisit = 20.0
	minBounceRate    = 0.0
	maxBounceRate    = 100.0
)

var (
	// Número com sufixo de escala: 1.2M, 850K, 3B, 12,345, 997
	metricNumberRegex = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s*([KMB])?`)

	// Duração literal HH:MM:SS
	durationRegex = regexp.MustCompile(`\b(\d{1,3}):([0-5]\d):([0-5]\d)\b`)

	// Percentual com símbolo opcional
	percentRegex = regexp.MustCompile(`(\d{1,3}(?:\.\d+)?)\s*%`)

	// Decimal isolado, para validar tokens de células inteiras
	decimalTokenRegex = regexp.MustCompile(`^(\d{1,3}(?:\.\d+)?)$`)
)

var suffixMultipliers = map[string]float64{
	"K": 1e3,
	"M": 1e6,
	"B": 1e9,
}

// ParseMetricNumber interpreta um token "número com sufixo" (K=10^3, M=10^6,
// B=10^9, sufixo opcional e insensível a maiúsculas, separador de milhar e
// casa decimal permitidos) como contagem inteira de visitas.
func ParseMetricNumber(token string) (int64, bool) {
	match := metricNumberRegex.FindStringSubmatch(strings.TrimSpace(token))
	if match == nil {
		return 0, false
	}

	numberPart := strings.ReplaceAll(match[1], ",", "")
	value, err := strconv.ParseFloat(numberPart, 64)
	if err != nil {
		return 0, false
	}

	if match[2] != "" {
		value *= suffixMultipliers[strings.ToUpper(match[2])]
	}

	if value < 0 {
		return 0, false
	}

	return int64(value), true
}

var visitsCellRegex = regexp.MustCompile(`(?i)^(\d{1,3}(?:,\d{3})*(?:\.\d+)?)\s*([KMB])?$`)

// ParseVisitsCell valida uma célula inteira como contagem de visitas. Mais
// estrita que ParseMetricNumber: a célula não pode conter mais nada, o que
// evita interpretar "00:03:25" como o número 0 durante a varredura de linha.
func ParseVisitsCell(cell string) (int64, bool) {
	trimmed := strings.TrimSpace(cell)
	if !visitsCellRegex.MatchString(trimmed) {
		return 0, false
	}
	return ParseMetricNumber(trimmed)
}

// ParseDurationToken interpreta uma duração HH:MM:SS em segundos
func ParseDurationToken(token string) (int64, bool) {
	match := durationRegex.FindStringSubmatch(token)
	if match == nil {
		return 0, false
	}

	hours, _ := strconv.ParseInt(match[1], 10, 64)
	minutes, _ := strconv.ParseInt(match[2], 10, 64)
	seconds, _ := strconv.ParseInt(match[3], 10, 64)

	return hours*3600 + minutes*60 + seconds, true
}

// ParseBounceRate interpreta um percentual de rejeição, rejeitando valores
// fora do intervalo 0–100
func ParseBounceRate(token string) (float64, bool) {
	match := percentRegex.FindStringSubmatch(token)
	if match == nil {
		// Sem o símbolo %, aceitar apenas um decimal puro dentro do limite
		match = decimalTokenRegex.FindStringSubmatch(strings.TrimSpace(token))
		if match == nil {
			return 0, false
		}
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}

	if value < minBounceRate || value > maxBounceRate {
		return 0, false
	}

	return value, true
}

// ParsePagesPerVisit interpreta o decimal de páginas por visita, rejeitando
// valores fora do intervalo 0.1–20
func ParsePagesPerVisit(token string) (float64, bool) {
	match := decimalTokenRegex.FindStringSubmatch(strings.TrimSpace(token))
	if match == nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}

	if value < minPagesPerVisit || value > maxPagesPerVisit {
		return 0, false
	}

	return value, true
}
