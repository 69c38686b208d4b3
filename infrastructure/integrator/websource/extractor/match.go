package extractor

import (
	"strings"

	"github.com/vfg2006/web-traffic-api/pkg/utils"
)

// DomainDictionary mapeia as formas normalizadas dos domínios solicitados
// (e suas variantes com prefixo www.) de volta à string original da
// requisição. Todas as estratégias de extração compartilham esta disciplina
// de casamento.
type DomainDictionary struct {
	byKey     map[string]string
	requested []string
}

func NewDomainDictionary(requested []string) *DomainDictionary {
	dict := &DomainDictionary{
		byKey:     make(map[string]string, len(requested)*2),
		requested: make([]string, 0, len(requested)),
	}

	for _, original := range requested {
		normalized := utils.NormalizeDomain(original)
		if normalized == "" {
			continue
		}
		if _, exists := dict.byKey[normalized]; exists {
			continue
		}
		dict.requested = append(dict.requested, original)
		dict.byKey[normalized] = original
		dict.byKey["www."+normalized] = original
	}

	return dict
}

// Requested retorna os domínios solicitados, na forma original, sem duplicatas
func (d *DomainDictionary) Requested() []string {
	return d.requested
}

// Match normaliza o texto extraído e o procura no dicionário. Sem
// correspondência exata, faz uma varredura de último recurso por igualdade
// normalizada contra todos os domínios solicitados.
func (d *DomainDictionary) Match(text string) (string, bool) {
	normalized := utils.NormalizeDomain(text)
	if normalized == "" {
		return "", false
	}

	if original, ok := d.byKey[normalized]; ok {
		return original, true
	}

	for key, original := range d.byKey {
		if utils.NormalizeDomain(key) == normalized {
			return original, true
		}
	}

	return "", false
}

// FindInText procura qualquer domínio solicitado como substring do texto,
// retornando a forma original do primeiro encontrado
func (d *DomainDictionary) FindInText(text string) (string, bool) {
	lower := strings.ToLower(text)
	for key, original := range d.byKey {
		if strings.Contains(lower, key) {
			return original, true
		}
	}
	return "", false
}

// NormalizedOf retorna a forma normalizada de um domínio solicitado
func (d *DomainDictionary) NormalizedOf(original string) string {
	return utils.NormalizeDomain(original)
}
