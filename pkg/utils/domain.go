package utils

import "strings"

// NormalizeDomain canonicaliza uma string de domínio digitada livremente
// para a chave usada em cache e deduplicação. É uma função pura e total:
// entradas malformadas produzem um token minúsculo de melhor esforço em
// vez de erro. Idempotente: NormalizeDomain(NormalizeDomain(x)) == NormalizeDomain(x).
func NormalizeDomain(raw string) string {
	domain := strings.TrimSpace(raw)

	// Remover o esquema (http:// ou https://)
	lower := strings.ToLower(domain)
	if strings.HasPrefix(lower, "http://") {
		domain = domain[len("http://"):]
	} else if strings.HasPrefix(lower, "https://") {
		domain = domain[len("https://"):]
	}

	// Remover rótulos www. iniciais, inclusive repetidos (subdomínios
	// restantes permanecem distintos)
	for len(domain) > 4 && strings.HasPrefix(strings.ToLower(domain), "www.") {
		domain = domain[4:]
	}

	// Truncar no primeiro separador de caminho, query, fragmento ou espaço
	if idx := strings.IndexAny(domain, "/?# "); idx >= 0 {
		domain = domain[:idx]
	}

	// Remover porta no final (ex.: example.com:443)
	if idx := strings.LastIndex(domain, ":"); idx >= 0 {
		port := domain[idx+1:]
		if port != "" && isDigits(port) {
			domain = domain[:idx]
		}
	}

	// Remover pontos finais perdidos
	domain = strings.TrimRight(domain, ".")

	return strings.ToLower(domain)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
