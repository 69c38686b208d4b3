package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Domínio simples permanece igual",
			input:    "example.com",
			expected: "example.com",
		},
		{
			name:     "Remove esquema https",
			input:    "https://example.com",
			expected: "example.com",
		},
		{
			name:     "Remove esquema http maiúsculo",
			input:    "HTTP://Example.com",
			expected: "example.com",
		},
		{
			name:     "Remove prefixo www",
			input:    "www.example.com",
			expected: "example.com",
		},
		{
			name:     "Remove esquema, www, caminho e query de uma vez",
			input:    "https://www.Example.com/path?q=1",
			expected: "example.com",
		},
		{
			name:     "Remove fragmento",
			input:    "example.com#section",
			expected: "example.com",
		},
		{
			name:     "Remove porta numérica",
			input:    "example.com:8080",
			expected: "example.com",
		},
		{
			name:     "Remove pontos finais",
			input:    "example.com.",
			expected: "example.com",
		},
		{
			name:     "Remove espaços ao redor",
			input:    "  example.com  ",
			expected: "example.com",
		},
		{
			name:     "Subdomínio distinto é preservado",
			input:    "blog.example.com",
			expected: "blog.example.com",
		},
		{
			name:     "Remove www repetidos",
			input:    "www.www.example.com",
			expected: "example.com",
		},
		{
			name:     "Entrada vazia retorna vazio",
			input:    "",
			expected: "",
		},
		{
			name:     "Somente espaços retorna vazio",
			input:    "   ",
			expected: "",
		},
		{
			name:     "Trunca no primeiro espaço interno",
			input:    "example.com extra",
			expected: "example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDomain(tt.input))
		})
	}
}

func TestNormalizeDomainIdempotente(t *testing.T) {
	inputs := []string{
		"https://www.Example.com/path?q=1",
		"example.com:8080",
		"WWW.EXAMPLE.COM.",
		"www.www.example.com",
		"blog.example.com",
	}

	for _, input := range inputs {
		once := NormalizeDomain(input)
		twice := NormalizeDomain(once)
		assert.Equal(t, once, twice, "normalizar duas vezes deve dar o mesmo resultado para %q", input)
	}
}

func TestNormalizeDomainFormasEquivalentes(t *testing.T) {
	// Todas as formas de entrada do mesmo domínio convergem para a mesma chave
	forms := []string{
		"example.com",
		"www.example.com",
		"https://example.com",
		"https://www.example.com/",
		"HTTP://WWW.EXAMPLE.COM#top",
	}

	for _, form := range forms {
		assert.Equal(t, "example.com", NormalizeDomain(form))
	}
}
