package llm

import (
	"testing"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "clean answer",
			input: "tecnologia",
			want:  "tecnologia",
		},
		{
			name:  "uppercase with whitespace",
			input: "  TECNOLOGIA  ",
			want:  "tecnologia",
		},
		{
			name:  "label prefix",
			input: "Categoria: veiculos",
			want:  "veiculos",
		},
		{
			name:  "explanation after newline",
			input: "veiculos\nEste lote contem um carro.",
			want:  "veiculos",
		},
		{
			name:  "markdown emphasis",
			input: "**imoveis**",
			want:  "imoveis",
		},
		{
			name:  "quoted answer",
			input: `"animais"`,
			want:  "animais",
		},
		{
			name:  "trailing period",
			input: "nichados.",
			want:  "nichados",
		},
		{
			name:  "multi word category survives",
			input: "maquinas pesadas",
			want:  "maquinas pesadas",
		},
		{
			name:  "comma separated list collapses to words",
			input: "tecnologia, eletrodomesticos",
			want:  "tecnologia eletrodomesticos",
		},
		{
			name:  "semicolon list",
			input: "veiculos; partes_pecas",
			want:  "veiculos partes_pecas",
		},
		{
			name:  "numbered list marker stripped",
			input: "1. tecnologia",
			want:  "tecnologia",
		},
		{
			name:  "parenthesized list marker stripped",
			input: "2) veiculos",
			want:  "veiculos",
		},
		{
			name:  "dash list marker stripped",
			input: "- imoveis",
			want:  "imoveis",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "***",
			want:  "",
		},
		{
			name:  "extra internal whitespace",
			input: "partes   pecas",
			want:  "partes pecas",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeAnswer(tt.input); got != tt.want {
				t.Errorf("normalizeAnswer(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
