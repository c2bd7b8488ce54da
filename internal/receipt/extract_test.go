package receipt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"grana/internal/models"
)

func TestExtractValue(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  float64
		found bool
	}{
		{"currency prefixed", "R$ 42,50", 42.50, true},
		{"currency suffixed", "42,50 R$", 42.50, true},
		{"total prefixed", "Total: R$ 1.234,56", 1234.56, true},
		{"valor prefixed", "Valor: R$ 99,90", 99.90, true},
		{"bare number", "item 12,34", 12.34, true},
		{"thousands separator", "R$ 12.345,67", 12345.67, true},
		{"picks the maximum", "item R$ 5,00\nitem R$ 12,00\nTOTAL R$ 17,00", 17.00, true},
		{"no monetary content", "no monetary content", 0, false},
		{"empty text", "", 0, false},
		{"zero value only", "R$ 0,00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractValue(tt.text)
			if found != tt.found {
				t.Fatalf("found: got %v, want %v", found, tt.found)
			}
			if got != tt.want {
				t.Errorf("value: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractValueRejectsHugeNumbers(t *testing.T) {
	// Barcodes and document ids must never be mistaken for currency.
	texts := []string{
		"codigo 123.456.789,00",
		"R$ 9.999.999,99",
		"1000000 R$",
	}

	for _, text := range texts {
		got, found := ExtractValue(text)
		if found && got >= maxReceiptValue {
			t.Errorf("ExtractValue(%q) = %v, above sanity bound", text, got)
		}
	}
}

func TestExtractValueIgnoresSmallerNoise(t *testing.T) {
	text := "SUPERMERCADO XYZ\nARROZ R$ 22,90\nFEIJAO R$ 8,75\nTOTAL: R$ 31,65"
	got, found := ExtractValue(text)
	if !found {
		t.Fatal("expected a value")
	}
	if got != 31.65 {
		t.Errorf("got %v, want 31.65", got)
	}
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"keyword line",
			"XY\nCupom fiscal emitido\nR$ 10,00",
			"Cupom fiscal emitido",
		},
		{
			"long line without keyword",
			"ab\nestabelecimento central da cidade\ncd",
			"estabelecimento central da cidade",
		},
		{
			"falls back to longer words",
			"ab cd\n12 34\npadaria",
			"padaria",
		},
		{
			"placeholder when nothing qualifies",
			"ab cd 12 34",
			placeholderDescription,
		},
		{
			"empty text",
			"",
			placeholderDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDescription(tt.text)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractDescriptionJoinsAtMostThreeLines(t *testing.T) {
	text := strings.Join([]string{
		"supermercado bairro norte",
		"pagamento em cartao de credito",
		"produto de limpeza generico",
		"restaurante que nao deveria aparecer",
	}, "\n")

	got := ExtractDescription(text)

	if strings.Contains(got, "nao deveria aparecer") {
		t.Errorf("fourth line leaked into description: %q", got)
	}
	for _, want := range []string{"supermercado", "pagamento", "produto"} {
		if !strings.Contains(got, want) {
			t.Errorf("description %q missing line with %q", got, want)
		}
	}
}

func TestExtractDescriptionTruncatesAt100(t *testing.T) {
	text := "mercado " + strings.Repeat("alimentação ", 30)
	got := ExtractDescription(text)
	if utf8.RuneCountInString(got) > 100 {
		t.Errorf("description too long: %d runes", utf8.RuneCountInString(got))
	}
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		text string
		want models.TransactionType
	}{
		{"Depósito recebido em conta", models.TypeReceita},
		{"Cupom fiscal — Supermercado XYZ", models.TypeDespesa},
		{"TRANSFERÊNCIA efetuada", models.TypeReceita},
		{"transferencia pix", models.TypeReceita},
		{"compra no débito", models.TypeDespesa},
		{"", models.TypeDespesa},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ClassifyType(tt.text); got != tt.want {
				t.Errorf("ClassifyType(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestConfidence(t *testing.T) {
	if got := Confidence(true); got != 0.8 {
		t.Errorf("with value: got %v, want 0.8", got)
	}
	if got := Confidence(false); got != 0.5 {
		t.Errorf("without value: got %v, want 0.5", got)
	}
}

func TestExtract(t *testing.T) {
	res := Extract("Cupom fiscal\nSupermercado XYZ Ltda\nTOTAL: R$ 150,00")

	if res.Valor == nil || *res.Valor != 150.00 {
		t.Fatalf("valor: got %v, want 150.00", res.Valor)
	}
	if res.Tipo != models.TypeDespesa {
		t.Errorf("tipo: got %v, want despesa", res.Tipo)
	}
	if res.Confianca != 0.8 {
		t.Errorf("confianca: got %v, want 0.8", res.Confianca)
	}
	if !strings.Contains(res.Descricao, "Supermercado") {
		t.Errorf("descricao: got %q", res.Descricao)
	}
}

func TestExtractWithoutValue(t *testing.T) {
	res := Extract("texto sem nenhum conteudo monetario aqui")

	if res.Valor != nil {
		t.Errorf("valor: got %v, want nil", *res.Valor)
	}
	if res.Confianca != 0.5 {
		t.Errorf("confianca: got %v, want 0.5", res.Confianca)
	}
	if res.Descricao == "" {
		t.Error("descricao should never be empty")
	}
}
