// Package receipt turns OCR output from fiscal receipts into a structured,
// best-effort draft transaction. The heuristics never fail on malformed
// text; a miss is a low-confidence result, not an error.
package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"grana/internal/models"
)

// Result is the outcome of one extraction run. Valor is nil when no
// monetary value survived the pattern scan.
type Result struct {
	Texto     string                 `json:"texto"`
	Valor     *float64               `json:"valor"`
	Descricao string                 `json:"descricao"`
	Tipo      models.TransactionType `json:"tipo"`
	Confianca float64                `json:"confianca"`
}

// Values at or above this are assumed to be barcodes or document numbers
// misread as currency.
const maxReceiptValue = 1_000_000

const placeholderDescription = "Compra identificada"

// Monetary patterns in Brazilian notation: dot as thousands separator,
// comma as decimal separator.
var valuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)R\$\s*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`),
	regexp.MustCompile(`(?i)(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)\s*R\$`),
	regexp.MustCompile(`(?i)total[:\s]*R\$\s*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`),
	regexp.MustCompile(`(?i)valor[:\s]*R\$\s*(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`),
	regexp.MustCompile(`(\d{1,3}(?:\.\d{3})*(?:,\d{2})?)`),
}

var (
	currencyPattern = regexp.MustCompile(`(?i)R\$\s*\d{1,3}(?:\.\d{3})*(?:,\d{2})?`)
	numberPattern   = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*(?:,\d{2})?`)
)

var descriptionKeywords = []string{
	"compra", "pagamento", "nota fiscal", "cupom fiscal",
	"produto", "item", "servico", "serviço", "mercado", "supermercado",
	"restaurante", "combustivel", "combustível", "farmacia", "farmácia",
}

var incomeKeywords = []string{
	"deposito", "depósito", "transferencia", "transferência",
	"recebido", "pagamento recebido",
}

// Extract runs all heuristics over the OCR text and assembles the result.
func Extract(text string) *Result {
	valor, ok := ExtractValue(text)

	res := &Result{
		Texto:     text,
		Descricao: ExtractDescription(text),
		Tipo:      ClassifyType(text),
		Confianca: Confidence(ok),
	}
	if ok {
		res.Valor = &valor
	}
	return res
}

// ExtractValue scans the text with every monetary pattern and keeps the
// maximum candidate below the sanity bound. Noisy receipts carry many
// numbers (item prices, totals, barcodes); taking the maximum over all
// matches is order-independent and usually lands on the grand total.
// The second return is false when no candidate survived or the maximum
// found is zero.
func ExtractValue(text string) (float64, bool) {
	var max float64

	for _, pattern := range valuePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			raw := match[0]
			if len(match) > 1 && match[1] != "" {
				raw = match[1]
			}

			// Normalize Brazilian notation to a parseable decimal.
			raw = strings.ReplaceAll(raw, ".", "")
			raw = strings.Replace(raw, ",", ".", 1)

			valor, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue
			}

			if valor > max && valor < maxReceiptValue {
				max = valor
			}
		}
	}

	if max <= 0 {
		return 0, false
	}
	return max, true
}

// ExtractDescription picks the most descriptive lines of the text after
// stripping monetary substrings. A line qualifies when it is non-trivial
// (more than 5 characters trimmed) and either mentions a domain keyword or
// is longer than 10 characters. The first three qualifying lines are joined
// and capped at 100 characters; fallbacks are the first five longer words
// of the original text, then a fixed placeholder.
func ExtractDescription(text string) string {
	stripped := currencyPattern.ReplaceAllString(text, "")
	stripped = numberPattern.ReplaceAllString(stripped, "")

	var kept []string
	for _, line := range strings.Split(stripped, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if utf8.RuneCountInString(lower) <= 5 {
			continue
		}
		if hasKeyword(lower) || utf8.RuneCountInString(lower) > 10 {
			kept = append(kept, trimmed)
			if len(kept) == 3 {
				break
			}
		}
	}

	if desc := strings.TrimSpace(strings.Join(kept, " ")); desc != "" {
		return truncate(desc, 100)
	}

	var words []string
	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) > 3 {
			words = append(words, w)
			if len(words) == 5 {
				break
			}
		}
	}
	if len(words) > 0 {
		return strings.Join(words, " ")
	}

	return placeholderDescription
}

// ClassifyType labels the text as income when any income keyword appears,
// expense otherwise. Fiscal receipts are expenses by default; this is a
// best-effort majority heuristic, not a guarantee.
func ClassifyType(text string) models.TransactionType {
	lower := strings.ToLower(text)
	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			return models.TypeReceita
		}
	}
	return models.TypeDespesa
}

// Confidence is a fixed two-level policy: finding a value is the only
// signal callers currently rely on.
func Confidence(hasValue bool) float64 {
	if hasValue {
		return 0.8
	}
	return 0.5
}

func hasKeyword(lower string) bool {
	for _, kw := range descriptionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
