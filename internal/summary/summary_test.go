package summary

import (
	"testing"
	"time"

	"grana/internal/models"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name    string
		month   int
		year    int
		lastDay int
	}{
		{"leap february", 2, 2024, 29},
		{"regular february", 2, 2023, 28},
		{"thirty days", 4, 2024, 30},
		{"thirty one days", 12, 2024, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.month, tt.year)

			if start.Day() != 1 {
				t.Errorf("start day: got %d, want 1", start.Day())
			}
			if start.Month() != time.Month(tt.month) || start.Year() != tt.year {
				t.Errorf("start: got %v, want %d-%02d-01", start, tt.year, tt.month)
			}
			if end.Day() != tt.lastDay {
				t.Errorf("end day: got %d, want %d", end.Day(), tt.lastDay)
			}
			if end.Month() != time.Month(tt.month) {
				t.Errorf("end month: got %v, want %v", end.Month(), time.Month(tt.month))
			}
		})
	}
}

func TestFilterRangeInclusiveBounds(t *testing.T) {
	records := []Record{
		{Tipo: models.TypeDespesa, Valor: "10", Data: date(2024, 2, 29)},
		{Tipo: models.TypeDespesa, Valor: "20", Data: date(2024, 3, 1)},
		{Tipo: models.TypeDespesa, Valor: "30", Data: date(2024, 3, 31)},
		{Tipo: models.TypeDespesa, Valor: "40", Data: date(2024, 4, 1)},
	}

	start, end := MonthRange(3, 2024)
	got := FilterRange(records, start, end)

	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Valor != "20" || got[1].Valor != "30" {
		t.Errorf("wrong records kept: %+v", got)
	}
}

func TestFilterRangeNoRange(t *testing.T) {
	records := []Record{
		{Tipo: models.TypeReceita, Valor: "1", Data: date(2020, 1, 1)},
		{Tipo: models.TypeDespesa, Valor: "2", Data: date(2030, 12, 31)},
	}

	got := FilterRange(records, time.Time{}, time.Time{})
	if len(got) != len(records) {
		t.Errorf("got %d records, want all %d", len(got), len(records))
	}
}

func TestSummarize(t *testing.T) {
	records := []Record{
		{Tipo: models.TypeReceita, Valor: "1000.50", Data: date(2024, 3, 1)},
		{Tipo: models.TypeReceita, Valor: "200", Data: date(2024, 3, 10)},
		{Tipo: models.TypeDespesa, Valor: "350.25", Data: date(2024, 3, 15)},
	}

	got := Summarize(records)

	if got.Receitas != 1200.50 {
		t.Errorf("receitas: got %v, want 1200.50", got.Receitas)
	}
	if got.Despesas != 350.25 {
		t.Errorf("despesas: got %v, want 350.25", got.Despesas)
	}
	if got.Saldo != 850.25 {
		t.Errorf("saldo: got %v, want 850.25", got.Saldo)
	}
}

func TestSummarizeSkipsMalformedAmounts(t *testing.T) {
	records := []Record{
		{Tipo: models.TypeReceita, Valor: "100"},
		{Tipo: models.TypeReceita, Valor: "abc"},
		{Tipo: models.TypeDespesa, Valor: ""},
		{Tipo: models.TypeDespesa, Valor: "NaN"},
		{Tipo: models.TypeDespesa, Valor: "-50"},
		{Tipo: models.TypeDespesa, Valor: "40"},
	}

	got := Summarize(records)

	if got.Receitas != 100 {
		t.Errorf("receitas: got %v, want 100", got.Receitas)
	}
	if got.Despesas != 40 {
		t.Errorf("despesas: got %v, want 40", got.Despesas)
	}
	if got.Saldo != 60 {
		t.Errorf("saldo: got %v, want 60", got.Saldo)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	got := Summarize(nil)
	if got.Receitas != 0 || got.Despesas != 0 || got.Saldo != 0 {
		t.Errorf("expected zero summary, got %+v", got)
	}
}

func TestSummarizeIsIdempotent(t *testing.T) {
	records := []Record{
		{Tipo: models.TypeReceita, Valor: "123.45"},
		{Tipo: models.TypeDespesa, Valor: "67.89"},
	}

	first := Summarize(records)
	second := Summarize(records)

	if first != second {
		t.Errorf("summaries differ: %+v vs %+v", first, second)
	}
}

func TestSummarizeSaldoInvariant(t *testing.T) {
	records := []Record{
		{Tipo: models.TypeReceita, Valor: "0.1"},
		{Tipo: models.TypeReceita, Valor: "0.2"},
		{Tipo: models.TypeDespesa, Valor: "0.3"},
	}

	got := Summarize(records)

	want := round2(got.Receitas - got.Despesas)
	if got.Saldo != want {
		t.Errorf("saldo invariant broken: got %v, want %v", got.Saldo, want)
	}
}

func TestMarchFilterScenario(t *testing.T) {
	records := []Record{
		{Tipo: models.TypeDespesa, Valor: "100", Data: date(2024, 3, 15)},
		{Tipo: models.TypeReceita, Valor: "500", Data: date(2024, 3, 1)},
		{Tipo: models.TypeDespesa, Valor: "50", Data: date(2024, 2, 28)},
	}

	start, end := MonthRange(3, 2024)
	got := Summarize(FilterRange(records, start, end))

	if got.Receitas != 500.00 {
		t.Errorf("receitas: got %v, want 500.00", got.Receitas)
	}
	if got.Despesas != 100.00 {
		t.Errorf("despesas: got %v, want 100.00", got.Despesas)
	}
	if got.Saldo != 400.00 {
		t.Errorf("saldo: got %v, want 400.00", got.Saldo)
	}
}

func TestProjectMonthEnd(t *testing.T) {
	tests := []struct {
		name        string
		despesas    float64
		dayOfMonth  int
		daysInMonth int
		want        float64
	}{
		{"mid month", 150, 15, 30, 300},
		{"first day", 10, 1, 31, 310},
		{"last day", 500, 30, 30, 500},
		{"zero day guard", 200, 0, 31, 200},
		{"no expense", 0, 10, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectMonthEnd(tt.despesas, tt.dayOfMonth, tt.daysInMonth)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
