// Package summary computes period-bounded financial totals from ledger
// records. All functions are pure; malformed records degrade to a zero
// contribution instead of failing the aggregation.
package summary

import (
	"math"
	"strconv"
	"strings"
	"time"

	"grana/internal/models"
)

// Record is the minimal ledger shape the aggregator consumes. Valor is kept
// as text because the storage boundary does not guarantee a numeric value;
// coercion happens exactly once, inside Summarize.
type Record struct {
	Tipo  models.TransactionType
	Valor string
	Data  time.Time
}

// Summary holds the aggregate totals for a set of records, each rounded to
// two decimal places. Saldo is always Receitas - Despesas after rounding.
type Summary struct {
	Receitas float64
	Despesas float64
	Saldo    float64
}

// MonthRange returns the first and last calendar day of the given month.
// The end date is found as day zero of the following month, so variable
// month lengths and leap years come out right.
func MonthRange(month, year int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

// FilterRange keeps records with start <= Data <= end, inclusive on both
// bounds. Zero start and end mean no restriction.
func FilterRange(records []Record, start, end time.Time) []Record {
	if start.IsZero() && end.IsZero() {
		return records
	}

	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Data.Before(start) || r.Data.After(end) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// Summarize accumulates income and expense totals over the records. Records
// whose amount does not parse to a finite, non-negative number are skipped.
func Summarize(records []Record) Summary {
	var receitas, despesas float64

	for _, r := range records {
		valor, ok := parseValor(r.Valor)
		if !ok {
			continue
		}

		switch r.Tipo {
		case models.TypeReceita:
			receitas += valor
		case models.TypeDespesa:
			despesas += valor
		}
	}

	receitas = round2(receitas)
	despesas = round2(despesas)

	return Summary{
		Receitas: receitas,
		Despesas: despesas,
		Saldo:    round2(receitas - despesas),
	}
}

// ProjectMonthEnd extrapolates the month's total expense from the expense
// accumulated up to dayOfMonth, using the daily average over the elapsed
// days. A non-positive dayOfMonth returns the expense unchanged.
func ProjectMonthEnd(despesas float64, dayOfMonth, daysInMonth int) float64 {
	if dayOfMonth <= 0 {
		return despesas
	}

	mediaDiaria := despesas / float64(dayOfMonth)
	diasRestantes := float64(daysInMonth - dayOfMonth)
	return round2(despesas + mediaDiaria*diasRestantes)
}

func parseValor(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
