package exporter

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jereport/pkg/contracts/domain"
)

func sampleReport() *domain.AnalysisReport {
	jan15 := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	mar31 := time.Date(2024, 3, 31, 17, 45, 0, 0, time.UTC)

	return &domain.AnalysisReport{
		TotalRows:       3,
		UniqueJENumbers: 2,
		EffectiveDate:   domain.DateRange{Min: &jan15, Max: &mar31},
		TotalDebit:      decimal.RequireFromString("1234567.891"),
		TotalCredit:     decimal.Zero,
		TotalAmount:     decimal.NewFromInt(600),
		Amount: domain.DistributionSummary{
			Count: 3, Mean: 200, Std: 100, Min: 100, P25: 150, P50: 200, P75: 250, Max: 300,
		},
	}
}

func TestRenderReport(t *testing.T) {
	expected := `JE Samples Analysis Report
==========================

Total Row Count: 3
Unique JE Numbers: 2

Date Ranges:
  EffectiveDate: 2024-01-15 00:00:00 to 2024-03-31 17:45:00
  EntryDate:     NaT to NaT

Financial Statistics:
  Total Debit:   1,234,567.89
  Total Credit:  0.00
  Total Amount:  600.00

Amount Column Statistics:
  Count: 3
  Mean:  200.00
  Std:   100.00
  Min:   100.00
  25%:   150.00
  50%:   200.00
  75%:   250.00
  Max:   300.00
`

	assert.Equal(t, expected, RenderReport(sampleReport()))
}

func TestRenderReport_Deterministic(t *testing.T) {
	report := sampleReport()
	assert.Equal(t, RenderReport(report), RenderReport(report))
}

func TestRenderReport_EmptyAmountColumn(t *testing.T) {
	nan := math.NaN()
	report := &domain.AnalysisReport{
		TotalRows: 2,
		Amount: domain.DistributionSummary{
			Mean: nan, Std: nan, Min: nan, P25: nan, P50: nan, P75: nan, Max: nan,
		},
	}

	lines := strings.Split(strings.TrimSuffix(RenderReport(report), "\n"), "\n")
	require.Len(t, lines, 24)

	assert.Equal(t, "  Total Amount:  0.00", lines[13])
	assert.Equal(t, "  Count: 0", lines[16])
	for _, l := range lines[17:] {
		assert.True(t, strings.HasSuffix(l, " nan"), "line %q", l)
	}
}
