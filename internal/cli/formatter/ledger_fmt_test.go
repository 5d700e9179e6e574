package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleLedgerDetail() *service.LedgerDetail {
	l := &domain.Ledger{
		ID:          "dddddddd-4444",
		Name:        "March",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		BankBalance: d("500"),
	}
	due := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	bills := []domain.LedgerBillLine{
		{LedgerBill: domain.LedgerBill{ID: "eeeeeeee-1", Amount: d("1500"), DueDate: &due, IsPaid: true}, BillName: "Rent"},
		{LedgerBill: domain.LedgerBill{ID: "ffffffff-2", Amount: d("60")}, BillName: "Internet"},
	}
	incomes := []*domain.Income{
		{ID: "99999999-9", Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Amount: d("2000")},
	}
	return &service.LedgerDetail{
		Ledger:  l,
		Bills:   bills,
		Incomes: incomes,
		Summary: domain.Summarize(l, bills, incomes),
	}
}

func TestFormatLedgerDetail(t *testing.T) {
	out := FormatLedgerDetail(sampleLedgerDetail())

	assert.Contains(t, out, "MARCH")
	assert.Contains(t, out, "Mar 2025")
	assert.Contains(t, out, "Rent")
	assert.Contains(t, out, "2025-03-15")
	assert.Contains(t, out, "Paid")
	assert.Contains(t, out, "Due")
	assert.Contains(t, out, "$2500.00") // available funds
	assert.Contains(t, out, "$940.00")  // net
}

func TestFormatLedgerSummary_NoHeaderLines(t *testing.T) {
	out := FormatLedgerSummary(sampleLedgerDetail().Summary)
	assert.NotContains(t, out, "─")
	assert.Contains(t, out, "Income (1)")
	assert.Contains(t, out, "Planned (1)")
	assert.Contains(t, out, "Paid (1)")
}

func TestFormatLedgerList(t *testing.T) {
	detail := sampleLedgerDetail()
	out := FormatLedgerList([]service.LedgerOverview{{Ledger: detail.Ledger, Summary: detail.Summary}})

	assert.Contains(t, out, "dddddddd")
	assert.Contains(t, out, "March")
	assert.Contains(t, out, "$1560.00")
	assert.Contains(t, FormatLedgerList(nil), "No ledgers yet")
}
