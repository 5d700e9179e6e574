package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(i int) *int { return &i }

func TestBillValidate(t *testing.T) {
	b := &Bill{Name: "Rent", Amount: dec("1200.00"), DueDay: intPtr(1)}
	assert.NoError(t, b.Validate())

	b.Name = "  "
	require.ErrorIs(t, b.Validate(), ErrValidation)

	b.Name = "Rent"
	b.DueDay = intPtr(32)
	err := b.Validate()
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "between 1 and 31")

	b.DueDay = nil
	b.Amount = dec("-1")
	assert.ErrorIs(t, b.Validate(), ErrValidation)
}

func TestBillDueDateIn_ClampsToMonthEnd(t *testing.T) {
	b := &Bill{Name: "Card", DueDay: intPtr(31)}
	got := b.DueDateIn(NewDate(2024, 2, 10))
	require.NotNil(t, got)
	assert.Equal(t, NewDate(2024, 2, 29), *got)

	b.DueDay = nil
	assert.Nil(t, b.DueDateIn(NewDate(2024, 2, 10)))
}

func TestParseDate_BothLayouts(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, 1, 5), d)

	d, err = ParseDate("01/05/2024")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, 1, 5), d)

	_, err = ParseDate("5 Jan")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseOptionalAmount(t *testing.T) {
	got, err := ParseOptionalAmount("   ")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalAmount("12.5")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(dec("12.5")))

	_, err = ParseOptionalAmount("abc")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestShiftYear_LeapDay(t *testing.T) {
	assert.Equal(t, NewDate(2025, 2, 28), ShiftYear(NewDate(2024, 2, 29), 2025))
	assert.Equal(t, NewDate(2025, 7, 4), ShiftYear(NewDate(2024, 7, 4), 2025))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$1200.50", FormatMoney(dec("1200.5")))
	assert.Equal(t, "$0.00", FormatMoney(decimal.Zero))
}

func TestParsePlanStatus(t *testing.T) {
	st, err := ParsePlanStatus(" approved ")
	require.NoError(t, err)
	assert.Equal(t, PlanApproved, st)

	_, err = ParsePlanStatus("pending")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSummarize_LedgerRollup(t *testing.T) {
	l := &Ledger{Name: "Jan", BankBalance: dec("1000")}
	bills := []LedgerBillLine{
		{LedgerBill: LedgerBill{Amount: dec("500"), IsPaid: true}, BillName: "Rent"},
		{LedgerBill: LedgerBill{Amount: dec("75.25")}, BillName: "Power"},
		{LedgerBill: LedgerBill{Amount: dec("24.75")}, BillName: "Water"},
	}
	incomes := []*Income{{Amount: dec("2000")}, {Amount: dec("150")}}

	s := Summarize(l, bills, incomes)
	assert.True(t, s.Income.Equal(dec("2150")))
	assert.Equal(t, 2, s.IncomeCount)
	assert.True(t, s.AvailableFunds.Equal(dec("3150")))
	assert.True(t, s.Planned.Equal(dec("100")))
	assert.Equal(t, 2, s.PlannedCount)
	assert.True(t, s.Paid.Equal(dec("500")))
	assert.Equal(t, 1, s.PaidCount)
	assert.True(t, s.TotalExpenses.Equal(dec("600")))
	assert.True(t, s.Net.Equal(dec("2550")))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(&Ledger{BankBalance: dec("10")}, nil, nil)
	assert.True(t, s.Net.Equal(dec("10")))
	assert.Zero(t, s.PlannedCount)
}

func TestPTOPlanValidate_ReversedRange(t *testing.T) {
	p := &PTOPlan{
		Name:      "Trip",
		StartDate: NewDate(2024, 3, 10),
		EndDate:   NewDate(2024, 3, 8),
		Status:    PlanPlanned,
	}
	assert.ErrorIs(t, p.Validate(), ErrInvalidRange)

	p.EndDate = NewDate(2024, 3, 10)
	assert.NoError(t, p.Validate())

	p.Status = "Someday"
	assert.ErrorIs(t, p.Validate(), ErrValidation)
}

func TestSummarizePTO(t *testing.T) {
	pto := &PTO{Year: 2024, AvailableHours: dec("120"), PrevYearHours: dec("16"), RolloverHours: true}
	plans := []*PTOPlan{
		{Hours: dec("8"), Status: PlanPlanned},
		{Hours: dec("16"), Status: PlanApproved},
		{Hours: dec("40"), Status: PlanCompleted},
		{Hours: dec("24"), Status: PlanCancelled},
	}

	s := SummarizePTO(pto, plans)
	assert.True(t, s.HoursPlanned.Equal(dec("24")))
	assert.True(t, s.HoursUsed.Equal(dec("40")))
	assert.True(t, s.HoursRemaining.Equal(dec("72")))

	pto.RolloverHours = false
	s = SummarizePTO(pto, plans)
	assert.True(t, s.HoursRemaining.Equal(dec("56")))
}

func TestPTOValidate(t *testing.T) {
	assert.NoError(t, (&PTO{Year: 2024, AvailableHours: dec("80")}).Validate())
	assert.ErrorIs(t, (&PTO{Year: 24}).Validate(), ErrValidation)
	assert.ErrorIs(t, (&PTO{Year: 2024, AvailableHours: dec("-1")}).Validate(), ErrValidation)
}
