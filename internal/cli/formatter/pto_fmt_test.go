package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatPTODetail(t *testing.T) {
	p := &domain.PTO{ID: "abcdef12-0000", Year: 2025, AvailableHours: d("120"), PrevYearHours: d("16"), RolloverHours: true}
	plans := []*domain.PTOPlan{
		{ID: "p1", Name: "Beach", StartDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), Hours: d("40"), Status: domain.PlanApproved},
		{ID: "p2", Name: "Dentist", StartDate: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), Hours: d("4"), Status: domain.PlanCompleted, CustomHours: true},
	}
	holidays := []*domain.HolidayHours{
		{ID: "h1", Name: "July 4th", Date: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), Hours: d("8")},
	}

	out := FormatPTODetail(&service.PTODetail{PTO: p, Plans: plans, Holidays: holidays, Summary: domain.SummarizePTO(p, plans)})

	assert.Contains(t, out, "PTO 2025")
	assert.Contains(t, out, "Beach")
	assert.Contains(t, out, "2025-06-02 → 2025-06-06")
	assert.Contains(t, out, "4.00*")
	assert.Contains(t, out, "custom hours")
	assert.Contains(t, out, "July 4th")
	assert.Contains(t, out, "92.00") // 120 + 16 - 40 - 4
	assert.Contains(t, out, "rollover on")
}

func TestFormatPTOList(t *testing.T) {
	p := &domain.PTO{ID: "abcdef12-0000", Year: 2025, AvailableHours: d("80")}
	out := FormatPTOList([]service.PTOOverview{{PTO: p, Summary: domain.SummarizePTO(p, nil)}})
	assert.Contains(t, out, "2025")
	assert.Contains(t, out, "80.00")
	assert.Contains(t, FormatPTOList(nil), "No PTO years yet")
}

func TestFormatWorkdayWarning(t *testing.T) {
	assert.Contains(t, FormatWorkdayWarning("10.00"), "10.00 hours per day")
}
