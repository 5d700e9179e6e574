package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PTO is one year's paid-time-off allotment.
type PTO struct {
	ID             string
	Year           int
	AvailableHours decimal.Decimal
	PrevYearHours  decimal.Decimal
	RolloverHours  bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (p *PTO) Validate() error {
	if p.Year < 1900 || p.Year > 9999 {
		return validationf("year %d is out of range", p.Year)
	}
	if p.AvailableHours.IsNegative() {
		return validationf("available hours must not be negative")
	}
	if p.PrevYearHours.IsNegative() {
		return validationf("previous year hours must not be negative")
	}
	return nil
}

// Contains reports whether d falls inside the PTO year.
func (p *PTO) Contains(d time.Time) bool {
	return d.Year() == p.Year
}

// HolidayHours credits hours for a company holiday within a PTO year.
type HolidayHours struct {
	ID        string
	PTOID     string
	Date      time.Time
	Name      string
	Hours     decimal.Decimal
	CreatedAt time.Time
}

func (h *HolidayHours) Validate() error {
	if strings.TrimSpace(h.Name) == "" {
		return validationf("holiday name is required")
	}
	if h.Date.IsZero() {
		return validationf("holiday date is required")
	}
	if h.Hours.IsNegative() {
		return validationf("holiday hours must not be negative")
	}
	return nil
}

// PTOPlan is a date range of time off charged against a PTO year.
type PTOPlan struct {
	ID          string
	PTOID       string
	StartDate   time.Time
	EndDate     time.Time
	Name        string
	Description string
	Hours       decimal.Decimal
	Status      PlanStatus
	// CustomHours is set when Hours came from the user instead of the
	// workday calculator. Custom plans are never recalculated.
	CustomHours bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p *PTOPlan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return validationf("plan name is required")
	}
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return validationf("plan start and end dates are required")
	}
	if DateOf(p.EndDate).Before(DateOf(p.StartDate)) {
		return ErrInvalidRange
	}
	if _, err := ParsePlanStatus(string(p.Status)); err != nil {
		return err
	}
	return nil
}

// PTOSummary is the derived hour rollup of a PTO year.
type PTOSummary struct {
	Year           int
	AvailableHours decimal.Decimal
	CarriedHours   decimal.Decimal
	HoursPlanned   decimal.Decimal
	HoursUsed      decimal.Decimal
	HoursRemaining decimal.Decimal
}

// SummarizePTO rolls up plan hours by status. Cancelled plans are ignored and
// previous-year hours only count when rollover is enabled.
func SummarizePTO(p *PTO, plans []*PTOPlan) PTOSummary {
	s := PTOSummary{
		Year:           p.Year,
		AvailableHours: p.AvailableHours,
		CarriedHours:   decimal.Zero,
		HoursPlanned:   decimal.Zero,
		HoursUsed:      decimal.Zero,
	}
	if p.RolloverHours {
		s.CarriedHours = p.PrevYearHours
	}
	for _, plan := range plans {
		switch {
		case plan.Status == PlanCompleted:
			s.HoursUsed = s.HoursUsed.Add(plan.Hours)
		case plan.Status.CountsAsPlanned():
			s.HoursPlanned = s.HoursPlanned.Add(plan.Hours)
		}
	}
	s.HoursRemaining = s.AvailableHours.Add(s.CarriedHours).Sub(s.HoursPlanned).Sub(s.HoursUsed)
	return s
}
