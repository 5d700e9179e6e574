package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/service"
)

// FormatPTOList renders one line per PTO year with its remaining hours.
func FormatPTOList(years []service.PTOOverview) string {
	if len(years) == 0 {
		return Dim("No PTO years yet. Add one with: moneybae pto add --year ... --hours ...") + "\n"
	}
	t := NewTable("ID", "YEAR", "AVAILABLE", "CARRIED", "PLANNED", "USED", "REMAINING").AlignRight(2, 3, 4, 5, 6)
	for _, o := range years {
		t.Row(
			StyleGreen.Render(ShortID(o.PTO.ID)),
			fmt.Sprint(o.PTO.Year),
			Hours(o.Summary.AvailableHours),
			Hours(o.Summary.CarriedHours),
			Hours(o.Summary.HoursPlanned),
			Hours(o.Summary.HoursUsed),
			SignedHours(o.Summary.HoursRemaining),
		)
	}
	return Header("PTO") + "\n" + t.Render()
}

// FormatPTOSummary renders the hour rollup of a PTO year.
func FormatPTOSummary(s domain.PTOSummary) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s\n",
		Dim("available"), Hours(s.AvailableHours),
		Dim("carried"), Hours(s.CarriedHours),
		Dim("planned"), StyleYellow.Render(Hours(s.HoursPlanned)),
		Dim("used"), Hours(s.HoursUsed),
		Dim("remaining"), SignedHours(s.HoursRemaining),
	)
}

// FormatPlanList renders PTO plans with their status and hours.
func FormatPlanList(plans []*domain.PTOPlan) string {
	if len(plans) == 0 {
		return Dim("No plans.") + "\n"
	}
	t := NewTable("ID", "NAME", "DATES", "HOURS", "STATUS").AlignRight(3)
	for _, p := range plans {
		hours := Hours(p.Hours)
		if p.CustomHours {
			hours = StylePurple.Render(hours + "*")
		}
		t.Row(
			StyleGreen.Render(ShortID(p.ID)),
			p.Name,
			DateRange(p.StartDate, p.EndDate),
			hours,
			PlanStatusPill(p.Status),
		)
	}
	return t.Render()
}

// FormatHolidayList renders the holiday credits of a PTO year.
func FormatHolidayList(holidays []*domain.HolidayHours) string {
	if len(holidays) == 0 {
		return Dim("No holidays.") + "\n"
	}
	t := NewTable("ID", "DATE", "NAME", "HOURS").AlignRight(3)
	for _, h := range holidays {
		t.Row(StyleGreen.Render(ShortID(h.ID)), Date(h.Date), h.Name, Hours(h.Hours))
	}
	return t.Render()
}

// FormatPTODetail renders a PTO year with its plans, holidays and rollup.
func FormatPTODetail(d *service.PTODetail) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("PTO %d", d.PTO.Year)))
	b.WriteString("\n")
	b.WriteString(FormatPTOSummary(d.Summary))
	b.WriteString(Dim("free") + " " + RemainingBar(d.Summary, 24) + "\n")
	if d.PTO.RolloverHours {
		b.WriteString(Dim(fmt.Sprintf("rollover on, %s hours from %d", Hours(d.PTO.PrevYearHours), d.PTO.Year-1)) + "\n")
	}

	b.WriteString("\n" + Bold("Plans") + "\n")
	b.WriteString(FormatPlanList(d.Plans))
	for _, p := range d.Plans {
		if p.CustomHours {
			b.WriteString(Dim("* custom hours") + "\n")
			break
		}
	}

	b.WriteString("\n" + Bold("Holidays") + "\n")
	b.WriteString(FormatHolidayList(d.Holidays))
	return b.String()
}

// FormatWorkdayWarning is shown when a plan averages more than a workday.
func FormatWorkdayWarning(perDay string) string {
	return StyleYellow.Render(fmt.Sprintf("Warning: %s hours per day exceeds a normal 8 hour workday.", perDay))
}
