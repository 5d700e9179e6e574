package export

import (
	"fmt"
	"io"

	"github.com/alexanderramin/moneybae/internal/domain"
	"github.com/alexanderramin/moneybae/internal/service"
)

// PTOYear writes a PTO year's plans, holidays and rollup as a workbook.
func PTOYear(out io.Writer, d *service.PTODetail) error {
	wb, err := newWorkbook()
	if err != nil {
		return err
	}
	defer wb.close()

	if err := wb.addSheet(SheetPlans, "Name", "Start", "End", "Hours", "Status", "Custom", "Description"); err != nil {
		return err
	}
	for i, p := range d.Plans {
		if err := wb.setRow(SheetPlans, i+2,
			p.Name,
			p.StartDate.Format(domain.DateLayout),
			p.EndDate.Format(domain.DateLayout),
			p.Hours,
			string(p.Status),
			yesNo(p.CustomHours),
			p.Description,
		); err != nil {
			return err
		}
	}

	if err := wb.addSheet(SheetHolidays, "Date", "Name", "Hours"); err != nil {
		return err
	}
	for i, h := range d.Holidays {
		if err := wb.setRow(SheetHolidays, i+2, h.Date.Format(domain.DateLayout), h.Name, h.Hours); err != nil {
			return err
		}
	}

	s := d.Summary
	if err := wb.addSheet(SheetSummary, "Item", "Hours"); err != nil {
		return err
	}
	rows := [][]any{
		{"Year", s.Year},
		{"Available", s.AvailableHours},
		{"Carried over", s.CarriedHours},
		{"Planned", s.HoursPlanned},
		{"Used", s.HoursUsed},
		{"Remaining", s.HoursRemaining},
	}
	for i, r := range rows {
		if err := wb.setRow(SheetSummary, i+2, r...); err != nil {
			return err
		}
	}

	if err := wb.writeTo(out); err != nil {
		return fmt.Errorf("exporting pto %d: %w", d.PTO.Year, err)
	}
	return nil
}
