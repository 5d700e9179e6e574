package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveID matches input against ids: an exact match wins, otherwise input
// must be the prefix of exactly one id.
func resolveID(kind, input string, ids []string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s ID is required", kind)
	}

	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}

func resolveBillID(ctx context.Context, app *App, input string) (string, error) {
	bills, err := app.Bills.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(bills))
	for i, b := range bills {
		ids[i] = b.ID
	}
	return resolveID("bill", input, ids)
}

func resolveIncomeID(ctx context.Context, app *App, input string) (string, error) {
	incomes, err := app.Incomes.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(incomes))
	for i, inc := range incomes {
		ids[i] = inc.ID
	}
	return resolveID("income", input, ids)
}

func resolveLedgerID(ctx context.Context, app *App, input string) (string, error) {
	ledgers, err := app.Ledgers.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(ledgers))
	for i, o := range ledgers {
		ids[i] = o.Ledger.ID
	}
	return resolveID("ledger", input, ids)
}

// resolveLedgerBillID searches the bill lines of one ledger.
func resolveLedgerBillID(ctx context.Context, app *App, ledgerID, input string) (string, error) {
	detail, err := app.Ledgers.Detail(ctx, ledgerID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(detail.Bills))
	for i, l := range detail.Bills {
		ids[i] = l.ID
	}
	return resolveID("ledger bill", input, ids)
}

// resolvePTOID accepts a four-digit year as well as an ID.
func resolvePTOID(ctx context.Context, app *App, input string) (string, error) {
	years, err := app.PTO.List(ctx)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(years))
	for i, o := range years {
		if fmt.Sprint(o.PTO.Year) == strings.TrimSpace(input) {
			return o.PTO.ID, nil
		}
		ids[i] = o.PTO.ID
	}
	return resolveID("PTO year", input, ids)
}

// resolveHolidayID searches every PTO year's holidays.
func resolveHolidayID(ctx context.Context, app *App, input string) (string, error) {
	years, err := app.PTO.List(ctx)
	if err != nil {
		return "", err
	}
	var ids []string
	for _, o := range years {
		holidays, err := app.Holidays.ListByPTO(ctx, o.PTO.ID)
		if err != nil {
			return "", err
		}
		for _, h := range holidays {
			ids = append(ids, h.ID)
		}
	}
	return resolveID("holiday", input, ids)
}

// resolvePlanID searches every PTO year's plans.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	years, err := app.PTO.List(ctx)
	if err != nil {
		return "", err
	}
	var ids []string
	for _, o := range years {
		plans, err := app.Plans.ListByPTO(ctx, o.PTO.ID)
		if err != nil {
			return "", err
		}
		for _, p := range plans {
			ids = append(ids, p.ID)
		}
	}
	return resolveID("plan", input, ids)
}
