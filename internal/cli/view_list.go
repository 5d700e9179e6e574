package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// listRow is one selectable line of a listView.
type listRow struct {
	id    string
	cells []string
}

// rowsLoadedMsg carries a listView's data, tagged with the view it belongs to.
type rowsLoadedMsg struct {
	view ViewID
	rows []listRow
	err  error
}

// listView is a navigable table backed by a loader. Views that can drill
// down set open.
type listView struct {
	state   *SharedState
	id      ViewID
	title   string
	empty   string
	headers []string
	right   []int
	load    func(ctx context.Context, app *App) ([]listRow, error)
	open    func(state *SharedState, row listRow) View

	rows    []listRow
	cursor  int
	offset  int
	loading bool
	err     error
}

func (v *listView) ID() ViewID    { return v.id }
func (v *listView) Title() string { return v.title }

func (v *listView) ShortHelp() []key.Binding {
	if v.open == nil {
		return []key.Binding{
			key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

func (v *listView) Init() tea.Cmd {
	v.loading = true
	return v.loadRows()
}

func (v *listView) loadRows() tea.Cmd {
	app, id, load := v.state.App, v.id, v.load
	return func() tea.Msg {
		rows, err := load(context.Background(), app)
		return rowsLoadedMsg{view: id, rows: rows, err: err}
	}
}

func (v *listView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rowsLoadedMsg:
		if msg.view != v.id {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		v.rows = msg.rows
		if v.cursor >= len(v.rows) {
			v.cursor = max(len(v.rows)-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.loadRows()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case "g", "home":
			v.cursor = 0
		case "G", "end":
			v.cursor = max(len(v.rows)-1, 0)
		case "enter":
			if v.open != nil && v.cursor < len(v.rows) {
				return v, pushView(v.open(v.state, v.rows[v.cursor]))
			}
		}
	}
	return v, nil
}

// pageSize is how many rows fit below the table header, or 0 when unknown.
func (v *listView) pageSize() int {
	if v.state.Height == 0 {
		return 0
	}
	return max(v.state.ContentHeight()-3, 1)
}

func (v *listView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if len(v.rows) == 0 {
		return "\n  " + formatter.Dim(v.empty)
	}

	t := formatter.NewTable(v.headers...).AlignRight(v.right...)
	for _, r := range v.rows {
		t.Row(r.cells...)
	}
	lines := strings.Split(strings.TrimRight(t.Render(), "\n"), "\n")
	header, body := lines[:2], lines[2:]

	start, end := 0, len(body)
	if page := v.pageSize(); page > 0 && len(body) > page {
		if v.cursor < v.offset {
			v.offset = v.cursor
		}
		if v.cursor >= v.offset+page {
			v.offset = v.cursor - page + 1
		}
		start, end = v.offset, min(v.offset+page, len(body))
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, h := range header {
		b.WriteString("  " + h + "\n")
	}
	for i := start; i < end; i++ {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		b.WriteString(cursor + body[i] + "\n")
	}
	if end-start < len(body) {
		b.WriteString(formatter.Dim(fmt.Sprintf("  %d-%d of %d", start+1, end, len(body))) + "\n")
	}
	return b.String()
}

// ── list definitions ─────────────────────────────────────────────────────────

func newBillListView(state *SharedState) *listView {
	return &listView{
		state:   state,
		id:      ViewBills,
		title:   "Bills",
		empty:   "No bills yet.",
		headers: []string{"NAME", "AMOUNT", "DUE", "AUTO-PAY", "NOTES"},
		right:   []int{1, 2},
		load: func(ctx context.Context, app *App) ([]listRow, error) {
			bills, err := app.Bills.List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]listRow, len(bills))
			for i, b := range bills {
				due := formatter.Dim("—")
				if b.DueDay != nil {
					due = strconv.Itoa(*b.DueDay)
				}
				rows[i] = listRow{id: b.ID, cells: []string{
					b.Name, formatter.Money(b.Amount), due, formatter.YesNo(b.IsAutoPay), formatter.Dim(formatter.Truncate(b.Notes, 30)),
				}}
			}
			return rows, nil
		},
	}
}

func newIncomeListView(state *SharedState) *listView {
	return &listView{
		state:   state,
		id:      ViewIncomes,
		title:   "Incomes",
		empty:   "No incomes yet.",
		headers: []string{"DATE", "AMOUNT", "LEDGER", "NOTES"},
		right:   []int{1},
		load: func(ctx context.Context, app *App) ([]listRow, error) {
			incomes, err := app.Incomes.List(ctx)
			if err != nil {
				return nil, err
			}
			ledgers, err := app.Ledgers.List(ctx)
			if err != nil {
				return nil, err
			}
			names := make(map[string]string, len(ledgers))
			for _, o := range ledgers {
				names[o.Ledger.ID] = o.Ledger.Name
			}
			rows := make([]listRow, len(incomes))
			for i, inc := range incomes {
				ledger := formatter.Dim("unassigned")
				if inc.LedgerID != nil {
					ledger = formatter.StyleBlue.Render(names[*inc.LedgerID])
				}
				rows[i] = listRow{id: inc.ID, cells: []string{
					formatter.Date(inc.Date), formatter.Money(inc.Amount), ledger, formatter.Dim(formatter.Truncate(inc.Notes, 30)),
				}}
			}
			return rows, nil
		},
	}
}

func newLedgerListView(state *SharedState) *listView {
	return &listView{
		state:   state,
		id:      ViewLedgers,
		title:   "Ledgers",
		empty:   "No ledgers yet.",
		headers: []string{"NAME", "MONTH", "AVAILABLE", "EXPENSES", "NET"},
		right:   []int{2, 3, 4},
		load: func(ctx context.Context, app *App) ([]listRow, error) {
			ledgers, err := app.Ledgers.List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]listRow, len(ledgers))
			for i, o := range ledgers {
				rows[i] = listRow{id: o.Ledger.ID, cells: []string{
					o.Ledger.Name,
					formatter.Month(o.Ledger.Date),
					formatter.Money(o.Summary.AvailableFunds),
					formatter.Money(o.Summary.TotalExpenses),
					formatter.SignedMoney(o.Summary.Net),
				}}
			}
			return rows, nil
		},
		open: func(state *SharedState, row listRow) View {
			return newLedgerDetailView(state, row.id)
		},
	}
}

func newPTOListView(state *SharedState) *listView {
	return &listView{
		state:   state,
		id:      ViewPTOList,
		title:   "PTO",
		empty:   "No PTO years yet.",
		headers: []string{"YEAR", "AVAILABLE", "CARRIED", "PLANNED", "USED", "REMAINING"},
		right:   []int{1, 2, 3, 4, 5},
		load: func(ctx context.Context, app *App) ([]listRow, error) {
			years, err := app.PTO.List(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]listRow, len(years))
			for i, o := range years {
				s := o.Summary
				rows[i] = listRow{id: o.PTO.ID, cells: []string{
					strconv.Itoa(o.PTO.Year),
					formatter.Hours(s.AvailableHours),
					formatter.Hours(s.CarriedHours),
					formatter.Hours(s.HoursPlanned),
					formatter.Hours(s.HoursUsed),
					formatter.SignedHours(s.HoursRemaining),
				}}
			}
			return rows, nil
		},
		open: func(state *SharedState, row listRow) View {
			return newPTODetailView(state, row.id)
		},
	}
}
