package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/alexanderramin/moneybae/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type paidToggledMsg struct {
	billName string
	paid     bool
}

type ledgerLoadedMsg struct {
	ledgerID string
	detail   *service.LedgerDetail
	err      error
}

// ledgerDetailView shows one ledger's bill lines, incomes and rollup. The
// cursor moves over bill lines and space flips their paid state.
type ledgerDetailView struct {
	state    *SharedState
	ledgerID string
	detail   *service.LedgerDetail
	cursor   int
	loading  bool
	err      error
}

func newLedgerDetailView(state *SharedState, ledgerID string) *ledgerDetailView {
	return &ledgerDetailView{state: state, ledgerID: ledgerID, loading: true}
}

func (v *ledgerDetailView) ID() ViewID { return ViewLedgerDetail }

func (v *ledgerDetailView) Title() string {
	if v.detail == nil {
		return "Ledger"
	}
	return v.detail.Ledger.Name
}

func (v *ledgerDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle paid")),
	}
}

func (v *ledgerDetailView) Init() tea.Cmd {
	return v.load()
}

func (v *ledgerDetailView) load() tea.Cmd {
	app, id := v.state.App, v.ledgerID
	return func() tea.Msg {
		d, err := app.Ledgers.Detail(context.Background(), id)
		return ledgerLoadedMsg{ledgerID: id, detail: d, err: err}
	}
}

func (v *ledgerDetailView) togglePaid(lineID, billName string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		paid, err := app.Ledgers.TogglePaid(context.Background(), lineID)
		if err != nil {
			return flashMsg{text: err.Error(), isErr: true}
		}
		return paidToggledMsg{billName: billName, paid: paid}
	}
}

func (v *ledgerDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ledgerLoadedMsg:
		if msg.ledgerID != v.ledgerID {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		v.detail = msg.detail
		if v.detail != nil && v.cursor >= len(v.detail.Bills) {
			v.cursor = max(len(v.detail.Bills)-1, 0)
		}
		return v, nil

	case paidToggledMsg:
		state := "unpaid"
		if msg.paid {
			state = "paid"
		}
		return v, tea.Batch(refreshViews(), flash(fmt.Sprintf("%s marked %s", msg.billName, state)))

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.detail == nil {
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.detail.Bills)-1 {
				v.cursor++
			}
		case " ":
			if v.cursor < len(v.detail.Bills) {
				line := v.detail.Bills[v.cursor]
				return v, v.togglePaid(line.ID, line.BillName)
			}
		}
	}
	return v, nil
}

func (v *ledgerDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	d := v.detail
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n\n",
		formatter.Bold(d.Ledger.Name), formatter.Dim(formatter.Month(d.Ledger.Date))))

	b.WriteString("  " + formatter.Bold("Bills") + "\n")
	if len(d.Bills) == 0 {
		b.WriteString("  " + formatter.Dim("No bills on this ledger.") + "\n")
	} else {
		t := formatter.NewTable("BILL", "AMOUNT", "DUE", "STATUS").AlignRight(1)
		for _, l := range d.Bills {
			t.Row(l.BillName, formatter.Money(l.Amount), formatter.OptionalDate(l.DueDate), formatter.PaidPill(l.IsPaid))
		}
		lines := strings.Split(strings.TrimRight(t.Render(), "\n"), "\n")
		for i, line := range lines {
			cursor := "  "
			if i-2 == v.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	b.WriteString("\n  " + formatter.Bold("Incomes") + "\n")
	if len(d.Incomes) == 0 {
		b.WriteString("  " + formatter.Dim("No incomes assigned.") + "\n")
	}
	for _, inc := range d.Incomes {
		b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Date(inc.Date), formatter.Money(inc.Amount)))
	}

	b.WriteString("\n  " + formatter.Bold("Summary") + "\n")
	for _, line := range strings.Split(strings.TrimRight(formatter.FormatLedgerSummary(d.Summary), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
