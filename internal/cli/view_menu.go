package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	key   string
	label string
	open  func(*SharedState) View
}

// menuView is the home screen listing each section with its shortcut.
type menuView struct {
	state  *SharedState
	items  []menuItem
	cursor int
}

func newMenuView(state *SharedState) *menuView {
	return &menuView{
		state: state,
		items: []menuItem{
			{"b", "Bills", func(s *SharedState) View { return newBillListView(s) }},
			{"i", "Incomes", func(s *SharedState) View { return newIncomeListView(s) }},
			{"l", "Ledgers", func(s *SharedState) View { return newLedgerListView(s) }},
			{"p", "PTO", func(s *SharedState) View { return newPTOListView(s) }},
		},
	}
}

func (v *menuView) ID() ViewID    { return ViewMenu }
func (v *menuView) Title() string { return "" }

func (v *menuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("b", "i", "l", "p"), key.WithHelp("b/i/l/p", "jump")),
	}
}

func (v *menuView) Init() tea.Cmd { return nil }

func (v *menuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch km.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case "enter":
		return v, pushView(v.items[v.cursor].open(v.state))
	default:
		for i, item := range v.items {
			if km.String() == item.key {
				v.cursor = i
				return v, pushView(item.open(v.state))
			}
		}
	}
	return v, nil
}

func (v *menuView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	for i, item := range v.items {
		cursor := "  "
		label := formatter.StyleFg.Render(item.label)
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			label = formatter.StyleBold.Render(item.label)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, formatter.StyleYellow.Render(item.key), label))
	}
	return b.String()
}
