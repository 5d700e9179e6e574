package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/moneybae/internal/cli/formatter"
	"github.com/alexanderramin/moneybae/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type ptoLoadedMsg struct {
	ptoID  string
	detail *service.PTODetail
	err    error
}

// ptoDetailView shows a PTO year's rollup, plans and holidays in a
// scrollable viewport.
type ptoDetailView struct {
	state   *SharedState
	ptoID   string
	detail  *service.PTODetail
	vp      viewport.Model
	loading bool
	err     error
}

func newPTODetailView(state *SharedState, ptoID string) *ptoDetailView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.KeyMap = detailViewportKeyMap()
	return &ptoDetailView{state: state, ptoID: ptoID, vp: vp, loading: true}
}

func (v *ptoDetailView) ID() ViewID { return ViewPTODetail }

func (v *ptoDetailView) Title() string {
	if v.detail == nil {
		return "PTO"
	}
	return fmt.Sprint(v.detail.PTO.Year)
}

func (v *ptoDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓ pgup/pgdn", "scroll")),
	}
}

func (v *ptoDetailView) Init() tea.Cmd {
	return v.load()
}

func (v *ptoDetailView) load() tea.Cmd {
	app, id := v.state.App, v.ptoID
	return func() tea.Msg {
		d, err := app.PTO.Detail(context.Background(), id)
		return ptoLoadedMsg{ptoID: id, detail: d, err: err}
	}
}

func (v *ptoDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ptoLoadedMsg:
		if msg.ptoID != v.ptoID {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		v.detail = msg.detail
		if v.detail != nil {
			v.vp.SetContent(formatter.FormatPTODetail(v.detail))
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.WindowSizeMsg:
		v.vp.Width = v.state.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *ptoDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.state.Height == 0 {
		return formatter.FormatPTODetail(v.detail)
	}
	return v.vp.View()
}

// detailViewportKeyMap limits scrolling to arrow and page keys so letter
// keys stay free for global shortcuts.
func detailViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}
