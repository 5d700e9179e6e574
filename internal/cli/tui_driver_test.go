package cli

import (
	"testing"

	"github.com/alexanderramin/moneybae/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals the
// generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at 120x40 and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// Open jumps from the menu to the section bound to key.
func (d *TestDriver) Open(key rune) {
	d.T.Helper()
	for d.ViewStackLen() > 1 {
		d.PressEsc()
	}
	d.PressKey(key)
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports a quit from either the model flag or a drained tea.QuitMsg.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Flash returns the current status line text and whether it is an error.
func (d *TestDriver) Flash() (string, bool) {
	m := d.appModel()
	return m.flash, m.flashIsErr
}
