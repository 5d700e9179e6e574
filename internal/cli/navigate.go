package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload its data, so lists
// underneath a detail view pick up its changes.
type refreshViewMsg struct{}

// flashMsg shows a one-line status message in the bottom bar until the
// next key press.
type flashMsg struct {
	text  string
	isErr bool
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// refreshViews returns a tea.Cmd that reloads every view on the stack.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// flash returns a tea.Cmd that shows text in the status bar.
func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}
