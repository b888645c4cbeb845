package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jask/lineitem/internal/invoice"
)

// App is the line-item editor screen: a form on top, submitted records
// below.
type App struct {
	session invoice.Session
	ids     invoice.IDGenerator
	log     zerolog.Logger
	keys    keyMap

	inputs []textinput.Model // one per invoice.InputFields
	focus  int
	cursor int

	status      string
	statusLevel statusLevel
	width       int
	height      int
}

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusSuccess
	statusWarning
	statusError
)

func New(ids invoice.IDGenerator, log zerolog.Logger) *App {
	if ids == nil {
		ids = invoice.NewSequence(0)
	}
	a := &App{
		session: invoice.NewSession(),
		ids:     ids,
		log:     log,
		keys:    defaultKeys(),
		inputs:  make([]textinput.Model, len(invoice.InputFields)),
	}
	for i, f := range invoice.InputFields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = "0"
		in.CharLimit = 32
		in.Width = 16
		in.SetValue(a.session.Form.Value(f))
		a.inputs[i] = in
	}
	a.inputs[0].Focus()
	return a
}

// Session exposes the current editor state.
func (a *App) Session() invoice.Session {
	return a.session
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		a.log.Info().Int("records", len(a.session.Records)).Msg("quit")
		return a, tea.Quit
	case key.Matches(m, a.keys.Next):
		return a, a.setFocus(a.focus + 1)
	case key.Matches(m, a.keys.Prev):
		return a, a.setFocus(a.focus - 1)
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.session.Records)-1 {
			a.cursor++
		}
		return a, nil
	case key.Matches(m, a.keys.Submit):
		return a, a.submit()
	case key.Matches(m, a.keys.Edit):
		return a, a.editSelected()
	case key.Matches(m, a.keys.Cancel):
		return a, a.cancel()
	}
	return a, a.updateFocusedInput(m)
}

// updateFocusedInput feeds the keystroke to the focused input and, when
// its text changed, re-derives the form.
func (a *App) updateFocusedInput(m tea.KeyMsg) tea.Cmd {
	in := a.inputs[a.focus]
	before := in.Value()
	in, cmd := in.Update(m)
	a.inputs[a.focus] = in
	if after := in.Value(); after != before {
		a.session = a.session.UpdateField(invoice.InputFields[a.focus], after)
	}
	return cmd
}

func (a *App) setFocus(i int) tea.Cmd {
	n := len(a.inputs)
	i = ((i % n) + n) % n
	a.inputs[a.focus].Blur()
	a.focus = i
	return a.inputs[a.focus].Focus()
}

func (a *App) submit() tea.Cmd {
	editing := a.session.Editing
	var outcome invoice.Outcome
	a.session, outcome = a.session.Submit(a.ids)

	switch outcome {
	case invoice.Created:
		id := a.session.LastID()
		a.cursor = len(a.session.Records) - 1
		a.log.Info().Str("id", id).Str("outcome", outcome.String()).Msg("submit")
		a.setStatus(statusSuccess, "created line "+id)
	case invoice.Updated:
		a.cursor = a.session.Records.Index(editing)
		a.log.Info().Str("id", editing).Str("outcome", outcome.String()).Msg("submit")
		a.setStatus(statusSuccess, "updated line "+editing)
	case invoice.Stale:
		a.log.Warn().Str("id", editing).Str("outcome", outcome.String()).Msg("record under edit no longer exists")
		a.setStatus(statusWarning, "line "+editing+" no longer exists; nothing saved")
	}
	return a.syncInputs()
}

func (a *App) editSelected() tea.Cmd {
	if len(a.session.Records) == 0 {
		a.setStatus(statusInfo, "no lines to edit")
		return nil
	}
	id := a.session.Records[a.cursor].ID
	s, ok := a.session.SelectForEdit(id)
	if !ok {
		a.setStatus(statusError, "line "+id+" not found")
		return nil
	}
	a.session = s
	a.log.Debug().Str("id", id).Msg("select for edit")
	a.setStatus(statusInfo, "editing line "+id)
	return a.syncInputs()
}

func (a *App) cancel() tea.Cmd {
	if a.session.IsEditing() {
		a.log.Debug().Str("id", a.session.Editing).Msg("cancel edit")
		a.setStatus(statusInfo, "edit cancelled")
	} else {
		a.setStatus(statusInfo, "form cleared")
	}
	a.session = a.session.CancelEdit()
	return a.syncInputs()
}

// syncInputs copies the session form into the text inputs and returns
// focus to the first one.
func (a *App) syncInputs() tea.Cmd {
	for i, f := range invoice.InputFields {
		a.inputs[i].SetValue(a.session.Form.Value(f))
	}
	return a.setFocus(0)
}

func (a *App) setStatus(level statusLevel, text string) {
	a.status = text
	a.statusLevel = level
}
