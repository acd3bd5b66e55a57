// Package tui implements the interactive two-operand calculator.
//
// Keys:
//
//	Tab / Shift+Tab  cycle focus between the operands and the operator list
//	Up / Down        select an operator
//	Enter            apply the selected operator
//	e / p            replace the focused operand with E or Pi
//	Ctrl+C / Esc     quit
//
// Binary operators combine both operands into the result line. Unary operators
// apply to the operand that had focus last and write the value back into it.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lukaszgryglicki/mathplex"
	"github.com/lukaszgryglicki/mathplex/internal/calc"
	"github.com/lukaszgryglicki/mathplex/internal/history"
)

const (
	focusFirst = iota
	focusSecond
	focusOps
	focusCount
)

// accepted operand keys; e and p are handled as constants
const operandKeys = "0123456789+-.i"

const opsPerRow = 8

// Recorder stores evaluations. *history.Store satisfies it.
type Recorder interface {
	RecordArgs(ctx context.Context, op string, args []string, result string) (history.Entry, error)
}

// Options configures a Model.
type Options struct {
	Registry *calc.Registry
	// Recorder is optional.
	Recorder Recorder
	// Render formats results; defaults to Complex.String.
	Render func(mathplex.Complex) string
	Logger *slog.Logger
}

// Model is the calculator state.
type Model struct {
	fields    [2]textinput.Model
	focus     int
	lastField int

	ops    []string
	cursor int

	result string
	err    error
	status string

	registry *calc.Registry
	recorder Recorder
	render   func(mathplex.Complex) string
	logger   *slog.Logger
}

// NewModel creates a calculator with the first operand focused and "add" selected.
func NewModel(opts Options) Model {
	if opts.Registry == nil {
		opts.Registry = calc.NewRegistry(opts.Logger)
	}
	if opts.Render == nil {
		opts.Render = mathplex.Complex.String
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	m := Model{
		registry: opts.Registry,
		recorder: opts.Recorder,
		render:   opts.Render,
		logger:   opts.Logger,
	}
	for i := range m.fields {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 32
		ti.SetValue("0")
		m.fields[i] = ti
	}
	m.fields[focusFirst].Focus()

	for _, name := range opts.Registry.Names() {
		if op, _ := opts.Registry.Lookup(name); op.MaxArgs == calc.Variadic || op.MaxArgs <= 2 {
			m.ops = append(m.ops, name)
		}
	}
	m.selectOp("add")
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the highlighted operator name.
func (m Model) Selected() string {
	if len(m.ops) == 0 {
		return ""
	}
	return m.ops[m.cursor]
}

// Operand returns the raw text of operand i (0 or 1).
func (m Model) Operand(i int) string { return m.fields[i].Value() }

// Result returns the rendered result line.
func (m Model) Result() string { return m.result }

// Err returns the last evaluation error, if any.
func (m Model) Err() error { return m.err }

func (m *Model) selectOp(name string) {
	for i, op := range m.ops {
		if op == name {
			m.cursor = i
			return
		}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "up", "left":
			if m.focus == focusOps && m.cursor > 0 {
				m.cursor--
			}
			if m.focus == focusOps {
				return m, nil
			}
		case "down", "right":
			if m.focus == focusOps && m.cursor < len(m.ops)-1 {
				m.cursor++
			}
			if m.focus == focusOps {
				return m, nil
			}
		case "enter":
			return m, m.apply()
		}

		if m.focus == focusOps {
			return m, nil
		}
		if msg.Type == tea.KeyRunes {
			var ok bool
			if msg, ok = m.filterRunes(msg); !ok {
				return m, nil
			}
			return m, m.updateField(msg)
		}
		return m, m.updateField(msg)

	case recordedMsg:
		if msg.err != nil {
			m.status = "history: " + msg.err.Error()
			m.logger.Warn("failed to record evaluation", "error", msg.err)
		} else {
			m.status = "saved " + msg.entry.ID
		}
		return m, nil
	}

	if m.focus != focusOps {
		return m, m.updateField(msg)
	}
	return m, nil
}

func (m *Model) updateField(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return cmd
}

// filterRunes drops keys that cannot appear in an operand. The constant keys
// replace the focused value and swallow the message.
func (m *Model) filterRunes(msg tea.KeyMsg) (tea.KeyMsg, bool) {
	kept := msg.Runes[:0:0]
	for _, r := range msg.Runes {
		switch {
		case r == 'e':
			m.fields[m.focus].SetValue(mathplex.E.String())
			return msg, false
		case r == 'p':
			m.fields[m.focus].SetValue(mathplex.Pi.String())
			return msg, false
		case strings.ContainsRune(operandKeys, r):
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return msg, false
	}
	// a lone 0 is a placeholder, typing replaces it
	if m.fields[m.focus].Value() == "0" {
		m.fields[m.focus].SetValue("")
	}
	msg.Runes = kept
	return msg, true
}

func (m *Model) setFocus(f int) tea.Cmd {
	for i := range m.fields {
		if m.fields[i].Value() == "" {
			m.fields[i].SetValue("0")
		}
		m.fields[i].Blur()
	}
	m.focus = f
	if f == focusOps {
		return nil
	}
	m.lastField = f
	return m.fields[f].Focus()
}

func (m Model) operand(i int) string {
	if v := strings.TrimSpace(m.fields[i].Value()); v != "" {
		return v
	}
	return "0"
}

// apply evaluates the selected op. Nullary ops insert a constant into the last
// focused operand, unary ops rewrite it, everything else fills the result line.
func (m *Model) apply() tea.Cmd {
	name := m.Selected()
	op, ok := m.registry.Lookup(name)
	if !ok {
		return nil
	}

	var args []any
	switch {
	case op.MaxArgs == 0:
	case op.Unary():
		args = []any{m.operand(m.lastField)}
	default:
		args = []any{m.operand(focusFirst), m.operand(focusSecond)}
	}

	res, err := m.registry.Eval(context.Background(), name, args...)
	if err != nil {
		m.err = err
		m.result = ""
		return nil
	}
	m.err = nil
	m.result = m.render(res.Value)
	if op.MaxArgs == 0 || op.Unary() {
		m.fields[m.lastField].SetValue(res.Value.String())
	}
	return m.record(res)
}

func (m Model) record(res calc.Result) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	rec := m.recorder
	value := res.Value.String()
	return func() tea.Msg {
		entry, err := rec.RecordArgs(context.Background(), res.Op, res.Args, value)
		return recordedMsg{entry: entry, err: err}
	}
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("mathplex"))
	s.WriteString("\n")

	for i, label := range []string{"first", "second"} {
		style := InputStyle
		if m.focus == i {
			style = FocusedInputStyle
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
			LabelStyle.Render(label), style.Render(m.fields[i].View())))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(m.renderOps())
	s.WriteString("\n\n")

	switch {
	case m.err != nil:
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.result != "":
		s.WriteString(LabelStyle.Render("result") + ResultStyle.Render(m.result))
	}
	if m.status != "" {
		s.WriteString("\n")
		s.WriteString(HelpStyle.Render(m.status))
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("tab: focus • ↑/↓: operator • enter: apply • e/p: E/Pi • esc: quit"))
	return s.String()
}

func (m Model) renderOps() string {
	var rows []string
	var row []string
	for i, name := range m.ops {
		style := OpStyle
		if i == m.cursor {
			style = SelectedOpStyle
			if m.focus == focusOps {
				name = "[" + name + "]"
			}
		}
		row = append(row, style.Render(name))
		if len(row) == opsPerRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
