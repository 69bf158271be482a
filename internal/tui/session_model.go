package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nbekzhan/liftlog/internal/models"
	"github.com/nbekzhan/liftlog/internal/parser"
	"github.com/nbekzhan/liftlog/internal/session"
)

// sessionTickMsg is sent every second to refresh the clock display. The
// elapsed value itself always comes from the session clock, so a missed
// tick never skews it.
type sessionTickMsg struct{}

// editField identifies which entry field is being edited inline
type editField int

const (
	editNone editField = iota
	editReps
	editWeight
	editRPE
	editNotes
)

// SessionModel is the TUI model for a live workout-logging session
type SessionModel struct {
	width  int
	height int

	controller *session.Controller

	// Selection state
	cursor    int // selected exercise
	setCursor int // selected set within the exercise

	// Inline editing state
	editing editField
	input   textinput.Model

	// Save form state
	saving     bool
	saveInputs []textinput.Model // 0: session RPE, 1: general feedback
	saveFocus  int
	saveErr    string

	// Cancel confirmation modal
	confirmCancel bool

	// Rest countdown after a completed set (display only)
	restUntil time.Time

	// Transient notice, e.g. a coercion warning
	notice string

	// Final outcome, read by the runner after the program exits
	saved      bool
	savedResp  models.LogResponse
	sessionRPE int
	feedback   string
	cancelled  bool
}

// NewSessionModel creates the TUI model for an initialized session controller
func NewSessionModel(controller *session.Controller) SessionModel {
	input := textinput.New()
	input.Width = 40
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	saveInputs := make([]textinput.Model, 2)
	for i := range saveInputs {
		saveInputs[i] = textinput.New()
		saveInputs[i].Width = 50
		saveInputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		saveInputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		saveInputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	saveInputs[0].Placeholder = "Session RPE 1-10 (required)"
	saveInputs[0].CharLimit = 2
	saveInputs[1].Placeholder = "General feedback (Enter to skip)"
	saveInputs[1].CharLimit = 500

	return SessionModel{
		controller: controller,
		input:      input,
		saveInputs: saveInputs,
	}
}

// Init starts the 1 Hz display tick. The session itself is started by the
// runner before the program begins.
func (m SessionModel) Init() tea.Cmd {
	return sessionTick()
}

func sessionTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return sessionTickMsg{}
	})
}

// Update handles messages
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionTickMsg:
		// Re-render only; elapsed time is recomputed from the clock.
		// The tick chain dies on every path that leaves InProgress.
		if m.controller.Status() == session.InProgress {
			return m, sessionTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Implicit teardown still stops the clock
			if m.controller.Status() == session.InProgress {
				m.controller.Cancel()
				m.cancelled = true
			}
			return m, tea.Quit
		}
		switch {
		case m.confirmCancel:
			return m.updateConfirmCancel(msg)
		case m.saving:
			return m.updateSaveForm(msg)
		case m.editing != editNone:
			return m.updateEditing(msg)
		default:
			return m.updateBrowsing(msg)
		}
	}

	return m, nil
}

// updateBrowsing handles keys in the exercise list
func (m SessionModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	store := m.controller.Store()
	m.notice = ""

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.clampSetCursor()
		}
	case "down", "j":
		if m.cursor < store.Len()-1 {
			m.cursor++
			m.clampSetCursor()
		}
	case "left", "h":
		if m.setCursor > 0 {
			m.setCursor--
		}
	case "right", "l":
		entry, err := store.Entry(m.cursor)
		if err == nil && m.setCursor < entry.CompletedSets()-1 {
			m.setCursor++
		}
	case "a":
		if err := store.AddSet(m.cursor); err != nil {
			m.notice = err.Error()
			break
		}
		entry, err := store.Entry(m.cursor)
		if err == nil {
			m.setCursor = entry.CompletedSets() - 1
			if entry.RestSeconds > 0 {
				m.restUntil = time.Now().Add(time.Duration(entry.RestSeconds) * time.Second)
			}
		}
	case "d", "x":
		if err := store.RemoveSet(m.cursor, m.setCursor); err != nil {
			var idxErr *session.IndexError
			if errors.As(err, &idxErr) {
				m.notice = "no set to remove"
			} else {
				m.notice = err.Error()
			}
			break
		}
		m.clampSetCursor()
	case "enter", "e":
		entry, err := store.Entry(m.cursor)
		if err != nil || entry.CompletedSets() == 0 {
			m.notice = "add a set first (a)"
			break
		}
		m.startEdit(editReps, fmt.Sprintf("%d", entry.ActualReps[m.setCursor]))
	case "w":
		entry, err := store.Entry(m.cursor)
		if err != nil {
			break
		}
		m.startEdit(editWeight, formatWeight(entry.WeightUsed))
	case "r":
		entry, err := store.Entry(m.cursor)
		if err != nil {
			break
		}
		m.startEdit(editRPE, fmt.Sprintf("%d", entry.RPE))
	case "n":
		entry, err := store.Entry(m.cursor)
		if err != nil {
			break
		}
		m.startEdit(editNotes, entry.Notes)
	case "s":
		m.saving = true
		m.saveFocus = 0
		m.saveErr = ""
		m.saveInputs[0].Focus()
		return m, textinput.Blink
	case "esc", "q":
		m.confirmCancel = true
	}

	return m, nil
}

// startEdit opens the inline editor pre-filled with the current value
func (m *SessionModel) startEdit(field editField, current string) {
	m.editing = field
	m.input.SetValue(current)
	m.input.CursorEnd()
	m.input.Focus()
	switch field {
	case editReps:
		m.input.Placeholder = "reps"
		m.input.CharLimit = 4
	case editWeight:
		m.input.Placeholder = "weight in kg, empty = bodyweight"
		m.input.CharLimit = 7
	case editRPE:
		m.input.Placeholder = "RPE 1-10"
		m.input.CharLimit = 2
	case editNotes:
		m.input.Placeholder = "notes"
		m.input.CharLimit = 200
	}
}

// updateEditing handles keys while the inline editor is open
func (m SessionModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = editNone
		m.input.Blur()
		return m, nil
	case "enter":
		m.commitEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitEdit applies the edited value to the store
func (m *SessionModel) commitEdit() {
	store := m.controller.Store()
	value := m.input.Value()

	switch m.editing {
	case editReps:
		err := store.UpdateSetReps(m.cursor, m.setCursor, value)
		var warn *session.ValidationWarning
		if errors.As(err, &warn) {
			m.notice = warn.Error()
		} else if err != nil {
			m.notice = err.Error()
		}
	case editWeight:
		weight, err := parser.ParseWeight(value)
		if err != nil {
			m.notice = err.Error()
		} else if err := store.UpdateWeight(m.cursor, weight); err != nil {
			m.notice = err.Error()
		}
	case editRPE:
		rpe, err := parser.ParseRPE(value)
		if err != nil {
			m.notice = err.Error()
		} else if err := store.UpdateRPE(m.cursor, rpe); err != nil {
			m.notice = err.Error()
		}
	case editNotes:
		if err := store.UpdateNotes(m.cursor, value); err != nil {
			m.notice = err.Error()
		}
	}

	m.editing = editNone
	m.input.Blur()
}

// updateSaveForm handles keys in the save form
func (m SessionModel) updateSaveForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Back to logging; the session stays in progress
		m.saving = false
		m.saveErr = ""
		m.saveInputs[m.saveFocus].Blur()
		return m, nil
	case "tab", "shift+tab":
		m.saveInputs[m.saveFocus].Blur()
		m.saveFocus = (m.saveFocus + 1) % len(m.saveInputs)
		m.saveInputs[m.saveFocus].Focus()
		return m, textinput.Blink
	case "enter":
		if m.saveFocus < len(m.saveInputs)-1 {
			m.saveInputs[m.saveFocus].Blur()
			m.saveFocus++
			m.saveInputs[m.saveFocus].Focus()
			return m, textinput.Blink
		}
		return m.submitSave()
	}

	var cmd tea.Cmd
	m.saveInputs[m.saveFocus], cmd = m.saveInputs[m.saveFocus].Update(msg)
	return m, cmd
}

// submitSave validates the form and hands the session to the persister. The
// save call is awaited in place; on failure the session (and its clock) stays
// in progress so the user can fix the problem and resubmit.
func (m SessionModel) submitSave() (tea.Model, tea.Cmd) {
	rpe, err := parser.ParseRPE(m.saveInputs[0].Value())
	if err != nil {
		m.saveErr = err.Error()
		m.saveInputs[m.saveFocus].Blur()
		m.saveFocus = 0
		m.saveInputs[0].Focus()
		return m, textinput.Blink
	}
	feedback := strings.TrimSpace(m.saveInputs[1].Value())

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Second)
	defer cancel()

	resp, err := m.controller.Save(ctx, rpe, feedback)
	if err != nil {
		m.saveErr = fmt.Sprintf("%v — session kept, press Enter to retry", err)
		return m, nil
	}

	m.saved = true
	m.savedResp = resp
	m.sessionRPE = rpe
	m.feedback = feedback
	return m, tea.Quit
}

// updateConfirmCancel handles the cancel confirmation modal
func (m SessionModel) updateConfirmCancel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.controller.Cancel(); err != nil {
			m.notice = err.Error()
			m.confirmCancel = false
			return m, nil
		}
		m.cancelled = true
		return m, tea.Quit
	case "n", "N", "esc":
		m.confirmCancel = false
	}
	return m, nil
}

func (m *SessionModel) clampSetCursor() {
	entry, err := m.controller.Store().Entry(m.cursor)
	if err != nil {
		m.setCursor = 0
		return
	}
	if m.setCursor >= entry.CompletedSets() {
		m.setCursor = entry.CompletedSets() - 1
	}
	if m.setCursor < 0 {
		m.setCursor = 0
	}
}

// View renders the session screen
func (m SessionModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.saving {
		b.WriteString(m.renderSaveForm())
	} else {
		b.WriteString(m.renderExercises())
	}

	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
		b.WriteString("\n" + noticeStyle.Render("⚠ "+m.notice))
	}

	if m.confirmCancel {
		b.WriteString("\n\n" + m.renderCancelModal())
	}

	b.WriteString("\n\n" + m.renderHelpBar())
	return b.String()
}

// renderHeader renders day focus, status and the live clock
func (m SessionModel) renderHeader() string {
	tpl := m.controller.Template()

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	title := titleStyle.Render(fmt.Sprintf("🏋  %s — %s", strings.ToUpper(tpl.Day), tpl.Focus))

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	clock := clockStyle.Render("⏱ " + formatClock(m.controller.Clock().Elapsed()))

	line := title + "   " + clock

	if rest := time.Until(m.restUntil); rest > 0 && m.controller.Status() == session.InProgress {
		restStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
		line += restStyle.Render(fmt.Sprintf("   rest %ds", int(rest.Seconds())+1))
	}
	return line
}

// renderExercises renders the exercise list with per-set reps
func (m SessionModel) renderExercises() string {
	store := m.controller.Store()
	var b strings.Builder

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	selectedNameStyle := nameStyle.Foreground(lipgloss.Color(ColorAccentBright))
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	setStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	selectedSetStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorCardBackground)).
		Background(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	for i, entry := range store.Entries() {
		marker := "  "
		name := nameStyle
		if i == m.cursor {
			marker = "▸ "
			name = selectedNameStyle
		}

		b.WriteString(marker + name.Render(entry.ExerciseName))
		b.WriteString(metaStyle.Render(fmt.Sprintf("  %d×%s @RPE%d · rest %ds",
			entry.TargetSets, entry.Prescribed, entry.TargetRPE, entry.RestSeconds)))
		b.WriteString("\n")

		// Sets line
		b.WriteString("    ")
		if entry.CompletedSets() == 0 {
			b.WriteString(emptyStyle.Render("no sets logged"))
		} else {
			for s, reps := range entry.ActualReps {
				style := setStyle
				if i == m.cursor && s == m.setCursor {
					style = selectedSetStyle
				}
				b.WriteString(style.Render(fmt.Sprintf(" %d ", reps)))
				b.WriteString(" ")
			}
			b.WriteString(metaStyle.Render(fmt.Sprintf(" %d/%d sets", entry.CompletedSets(), entry.TargetSets)))
		}
		b.WriteString("\n")

		// Details line
		details := fmt.Sprintf("    %s · RPE %d", formatWeightLabel(entry.WeightUsed), entry.RPE)
		if entry.Notes != "" {
			details += " · " + entry.Notes
		}
		b.WriteString(metaStyle.Render(details))
		b.WriteString("\n")

		// Inline editor under the selected exercise
		if i == m.cursor && m.editing != editNone {
			label := map[editField]string{
				editReps:   "reps",
				editWeight: "weight",
				editRPE:    "RPE",
				editNotes:  "notes",
			}[m.editing]
			b.WriteString(fmt.Sprintf("    %s: %s\n", label, m.input.View()))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderSaveForm renders the session RPE + feedback form
func (m SessionModel) renderSaveForm() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	completed := len(m.controller.Store().Completed())
	b.WriteString(headerStyle.Render("Save session"))
	b.WriteString(labelStyle.Render(fmt.Sprintf("  (%d exercise(s) with logged sets, %s elapsed)",
		completed, formatClock(m.controller.Clock().Elapsed()))))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("How hard was the whole session?") + "\n")
	b.WriteString(m.saveInputs[0].View() + "\n\n")
	b.WriteString(labelStyle.Render("Anything the trainer should know?") + "\n")
	b.WriteString(m.saveInputs[1].View() + "\n")

	if m.saveErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n" + errStyle.Render("✗ "+m.saveErr))
	}
	return b.String()
}

// renderCancelModal renders the discard confirmation
func (m SessionModel) renderCancelModal() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorError)).
		Padding(0, 2).
		Foreground(lipgloss.Color(ColorPrimaryText))
	return style.Render("Cancel workout? Logged sets will NOT be saved.  y / n")
}

// renderHelpBar renders the help bar at the bottom
func (m SessionModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)

	switch {
	case m.confirmCancel:
		return helpStyle.Render("y confirm cancel · n keep going")
	case m.saving:
		return helpStyle.Render("enter next/submit · tab switch field · esc back to logging")
	case m.editing != editNone:
		return helpStyle.Render("enter apply · esc discard")
	default:
		return helpStyle.Render("↑↓ exercise · ←→ set · a add set · d delete set · enter reps · w weight · r rpe · n notes · s save · esc cancel")
	}
}

// formatClock formats elapsed time as mm:ss, or h:mm:ss past the hour
func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func formatWeight(w float64) string {
	if w == 0 {
		return ""
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", w), "0"), ".")
}

func formatWeightLabel(w float64) string {
	if w == 0 {
		return "bodyweight"
	}
	return formatWeight(w) + " kg"
}
