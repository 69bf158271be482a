package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nbekzhan/liftlog/internal/models"
	"github.com/nbekzhan/liftlog/internal/session"
)

// SessionResult reports how an interactive session ended
type SessionResult struct {
	Saved     bool
	Cancelled bool
	SessionID string

	// Set when Saved
	Response   models.LogResponse
	Payload    models.WorkoutLogCreate
	SessionRPE int
}

// RunSessionTUI starts the session on the given controller and runs the
// interactive logging screen until the user saves or cancels.
func RunSessionTUI(controller *session.Controller) (*SessionResult, error) {
	if err := controller.Start(); err != nil {
		return nil, err
	}

	model := NewSessionModel(controller)
	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		// The program died mid-session; make sure the clock does not
		// outlive the view.
		if controller.Status() == session.InProgress {
			controller.Cancel()
		}
		return nil, err
	}

	m, ok := finalModel.(SessionModel)
	if !ok {
		return nil, fmt.Errorf("unexpected final model type %T", finalModel)
	}

	result := &SessionResult{
		Saved:     m.saved,
		Cancelled: m.cancelled,
		SessionID: controller.ID(),
	}
	if m.saved {
		result.Response = m.savedResp
		result.Payload = controller.Payload(m.sessionRPE, m.feedback)
		result.SessionRPE = m.sessionRPE
	}

	// A plain quit without saving or cancelling still tears the session down
	if !m.saved && !m.cancelled && controller.Status() == session.InProgress {
		controller.Cancel()
		result.Cancelled = true
	}

	return result, nil
}
