package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nbekzhan/liftlog/internal/parser"
	"github.com/nbekzhan/liftlog/internal/session"
	"github.com/nbekzhan/liftlog/internal/tui"
)

// runPlainSession logs a workout without the TUI, one prompt per line:
// reps for each exercise, then weight/RPE/notes, then the session summary.
// EOF at any prompt cancels the session; a failed save offers a retry
// before the session is torn down.
func runPlainSession(controller *session.Controller, in io.Reader, out io.Writer) (*tui.SessionResult, error) {
	if err := controller.Start(); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(in)
	readLine := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}
	cancelled := func() *tui.SessionResult {
		controller.Cancel()
		fmt.Fprintln(out)
		return &tui.SessionResult{Cancelled: true, SessionID: controller.ID()}
	}

	tpl := controller.Template()
	store := controller.Store()
	fmt.Fprintf(out, "🏋  %s — %s (%d exercise(s))\n", strings.ToUpper(tpl.Day), tpl.Focus, store.Len())
	fmt.Fprintf(out, "Started at %s\n\n", controller.Clock().StartedAt().Format("15:04:05"))

	for i := 0; i < store.Len(); i++ {
		entry, err := store.Entry(i)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "%s  %d×%s @RPE%d · rest %ds\n",
			entry.ExerciseName, entry.TargetSets, entry.Prescribed, entry.TargetRPE, entry.RestSeconds)

		reps, ok := readLine("  Reps per set (space-separated, Enter to skip): ")
		if !ok {
			return cancelled(), nil
		}
		if reps == "" {
			fmt.Fprintln(out)
			continue
		}
		for s, token := range strings.Fields(reps) {
			if err := store.AddSet(i); err != nil {
				return nil, err
			}
			err := store.UpdateSetReps(i, s, token)
			var warn *session.ValidationWarning
			if errors.As(err, &warn) {
				fmt.Fprintf(out, "  ⚠ %v\n", warn)
			} else if err != nil {
				return nil, err
			}
		}

		line, ok := readLine("  Weight kg (Enter = bodyweight): ")
		if !ok {
			return cancelled(), nil
		}
		if line != "" {
			weight, err := parser.ParseWeight(line)
			if err != nil {
				fmt.Fprintf(out, "  ⚠ %v, using bodyweight\n", err)
			} else if err := store.UpdateWeight(i, weight); err != nil {
				return nil, err
			}
		}

		line, ok = readLine(fmt.Sprintf("  RPE 1-10 (Enter = %d): ", entry.TargetRPE))
		if !ok {
			return cancelled(), nil
		}
		if line != "" {
			rpe, err := parser.ParseRPE(line)
			if err != nil {
				fmt.Fprintf(out, "  ⚠ %v, keeping %d\n", err, entry.TargetRPE)
			} else if err := store.UpdateRPE(i, rpe); err != nil {
				return nil, err
			}
		}

		line, ok = readLine("  Notes (Enter to skip): ")
		if !ok {
			return cancelled(), nil
		}
		if line != "" {
			if err := store.UpdateNotes(i, line); err != nil {
				return nil, err
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "⏱ %d min elapsed\n", controller.Clock().ElapsedSeconds()/60)

	var sessionRPE int
	for {
		line, ok := readLine("Session RPE 1-10: ")
		if !ok {
			return cancelled(), nil
		}
		rpe, err := parser.ParseRPE(line)
		if err != nil {
			fmt.Fprintf(out, "⚠ %v\n", err)
			continue
		}
		sessionRPE = rpe
		break
	}

	feedback, ok := readLine("General feedback (Enter to skip): ")
	if !ok {
		return cancelled(), nil
	}

	for {
		resp, err := controller.Save(context.Background(), sessionRPE, feedback)
		if err == nil {
			return &tui.SessionResult{
				Saved:      true,
				Response:   resp,
				Payload:    controller.Payload(sessionRPE, feedback),
				SessionRPE: sessionRPE,
				SessionID:  controller.ID(),
			}, nil
		}

		fmt.Fprintf(out, "✗ %v\n", err)
		line, ok := readLine("Retry save? (y/N): ")
		if !ok || !strings.EqualFold(line, "y") {
			return cancelled(), nil
		}
	}
}
