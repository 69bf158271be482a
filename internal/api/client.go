package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/nbekzhan/liftlog/internal/models"
)

// Client talks to the LLM Workout Trainer backend over HTTP. All requests
// carry the bearer token obtained from Login. The SaveLog call is submitted
// exactly once per invocation: there is no automatic retry, a failed save is
// retried by the user resubmitting the still-open session.
type Client struct {
	serverURL  string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a client for the trainer backend at serverURL
func NewClient(serverURL, token string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		serverURL: serverURL,
		token:     token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// Login exchanges a user id for a bearer token. The token is not stored on
// the client; callers decide where it lives.
func (c *Client) Login(ctx context.Context, userID string) (models.TokenResponse, error) {
	var token models.TokenResponse
	err := c.post(ctx, "/api/auth/login", models.LoginRequest{UserID: userID}, &token)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login: %w", err)
	}
	return token, nil
}

// CurrentPlan fetches the user's plan for the current week
func (c *Client) CurrentPlan(ctx context.Context, userID string) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := c.get(ctx, "/api/plans/user/"+userID+"/current", &plan); err != nil {
		return nil, fmt.Errorf("fetching current plan: %w", err)
	}
	return &plan, nil
}

// Plan fetches a plan by id
func (c *Client) Plan(ctx context.Context, planID string) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := c.get(ctx, "/api/plans/"+planID, &plan); err != nil {
		return nil, fmt.Errorf("fetching plan %s: %w", planID, err)
	}
	return &plan, nil
}

// GeneratePlan asks the trainer service to generate a plan for the week
func (c *Client) GeneratePlan(ctx context.Context, weekNumber int) (models.PlanGenerationResponse, error) {
	var resp models.PlanGenerationResponse
	err := c.post(ctx, "/api/plans/generate", models.PlanGenerationRequest{WeekNumber: weekNumber}, &resp)
	if err != nil {
		return models.PlanGenerationResponse{}, fmt.Errorf("generating plan: %w", err)
	}
	return resp, nil
}

// SaveLog submits a finalized workout log. Implements session.Persister.
func (c *Client) SaveLog(ctx context.Context, log models.WorkoutLogCreate) (models.LogResponse, error) {
	var resp models.LogResponse
	if err := c.post(ctx, "/api/logs", log, &resp); err != nil {
		return models.LogResponse{}, fmt.Errorf("saving workout log: %w", err)
	}
	c.log.Info("workout log saved", "log_id", resp.LogID, "plan_id", log.PlanID, "day", log.Day)
	return resp, nil
}

// WeekLogs fetches all of a user's logs for one week
func (c *Client) WeekLogs(ctx context.Context, userID string, weekNumber int) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	path := fmt.Sprintf("/api/logs/user/%s/week/%d", userID, weekNumber)
	if err := c.get(ctx, path, &logs); err != nil {
		return nil, fmt.Errorf("fetching week %d logs: %w", weekNumber, err)
	}
	return logs, nil
}

// SubmitFeedback sends free-text weekly feedback to the trainer service
func (c *Client) SubmitFeedback(ctx context.Context, feedback models.FeedbackCreate) (models.FeedbackResponse, error) {
	var resp models.FeedbackResponse
	if err := c.post(ctx, "/api/feedback", feedback, &resp); err != nil {
		return models.FeedbackResponse{}, fmt.Errorf("submitting feedback: %w", err)
	}
	return resp, nil
}

// ExportCalendar downloads a plan's ICS calendar into destPath
func (c *Client) ExportCalendar(ctx context.Context, planID, destPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/export/calendar/"+planID, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("exporting calendar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	c.authorize(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", req.Method, "path", req.URL.Path, "error", err)
		return err
	}
	defer resp.Body.Close()
	c.log.Debug("request done", "method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	// FastAPI error bodies look like {"detail": "..."}
	var apiErr struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Detail != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Detail)
	}
	return fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
}
