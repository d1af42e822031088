package sidechannel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/atelieranj/client-portal/internal/core/domain"
)

// SheetsClient posts signup and brief records to an external spreadsheet
// webhook (a deployed Apps Script web app in production). Sync is best
// effort: errors are reported to the dispatcher for logging, never to the
// workflow.
type SheetsClient struct {
	webhookURL string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewSheetsClient(webhookURL string, log zerolog.Logger) *SheetsClient {
	return &SheetsClient{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

type sheetRow struct {
	Type         string  `json:"type"`
	Timestamp    string  `json:"timestamp"`
	Name         string  `json:"name,omitempty"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	Role         string  `json:"role,omitempty"`
	ProjectTitle string  `json:"project_title,omitempty"`
	Location     string  `json:"location,omitempty"`
	ProjectType  string  `json:"project_type,omitempty"`
	Budget       float64 `json:"budget,omitempty"`
	Timeline     string  `json:"timeline,omitempty"`
	Requirements string  `json:"requirements,omitempty"`
}

// SyncSignup records a new client account.
func (c *SheetsClient) SyncSignup(ctx context.Context, user *domain.User) error {
	return c.post(ctx, sheetRow{
		Type:      "user",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
	})
}

// SyncBrief records a submitted project brief.
func (c *SheetsClient) SyncBrief(ctx context.Context, user *domain.User, form *domain.InitialForm) error {
	return c.post(ctx, sheetRow{
		Type:         "brief",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Email:        user.Email,
		ProjectTitle: form.ProjectTitle,
		Location:     form.ProjectLocation,
		ProjectType:  form.ProjectType,
		Budget:       form.Budget,
		Timeline:     form.Timeline,
		Requirements: form.Requirements,
	})
}

func (c *SheetsClient) post(ctx context.Context, row sheetRow) error {
	if c.webhookURL == "" {
		c.log.Debug().Str("type", row.Type).Msg("sheets webhook not configured, skipping sync")
		return nil
	}

	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("sheets sync: marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sheets sync: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets sync: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sheets sync: webhook returned %d", resp.StatusCode)
	}
	return nil
}
