package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/clanfrenzy/frenzybot/internal/domain"
	"github.com/clanfrenzy/frenzybot/internal/participant"
	"github.com/clanfrenzy/frenzybot/internal/submission"
)

// APIClient handles communication with the FrenzyBot Core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// TeamSnapshot mirrors the team endpoint payload.
type TeamSnapshot struct {
	Catalog     *domain.Catalog           `json:"catalog"`
	TotalPoints float64                   `json:"total_points"`
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, path)

	// Retry configuration
	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeData decodes a success envelope into out, or returns the API's error
// message for non-2xx responses.
func decodeData(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("API error: %s", apiErr.Error)
		}
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	envelope := struct {
		Data interface{} `json:"data"`
	}{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// RegisterParticipant registers or retrieves a participant
func (c *APIClient) RegisterParticipant(discordID, username, team string) (*domain.Participant, error) {
	req := map[string]string{
		"discord_id": discordID,
		"username":   username,
		"team":       team,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/participant/register", req)
	if err != nil {
		return nil, err
	}

	var p domain.Participant
	if err := decodeData(resp, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile fetches a participant profile with recent submissions
func (c *APIClient) GetProfile(participantID string, historyLimit int) (*participant.Profile, error) {
	path := fmt.Sprintf("/api/v1/participant/%s", url.PathEscape(participantID))
	if historyLimit > 0 {
		path = fmt.Sprintf("%s?history=%d", path, historyLimit)
	}

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var profile participant.Profile
	if err := decodeData(resp, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// AcceptSubmission credits a reviewed drop to the team and submitter
func (c *APIClient) AcceptSubmission(team, tier, source, item, discordID, username, reviewerID, screenshotURL string) (*submission.AcceptResult, error) {
	req := map[string]string{
		"team":           team,
		"tier":           tier,
		"source":         source,
		"item":           item,
		"discord_id":     discordID,
		"username":       username,
		"reviewer_id":    reviewerID,
		"screenshot_url": screenshotURL,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/submission/accept", req)
	if err != nil {
		return nil, err
	}

	var result submission.AcceptResult
	if err := decodeData(resp, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DenySubmission records a reviewer denial
func (c *APIClient) DenySubmission(team, tier, source, item, discordID, username, reviewerID string) error {
	req := map[string]string{
		"team":        team,
		"tier":        tier,
		"source":      source,
		"item":        item,
		"discord_id":  discordID,
		"username":    username,
		"reviewer_id": reviewerID,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/submission/deny", req)
	if err != nil {
		return err
	}
	return decodeData(resp, nil)
}

// GetTeam fetches the full team snapshot
func (c *APIClient) GetTeam(team string) (*TeamSnapshot, error) {
	resp, err := c.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/team/%s/", url.PathEscape(team)), nil)
	if err != nil {
		return nil, err
	}

	var snapshot TeamSnapshot
	if err := decodeData(resp, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetSourceMultipliers fetches the per-source effective factor report
func (c *APIClient) GetSourceMultipliers(team string) ([]domain.SourceFactor, error) {
	resp, err := c.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/team/%s/multipliers", url.PathEscape(team)), nil)
	if err != nil {
		return nil, err
	}

	var factors []domain.SourceFactor
	if err := decodeData(resp, &factors); err != nil {
		return nil, err
	}
	return factors, nil
}

// GetLeaderboard fetches the ranked participant list for a team
func (c *APIClient) GetLeaderboard(team string, limit int) ([]domain.LeaderboardEntry, error) {
	path := fmt.Sprintf("/api/v1/team/%s/leaderboard", url.PathEscape(team))
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}

	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var entries []domain.LeaderboardEntry
	if err := decodeData(resp, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListTiers fetches tier names for autocomplete
func (c *APIClient) ListTiers(team string) ([]string, error) {
	return c.listNames(fmt.Sprintf("/api/v1/catalog/%s/tiers", url.PathEscape(team)))
}

// ListSources fetches source names within a tier for autocomplete
func (c *APIClient) ListSources(team, tier string) ([]string, error) {
	return c.listNames(fmt.Sprintf("/api/v1/catalog/%s/tiers/%s/sources",
		url.PathEscape(team), url.PathEscape(tier)))
}

// ListItems fetches item names within a source for autocomplete
func (c *APIClient) ListItems(team, tier, source string) ([]string, error) {
	return c.listNames(fmt.Sprintf("/api/v1/catalog/%s/tiers/%s/sources/%s/items",
		url.PathEscape(team), url.PathEscape(tier), url.PathEscape(source)))
}

func (c *APIClient) listNames(path string) ([]string, error) {
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var names []string
	if err := decodeData(resp, &names); err != nil {
		return nil, err
	}
	return names, nil
}
