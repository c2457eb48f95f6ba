// Package sched is the thin HTTP client to the scheduling backend. All
// schedule mutations happen here, on the far side of the routing decision;
// the classifier and extractor never call out.
package sched

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"schedbot/internal/domain"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

func (c *Client) ListAvailability(ctx context.Context, userID string) ([]domain.TimeSlot, error) {
	var out struct {
		Slots []domain.TimeSlot `json:"slots"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/users/"+userID+"/availability", nil, &out); err != nil {
		return nil, err
	}
	return out.Slots, nil
}

func (c *Client) AddSlots(ctx context.Context, userID string, slots []domain.TimeSlot) error {
	if len(slots) == 0 {
		return nil
	}
	payload := map[string]any{"slots": slots}
	return c.do(ctx, http.MethodPost, "/v1/users/"+userID+"/availability", payload, nil)
}

func (c *Client) DeleteSlots(ctx context.Context, userID string, crit domain.DeletionCriteria) error {
	payload := map[string]any{}
	if crit.HasDay() {
		payload["day"] = crit.Day
	}
	if crit.HasRange {
		payload["start_hour"] = crit.StartHour
		payload["end_hour"] = crit.EndHour
	}
	if len(payload) == 0 {
		return fmt.Errorf("refusing to delete without criteria")
	}
	return c.do(ctx, http.MethodPost, "/v1/users/"+userID+"/availability/delete", payload, nil)
}

func (c *Client) ClearAvailability(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/v1/users/"+userID+"/availability", nil, nil)
}

func (c *Client) CancelSession(ctx context.Context, userID string, crit domain.DeletionCriteria) error {
	payload := map[string]any{}
	if crit.HasDay() {
		payload["day"] = crit.Day
	}
	if crit.HasRange {
		payload["start_hour"] = crit.StartHour
		payload["end_hour"] = crit.EndHour
	}
	return c.do(ctx, http.MethodPost, "/v1/users/"+userID+"/sessions/cancel", payload, nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	if !c.Enabled() {
		return fmt.Errorf("scheduling backend is not configured")
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("scheduling backend status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
