package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Result struct {
	Name   string
	Status string // PASS / FAIL / SKIP
	Detail string
}

type Runner struct {
	cfg    Config
	client *http.Client
}

func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg, client: &http.Client{Timeout: 2 * time.Minute}}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	cases := []struct {
		name string
		live bool
		run  func(ctx context.Context) error
	}{
		{"health", false, r.checkHealth},
		{"root banner", false, r.checkRoot},
		{"chat rejects empty message", false, r.checkChatValidation},
		{"plan-trip rejects missing fields", false, r.checkPlanMissingFields},
		{"plan-trip rejects bad date order", false, r.checkPlanDateOrder},
		{"chat live reply", true, r.checkChatLive},
		{"plan-trip live itinerary", true, r.checkPlanLive},
	}

	var results []Result
	for _, c := range cases {
		if c.live && !r.cfg.Live {
			fmt.Printf("SKIP  %s (live model disabled)\n", c.name)
			results = append(results, Result{Name: c.name, Status: "SKIP"})
			continue
		}
		err := c.run(ctx)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", c.name, err)
			results = append(results, Result{Name: c.name, Status: "FAIL", Detail: err.Error()})
			continue
		}
		fmt.Printf("PASS  %s\n", c.name)
		results = append(results, Result{Name: c.name, Status: "PASS"})
	}
	return results
}

func (r *Runner) postJSON(ctx context.Context, path string, body any) (int, map[string]any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decode body: %w", err)
	}
	return resp.StatusCode, decoded, nil
}

func (r *Runner) getJSON(ctx context.Context, path string) (int, map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+path, nil)
	if err != nil {
		return 0, nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decode body: %w", err)
	}
	return resp.StatusCode, decoded, nil
}

func (r *Runner) checkHealth(ctx context.Context) error {
	code, body, err := r.getJSON(ctx, "/health")
	if err != nil {
		return err
	}
	if code != http.StatusOK || body["status"] != "healthy" {
		return fmt.Errorf("status=%d body=%v", code, body)
	}
	return nil
}

func (r *Runner) checkRoot(ctx context.Context) error {
	code, body, err := r.getJSON(ctx, "/")
	if err != nil {
		return err
	}
	if code != http.StatusOK || body["status"] != "running" {
		return fmt.Errorf("status=%d body=%v", code, body)
	}
	return nil
}

func (r *Runner) checkChatValidation(ctx context.Context) error {
	code, body, err := r.postJSON(ctx, "/api/chat", map[string]any{"tripId": "bench"})
	if err != nil {
		return err
	}
	if code != http.StatusBadRequest || body["success"] != false {
		return fmt.Errorf("status=%d body=%v", code, body)
	}
	return nil
}

func (r *Runner) checkPlanMissingFields(ctx context.Context) error {
	code, body, err := r.postJSON(ctx, "/api/plan-trip", map[string]any{"destination": "Goa"})
	if err != nil {
		return err
	}
	if code != http.StatusBadRequest || body["error"] != "Missing required fields" {
		return fmt.Errorf("status=%d body=%v", code, body)
	}
	return nil
}

func (r *Runner) checkPlanDateOrder(ctx context.Context) error {
	code, body, err := r.postJSON(ctx, "/api/plan-trip", map[string]any{
		"destination": "Goa",
		"startDate":   "2025-06-04",
		"endDate":     "2025-06-01",
		"budget":      40000,
		"travelers":   1,
		"mood":        "relaxed",
	})
	if err != nil {
		return err
	}
	if code != http.StatusBadRequest || body["error"] != "End date must be after start date" {
		return fmt.Errorf("status=%d body=%v", code, body)
	}
	return nil
}

func (r *Runner) checkChatLive(ctx context.Context) error {
	code, body, err := r.postJSON(ctx, "/api/chat", map[string]any{
		"message": "Suggest one destination in India for a long weekend.",
	})
	if err != nil {
		return err
	}
	// Model output is non-deterministic: assert shape, not text.
	msg, _ := body["message"].(string)
	if code != http.StatusOK || body["success"] != true || strings.TrimSpace(msg) == "" {
		return fmt.Errorf("status=%d body=%v", code, body)
	}
	return nil
}

func (r *Runner) checkPlanLive(ctx context.Context) error {
	code, body, err := r.postJSON(ctx, "/api/plan-trip", map[string]any{
		"destination": "Jaipur",
		"startDate":   "2025-11-10",
		"endDate":     "2025-11-12",
		"budget":      40000,
		"travelers":   2,
		"mood":        "adventure",
	})
	if err != nil {
		return err
	}
	if code != http.StatusOK || body["success"] != true {
		return fmt.Errorf("status=%d body=%v", code, body)
	}
	itin, ok := body["itinerary"].(map[string]any)
	if !ok {
		return fmt.Errorf("no itinerary in body: %v", body)
	}
	days, ok := itin["days"].([]any)
	if !ok || len(days) == 0 {
		return fmt.Errorf("itinerary has no days: %v", itin)
	}
	return nil
}
