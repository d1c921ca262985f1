package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Usage: go run ./scripts [base-url] [chat-id]
func main() {
	baseURL := "http://localhost:8000"
	chatID := "100000001"
	if len(os.Args) > 1 {
		baseURL = strings.TrimRight(os.Args[1], "/")
	}
	if len(os.Args) > 2 {
		chatID = os.Args[2]
	}

	client := &http.Client{Timeout: 10 * time.Second}
	color.Cyan("Smoke testing %s as chat %s\n", baseURL, chatID)

	checks := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"Liveness", http.MethodGet, "/", ""},
		{"Health", http.MethodGet, "/health", ""},
		{"Worker type", http.MethodGet, "/api/telegram/worker-type/" + chatID, ""},
		{"Hours (today)", http.MethodGet, "/api/telegram/hours/" + chatID + "?period=today", ""},
		{"Hours (week)", http.MethodGet, "/api/telegram/hours/" + chatID, ""},
		{"Payments", http.MethodGet, "/api/telegram/payments/" + chatID, ""},
		{"Quotes", http.MethodGet, "/api/telegram/subcontractor/quotes/" + chatID, ""},
		{"Milestones", http.MethodGet, "/api/telegram/subcontractor/milestones/" + chatID, ""},
		{"Payment status", http.MethodGet, "/api/telegram/subcontractor/payment-status/" + chatID, ""},
		{"Save message", http.MethodPost, "/api/telegram/conversation-history", fmt.Sprintf(`{"telegram_id": %s, "role": "user", "message": "smoke test"}`, chatID)},
		{"History", http.MethodGet, "/api/telegram/conversation-history/" + chatID + "?limit=5", ""},
	}

	failed := 0
	for i, c := range checks {
		color.Yellow("\n%d. %s (%s %s)", i+1, c.name, c.method, c.path)

		var body io.Reader
		if c.body != "" {
			body = strings.NewReader(c.body)
		}
		req, err := http.NewRequest(c.method, baseURL+c.path, body)
		if err != nil {
			color.Red("Failed: %v", err)
			failed++
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			color.Red("Failed: %v", err)
			failed++
			continue
		}
		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 400 {
			color.Red("Status: %s", resp.Status)
			failed++
		} else {
			color.Green("Status: %s", resp.Status)
		}
		prettyPrint(raw)
	}

	if failed > 0 {
		color.Red("\n%d of %d checks failed", failed, len(checks))
		os.Exit(1)
	}
	color.Green("\nAll %d checks passed", len(checks))
}

func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
