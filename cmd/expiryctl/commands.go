package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// statusPayload mirrors the daemon's status response body.
type statusPayload struct {
	Text        string `json:"text"`
	AlertActive bool   `json:"alert_active"`
	Source      string `json:"source"`
	State       string `json:"state"`
	CheckedAt   string `json:"checked_at"`
}

// apiClient talks to the daemon's local REST API.
type apiClient struct {
	addr string
	http *http.Client
}

// StatusCmd prints the current status.
type StatusCmd struct {
	JSON bool `help:"Emit the raw JSON response."`
}

// Run fetches and prints the daemon's current status.
func (c *StatusCmd) Run(client *apiClient) error {
	return client.printStatus(http.MethodGet, "/api/v1/status", c.JSON)
}

// RefreshCmd forces an immediate poll.
type RefreshCmd struct {
	JSON bool `help:"Emit the raw JSON response."`
}

// Run triggers a poll and prints the refreshed status.
func (c *RefreshCmd) Run(client *apiClient) error {
	return client.printStatus(http.MethodPost, "/api/v1/refresh", c.JSON)
}

func (c *apiClient) printStatus(method, path string, rawJSON bool) error {
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", c.addr, path), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("is expiryd running at %s? %w", c.addr, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("daemon returned %s: %s", resp.Status, body)
	}

	if rawJSON {
		_, err := fmt.Fprintln(os.Stdout, string(body))
		return err
	}

	var status statusPayload
	if err := json.Unmarshal(body, &status); err != nil {
		return fmt.Errorf("decoding daemon response: %w", err)
	}

	fmt.Println(status.Text)
	fmt.Printf("alert:   %v\n", status.AlertActive)
	fmt.Printf("source:  %s\n", status.Source)
	fmt.Printf("state:   %s\n", status.State)
	if status.CheckedAt != "" {
		fmt.Printf("checked: %s\n", status.CheckedAt)
	}
	return nil
}
