// Package remote is the gateway to the remote store. The store is a plain
// REST collaborator; local state stays authoritative and a failed call only
// means the remote is stale.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/devtrackhq/jobgrid/internal/dtos"
	"github.com/devtrackhq/jobgrid/internal/models"
)

// Calls get a bounded timeout; a hung request should release the UI rather
// than spin a busy indicator forever.
const requestTimeout = 15 * time.Second

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// FetchJobs pulls the full job collection. Failure or an empty store falls
// back to the demo dataset so the tracker is never empty on first load.
func (c *Client) FetchJobs(ctx context.Context) []models.JobApplication {
	var jobs []models.JobApplication
	if err := c.getJSON(ctx, "/api/jobs", &jobs); err != nil {
		log.Printf("fetch jobs failed, using demo data: %v", err)
		return models.DemoJobs()
	}
	if len(jobs) == 0 {
		return models.DemoJobs()
	}
	return jobs
}

// FetchPortals mirrors FetchJobs with the built-in portal list as fallback.
func (c *Client) FetchPortals(ctx context.Context) []models.JobPortal {
	var portals []models.JobPortal
	if err := c.getJSON(ctx, "/api/portals", &portals); err != nil {
		log.Printf("fetch portals failed, using defaults: %v", err)
		return models.DefaultPortals()
	}
	if len(portals) == 0 {
		return models.DefaultPortals()
	}
	return portals
}

// SyncJobs pushes the whole local collection (full-collection upsert, not a
// diff). Store-assigned bookkeeping ids are stripped before sending. Either
// the remote accepts the batch or the sync failed as a whole.
func (c *Client) SyncJobs(ctx context.Context, jobs []models.JobApplication) (string, error) {
	sanitized := make([]models.JobApplication, len(jobs))
	for i, job := range jobs {
		job.RemoteID = ""
		sanitized[i] = job
	}
	return c.postSync(ctx, "/api/jobs/sync", sanitized)
}

func (c *Client) SyncPortals(ctx context.Context, portals []models.JobPortal) (string, error) {
	sanitized := make([]models.JobPortal, len(portals))
	for i, portal := range portals {
		portal.RemoteID = ""
		sanitized[i] = portal
	}
	return c.postSync(ctx, "/api/portals/sync", sanitized)
}

// DeleteJob is the one targeted call; everything else moves the collection
// wholesale.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/jobs/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("delete job: %s", readError(resp.Body, resp.StatusCode))
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) postSync(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode sync payload: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("sync: %w", err)
	}
	defer resp.Body.Close()

	var sr dtos.SyncResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("sync: decode response: %w", err)
	}
	if resp.StatusCode >= 300 {
		if sr.Error != "" {
			return "", fmt.Errorf("sync: %s", sr.Error)
		}
		return "", fmt.Errorf("sync: HTTP %d", resp.StatusCode)
	}
	return sr.Message, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func readError(r io.Reader, status int) string {
	var sr dtos.SyncResponse
	if err := json.NewDecoder(r).Decode(&sr); err == nil && sr.Error != "" {
		return sr.Error
	}
	return fmt.Sprintf("HTTP %d", status)
}
