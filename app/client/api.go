package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/jobboard/app/domain"
)

// maxResponseSize limits the body read from the server
const maxResponseSize = 4 * 1024 * 1024

// APIError is a non-2xx response of the board server
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server responded with %d: %s", e.Status, e.Message)
}

// API is a typed client of the board http api
type API struct {
	baseURL string
	client  *http.Client
}

// NewAPI makes API client for the server at baseURL. With nil client a default one with 10s timeout is used.
func NewAPI(baseURL string, client *http.Client) *API {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &API{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

// ListJobs returns all jobs
func (a *API) ListJobs(ctx context.Context) ([]domain.Job, error) {
	var res []domain.Job
	if err := a.do(ctx, http.MethodGet, "/jobs", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// CreateJob creates a job and returns its id
func (a *API) CreateJob(ctx context.Context, job domain.NewJob) (int64, error) {
	var res struct {
		ID int64 `json:"id"`
	}
	if err := a.do(ctx, http.MethodPost, "/jobs", job, &res); err != nil {
		return 0, err
	}
	return res.ID, nil
}

// SeedJobs inserts jobs if the board is empty and returns the resulting job list
func (a *API) SeedJobs(ctx context.Context, jobs []domain.NewJob) (domain.SeedResult, error) {
	var res domain.SeedResult
	if err := a.do(ctx, http.MethodPost, "/jobs/seed", jobs, &res); err != nil {
		return domain.SeedResult{}, err
	}
	return res, nil
}

// Apply submits an application and returns its id
func (a *API) Apply(ctx context.Context, app domain.NewApplication) (int64, error) {
	var res struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	if err := a.do(ctx, http.MethodPost, "/apply", app, &res); err != nil {
		return 0, err
	}
	if !res.Success {
		return 0, fmt.Errorf("application for job %d not accepted", app.JobID)
	}
	return res.ID, nil
}

// ListApplications returns applications of a job
func (a *API) ListApplications(ctx context.Context, jobID int64) ([]domain.Application, error) {
	var res []domain.Application
	if err := a.do(ctx, http.MethodGet, "/applications/"+strconv.FormatInt(jobID, 10), nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// SendMessage stores a message and returns its id
func (a *API) SendMessage(ctx context.Context, msg domain.NewMessage) (int64, error) {
	var res struct {
		ID int64 `json:"id"`
	}
	if err := a.do(ctx, http.MethodPost, "/messages", msg, &res); err != nil {
		return 0, err
	}
	return res.ID, nil
}

// ListMessages returns messages of a job involving userEmail, oldest first.
// Non-empty with limits the result to messages exchanged between userEmail and with.
func (a *API) ListMessages(ctx context.Context, jobID int64, userEmail, with string) ([]domain.Message, error) {
	path := "/messages/" + strconv.FormatInt(jobID, 10) + "/" + url.PathEscape(userEmail)
	if with != "" {
		path += "?with=" + url.QueryEscape(with)
	}
	var res []domain.Message
	if err := a.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// do makes a request with optional JSON body and decodes JSON response into res
func (a *API) do(ctx context.Context, method, path string, body, res any) error {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to %s %s: %w", method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("[WARN] failed to close response body: %v", closeErr)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(data))}
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &errResp) == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(data, res); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
	}
	return nil
}
