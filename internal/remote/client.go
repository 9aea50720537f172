package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"context"

	"go.uber.org/zap"

	"github.com/jotlabs/jot/internal/note"
)

const notesPath = "/v1/api/notes"

// Client implements Store against the note service's JSON API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.SugaredLogger
}

func NewClient(baseURL, token string, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     log,
	}
}

// Create writes a new note and returns the identifier the store assigned.
func (c *Client) Create(ctx context.Context, fields note.Fields) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, notesPath, fields)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("failed to create note, status code: %d", resp.StatusCode)
	}

	var respData struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		return "", fmt.Errorf("failed to decode create response: %w", err)
	}
	if respData.ID == "" {
		return "", fmt.Errorf("create response carried no id")
	}

	return respData.ID, nil
}

// Update writes a sparse field set for an existing note.
func (c *Client) Update(ctx context.Context, id string, fields note.Fields) error {
	resp, err := c.do(ctx, http.MethodPatch, notesPath+"/"+url.PathEscape(id), fields)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to update note %s, status code: %d", id, resp.StatusCode)
	}

	return nil
}

// Delete removes a note.
func (c *Client) Delete(ctx context.Context, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, notesPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("failed to delete note %s, status code: %d", id, resp.StatusCode)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload to JSON: %w", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorf("request %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}
