package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Client talks to the EngiSimulation REST API on behalf of the wizard.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		token:   token,
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// Login exchanges credentials for a session token and stores it on the client.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

// UploadFile posts one file as multipart form data and returns its public URL.
func (c *Client) UploadFile(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/upload", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out struct {
		URL string `json:"url"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// ProjectDraft is the JSON body for project registration.
type ProjectDraft struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	SoftwareType string   `json:"software_type"`
	Tags         []string `json:"tags,omitempty"`
	FileURL      string   `json:"file_url"`
	Screenshots  []string `json:"screenshots,omitempty"`
	YoutubeURL   string   `json:"youtube_url,omitempty"`
}

// CreatedProject is the subset of the project record the wizard cares about.
type CreatedProject struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	FileURL string   `json:"file_url"`
	Shots   []string `json:"screenshots"`
}

// CreateProject registers the project record once all assets are uploaded.
func (c *Client) CreateProject(ctx context.Context, draft ProjectDraft) (*CreatedProject, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/projects", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var out CreatedProject
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do executes the request with auth attached and decodes either the payload
// or the server's error envelope.
func (c *Client) do(req *http.Request, out interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Message != "" {
			return fmt.Errorf("%s", envelope.Message)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
