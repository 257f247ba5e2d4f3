package blogsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a small HTTP client for the blog publishing API. The zero token
// makes anonymous requests; WithToken returns an authenticated view.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	accessToken string
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithToken returns a copy of the client that sends the given bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.accessToken = token
	return &clone
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var out RegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/register", req, http.StatusCreated, &out)
	return out, err
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	var out TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, http.StatusOK, &out)
	return out, err
}

// ListArticles returns the articles visible to the caller, newest first.
func (c *Client) ListArticles(ctx context.Context) ([]ArticleResponse, error) {
	var out []ArticleResponse
	err := c.doJSON(ctx, http.MethodGet, "/article", nil, http.StatusOK, &out)
	return out, err
}

// GetArticle fetches one article by id.
func (c *Client) GetArticle(ctx context.Context, id string) (ArticleResponse, error) {
	var out ArticleResponse
	err := c.doJSON(ctx, http.MethodGet, "/article/"+id, nil, http.StatusOK, &out)
	return out, err
}

// CreateArticle creates a new article owned by the authenticated caller.
func (c *Client) CreateArticle(ctx context.Context, req CreateArticleRequest) (ArticleResponse, error) {
	var out ArticleResponse
	err := c.doJSON(ctx, http.MethodPost, "/article", req, http.StatusCreated, &out)
	return out, err
}

// UpdateArticle updates an article the caller owns.
func (c *Client) UpdateArticle(ctx context.Context, id string, req UpdateArticleRequest) (ArticleResponse, error) {
	var out ArticleResponse
	err := c.doJSON(ctx, http.MethodPut, "/article/"+id, req, http.StatusOK, &out)
	return out, err
}

// doJSON performs a request with an optional JSON body and decodes the
// response into target when the expected status is returned. Any other
// status is turned into an *APIError.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	body any,
	expectedStatus int,
	target any,
) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
