// Package client implements the HTTP client side of the catalog
// contract: bounded-timeout requests, envelope decoding, and the fixed
// delay startup retry loop.
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
	"time"

	"filmbox/internal/api"
	"filmbox/internal/catalog"
	"filmbox/internal/config"
)

// Client talks to the catalog service.
type Client struct {
	base       *url.URL
	http       *http.Client
	searchMode string
}

// New constructs a client from the client configuration section.
func New(cfg config.Client) (*Client, error) {
	base, err := url.Parse(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		base:       base,
		http:       &http.Client{Timeout: timeout},
		searchMode: cfg.SearchMode,
	}, nil
}

// List fetches the full record list.
func (c *Client) List(ctx context.Context) ([]catalog.Record, error) {
	reply, err := c.do(ctx, http.MethodGet, "/api/media", nil, nil)
	if err != nil {
		return nil, err
	}
	return reply.Records()
}

// ByCategory fetches records in the given category. "All" and the empty
// string fall back to the unfiltered list.
func (c *Client) ByCategory(ctx context.Context, category string) ([]catalog.Record, error) {
	if category == "" || category == "All" {
		return c.List(ctx)
	}
	reply, err := c.do(ctx, http.MethodGet, "/api/media/category/"+url.PathEscape(category), nil, nil)
	if err != nil {
		return nil, err
	}
	return reply.Records()
}

// Search runs the configured search mode: substring match over name and
// director, or exact name match.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Record, error) {
	values := url.Values{}
	if c.searchMode == config.SearchModeExact {
		values.Set("name", query)
	} else {
		values.Set("search", query)
	}
	reply, err := c.do(ctx, http.MethodGet, "/api/media/search", values, nil)
	if err != nil {
		return nil, err
	}
	return reply.Records()
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, id int64) (*catalog.Record, error) {
	reply, err := c.do(ctx, http.MethodGet, "/api/media/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return nil, err
	}
	return reply.Record()
}

// Create submits a new record and returns it with the service-assigned
// id and creation timestamp.
func (c *Client) Create(ctx context.Context, draft catalog.Draft) (*catalog.Record, error) {
	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	reply, err := c.do(ctx, http.MethodPost, "/api/films", nil, body)
	if err != nil {
		return nil, err
	}
	return reply.Record()
}

// Delete removes a record by id and returns the deleted record.
func (c *Client) Delete(ctx context.Context, id string) (*catalog.Record, error) {
	reply, err := c.do(ctx, http.MethodDelete, "/api/films/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return reply.DeletedMedia, nil
}

func (c *Client) do(ctx context.Context, method, path string, values url.Values, body []byte) (*api.Reply, error) {
	endpoint := c.base.ResolveReference(&url.URL{Path: path})
	if values != nil {
		endpoint.RawQuery = values.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	var reply api.Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !reply.Success {
		message := reply.Error
		if message == "" {
			message = fmt.Sprintf("server returned status %d", resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: message}
	}
	return &reply, nil
}
