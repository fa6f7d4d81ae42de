package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
)

const (
	// DefaultBaseURL は公開されている people-data source です。
	DefaultBaseURL = "https://dummyjson.com"

	usersPath        = "/users"
	requestIDHeader  = "X-Request-ID"
	maxErrorBodySize = 512
)

// Client は dummyjson 互換 API からユーザー一覧を取得する employee.Source の実装です。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient は Client を生成します。timeout が 0 の場合は http.Client の既定値 (無制限) に従います。
func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP は任意の http.Client を利用する Client を生成します。
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type usersResponse struct {
	Users *[]employee.RawUser `json:"users"`
}

// FetchUsers は先頭から limit 件のユーザーを取得します。
func (c *Client) FetchUsers(ctx context.Context, limit int) ([]employee.RawUser, error) {
	endpoint, err := c.usersURL(limit)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dummyjson: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", employee.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &employee.UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	var body usersResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("dummyjson: decode users: %w", err)
	}
	if body.Users == nil {
		return nil, fmt.Errorf("dummyjson: decode users: missing users")
	}
	return *body.Users, nil
}

func (c *Client) usersURL(limit int) (string, error) {
	u, err := url.Parse(c.baseURL + usersPath)
	if err != nil {
		return "", fmt.Errorf("dummyjson: parse base url: %w", err)
	}
	if limit > 0 {
		q := u.Query()
		q.Set("limit", strconv.Itoa(limit))
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
