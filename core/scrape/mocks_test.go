// ABOUTME: Shared test doubles for the scrape package
// ABOUTME: Hand-rolled mocks with function fields for per-test behavior

package scrape

import (
	"context"
	"io"
	"strings"
	"time"

	"anoncast-api/core/interfaces"
)

type mockHTTPClient struct {
	GetFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, url)
	}
	return nil, nil
}

type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return m.headers[key]
}

type mockCache struct {
	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error

	setCalls []string
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.setCalls = append(m.setCalls, key)
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type mockRenderBackend struct {
	NewSessionFunc func(ctx context.Context) (interfaces.BrowserSession, error)

	sessionCalls int
}

func (m *mockRenderBackend) NewSession(ctx context.Context) (interfaces.BrowserSession, error) {
	m.sessionCalls++
	if m.NewSessionFunc != nil {
		return m.NewSessionFunc(ctx)
	}
	return &mockBrowserSession{}, nil
}

type mockBrowserSession struct {
	NavigateFunc     func(ctx context.Context, url string, opts interfaces.NavigateOptions) error
	HTMLFunc         func(ctx context.Context) (string, error)
	ExtractTextFunc  func(ctx context.Context) (string, error)
	ExtractImageFunc func(ctx context.Context) (string, error)

	navigatedURLs []string
	closed        bool
}

func (m *mockBrowserSession) Navigate(ctx context.Context, url string, opts interfaces.NavigateOptions) error {
	m.navigatedURLs = append(m.navigatedURLs, url)
	if m.NavigateFunc != nil {
		return m.NavigateFunc(ctx, url, opts)
	}
	return nil
}

func (m *mockBrowserSession) HTML(ctx context.Context) (string, error) {
	if m.HTMLFunc != nil {
		return m.HTMLFunc(ctx)
	}
	return "", nil
}

func (m *mockBrowserSession) ExtractText(ctx context.Context) (string, error) {
	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx)
	}
	return "", nil
}

func (m *mockBrowserSession) ExtractImage(ctx context.Context) (string, error) {
	if m.ExtractImageFunc != nil {
		return m.ExtractImageFunc(ctx)
	}
	return "", nil
}

func (m *mockBrowserSession) Close() error {
	m.closed = true
	return nil
}

func testDeps(client interfaces.HTTPClient, cache interfaces.Cache) interfaces.Dependencies {
	return interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: client,
		Logger:     &mockLogger{},
	}
}

func staticClient(statusCode int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		GetFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: statusCode, body: body}, nil
		},
	}
}
