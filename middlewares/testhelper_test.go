package middlewares_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/keelframework/keel/internal"
	"github.com/keelframework/keel/pkg/auth"
	"github.com/keelframework/keel/pkg/container"
)

// testContext is a minimal Context implementation for middleware tests.
type testContext struct {
	rw      *internal.ResponseWriter
	request *http.Request
	logger  *slog.Logger
	scope   *container.Container
	values  map[any]any
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		rw:      internal.NewResponseWriter(w),
		request: r,
		logger:  slog.New(slog.DiscardHandler),
		scope:   container.New().Child(),
		values:  make(map[any]any),
	}
}

func (c *testContext) Request() *http.Request        { return c.request }
func (c *testContext) Response() http.ResponseWriter { return c.rw }
func (c *testContext) Context() context.Context      { return c.request.Context() }
func (c *testContext) Deadline() (time.Time, bool)   { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}         { return c.request.Context().Done() }
func (c *testContext) Err() error                    { return c.request.Context().Err() }
func (c *testContext) Value(key any) any             { return c.request.Context().Value(key) }

func (c *testContext) Param(name string) string { return "" }
func (c *testContext) Query(name string) string { return c.request.URL.Query().Get(name) }
func (c *testContext) QueryDefault(name, defaultValue string) string {
	if v := c.request.URL.Query().Get(name); v != "" {
		return v
	}
	return defaultValue
}
func (c *testContext) Form(name string) string      { return c.request.FormValue(name) }
func (c *testContext) Header(name string) string    { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string) { c.rw.Header().Set(name, value) }

func (c *testContext) Cookie(name string) (string, error) {
	ck, err := c.request.Cookie(name)
	if err != nil {
		return "", err
	}
	return ck.Value, nil
}

func (c *testContext) SetCookie(name, value string, maxAge int) {
	http.SetCookie(c.rw, &http.Cookie{Name: name, Value: value, MaxAge: maxAge})
}

func (c *testContext) BindJSON(v any) error {
	return json.NewDecoder(c.request.Body).Decode(v)
}

func (c *testContext) BodyField(name string) (any, error) { return nil, nil }

func (c *testContext) JSON(code int, v any) error {
	c.rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.rw.WriteHeader(code)
	return json.NewEncoder(c.rw).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.rw.WriteHeader(code)
	_, err := c.rw.Write([]byte(s))
	return err
}

func (c *testContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *testContext) Redirect(code int, url string) error {
	http.Redirect(c.rw, c.request, url, code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	err := internal.NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *testContext) Written() bool                             { return c.rw.Written() }
func (c *testContext) ResponseWriter() *internal.ResponseWriter  { return c.rw }
func (c *testContext) Scope() *container.Container               { return c.scope }
func (c *testContext) Logger() *slog.Logger                      { return c.logger }
func (c *testContext) LogDebug(msg string, attrs ...any)         { c.logger.Debug(msg, attrs...) }
func (c *testContext) LogInfo(msg string, attrs ...any)          { c.logger.Info(msg, attrs...) }
func (c *testContext) LogWarn(msg string, attrs ...any)          { c.logger.Warn(msg, attrs...) }
func (c *testContext) LogError(msg string, attrs ...any)         { c.logger.Error(msg, attrs...) }

func (c *testContext) Principal() *auth.Principal {
	if p, ok := c.values[internal.PrincipalKey{}].(*auth.Principal); ok {
		return p
	}
	return auth.Anonymous()
}

func (c *testContext) Set(key, value any) {
	c.values[key] = value
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *testContext) Get(key any) any {
	return c.values[key]
}
