package keel

import (
	"context"
	"log/slog"
	"time"

	"github.com/keelframework/keel/internal"
	"github.com/keelframework/keel/pkg/auth"
	"github.com/keelframework/keel/pkg/container"
	"github.com/keelframework/keel/pkg/health"
	"github.com/keelframework/keel/pkg/logger"
	"github.com/keelframework/keel/pkg/routing"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It builds routes from the metadata registry, manages middleware
	// and the container hierarchy, and drives graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// HTTPError represents an HTTP error with all data needed for rendering.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// ResponseWriter wraps http.ResponseWriter with write tracking.
	ResponseWriter = internal.ResponseWriter

	// ContextExtractor extracts a slog attribute from context.
	// Used with WithLogger to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor

	// Registry accumulates controller, route, and parameter metadata.
	Registry = routing.Registry

	// ControllerMeta describes one registered controller.
	ControllerMeta = routing.ControllerMeta

	// RouteMeta describes one registered controller method.
	RouteMeta = routing.RouteMeta

	// ParamMeta describes one positional argument of a controller method.
	ParamMeta = routing.ParamMeta

	// Verb is an HTTP method a route responds to.
	Verb = routing.Verb

	// Container is a hierarchical binding scope.
	Container = container.Container

	// ContainerManager owns named containers.
	ContainerManager = container.Manager

	// Principal is the resolved identity of one incoming request.
	Principal = auth.Principal

	// AuthProvider issues and verifies access tokens.
	AuthProvider = auth.Provider

	// AuthService stores users and role mappings.
	AuthService = auth.Service
)

// Well-known container binding keys. Controller constructors are bound
// named under BindingController; request-scoped values live in the
// per-request child scope.
const (
	BindingController   = internal.BindingController
	BindingAuthService  = internal.BindingAuthService
	BindingAuthProvider = internal.BindingAuthProvider
	BindingPrincipal    = internal.BindingPrincipal
	BindingHTTPContext  = internal.BindingHTTPContext
	BindingLogger       = internal.BindingLogger
)

// Constructors

// New creates a new application with the given options and builds its
// routes. It fails when two registered controllers share a name.
//
// Example:
//
//	registry := keel.NewRegistry()
//	books.Register(registry)
//
//	app, err := keel.New(
//	    keel.WithRegistry(registry),
//	    keel.WithDefaultAuth(auth.WithSecret(os.Getenv("JWT_SECRET"))),
//	    keel.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = app.Run(keel.Address(":8080"), keel.Logger(slog))
func New(opts ...Option) (*App, error) {
	return internal.New(opts...)
}

// NewRegistry creates an empty metadata registry.
func NewRegistry() *Registry {
	return routing.NewRegistry()
}

// NewContainerManager creates a container manager with an eagerly
// created default container.
func NewContainerManager() *ContainerManager {
	return container.NewManager()
}

// App options

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes outside the
// controller registry. Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithRegistry sets the metadata registry the App builds routes from.
func WithRegistry(r *Registry) Option {
	return internal.WithRegistry(r)
}

// WithContainerManager sets the container manager.
// Without it the App creates its own.
func WithContainerManager(m *ContainerManager) Option {
	return internal.WithContainerManager(m)
}

// WithContainer selects the named container from the manager as the
// App's root scope. An empty name means the default container.
func WithContainer(name string) Option {
	return internal.WithContainer(name)
}

// WithAuthService binds a user store into the container.
func WithAuthService(svc AuthService) Option {
	return internal.WithAuthService(svc)
}

// WithAuthProvider sets the token provider used to resolve the request
// principal.
func WithAuthProvider(p *AuthProvider) Option {
	return internal.WithAuthProvider(p)
}

// WithDefaultAuth wires up authentication with an in-memory user store
// (unless WithAuthService provided one) and a JWT provider built from
// the given options.
//
// Example:
//
//	keel.WithDefaultAuth(
//	    auth.WithSecret(os.Getenv("JWT_SECRET")),
//	    auth.WithIssuer("api.acme.com"),
//	)
func WithDefaultAuth(opts ...auth.ProviderOption) Option {
	return internal.WithDefaultAuth(opts...)
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
//
// Example:
//
//	keel.WithHealthChecks(
//	    keel.WithReadinessCheck("db", db.Healthcheck(pool)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id).
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
// Use this when you need complete control over logging configuration.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// Health check options

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during readiness probe.
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options

// Address sets the HTTP server address.
// Defaults to the PORT environment variable, then ":3000".
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// Logger sets the runtime logger.
// If nil, runtime logging is disabled.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
// This applies to both the HTTP server and shutdown hooks.
// Defaults to 30 seconds.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function to run before the server starts
// listening. A failing hook aborts startup.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function to run during shutdown.
// Hooks are called in the order they were registered.
// Each hook receives a context with the shutdown timeout.
//
// Example:
//
//	keel.ShutdownHook(db.Shutdown(pool))
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets a custom base context for signal handling.
// Useful for testing or when integrating with existing context hierarchies.
// Defaults to context.Background() if not set.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Errors

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return internal.NewHTTPError(code, message)
}

// IsHTTPError returns true if the error chain contains an HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

// AsHTTPError extracts the HTTPError from an error chain if present.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// Context helpers

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not found or type assertion fails.
//
// Example:
//
//	type tenantKey struct{}
//
//	tenant := keel.ContextValue[string](c, tenantKey{})
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}
