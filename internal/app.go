package internal

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/keelframework/keel/pkg/auth"
	"github.com/keelframework/keel/pkg/container"
	"github.com/keelframework/keel/pkg/health"
	"github.com/keelframework/keel/pkg/logger"
	"github.com/keelframework/keel/pkg/routing"
)

// Default server timeouts (hardcoded, opinionated).
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
)

// App orchestrates the application lifecycle. It turns registered
// controller metadata into chi routes, manages middleware and the
// container hierarchy, and drives graceful shutdown.
// App is immutable after creation - all configuration is done via New().
type App struct {
	router                  chi.Router
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	healthConfig            *healthConfig
	logger                  *slog.Logger
	manager                 *container.Manager
	containerName           string
	registry                *routing.Registry
	authService             auth.Service
	provider                *auth.Provider
	providerOpts            []auth.ProviderOption
	useDefaultAuth          bool
	middlewares             []Middleware
	handlers                []Handler
}

// New creates a new application with the given options and builds its
// routes. It fails when two controllers share a name.
//
// Example:
//
//	app, err := keel.New(
//	    keel.WithRegistry(registry),
//	    keel.WithDefaultAuth(auth.WithSecret(secret)),
//	    keel.WithMiddleware(middlewares.RequestID()),
//	)
func New(opts ...Option) (*App, error) {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.manager == nil {
		a.manager = container.NewManager()
	}
	if a.registry == nil {
		a.registry = routing.NewRegistry()
	}

	root := a.container()
	root.BindValue(BindingLogger, a.logger)

	if a.useDefaultAuth && a.provider == nil {
		if a.authService == nil {
			a.authService = auth.NewMemory()
		}
		a.provider = auth.NewProvider(a.authService, a.providerOpts...)
	}
	if a.authService != nil {
		root.BindValue(BindingAuthService, a.authService)
	}
	if a.provider != nil {
		root.BindValue(BindingAuthProvider, a.provider)
	}

	if err := a.setupRoutes(); err != nil {
		return nil, err
	}
	return a, nil
}

// Router returns the underlying chi.Router for the App.
func (a *App) Router() chi.Router {
	return a.router
}

// Registry returns the metadata registry the App was built from.
func (a *App) Registry() *routing.Registry {
	return a.registry
}

// Container returns the container the App binds services into.
func (a *App) Container() *container.Container {
	return a.container()
}

// AuthProvider returns the configured auth provider, nil if none.
func (a *App) AuthProvider() *auth.Provider {
	return a.provider
}

// AuthService returns the configured user store, nil if none.
func (a *App) AuthService() auth.Service {
	return a.authService
}

func (a *App) container() *container.Container {
	return a.manager.Container(a.containerName)
}

// Run starts the HTTP server and blocks until shutdown.
//
// Example:
//
//	app, err := keel.New(keel.WithRegistry(registry))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = app.Run(keel.Address(":8080"), keel.Logger(slog))
func (a *App) Run(opts ...RunOption) error {
	cfg := buildRunConfig(opts...)

	return runServer(runtimeConfig{
		handler:         a.router,
		address:         cfg.address,
		logger:          cfg.logger,
		shutdownTimeout: cfg.shutdownTimeout,
		startupHooks:    cfg.startupHooks,
		shutdownHooks:   cfg.shutdownHooks,
		baseCtx:         cfg.baseCtx,
	})
}

// setupRoutes configures the router with middleware, handlers, and the
// routes described by the registry.
func (a *App) setupRoutes() error {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	if a.healthConfig != nil {
		a.router.Get(a.healthConfig.livenessPath, health.Liveness())
		a.router.Get(a.healthConfig.readinessPath, health.Readiness(a.healthConfig.checks, health.WithLogger(a.logger)))
	}

	// Manually declared handlers
	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}

	return a.buildControllerRoutes()
}

// buildControllerRoutes binds controller constructors into the container
// and mounts one chi route per registered controller method.
func (a *App) buildControllerRoutes() error {
	root := a.container()
	seen := make(map[string]bool)

	for _, cm := range a.registry.Controllers() {
		if seen[cm.Name] {
			return fmt.Errorf("duplicate controller name %q", cm.Name)
		}
		seen[cm.Name] = true

		if cm.Construct != nil {
			root.BindNamed(BindingController, cm.Name, container.Factory(cm.Construct))
		}

		for _, rm := range a.registry.Routes(cm.Name) {
			pattern := joinPaths(cm.Path, rm.Path)

			var h http.Handler = a.routeHandler(cm, rm)
			// Route middleware wraps innermost, controller middleware outermost.
			for i := len(rm.Middleware) - 1; i >= 0; i-- {
				h = rm.Middleware[i](h)
			}
			for i := len(cm.Middleware) - 1; i >= 0; i-- {
				h = cm.Middleware[i](h)
			}

			if rm.Verb == routing.VerbAll {
				a.router.Handle(pattern, h)
			} else {
				a.router.Method(string(rm.Verb), pattern, h)
			}

			a.logger.Debug("route registered",
				slog.String("controller", cm.Name),
				slog.String("verb", string(rm.Verb)),
				slog.String("pattern", pattern),
			)
		}
	}
	return nil
}

// routeHandler builds the request pipeline for one controller method:
// resolve the principal, extract arguments, gate on roles, resolve the
// controller from a request scope, invoke, and render the result.
func (a *App) routeHandler(cm routing.ControllerMeta, rm routing.RouteMeta) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope := a.container().Child()
		c := newContext(w, r, a.logger, scope)
		scope.BindValue(BindingHTTPContext, Context(c))

		principal := auth.Anonymous()
		if a.provider != nil {
			principal = a.provider.ResolveUser(r)
		}
		c.Set(PrincipalKey{}, principal)
		scope.BindValue(BindingPrincipal, principal)

		// Metadata is re-resolved per request; a registry that no longer
		// knows the route is an internal fault, not a 404.
		meta, ok := a.registry.Route(rm.Controller, rm.Key)
		if !ok || meta.Invoke == nil {
			a.handleError(c, ErrInternal("Internal Error"))
			return
		}

		args, err := extractArgs(c, a.registry.Params(rm.Controller, rm.Key))
		if err != nil {
			a.handleError(c, ErrBadRequest("Bad Request", WithError(err)))
			return
		}

		roles := meta.Roles
		if len(roles) == 0 {
			roles = cm.Roles
		}
		if len(roles) > 0 && !principal.HasAnyRole(roles...) {
			a.handleError(c, ErrUnauthorized("Not authorized"))
			return
		}

		instance, err := scope.GetNamed(BindingController, rm.Controller)
		if err != nil {
			a.handleError(c, ErrInternal("Internal Error", WithError(err)))
			return
		}

		result, err := meta.Invoke(instance, args)
		if err != nil {
			a.handleError(c, err)
			return
		}

		if c.Written() {
			return
		}
		if isEmptyResult(result) {
			a.handleError(c, ErrNotFound("Item not found"))
			return
		}
		if err := c.JSON(http.StatusOK, result); err != nil {
			a.logger.ErrorContext(r.Context(), "write response", slog.Any("error", err))
		}
	}
}

// isEmptyResult reports whether a handler result maps to 404:
// nil, a nil pointer or interface, an empty string, slice, or map.
func isEmptyResult(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// joinPaths combines a controller mount path with a route sub-path into
// a chi pattern.
func joinPaths(base, sub string) string {
	p := strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(sub, "/")
	p = "/" + strings.Trim(p, "/")
	return p
}

// newRequestContext creates a Context backed by a fresh request scope.
func (a *App) newRequestContext(w http.ResponseWriter, r *http.Request) *requestContext {
	scope := a.container().Child()
	c := newContext(w, r, a.logger, scope)
	scope.BindValue(BindingHTTPContext, Context(c))
	return c
}

// wrapHandler converts a HandlerFunc to http.HandlerFunc using the app's error handler.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := a.newRequestContext(w, r)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

// handleError handles errors from handlers using the configured error handler.
func (a *App) handleError(c Context, err error) {
	if c.Written() {
		return
	}
	if a.errorHandler != nil {
		_ = a.errorHandler(c, err)
		return
	}
	_ = a.defaultErrorHandler(c, err)
}

// defaultErrorHandler renders HTTPErrors as JSON and masks everything
// else as a 500.
func (a *App) defaultErrorHandler(c Context, err error) error {
	httpErr := AsHTTPError(err)
	if httpErr == nil {
		a.logger.ErrorContext(c.Context(), "unhandled error", slog.Any("error", err))
		httpErr = ErrInternal("Internal Server Error", WithError(err))
	}

	body := map[string]any{"error": httpErr.Message}
	if httpErr.ErrorCode != "" {
		body["error_code"] = httpErr.ErrorCode
	}
	if httpErr.RequestID != "" {
		body["request_id"] = httpErr.RequestID
	}
	return c.JSON(httpErr.Code, body)
}

// healthConfig holds health check endpoint configuration.
type healthConfig struct {
	checks        health.Checks
	livenessPath  string
	readinessPath string
}

// Default health check paths.
const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// HealthOption configures health check endpoints.
type HealthOption func(*healthConfig)

// WithLivenessPath sets a custom liveness endpoint path.
// Defaults to "/health/live".
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath sets a custom readiness endpoint path.
// Defaults to "/health/ready".
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named readiness check.
// Checks run in parallel during readiness probe.
//
// Example:
//
//	keel.WithReadinessCheck("db", db.Healthcheck(pool))
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) {
		if c.checks == nil {
			c.checks = make(health.Checks)
		}
		c.checks[name] = fn
	}
}
