package internal

import (
	"log/slog"

	"github.com/keelframework/keel/pkg/auth"
	"github.com/keelframework/keel/pkg/container"
	"github.com/keelframework/keel/pkg/logger"
	"github.com/keelframework/keel/pkg/routing"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes outside the
// controller registry. Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithRegistry sets the metadata registry the App builds routes from.
// Without it the App starts with an empty registry.
func WithRegistry(r *routing.Registry) Option {
	return func(a *App) {
		if r != nil {
			a.registry = r
		}
	}
}

// WithContainerManager sets the container manager.
// Without it the App creates its own.
func WithContainerManager(m *container.Manager) Option {
	return func(a *App) {
		if m != nil {
			a.manager = m
		}
	}
}

// WithContainer selects the named container from the manager as the
// App's root scope. An empty name means the default container.
func WithContainer(name string) Option {
	return func(a *App) {
		a.containerName = name
	}
}

// WithAuthService binds a user store into the container. The service is
// resolvable under the auth service binding key and backs the default
// auth provider when WithDefaultAuth is used.
func WithAuthService(svc auth.Service) Option {
	return func(a *App) {
		a.authService = svc
	}
}

// WithAuthProvider sets the token provider used to resolve the request
// principal. The provider is bound into the container.
func WithAuthProvider(p *auth.Provider) Option {
	return func(a *App) {
		a.provider = p
	}
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
	return func(a *App) {
		a.useDefaultAuth = true
		a.providerOpts = append(a.providerOpts, opts...)
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// Called when a handler returns a non-nil error.
//
// Example:
//
//	keel.WithErrorHandler(func(c keel.Context, err error) error {
//	    return c.JSON(http.StatusInternalServerError, map[string]string{
//	        "error": err.Error(),
//	    })
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
//
// Example:
//
//	keel.WithHealthChecks(
//	    keel.WithReadinessCheck("db", db.Healthcheck(pool)),
//	    keel.WithReadinessCheck("redis", redis.Healthcheck(client)),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.healthConfig = cfg
	}
}

// WithLogger creates a logger with a component name and optional extractors.
// The component name is added to every log entry for easy filtering.
// Extractors pull values from context (e.g., request_id).
//
// Example:
//
//	keel.New(
//	    keel.WithLogger("api", requestIDExtractor),
//	)
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger.
// Use this when you need complete control over logging configuration.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}
