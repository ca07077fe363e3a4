// Package middlewares provides HTTP middleware for keel applications.
//
// # Request ID
//
// RequestID middleware assigns a unique ID to each request for tracing
// and debugging. It checks incoming headers for existing IDs or
// generates new UUIDs.
//
//	app, err := keel.New(
//	    keel.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// Use RequestIDExtractor() with WithLogger for automatic request_id in all logs:
//
//	app, err := keel.New(
//	    keel.WithLogger("api", middlewares.RequestIDExtractor()),
//	    keel.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// # Recover
//
// Recover middleware catches panics and converts them to typed errors.
// The PanicError can be handled by the global ErrorHandler.
//
//	app, err := keel.New(
//	    keel.WithMiddleware(
//	        middlewares.Recover(),
//	    ),
//	    keel.WithErrorHandler(func(c keel.Context, err error) error {
//	        if middlewares.IsPanicError(err) {
//	            return c.JSON(500, map[string]string{"error": "Internal Server Error"})
//	        }
//	        return c.JSON(500, map[string]string{"error": err.Error()})
//	    }),
//	)
//
// # Logging
//
// Logging middleware writes one structured log line per request with
// method, path, status, and duration.
//
// # Authentication
//
// Authenticate resolves the bearer token on every request and stores
// the resulting principal, whether authenticated or not. RequireRoles
// gates a route on token roles.
//
//	app, err := keel.New(
//	    keel.WithDefaultAuth(auth.WithSecret(secret)),
//	    keel.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.Logging(),
//	    ),
//	)
//
// # Recommended Middleware Order
//
//	keel.WithMiddleware(
//	    middlewares.RequestID(),  // First: assign ID for all subsequent logging
//	    middlewares.Recover(),    // Second: catch panics from handlers
//	    middlewares.Logging(),    // Third: log with request ID available
//	)
package middlewares
