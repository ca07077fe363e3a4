package internal

// Handler declares routes on a router. Use it for endpoints that live
// outside the controller registry, such as webhooks or static pages.
//
// Example:
//
//	type WebhookHandler struct {
//	    secret string
//	}
//
//	func (h *WebhookHandler) Routes(r keel.Router) {
//	    r.POST("/webhooks/billing", h.handleBilling)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// It receives a Context and returns an error.
// Returning a non-nil error triggers the error handler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect/modify the request, short-circuit processing,
// or wrap the response.
//
// Example:
//
//	func RequireJSON(next keel.HandlerFunc) keel.HandlerFunc {
//	    return func(c keel.Context) error {
//	        if c.Header("Content-Type") != "application/json" {
//	            return c.Error(http.StatusUnsupportedMediaType, "JSON only")
//	        }
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
