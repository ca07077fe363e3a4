package internal

// Well-known container binding keys. Controller constructors are bound
// named under BindingController, keyed by the controller name they were
// registered with. Request-scoped values are bound into the per-request
// child scope.
const (
	// BindingController is the shared key for named controller
	// constructor bindings.
	BindingController = "keel.controller"

	// BindingAuthService resolves the auth.Service implementation.
	BindingAuthService = "keel.auth.service"

	// BindingAuthProvider resolves the *auth.Provider.
	BindingAuthProvider = "keel.auth.provider"

	// BindingPrincipal resolves the *auth.Principal of the current
	// request. Bound into the request scope only.
	BindingPrincipal = "keel.request.principal"

	// BindingHTTPContext resolves the request Context. Bound into the
	// request scope only.
	BindingHTTPContext = "keel.request.context"

	// BindingLogger resolves the application *slog.Logger.
	BindingLogger = "keel.logger"
)
