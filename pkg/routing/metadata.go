package routing

import (
	"net/http"

	"github.com/keelframework/keel/pkg/container"
)

// Verb is an HTTP method a route responds to.
type Verb string

// Supported route verbs. VerbAll matches every method.
const (
	VerbGet    Verb = http.MethodGet
	VerbPost   Verb = http.MethodPost
	VerbPut    Verb = http.MethodPut
	VerbPatch  Verb = http.MethodPatch
	VerbHead   Verb = http.MethodHead
	VerbDelete Verb = http.MethodDelete
	VerbAll    Verb = "ALL"
)

// ConstructFunc builds a controller instance. It receives the container the
// instance is resolved from — at request time that is the request scope, so
// constructors can pull per-request bindings.
type ConstructFunc func(c *container.Container) any

// InvokeFunc calls one controller method with positional arguments already
// ordered by declared index. The target is the instance produced by the
// controller's ConstructFunc.
type InvokeFunc func(target any, args []any) (any, error)

// HTTPMiddleware is standard net/http middleware, applied by the server
// around generated route handlers.
type HTTPMiddleware func(http.Handler) http.Handler

// ControllerMeta describes one controller: its mount path, controller-scope
// required roles, middleware applied to every route, and the constructor the
// server binds into the container under the controller's name.
type ControllerMeta struct {
	Construct  ConstructFunc
	Name       string
	Path       string
	Roles      []string
	Middleware []HTTPMiddleware
}

// RouteMeta describes one controller method: the verb and sub-path it
// responds to, its own required-roles override, per-route middleware, and
// the typed bridge used to invoke the method.
type RouteMeta struct {
	Invoke     InvokeFunc
	Controller string
	Key        string
	Path       string
	Verb       Verb
	Roles      []string
	Middleware []HTTPMiddleware
}

// ParamSource names the part of the request a positional argument is
// populated from.
type ParamSource int

// Parameter sources. SourceContext binds the request Context itself and is
// the continuation-style escape hatch for handlers that drive the response
// directly.
const (
	SourceRequest ParamSource = iota
	SourceResponse
	SourceContext
	SourceParam
	SourceQuery
	SourceBody
	SourceHeader
	SourceCookie
)

// ParamMeta describes one positional argument of a controller method.
// Index is the argument position; it alone determines argument order.
type ParamMeta struct {
	Name   string
	Index  int
	Source ParamSource
}
