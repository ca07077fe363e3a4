// Package keel provides a container-driven toolkit for building HTTP
// APIs in Go: a hierarchical binding container, a controller metadata
// registry, JWT authentication with role gating, and a chi-backed
// server that turns registered metadata into live routes.
//
// # Quick Start
//
// Describe controllers in a registry, create the application with
// keel.New(), and call Run() to start the HTTP server:
//
//	registry := keel.NewRegistry()
//	registry.RegisterController(keel.ControllerMeta{
//	    Name: "books",
//	    Path: "/books",
//	    Construct: func(c *keel.Container) any {
//	        return &BooksController{}
//	    },
//	})
//	registry.RegisterRoute(keel.RouteMeta{
//	    Controller: "books",
//	    Key:        "get",
//	    Path:       "/{id}",
//	    Verb:       keel.Verb(http.MethodGet),
//	    Invoke: func(target any, args []any) (any, error) {
//	        return target.(*BooksController).Get(args[0].(string))
//	    },
//	})
//	registry.RegisterParam("books", "get", keel.ParamMeta{
//	    Name: "id", Index: 0, Source: routing.SourceParam,
//	})
//
//	app, err := keel.New(keel.WithRegistry(registry))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := app.Run(keel.Address(":8080")); err != nil {
//	    log.Fatal(err)
//	}
//
// # Request Pipeline
//
// Each registered route runs the same pipeline: resolve the caller's
// principal from the bearer token, gate on required roles (401), build
// a request-scoped container, resolve the controller instance from it,
// extract positional arguments from the request, invoke the method, and
// serialize the result as JSON. A nil or empty result maps to 404; a
// route whose metadata disappeared maps to 500.
//
// # Authentication
//
// Users and role mappings live behind the auth.Service interface, with
// in-memory and Redis implementations. The auth.Provider issues HS256
// JWTs and resolves every request to exactly one principal outcome.
// Enable it all with one option:
//
//	keel.WithDefaultAuth(auth.WithSecret(os.Getenv("JWT_SECRET")))
//
// # Manual Routes
//
// Endpoints outside the registry implement the [Handler] interface and
// declare routes directly:
//
//	func (h *WebhookHandler) Routes(r keel.Router) {
//	    r.POST("/webhooks/billing", h.handleBilling)
//	}
package keel
