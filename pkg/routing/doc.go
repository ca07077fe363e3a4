// Package routing holds the controller metadata registry.
//
// Application setup code declares, out of band, that a type is a controller
// (mount path, default required roles, middleware, constructor), that
// specific methods respond to specific HTTP verbs at specific sub-paths, and
// that specific positional arguments should be populated from specific parts
// of an incoming request. The server consumes these tables at build time;
// this package itself performs no authorization and no execution.
//
// Registration is explicit — there is no reflection and no annotation
// scanning. Each controller method is bridged to its typed receiver through
// an InvokeFunc written by the registering code:
//
//	reg := routing.NewRegistry()
//	reg.RegisterController(routing.ControllerMeta{
//	    Name: "UserController",
//	    Path: "/users",
//	    Construct: func(c *container.Container) any { return NewUserController(store) },
//	})
//	reg.RegisterRoute(routing.RouteMeta{
//	    Controller: "UserController",
//	    Key:        "GetUser",
//	    Verb:       routing.VerbGet,
//	    Path:       "/{email}",
//	    Roles:      []string{"admin"},
//	    Invoke: func(target any, args []any) (any, error) {
//	        return target.(*UserController).GetUser(args[0].(string))
//	    },
//	})
//	reg.RegisterParam("UserController", "GetUser", routing.ParamMeta{
//	    Index:  0,
//	    Source: routing.SourceParam,
//	    Name:   "email",
//	})
//
// Parameter registration order is NOT positional order: RegisterParam
// prepends, so consumers must place each argument by its declared Index.
package routing
