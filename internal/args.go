package internal

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/keelframework/keel/pkg/routing"
)

// extractArgs builds the positional argument list for a controller method
// from its registered parameter metadata. Arguments are ordered by each
// entry's Index, not by list position; gaps stay nil. A method with no
// registered parameters receives the request Context as its only argument.
func extractArgs(c Context, params []routing.ParamMeta) ([]any, error) {
	if len(params) == 0 {
		return []any{c}, nil
	}

	maxIndex := 0
	for _, p := range params {
		if p.Index > maxIndex {
			maxIndex = p.Index
		}
	}

	args := make([]any, maxIndex+1)
	for _, p := range params {
		v, err := extractArg(c, p)
		if err != nil {
			return nil, err
		}
		args[p.Index] = v
	}
	return args, nil
}

func extractArg(c Context, p routing.ParamMeta) (any, error) {
	switch p.Source {
	case routing.SourceRequest:
		return c.Request(), nil

	case routing.SourceResponse:
		return c.Response(), nil

	case routing.SourceContext:
		return c, nil

	case routing.SourceParam:
		if p.Name == "" {
			return urlParams(c), nil
		}
		return c.Param(p.Name), nil

	case routing.SourceQuery:
		if p.Name == "" {
			return c.Request().URL.Query(), nil
		}
		return c.Query(p.Name), nil

	case routing.SourceBody:
		return c.BodyField(p.Name)

	case routing.SourceHeader:
		if p.Name == "" {
			return c.Request().Header, nil
		}
		return c.Header(p.Name), nil

	case routing.SourceCookie:
		v, err := c.Cookie(p.Name)
		if err != nil {
			// Missing cookies bind as empty strings.
			return "", nil
		}
		return v, nil

	default:
		return nil, fmt.Errorf("unknown parameter source %d", p.Source)
	}
}

// urlParams collects all URL parameters of the matched route.
func urlParams(c Context) map[string]string {
	out := make(map[string]string)
	rctx := chi.RouteContext(c.Request().Context())
	if rctx == nil {
		return out
	}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" {
			continue
		}
		out[key] = rctx.URLParams.Values[i]
	}
	return out
}
