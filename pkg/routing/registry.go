package routing

import "sync"

// Registry accumulates controller, route, and parameter metadata.
// It is inert bookkeeping: no authorization, no execution, no validation
// beyond structure. Duplicate controller names are accepted here and
// rejected at server build time; duplicate routes for one method key are
// not deduplicated.
//
// All methods are safe for concurrent use, though registration typically
// happens once during process setup.
type Registry struct {
	controllers []ControllerMeta
	routes      map[string][]RouteMeta
	params      map[string]map[string][]ParamMeta
	mu          sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routes: make(map[string][]RouteMeta),
		params: make(map[string]map[string][]ParamMeta),
	}
}

// RegisterController prepends controller metadata to the registry.
// The newest registration is listed first; order does not affect route
// correctness since each route has a distinct path and verb.
func (r *Registry) RegisterController(meta ControllerMeta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.controllers = append([]ControllerMeta{meta}, r.controllers...)
}

// RegisterRoute appends route metadata to the owning controller's list.
func (r *Registry) RegisterRoute(meta RouteMeta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[meta.Controller] = append(r.routes[meta.Controller], meta)
}

// RegisterParam inserts parameter metadata for a controller method.
// Insertion is always at the front of the per-method list, mirroring
// evaluation order of the declarations it models. Consumers must recover
// positional order from each entry's Index, never from list position.
func (r *Registry) RegisterParam(controller, key string, meta ParamMeta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byKey, ok := r.params[controller]
	if !ok {
		byKey = make(map[string][]ParamMeta)
		r.params[controller] = byKey
	}
	byKey[key] = append([]ParamMeta{meta}, byKey[key]...)
}

// Controllers returns registered controller metadata, newest first.
func (r *Registry) Controllers() []ControllerMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ControllerMeta, len(r.controllers))
	copy(out, r.controllers)
	return out
}

// Routes returns all routes registered for a controller, in registration
// order.
func (r *Registry) Routes(controller string) []RouteMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.routes[controller]
	out := make([]RouteMeta, len(src))
	copy(out, src)
	return out
}

// Route returns the first route registered for the controller/key pair.
func (r *Registry) Route(controller, key string) (RouteMeta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rm := range r.routes[controller] {
		if rm.Key == key {
			return rm, true
		}
	}
	return RouteMeta{}, false
}

// Params returns the parameter metadata for a controller method in list
// order, which is the reverse of registration order. Callers order
// arguments by ParamMeta.Index.
func (r *Registry) Params(controller, key string) []ParamMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.params[controller][key]
	out := make([]ParamMeta, len(src))
	copy(out, src)
	return out
}
