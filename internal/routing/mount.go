package routing

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Action is a request handler bound to a concrete route identifier.
type Action struct {
	// Route is the concrete route, e.g. "auth/login" or "help/contact".
	Route string

	// Methods lists the HTTP methods the action accepts. Empty means GET.
	Methods []string

	Handler http.HandlerFunc
}

func (a Action) methods() []string {
	if len(a.Methods) == 0 {
		return []string{http.MethodGet}
	}
	return a.Methods
}

func (a Action) accepts(method string) bool {
	for _, m := range a.methods() {
		if m == method {
			return true
		}
	}
	return false
}

// Filter wraps the handler of a resolved action. Filters run in order before
// the action, with the concrete route already known.
type Filter func(route string, next http.Handler) http.Handler

type routeCtxKey struct{}

// RouteFromContext returns the concrete route resolved for the request.
func RouteFromContext(ctx context.Context) (string, bool) {
	route, ok := ctx.Value(routeCtxKey{}).(string)
	return route, ok
}

// WithRoute stores route in ctx.
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeCtxKey{}, route)
}

// Mount registers every parse-capable rule on router and dispatches matched
// requests to the action of the resolved route, wrapped in filters.
//
// Placeholder segments of a rule route are filled from the chi URL
// parameters of the matched pattern. Actions no rule can parse are mounted
// at "/<route>".
func (m *Manager) Mount(router chi.Router, actions []Action, filters ...Filter) error {
	byRoute := make(map[string]Action, len(actions))
	for _, a := range actions {
		route := strings.Trim(a.Route, "/")
		if _, exists := byRoute[route]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateAction, route)
		}
		a.Route = route
		byRoute[route] = a
	}

	parsed := make(map[string]struct{})
	for _, rule := range m.rules {
		if rule.Mode() == ModeCreationOnly {
			continue
		}

		methods := make(map[string]struct{})
		for route, a := range byRoute {
			if _, ok := rule.matchRoute(route); !ok {
				continue
			}
			parsed[route] = struct{}{}
			for _, method := range a.methods() {
				methods[method] = struct{}{}
			}
		}

		handler := dispatch(rule, byRoute, filters)
		for _, method := range sortedKeys(methods) {
			router.Method(method, rule.chiPattern(), handler)
		}
	}

	for _, route := range sortedKeys(byRoute) {
		if _, ok := parsed[route]; ok {
			continue
		}
		a := byRoute[route]
		handler := wrap(route, a.Handler, filters)
		for _, method := range a.methods() {
			router.Method(method, "/"+route, handler)
		}
	}

	return nil
}

func dispatch(rule *Rule, actions map[string]Action, filters []Filter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := rule.resolveRoute(func(name string) string {
			return chi.URLParam(r, name)
		})

		a, ok := actions[route]
		if !ok || !a.accepts(r.Method) {
			http.NotFound(w, r)
			return
		}

		wrap(route, a.Handler, filters).ServeHTTP(w, r)
	})
}

func wrap(route string, h http.Handler, filters []Filter) http.Handler {
	for i := len(filters) - 1; i >= 0; i-- {
		h = filters[i](route, h)
	}

	next := h
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithRoute(r.Context(), route)))
	})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
