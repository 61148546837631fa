// Package mux is a thin HTTP dispatcher over one path matcher. Each pathname
// pattern is registered with the matcher once and carries a per-method
// handler set; precedence between patterns is registration order.
package mux

import (
	"errors"
	"net/http"
	"sync"

	"github.com/wayfind-go/wayfind/pkg/contextutil"
	"github.com/wayfind-go/wayfind/pkg/matcher"
	"github.com/wayfind-go/wayfind/pkg/response"
	"github.com/wayfind-go/wayfind/pkg/validate"
)

type Middleware = func(http.Handler) http.Handler

// Router's matcher supports registration after serving has started, so the
// router's own maps get the same guarantee: Handle and Use are safe to call
// while requests are in flight.
type Router struct {
	routes   *matcher.Matcher[*route]
	notFound http.Handler
	validate *validate.Validate

	mu        sync.RWMutex
	byPattern map[string]*route
	mws       []Middleware
}

// route is the single handler value the matcher sees for a pathname: a
// method-to-handler set dispatched after the path has resolved.
type route struct {
	pattern  string
	handlers map[string]http.Handler
}

type Options struct {
	// NotFoundHandler runs when no pattern matches. Defaults to
	// http.NotFound.
	NotFoundHandler http.Handler

	// Validator backs Router.Bind. Defaults to a fresh validate.New().
	Validator *validate.Validate
}

func NewRouter(opts *Options) *Router {
	if opts == nil {
		opts = new(Options)
	}

	v := opts.Validator
	if v == nil {
		v = validate.New()
	}

	return &Router{
		routes:    matcher.New[*route](),
		byPattern: make(map[string]*route),
		notFound:  opts.NotFoundHandler,
		validate:  v,
	}
}

// Use appends a global middleware. Middlewares run in the order added.
func (rt *Router) Use(mw Middleware) {
	rt.mu.Lock()
	rt.mws = append(rt.mws, mw)
	rt.mu.Unlock()
}

// Handle registers httpHandler for method requests on pattern. The first
// registration of a pattern fixes its precedence position; later methods on
// the same pattern merge into the existing entry.
func (rt *Router) Handle(method, pattern string, httpHandler http.Handler) error {
	if _, ok := permittedMethods[method]; !ok {
		return errors.New("mux: unknown method " + method)
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	r, ok := rt.byPattern[pattern]
	if !ok {
		r = &route{pattern: pattern, handlers: make(map[string]http.Handler)}
		if err := rt.routes.Register(pattern, r); err != nil {
			return err
		}
		rt.byPattern[pattern] = r
	}

	if _, ok := r.handlers[method]; ok {
		return errors.New("mux: handler already registered for " + method + " " + pattern)
	}
	r.handlers[method] = httpHandler
	return nil
}

func (rt *Router) HandleFunc(method, pattern string, httpHandlerFunc http.HandlerFunc) error {
	return rt.Handle(method, pattern, httpHandlerFunc)
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	match, ok := rt.routes.Match(r.URL.Path)
	if !ok {
		if rt.notFound != nil {
			rt.notFound.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	rt.mu.RLock()
	handler, ok := match.Handler.handlers[r.Method]
	mws := rt.mws
	rt.mu.RUnlock()
	if !ok {
		res := response.New(w)
		res.MethodNotAllowed()
		return
	}

	if len(match.Params) > 0 {
		r = paramsStore.With(r, match.Params)
	}

	// Middlewares chain backwards so the first added runs outermost
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}

	handler.ServeHTTP(w, r)
}

// Bind decodes request input into destStructPtr and validates it: query
// parameters for query methods, the JSON body otherwise.
func (rt *Router) Bind(r *http.Request, destStructPtr any) error {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		return rt.validate.URLSearchParamsInto(r, destStructPtr)
	default:
		return rt.validate.JSONBodyInto(r.Body, destStructPtr)
	}
}

/////////////////////////////////////////////////////////////////////
/////// PARAMS ACCESS
/////////////////////////////////////////////////////////////////////

var paramsStore = contextutil.NewStore[matcher.Params]("mux_params")

// Params returns the parameter values extracted from the matched pattern, or
// nil for a pattern with no params.
func Params(r *http.Request) matcher.Params {
	params, _ := paramsStore.From(r)
	return params
}

func Param(r *http.Request, name string) string {
	return Params(r)[name]
}

// SplatValue returns the splat remainder captured by a trailing "*" segment.
func SplatValue(r *http.Request) string {
	return Params(r)[matcher.SplatParam]
}

var permittedMethods = map[string]struct{}{
	http.MethodGet: {}, http.MethodHead: {}, // query methods
	http.MethodPost: {}, http.MethodPut: {}, http.MethodPatch: {}, http.MethodDelete: {}, // mutation methods
	http.MethodConnect: {}, http.MethodOptions: {}, http.MethodTrace: {}, // other methods
}
