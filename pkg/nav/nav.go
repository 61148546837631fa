// Package nav routes path-based navigations through a matcher and keeps a
// history stack, the in-process counterpart of a browser history integration.
// Handlers may do arbitrary asynchronous work; a navigation that gets
// superseded before it finishes has its context canceled and is never
// committed to history.
package nav

import (
	"context"
	"errors"
	"sync"

	"github.com/wayfind-go/wayfind/pkg/colorlog"
	"github.com/wayfind-go/wayfind/pkg/matcher"
)

// Navigation carries the target path and the values extracted from the
// matched pattern.
type Navigation struct {
	Path   string
	Params matcher.Params
}

// HandlerFunc performs the work of one navigation. ctx is canceled when the
// navigation is superseded; long-running handlers should watch it.
type HandlerFunc func(ctx context.Context, nv Navigation) error

// ErrSuperseded is returned by Navigate when a later navigation started
// before this one committed.
var ErrSuperseded = errors.New("nav: navigation superseded")

type Options struct {
	// NotFound runs for paths no pattern matches. Optional; without it an
	// unmatched Navigate returns ErrNoHandler.
	NotFound HandlerFunc

	Log *colorlog.Log
}

// ErrNoHandler is returned when no pattern matches and no NotFound handler
// is configured.
var ErrNoHandler = errors.New("nav: no handler for path")

type Controller struct {
	routes   *matcher.Matcher[HandlerFunc]
	notFound HandlerFunc
	log      *colorlog.Log

	mu      sync.Mutex
	history []string
	idx     int
	gen     uint64
	cancel  context.CancelFunc
}

func NewController(opts *Options) *Controller {
	if opts == nil {
		opts = new(Options)
	}

	log := opts.Log
	if log == nil {
		log = &colorlog.Log{Label: "nav"}
	}

	return &Controller{
		routes:   matcher.New[HandlerFunc](),
		notFound: opts.NotFound,
		log:      log,
		idx:      -1,
	}
}

// Handle registers fn for paths matching pattern. Registration order is the
// precedence order.
func (c *Controller) Handle(pattern string, fn HandlerFunc) error {
	return c.routes.Register(pattern, fn)
}

type NavigateOptions struct {
	// Replace replaces the current history entry instead of pushing.
	Replace bool
}

type NavigateOption func(*NavigateOptions)

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}

// Navigate resolves path, runs the matched handler (or the NotFound
// handler), and commits path to history only after the handler returns nil
// and no later navigation has started. Starting a navigation cancels the
// context of any navigation still in flight.
func (c *Controller) Navigate(ctx context.Context, path string, opts ...NavigateOption) error {
	options := new(NavigateOptions)
	for _, opt := range opts {
		opt(options)
	}

	return c.run(ctx, path, func() {
		if options.Replace && c.idx >= 0 {
			c.history[c.idx] = path
			return
		}
		// A push discards any forward entries
		c.history = append(c.history[:c.idx+1], path)
		c.idx++
	})
}

// Back re-runs the handler for the previous history entry and, on success,
// moves the cursor back. It returns false when there is no previous entry.
func (c *Controller) Back(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.idx <= 0 {
		c.mu.Unlock()
		return false, nil
	}
	target := c.history[c.idx-1]
	c.mu.Unlock()

	err := c.run(ctx, target, func() { c.idx-- })
	return err == nil, err
}

// Forward is the inverse of Back.
func (c *Controller) Forward(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.idx+1 >= len(c.history) {
		c.mu.Unlock()
		return false, nil
	}
	target := c.history[c.idx+1]
	c.mu.Unlock()

	err := c.run(ctx, target, func() { c.idx++ })
	return err == nil, err
}

// Current returns the committed path under the history cursor.
func (c *Controller) Current() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.idx < 0 {
		return "", false
	}
	return c.history[c.idx], true
}

// run executes the handler for path and, if this navigation is still the
// latest one when the handler finishes, applies commit under the lock.
func (c *Controller) run(ctx context.Context, path string, commit func()) error {
	fn, nv, err := c.resolve(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel() // abort the superseded in-flight navigation
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.gen++
	myGen := c.gen
	c.mu.Unlock()

	if err := fn(ctx, nv); err != nil {
		c.mu.Lock()
		if c.gen == myGen {
			c.cancel = nil
			cancel()
		}
		c.mu.Unlock()
		c.log.Warningf("navigation to %q failed: %v", path, err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != myGen {
		return ErrSuperseded
	}
	commit()
	c.cancel = nil
	cancel()
	return nil
}

func (c *Controller) resolve(path string) (HandlerFunc, Navigation, error) {
	nv := Navigation{Path: path}

	match, ok := c.routes.Match(path)
	if !ok {
		if c.notFound == nil {
			return nil, nv, ErrNoHandler
		}
		return c.notFound, nv, nil
	}

	nv.Params = match.Params
	return match.Handler, nv, nil
}
