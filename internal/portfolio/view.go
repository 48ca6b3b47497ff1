// Package portfolio holds the portfolio page component: its view state, the
// one-shot project loader, navigation and the HTML renderer.
//
// A View lives for exactly one page load. Mount starts the loader under a
// context bound to the view; Unmount cancels it and any result that arrives
// afterwards is dropped.
package portfolio

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Zachkp/portfolio/internal/models"
)

// ProjectSource is the remote collaborator queried once per mount
type ProjectSource interface {
	ListProjects(ctx context.Context) (models.ProjectList, error)
}

// Document locates section anchors on the rendered page and scrolls to them.
type Document interface {
	// ScrollIntoView smoothly scrolls to the element with the given id and
	// reports whether the element exists.
	ScrollIntoView(id string) bool
}

// ViewState is everything the renderer depends on
type ViewState struct {
	ActiveSection Section
	Projects      models.ProjectList
	Loading       bool
}

// InitialState is the state of a freshly mounted view
func InitialState() ViewState {
	return ViewState{
		ActiveSection: SectionAbout,
		Projects:      models.ProjectList{},
		Loading:       true,
	}
}

// View is one page load of the portfolio
type View struct {
	id     string
	source ProjectSource
	doc    Document
	logger *slog.Logger

	mu        sync.Mutex
	state     ViewState
	unmounted bool

	mountOnce sync.Once
	cancel    context.CancelFunc
	done      chan struct{}
}

// ViewOption configures a View
type ViewOption func(*View)

// WithDocument sets the page the view scrolls within
func WithDocument(doc Document) ViewOption {
	return func(v *View) {
		v.doc = doc
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *slog.Logger) ViewOption {
	return func(v *View) {
		v.logger = logger
	}
}

// NewView creates a view in its initial state. Nothing is fetched until Mount.
func NewView(source ProjectSource, opts ...ViewOption) *View {
	v := &View{
		id:     uuid.NewString(),
		source: source,
		doc:    noDocument{},
		logger: slog.Default(),
		state:  InitialState(),
		cancel: func() {},
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With("view_id", v.id)
	return v
}

// ID identifies the view in logs
func (v *View) ID() string {
	return v.id
}

// Mount starts the project loader. Only the first call has any effect.
func (v *View) Mount(ctx context.Context) {
	v.mountOnce.Do(func() {
		v.mu.Lock()
		if v.unmounted {
			v.mu.Unlock()
			close(v.done)
			return
		}
		ctx, cancel := context.WithCancel(ctx)
		v.cancel = cancel
		v.mu.Unlock()

		go v.load(ctx)
	})
}

// Unmount tears the view down. A fetch still in flight is cancelled and its
// result discarded.
func (v *View) Unmount() {
	v.mu.Lock()
	v.unmounted = true
	cancel := v.cancel
	v.mu.Unlock()

	cancel()
}

// Done is closed once the loader has stored its result or been abandoned.
func (v *View) Done() <-chan struct{} {
	return v.done
}

// Wait blocks until the loader is done or ctx ends
func (v *View) Wait(ctx context.Context) error {
	select {
	case <-v.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns a snapshot of the view state
func (v *View) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// SelectSection marks id as the active section, then scrolls to its anchor if
// the page has one. The state changes whether or not the anchor exists.
func (v *View) SelectSection(id Section) bool {
	v.mu.Lock()
	v.state.ActiveSection = id
	v.mu.Unlock()

	return v.doc.ScrollIntoView(id.ID())
}

func (v *View) load(ctx context.Context) {
	defer close(v.done)

	projects, err := v.source.ListProjects(ctx)
	if err != nil {
		projects = models.ProjectList{}
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unmounted || ctx.Err() != nil {
		v.logger.Debug("discarding project list for torn down view", "error", err)
		return
	}

	if err != nil {
		v.logger.Error("Error fetching projects", "error", err)
	}

	v.state.Projects = projects
	v.state.Loading = false
}

type noDocument struct{}

func (noDocument) ScrollIntoView(string) bool { return false }
