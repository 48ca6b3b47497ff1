package portfolio

import "sync"

// PageDocument is the Document of a server-rendered page. It knows which
// anchors the page carries and records the scroll target so the renderer
// can hand it to the browser.
type PageDocument struct {
	mu      sync.Mutex
	anchors map[string]bool
	target  string
}

// NewPageDocument creates a document with the given anchor ids
func NewPageDocument(ids ...string) *PageDocument {
	anchors := make(map[string]bool, len(ids))
	for _, id := range ids {
		anchors[id] = true
	}
	return &PageDocument{anchors: anchors}
}

// SectionsDocument is the full page: every nav section has an anchor.
func SectionsDocument() *PageDocument {
	ids := make([]string, 0, len(Sections()))
	for _, s := range Sections() {
		ids = append(ids, s.ID())
	}
	return NewPageDocument(ids...)
}

func (d *PageDocument) ScrollIntoView(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.anchors[id] {
		return false
	}
	d.target = id
	return true
}

// ScrollTarget returns the id last scrolled to, if any
func (d *PageDocument) ScrollTarget() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.target
}
