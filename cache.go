package viewport

import "github.com/gogpu/viewport/render"

type cachedKind int

const (
	cachedGraphic cachedKind = iota
	cachedCanvas
	cachedHTML
)

// cachedDecoration is one recorded decoration output. The kind selects
// which fields are meaningful.
type cachedDecoration struct {
	kind cachedKind

	owner       *render.GraphicOwner
	graphicType render.GraphicType

	canvas        render.CanvasDecoration
	canvasAtFront bool

	html render.HTMLElement
}

// cacheEntry holds everything one decorator produced during its last
// recorded Decorate call, in production order.
type cacheEntry struct {
	items []cachedDecoration
}

// decorationCache retains decorator output across frames so decorators
// that opt in are skipped on frames where nothing changed. Entries are
// keyed by decorator identity and live until the decorator is dropped or
// the cache is invalidated. The cache holds the viewport's HTML container
// so disposing an entry also detaches the elements it attached.
type decorationCache struct {
	entries map[Decorator]*cacheEntry
	html    *render.HTMLContainer
}

func newDecorationCache(html *render.HTMLContainer) *decorationCache {
	return &decorationCache{
		entries: make(map[Decorator]*cacheEntry),
		html:    html,
	}
}

// Get returns the decorator's entry, or nil when nothing is cached.
func (c *decorationCache) Get(d Decorator) *cacheEntry {
	return c.entries[d]
}

// Add appends one recorded decoration to the decorator's entry, creating
// the entry on first use. An entry therefore exists exactly when the
// decorator produced at least one decoration while recording was on.
func (c *decorationCache) Add(d Decorator, item cachedDecoration) {
	e := c.entries[d]
	if e == nil {
		e = &cacheEntry{}
		c.entries[d] = e
	}
	e.items = append(e.items, item)
}

// Drop removes the decorator's entry, disposes any graphics it owns, and
// detaches its HTML elements. Dropping a decorator with no entry is a
// no-op.
func (c *decorationCache) Drop(d Decorator) {
	e := c.entries[d]
	if e == nil {
		return
	}
	delete(c.entries, d)
	e.dispose(c.html)
}

// Clear drops every entry.
func (c *decorationCache) Clear() {
	for d, e := range c.entries {
		delete(c.entries, d)
		e.dispose(c.html)
	}
}

// Len returns the number of cached entries.
func (c *decorationCache) Len() int {
	return len(c.entries)
}

func (e *cacheEntry) dispose(html *render.HTMLContainer) {
	for _, item := range e.items {
		switch item.kind {
		case cachedGraphic:
			if item.owner != nil {
				item.owner.Dispose()
			}
		case cachedHTML:
			if html != nil {
				html.Remove(item.html)
			}
		}
	}
	e.items = nil
}
