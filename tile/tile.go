// Package tile declares the contracts between the viewport rendering core
// and the external tile subsystem. The viewport walks tile trees to build a
// scene but never loads tile content itself; loading is scheduled through a
// Requester and completes asynchronously relative to frame construction.
package tile

// LoadStatus describes how far along a tile is in its loading lifecycle.
type LoadStatus int

const (
	// LoadStatusNotLoaded means no load has been initiated.
	LoadStatusNotLoaded LoadStatus = iota

	// LoadStatusQueued means the tile is waiting in the load queue.
	LoadStatusQueued

	// LoadStatusLoading means the tile's content request is in flight.
	LoadStatusLoading

	// LoadStatusLoaded means the tile's content is resident and drawable.
	LoadStatusLoaded

	// LoadStatusNotFound means the backend has no content for this tile.
	LoadStatusNotFound

	// LoadStatusAbandoned means the load was cancelled and will not retry.
	LoadStatusAbandoned
)

// String returns the status name for logging.
func (s LoadStatus) String() string {
	switch s {
	case LoadStatusNotLoaded:
		return "not-loaded"
	case LoadStatusQueued:
		return "queued"
	case LoadStatusLoading:
		return "loading"
	case LoadStatusLoaded:
		return "loaded"
	case LoadStatusNotFound:
		return "not-found"
	case LoadStatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// IsMissing reports whether a tile in this state should be tracked as
// missing for the current frame: desired but not yet resident. Terminal
// states (loaded, not-found, abandoned) are never missing.
func (s LoadStatus) IsMissing() bool {
	switch s {
	case LoadStatusNotLoaded, LoadStatusQueued, LoadStatusLoading:
		return true
	default:
		return false
	}
}

// Tile is a single node of a tile tree. Implementations live in the tile
// subsystem; the rendering core only inspects load state and identity.
type Tile interface {
	// LoadStatus returns the tile's current lifecycle state.
	LoadStatus() LoadStatus

	// ContentID identifies the tile's content for request deduplication.
	ContentID() string
}

// Tree is a loaded tile tree that can contribute graphics to a scene.
type Tree interface {
	// ModelID identifies the model this tree displays.
	ModelID() string
}

// TreeOwner provides deferred access to a tile tree. TileTree returns nil
// until the tree has finished loading; callers that receive nil should mark
// the frame as having loading children and retry on a later frame.
type TreeOwner interface {
	TileTree() Tree
}

// TreeReference is a view's reference to one tile tree. A view may
// reference many trees (the primary model, classifiers, terrain drapes).
type TreeReference interface {
	TreeOwner() TreeOwner

	// ModelID identifies the model displayed through this reference.
	// It is available even while the tree itself is still loading.
	ModelID() string
}

// Requester schedules loads for tiles a frame wanted but did not have.
// The view parameter identifies the requesting viewport; implementations
// use it to prioritize and to cancel requests when the view closes.
// RequestTiles does not block and returns nothing: completion is observed
// on later frames via the tiles' load status.
type Requester interface {
	RequestTiles(view any, tiles []Tile)
}
