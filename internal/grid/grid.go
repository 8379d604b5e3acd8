// Package grid holds the live record collection behind the editable tracker
// table, together with the single "which cell is being edited" pointer.
package grid

// CellRef identifies the one cell that may be in editing state.
type CellRef struct {
	RecordID string
	Field    string
}

// Notifier receives the transient toast-style notifications the grid emits.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}

// Grid is the in-memory collection plus edit pointer for one record type.
// The same machinery serves job applications and portals; the per-type
// differences (key, field assignment, blank record) are injected.
type Grid[R any] struct {
	records  []R
	editing  *CellRef
	key      func(R) string
	apply    func(R, string, string) (R, bool)
	blank    func() R
	notifier Notifier
}

func New[R any](key func(R) string, apply func(R, string, string) (R, bool), blank func() R, notifier Notifier) *Grid[R] {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Grid[R]{key: key, apply: apply, blank: blank, notifier: notifier}
}

// Load replaces the collection, e.g. after a remote fetch. Any in-progress
// edit is abandoned.
func (g *Grid[R]) Load(records []R) {
	g.records = append([]R(nil), records...)
	g.editing = nil
}

// Records returns a copy of the collection in insertion order.
func (g *Grid[R]) Records() []R {
	return append([]R(nil), g.records...)
}

func (g *Grid[R]) Len() int { return len(g.records) }

// Editing returns the current edit pointer, or nil when no cell is open.
func (g *Grid[R]) Editing() *CellRef {
	if g.editing == nil {
		return nil
	}
	ref := *g.editing
	return &ref
}

// BeginEdit moves the edit pointer to the given cell. It always succeeds;
// a previous in-progress edit is implicitly abandoned, since its commit
// already happened on blur before the pointer could move.
func (g *Grid[R]) BeginEdit(recordID, field string) {
	g.editing = &CellRef{RecordID: recordID, Field: field}
}

// CommitEdit replaces one field of the identified record, keeping it at the
// same position, and clears the edit pointer. A missing record is a full
// no-op: neither the data nor the pointer moves.
func (g *Grid[R]) CommitEdit(recordID, field, value string) {
	idx := g.indexOf(recordID)
	if idx < 0 {
		return
	}
	g.editing = nil
	updated, ok := g.apply(g.records[idx], field, value)
	if !ok {
		g.notifier.Error("unknown field: " + field)
		return
	}
	g.records[idx] = updated
	g.notifier.Success("Updated locally")
}

// CancelEdit clears the pointer without touching data (escape semantics).
func (g *Grid[R]) CancelEdit() {
	g.editing = nil
}

// AddBlank appends a freshly keyed blank record and returns it.
func (g *Grid[R]) AddBlank() R {
	rec := g.blank()
	g.records = append(g.records, rec)
	return rec
}

// Append merges a batch of records (import or approved assistant action)
// onto the end of the collection.
func (g *Grid[R]) Append(records ...R) {
	g.records = append(g.records, records...)
}

// Remove deletes the record with the given key, preserving the order of the
// rest. Confirmation happens before this is called.
func (g *Grid[R]) Remove(recordID string) bool {
	idx := g.indexOf(recordID)
	if idx < 0 {
		return false
	}
	g.records = append(g.records[:idx], g.records[idx+1:]...)
	g.notifier.Success("Deleted locally")
	return true
}

// Find returns the record with the given key.
func (g *Grid[R]) Find(recordID string) (R, bool) {
	if idx := g.indexOf(recordID); idx >= 0 {
		return g.records[idx], true
	}
	var zero R
	return zero, false
}

func (g *Grid[R]) indexOf(recordID string) int {
	for i, rec := range g.records {
		if g.key(rec) == recordID {
			return i
		}
	}
	return -1
}
