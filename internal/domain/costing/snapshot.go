package costing

import "github.com/erp/costing/internal/domain/shared"

// Snapshot is the immutable transaction dataset an engine query operates on.
// Callers must not mutate it while a computation is in flight; the engine
// itself never writes to it and keeps no reference past the call.
type Snapshot struct {
	Items     []Item     `json:"items"`
	Purchases []Purchase `json:"purchases"`
	Sales     []Sale     `json:"sales"`
	Payments  []Payment  `json:"payments"`
}

// ItemByID finds a catalog entry. A missing item is a data-quality condition
// for most operations, so absence is reported via the bool, not an error.
func (s *Snapshot) ItemByID(id string) (*Item, bool) {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i], true
		}
	}
	return nil, false
}

// Validate enforces the structural contract of every entry point: the snapshot
// itself must be present. Empty slices are fine; nil snapshots are not.
func (s *Snapshot) Validate() error {
	if s == nil {
		return shared.ErrInvalidSnapshot
	}
	return nil
}
