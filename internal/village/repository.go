package village

import "time"

// Repository exposes typed create/read/update/query operations over the
// entity collections. It holds no global state: construct one and pass it
// to whatever needs it.
//
// All operations are synchronous whole-collection read-modify-write
// sequences. Within one process they are serialized by the caller's
// single-threaded use; two independent processes sharing the same store can
// still lose an update to last-write-wins. That limitation is accepted.
type Repository struct {
	collections *Collections
	clock       Clock
	idgen       IDGenerator
	logger      Logger
}

// NewRepository creates a Repository over the given collection adapter.
func NewRepository(collections *Collections, clock Clock, idgen IDGenerator, logger Logger) *Repository {
	return &Repository{
		collections: collections,
		clock:       clock,
		idgen:       idgen,
		logger:      logger,
	}
}

// now returns the current time as an ISO-8601 (RFC 3339) UTC string, the
// serialized timestamp format of every entity.
func (r *Repository) now() string {
	return r.clock.Now().UTC().Format(time.RFC3339)
}
