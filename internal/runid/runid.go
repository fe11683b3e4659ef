// Package runid names design runs. IDs appear in log records, JSON output
// and FASTA headers so one run's artifacts can be matched up.
package runid

import (
	"sync"

	"github.com/google/uuid"
)

// Generator hands out run identifiers.
type Generator interface {
	Generate() string
}

// UUIDv7 generates time-sortable identifiers. Stateless.
type UUIDv7 struct{}

func (UUIDv7) Generate() string { return uuid.Must(uuid.NewV7()).String() }

// Fixed returns predetermined IDs in order, then repeats the last one.
// Tests use it for stable golden output.
type Fixed struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixed creates a Fixed generator; with no ids it returns "run".
func NewFixed(ids ...string) *Fixed {
	if len(ids) == 0 {
		ids = []string{"run"}
	}
	return &Fixed{ids: ids}
}

func (f *Fixed) Generate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.ids[f.idx]
	if f.idx < len(f.ids)-1 {
		f.idx++
	}
	return id
}

// Short is the first 8 hex digits, enough for FASTA headers.
func Short(id string) string {
	if u, err := uuid.Parse(id); err == nil {
		return u.String()[:8]
	}
	return id
}
