package commerce

import (
	"time"

	"github.com/hibiscushealth/backend/store"
)

// Service carries the single long-lived store client and the resolved
// collection set. One instance is shared by every handler.
type Service struct {
	store store.Store
	cols  Collections

	now func() time.Time
}

func NewService(st store.Store, cols Collections) *Service {
	return &Service{
		store: st,
		cols:  cols,
		now:   time.Now,
	}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339Nano)
}
