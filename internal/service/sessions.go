package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/zamzamtour/umrah-voucher/internal/models"
)

// Session is one collected voucher kept for follow-up requests
// (preview, regeneration) without re-reading the spreadsheet.
type Session struct {
	ID           string          `json:"id"`
	Sheet        string          `json:"sheet"`
	PackageTitle string          `json:"package_title"`
	Voucher      *models.Voucher `json:"voucher"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Sessions is a bounded TTL store for collected vouchers. Expired or
// evicted entries simply force a fresh collection.
type Sessions struct {
	cache *expirable.LRU[string, *Session]
}

// NewSessions creates the store. Size bounds memory, ttl bounds
// staleness against sheet edits.
func NewSessions(size int, ttl time.Duration) *Sessions {
	return &Sessions{
		cache: expirable.NewLRU[string, *Session](size, nil, ttl),
	}
}

// Put stores a collected voucher and returns its session id.
func (s *Sessions) Put(sheet, pkgTitle string, v *models.Voucher) *Session {
	sess := &Session{
		ID:           uuid.NewString(),
		Sheet:        sheet,
		PackageTitle: pkgTitle,
		Voucher:      v,
		CreatedAt:    time.Now(),
	}
	s.cache.Add(sess.ID, sess)
	return sess
}

// Get returns the session for an id, if it has not expired.
func (s *Sessions) Get(id string) (*Session, bool) {
	return s.cache.Get(id)
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	return s.cache.Len()
}
