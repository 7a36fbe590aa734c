package notify

import (
	"sync"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
)

// LoginOverlay holds last_login_at values delivered by push while an account
// list is on screen. The overlay is merged over the authoritative snapshot
// on render and wins until the next snapshot replaces everything; it never
// touches other locally edited fields.
type LoginOverlay struct {
	mu   sync.Mutex
	seen map[uint]time.Time
}

func NewLoginOverlay() *LoginOverlay {
	return &LoginOverlay{seen: make(map[uint]time.Time)}
}

// Observe records a pushed login timestamp for one account.
func (o *LoginOverlay) Observe(accountID uint, at time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen[accountID] = at
}

// Merge applies the overlay onto a snapshot of accounts, returning a new
// slice. Accounts without an overlay entry pass through unchanged.
func (o *LoginOverlay) Merge(accounts []models.Account) []models.Account {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]models.Account, len(accounts))
	copy(out, accounts)
	for i := range out {
		if at, ok := o.seen[out[i].ID]; ok {
			t := at
			out[i].LastLoginAt = &t
		}
	}
	return out
}

// Reset drops the overlay; called when a fresh authoritative snapshot
// arrives.
func (o *LoginOverlay) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = make(map[uint]time.Time)
}
