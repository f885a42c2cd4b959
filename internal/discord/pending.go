package discord

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// pendingTTL bounds how long an undecided submission stays claimable. Button
// custom IDs cannot carry the full submission, so state lives here.
const pendingTTL = 24 * time.Hour

// PendingSubmission holds a submitted drop awaiting a reviewer decision.
type PendingSubmission struct {
	Team          string
	Tier          string
	Source        string
	Item          string
	DiscordID     string
	Username      string
	ScreenshotURL string
	CreatedAt     time.Time
}

type pendingStore struct {
	mu      sync.Mutex
	entries map[string]*PendingSubmission
}

func newPendingStore() *pendingStore {
	return &pendingStore{entries: make(map[string]*PendingSubmission)}
}

// Add stores a pending submission and returns its reference ID.
func (p *pendingStore) Add(sub *PendingSubmission) string {
	id := uuid.NewString()
	sub.CreatedAt = time.Now()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.prune()
	p.entries[id] = sub
	return id
}

// Take removes and returns the pending submission, or nil if it was already
// decided or expired.
func (p *pendingStore) Take(id string) *PendingSubmission {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub, ok := p.entries[id]
	if !ok {
		return nil
	}
	delete(p.entries, id)
	if time.Since(sub.CreatedAt) > pendingTTL {
		return nil
	}
	return sub
}

// Put restores a submission after a failed decision so reviewers can retry.
func (p *pendingStore) Put(id string, sub *PendingSubmission) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[id] = sub
}

// prune drops expired entries. Caller must hold the mutex.
func (p *pendingStore) prune() {
	for id, sub := range p.entries {
		if time.Since(sub.CreatedAt) > pendingTTL {
			delete(p.entries, id)
		}
	}
}
