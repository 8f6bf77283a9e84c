package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SessionRepository holds every live game session. Nothing is persisted;
// a restart wipes all games.
type SessionRepository interface {
	Save(s *Session)
	Get(id uuid.UUID) (*Session, bool)
	Delete(id uuid.UUID)
	DeleteIdle(maxIdle time.Duration) int
	Sweep(ctx context.Context, interval, maxIdle time.Duration)
}

type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewMemoryRepository() SessionRepository {
	return &memoryRepository{sessions: make(map[uuid.UUID]*Session)}
}

func (r *memoryRepository) Save(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *memoryRepository) Get(id uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *memoryRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.Discard()
		delete(r.sessions, id)
	}
}

func (r *memoryRepository) DeleteIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, s := range r.sessions {
		if s.IdleFor(now) > maxIdle {
			s.Discard()
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Sweep drops idle sessions on a fixed interval until ctx is done. Run it on
// its own goroutine.
func (r *memoryRepository) Sweep(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.DeleteIdle(maxIdle); n > 0 {
				logrus.Infof("Swept %d idle game sessions", n)
			}
		}
	}
}
