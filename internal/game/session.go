package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// FetchFunc produces one fully generated round. The service injects the real
// generator; tests inject scripted versions.
type FetchFunc func(ctx context.Context) (*Round, error)

// pendingRound is the single prefetch slot. done is closed exactly once when
// the fetch resolves; cancel aborts the underlying generation calls when the
// result is no longer wanted.
type pendingRound struct {
	done   chan struct{}
	round  *Round
	err    error
	cancel context.CancelFunc
}

func (p *pendingRound) resolve(round *Round, err error) {
	p.round = round
	p.err = err
	close(p.done)
}

// Session is one player's game: the phase machine, the current round, the
// scoreboard and the prefetch slot. Every field behind mu is only touched
// under it; fetches always run with the lock released.
type Session struct {
	ID      uuid.UUID
	Limiter *rate.Limiter

	mu         sync.Mutex
	phase      Phase
	round      *Round
	answer     *Answer
	stats      Stats
	message    string
	pending    *pendingRound
	lastActive time.Time
}

func NewSession(id uuid.UUID, limiter *rate.Limiter) *Session {
	return &Session{
		ID:         id,
		Limiter:    limiter,
		phase:      PhaseIdle,
		lastActive: time.Now(),
	}
}

const loadFailedMessage = "Could not fetch a new dinosaur. Please try again."

// Start loads the first round. Anywhere but idle it is a no-op, so a
// double-click or a replayed request cannot restart a game in progress.
func (s *Session) Start(ctx context.Context, fetch FetchFunc) {
	s.mu.Lock()
	if s.phase != PhaseIdle {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseLoadingFirst
	s.lastActive = time.Now()
	s.mu.Unlock()

	s.loadRound(ctx, fetch)
}

// Submit records the player's answer. Only the first answer of a round is
// accepted; anything after that is ignored and accepted is false.
func (s *Session) Submit(choice string) (answer *Answer, accepted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReady || s.round == nil {
		return s.answer, false
	}

	correct := choice == s.round.CorrectName
	s.answer = &Answer{Choice: choice, Correct: correct}
	s.stats.record(correct)
	s.phase = PhaseAnswered
	s.lastActive = time.Now()

	return s.answer, true
}

// Advance consumes the prefetched round. It blocks until the pending fetch
// resolves; a caller arriving while another advance is in flight joins that
// wait instead of starting a second fetch.
func (s *Session) Advance(ctx context.Context, fetch FetchFunc) {
	s.mu.Lock()

	switch s.phase {
	case PhaseAnswered:
		if s.pending == nil {
			// Nothing prefetched, so fetch in place.
			s.phase = PhaseLoadingNext
			s.lastActive = time.Now()
			s.mu.Unlock()

			s.loadRound(ctx, fetch)
			return
		}
		s.phase = PhaseLoadingNext
	case PhaseLoadingNext:
	default:
		s.mu.Unlock()
		return
	}

	p := s.pending
	s.lastActive = time.Now()
	s.mu.Unlock()

	if p == nil {
		// An in-place fetch from another caller is completing the
		// transition; there is nothing to wait on here.
		return
	}

	<-p.done

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != p {
		// Another waiter already consumed this fetch.
		return
	}
	s.pending = nil

	if p.err != nil {
		s.fail()
		return
	}
	s.install(ctx, p.round, fetch)
}

// Retry leaves the error phase. Any prefetch still in flight is cancelled and
// dropped first, so a stale round can never resurface after the retry.
func (s *Session) Retry(ctx context.Context, fetch FetchFunc) {
	s.mu.Lock()
	if s.phase != PhaseError {
		s.mu.Unlock()
		return
	}
	if s.pending != nil {
		s.pending.cancel()
		s.pending = nil
	}
	s.phase = PhaseLoadingFirst
	s.lastActive = time.Now()
	s.mu.Unlock()

	s.loadRound(ctx, fetch)
}

// Discard cancels any in-flight prefetch. The repository calls it when the
// session is removed.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.pending.cancel()
		s.pending = nil
	}
}

// Touch marks the session as recently used so the idle sweep keeps it.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
}

func (s *Session) IdleFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastActive)
}

// loadRound performs a synchronous fetch and installs or fails the session.
// The caller must have set a loading phase before calling it.
func (s *Session) loadRound(ctx context.Context, fetch FetchFunc) {
	round, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.fail()
		return
	}
	s.install(ctx, round, fetch)
}

// install makes round the current one and starts the next prefetch. Called
// with mu held.
func (s *Session) install(ctx context.Context, round *Round, fetch FetchFunc) {
	round.Options = shuffleOptions(round.CorrectName, round.Distractors)
	s.round = round
	s.answer = nil
	s.message = ""
	s.phase = PhaseReady
	s.lastActive = time.Now()

	s.startPrefetch(ctx, fetch)
}

// fail moves the session to the error phase. Called with mu held.
func (s *Session) fail() {
	s.round = nil
	s.answer = nil
	s.message = loadFailedMessage
	s.phase = PhaseError
	s.lastActive = time.Now()
}

// startPrefetch fills the prefetch slot if it is empty. The fetch runs
// detached from the triggering request so it survives the response, and
// stays cancellable through the slot. Called with mu held.
func (s *Session) startPrefetch(ctx context.Context, fetch FetchFunc) {
	if s.pending != nil {
		return
	}

	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p := &pendingRound{done: make(chan struct{}), cancel: cancel}
	s.pending = p

	go func() {
		round, err := fetch(fetchCtx)
		p.resolve(round, err)
		cancel()
	}()
}

// Snapshot is a consistent copy of the externally visible session state.
type Snapshot struct {
	Phase   Phase
	Round   *Round
	Answer  *Answer
	Stats   Stats
	Message string
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Phase:   s.phase,
		Stats:   s.stats,
		Message: s.message,
	}
	if s.round != nil {
		round := *s.round
		round.Distractors = append([]string(nil), s.round.Distractors...)
		round.Options = append([]string(nil), s.round.Options...)
		snap.Round = &round
	}
	if s.answer != nil {
		answer := *s.answer
		snap.Answer = &answer
	}
	return snap
}
