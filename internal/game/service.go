package game

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dinogen/dinogen/internal/config"
	"github.com/dinogen/dinogen/internal/generation"
)

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrRateLimited     = errors.New("too many round requests")
	ErrInvalidChoice   = errors.New("choice is not one of the round options")
)

type Service interface {
	CreateSession(ctx context.Context) (*Session, error)
	Current(ctx context.Context, sessionID string) (*SnapshotResponse, error)
	Start(ctx context.Context, sessionID string) (*SnapshotResponse, error)
	SubmitAnswer(ctx context.Context, sessionID, choice string) (*SnapshotResponse, error)
	Advance(ctx context.Context, sessionID string) (*SnapshotResponse, error)
	Retry(ctx context.Context, sessionID string) (*SnapshotResponse, error)
	Abandon(ctx context.Context, sessionID string) error
}

type service struct {
	repo      SessionRepository
	generator generation.Service
	timeout   time.Duration
	rateEvery time.Duration
	rateBurst int
}

func NewService(repo SessionRepository, generator generation.Service, cfg *config.Config) Service {
	return &service{
		repo:      repo,
		generator: generator,
		timeout:   cfg.RoundTimeout,
		rateEvery: cfg.RateEvery,
		rateBurst: cfg.RateBurst,
	}
}

func (s *service) CreateSession(ctx context.Context) (*Session, error) {
	log := config.WithContext(ctx)

	sess := NewSession(uuid.New(), rate.NewLimiter(rate.Every(s.rateEvery), s.rateBurst))
	s.repo.Save(sess)

	log.Infof("Created game session %s", sess.ID)
	return sess, nil
}

func (s *service) Current(ctx context.Context, sessionID string) (*SnapshotResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.Touch()
	return s.toResponse(sess, sess.Snapshot(), false), nil
}

// Start drives the first round. The fetch is detached from the request
// context so a dropped connection cannot leave the session stuck loading.
func (s *service) Start(ctx context.Context, sessionID string) (*SnapshotResponse, error) {
	log := config.WithContext(ctx)

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Limiter.Allow() {
		return nil, ErrRateLimited
	}

	sess.Start(context.WithoutCancel(ctx), s.fetchRound)

	snap := sess.Snapshot()
	if snap.Phase == PhaseError {
		log.Warnf("First round failed to load for session %s", sess.ID)
	}
	return s.toResponse(sess, snap, false), nil
}

func (s *service) SubmitAnswer(ctx context.Context, sessionID, choice string) (*SnapshotResponse, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	snap := sess.Snapshot()
	if snap.Phase == PhaseReady && !containsOption(snap.Round, choice) {
		return nil, ErrInvalidChoice
	}

	answer, accepted := sess.Submit(choice)

	celebrate := accepted && answer != nil && answer.Correct
	return s.toResponse(sess, sess.Snapshot(), celebrate), nil
}

// Advance swaps in the prefetched round, blocking until it resolves.
func (s *service) Advance(ctx context.Context, sessionID string) (*SnapshotResponse, error) {
	log := config.WithContext(ctx)

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Limiter.Allow() {
		return nil, ErrRateLimited
	}

	sess.Advance(context.WithoutCancel(ctx), s.fetchRound)

	snap := sess.Snapshot()
	if snap.Phase == PhaseError {
		log.Warnf("Next round failed to load for session %s", sess.ID)
	}
	return s.toResponse(sess, snap, false), nil
}

func (s *service) Retry(ctx context.Context, sessionID string) (*SnapshotResponse, error) {
	log := config.WithContext(ctx)

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Limiter.Allow() {
		return nil, ErrRateLimited
	}

	sess.Retry(context.WithoutCancel(ctx), s.fetchRound)

	snap := sess.Snapshot()
	if snap.Phase == PhaseError {
		log.Warnf("Retry failed to load a round for session %s", sess.ID)
	}
	return s.toResponse(sess, snap, false), nil
}

func (s *service) Abandon(ctx context.Context, sessionID string) error {
	log := config.WithContext(ctx)

	sess, err := s.session(sessionID)
	if err != nil {
		return err
	}

	s.repo.Delete(sess.ID)
	log.Infof("Abandoned game session %s", sess.ID)
	return nil
}

func (s *service) session(sessionID string) (*Session, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	sess, ok := s.repo.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// fetchRound generates one round under the configured timeout, so a hung
// model call fails the round instead of blocking an advance forever.
func (s *service) fetchRound(ctx context.Context) (*Round, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	generated, err := s.generator.GenerateRound(ctx)
	if err != nil {
		return nil, err
	}
	return newRound(generated), nil
}

func newRound(g *generation.Round) *Round {
	return &Round{
		CorrectName:       g.Question.CorrectName,
		Distractors:       append([]string(nil), g.Question.Distractors...),
		FunFact:           g.Question.FunFact,
		VisualDescription: g.Question.VisualDescription,
		ImageURI:          g.ImageURI,
	}
}

func containsOption(r *Round, choice string) bool {
	if r == nil {
		return false
	}
	for _, opt := range r.Options {
		if opt == choice {
			return true
		}
	}
	return false
}

func (s *service) toResponse(sess *Session, snap Snapshot, celebrate bool) *SnapshotResponse {
	resp := &SnapshotResponse{
		SessionID: sess.ID.String(),
		Phase:     snap.Phase,
		Message:   snap.Message,
		Celebrate: celebrate,
		Stats: StatsView{
			Correct:    snap.Stats.Correct,
			Incorrect:  snap.Stats.Incorrect,
			Streak:     snap.Stats.Streak,
			BestStreak: snap.Stats.BestStreak,
			Rank:       RankFor(snap.Stats.Correct),
		},
	}

	if snap.Round != nil {
		resp.Round = &RoundView{
			ImageURI: snap.Round.ImageURI,
			Options:  snap.Round.Options,
		}
	}

	if snap.Phase == PhaseAnswered && snap.Answer != nil && snap.Round != nil {
		resp.Result = &ResultView{
			Choice:      snap.Answer.Choice,
			Correct:     snap.Answer.Correct,
			CorrectName: snap.Round.CorrectName,
			FunFact:     snap.Round.FunFact,
		}
	}

	return resp
}
