package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dinogen/dinogen/internal/config"
)

type Service interface {
	GenerateRound(ctx context.Context) (*Round, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

// GenerateRound produces one complete round: the question payload first, then
// the illustration keyed on its fields. Either failure aborts the whole
// round; a question is never reused with a second image attempt.
func (s *service) GenerateRound(ctx context.Context) (*Round, error) {
	question, err := s.question(ctx)
	if err != nil {
		return nil, err
	}

	image, err := s.image(ctx, question)
	if err != nil {
		return nil, err
	}

	return &Round{Question: *question, ImageURI: image.DataURI()}, nil
}

// question fetches a payload and validates it. A payload the model got wrong
// is thrown away and asked for once more; transport errors are never retried.
func (s *service) question(ctx context.Context) (*Question, error) {
	log := config.WithContext(ctx)

	question, err := s.provider.GenerateQuestion(ctx)
	if err != nil {
		return nil, err
	}

	if vErr := validateQuestion(question); vErr != nil {
		log.WithError(vErr).Warn("Discarding malformed question payload, asking again")

		question, err = s.provider.GenerateQuestion(ctx)
		if err != nil {
			return nil, err
		}
		if vErr := validateQuestion(question); vErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrGeneration, vErr)
		}
	}

	return question, nil
}

func (s *service) image(ctx context.Context, q *Question) (*Image, error) {
	log := config.WithContext(ctx)

	image, err := s.provider.GenerateImage(ctx, q.CorrectName, q.VisualDescription)
	if err != nil {
		return nil, err
	}

	if !allowedImageMIME(image.MIMEType) {
		log.Warnf("Discarding image with unexpected MIME type %q, asking again", image.MIMEType)

		image, err = s.provider.GenerateImage(ctx, q.CorrectName, q.VisualDescription)
		if err != nil {
			return nil, err
		}
		if !allowedImageMIME(image.MIMEType) {
			return nil, fmt.Errorf("%w: unexpected image MIME type %q", ErrGeneration, image.MIMEType)
		}
	}

	return image, nil
}

func validateQuestion(q *Question) error {
	if strings.TrimSpace(q.CorrectName) == "" {
		return errors.New("blank correct name")
	}
	if strings.TrimSpace(q.FunFact) == "" {
		return errors.New("blank fun fact")
	}
	if strings.TrimSpace(q.VisualDescription) == "" {
		return errors.New("blank visual description")
	}
	if len(q.Distractors) != 3 {
		return fmt.Errorf("expected 3 distractors, got %d", len(q.Distractors))
	}
	for _, d := range q.Distractors {
		if strings.TrimSpace(d) == "" {
			return errors.New("blank distractor")
		}
		if strings.EqualFold(d, q.CorrectName) {
			return fmt.Errorf("distractor %q duplicates the correct name", d)
		}
	}
	return nil
}

func allowedImageMIME(mime string) bool {
	switch mime {
	case "image/png", "image/jpeg", "image/webp":
		return true
	}
	return false
}
