package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type questionResult struct {
	q   *Question
	err error
}

type imageResult struct {
	img *Image
	err error
}

type fakeProvider struct {
	questionResults []questionResult
	imageResults    []imageResult

	questionCalls int
	imageCalls    int
	imageName     string
	imageDesc     string
}

func (f *fakeProvider) GenerateQuestion(ctx context.Context) (*Question, error) {
	if f.questionCalls >= len(f.questionResults) {
		panic("fakeProvider: unexpected extra question call")
	}
	res := f.questionResults[f.questionCalls]
	f.questionCalls++
	return res.q, res.err
}

func (f *fakeProvider) GenerateImage(ctx context.Context, name, visualDescription string) (*Image, error) {
	if f.imageCalls >= len(f.imageResults) {
		panic("fakeProvider: unexpected extra image call")
	}
	res := f.imageResults[f.imageCalls]
	f.imageCalls++
	f.imageName = name
	f.imageDesc = visualDescription
	return res.img, res.err
}

func validQuestion() *Question {
	return &Question{
		CorrectName:       "Therizinosaurus",
		Distractors:       []string{"Deinocheirus", "Gallimimus", "Segnosaurus"},
		FunFact:           "Its claws reached nearly a meter in length.",
		VisualDescription: "A tall feathered herbivore with enormous claws beside a river.",
	}
}

func pngImage() *Image {
	return &Image{MIMEType: "image/png", Data: []byte{0x89, 0x50, 0x4e, 0x47}}
}

func TestGenerateRoundQuestionThenImage(t *testing.T) {
	provider := &fakeProvider{
		questionResults: []questionResult{{q: validQuestion()}},
		imageResults:    []imageResult{{img: pngImage()}},
	}
	svc := NewService(provider)

	round, err := svc.GenerateRound(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Therizinosaurus", round.Question.CorrectName)
	assert.Equal(t, "Therizinosaurus", provider.imageName)
	assert.Equal(t, validQuestion().VisualDescription, provider.imageDesc)
	assert.Contains(t, round.ImageURI, "data:image/png;base64,")
	assert.Equal(t, 1, provider.questionCalls)
	assert.Equal(t, 1, provider.imageCalls)
}

func TestGenerateRoundQuestionFailureSkipsImage(t *testing.T) {
	provider := &fakeProvider{
		questionResults: []questionResult{{err: errors.New("model unavailable")}},
	}
	svc := NewService(provider)

	round, err := svc.GenerateRound(context.Background())
	require.Error(t, err)
	assert.Nil(t, round)
	assert.Equal(t, 1, provider.questionCalls, "transport errors must not be retried")
	assert.Equal(t, 0, provider.imageCalls)
}

func TestGenerateRoundImageFailureAbortsRound(t *testing.T) {
	provider := &fakeProvider{
		questionResults: []questionResult{{q: validQuestion()}},
		imageResults:    []imageResult{{err: errors.New("quota exceeded")}},
	}
	svc := NewService(provider)

	round, err := svc.GenerateRound(context.Background())
	require.Error(t, err)
	assert.Nil(t, round)
	assert.Equal(t, 1, provider.imageCalls, "transport errors must not be retried")
}

func TestGenerateRoundRetriesMalformedQuestionOnce(t *testing.T) {
	bad := validQuestion()
	bad.Distractors = []string{"Deinocheirus", "therizinosaurus", "Segnosaurus"}

	provider := &fakeProvider{
		questionResults: []questionResult{{q: bad}, {q: validQuestion()}},
		imageResults:    []imageResult{{img: pngImage()}},
	}
	svc := NewService(provider)

	round, err := svc.GenerateRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, provider.questionCalls)
	assert.NotNil(t, round)
}

func TestGenerateRoundMalformedQuestionTwiceFails(t *testing.T) {
	bad := validQuestion()
	bad.Distractors = []string{"Deinocheirus", "Gallimimus"}

	provider := &fakeProvider{
		questionResults: []questionResult{{q: bad}, {q: bad}},
	}
	svc := NewService(provider)

	round, err := svc.GenerateRound(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.Nil(t, round)
	assert.Equal(t, 2, provider.questionCalls, "only one re-ask is allowed")
	assert.Equal(t, 0, provider.imageCalls)
}

func TestGenerateRoundRetriesUnexpectedMIMEOnce(t *testing.T) {
	provider := &fakeProvider{
		questionResults: []questionResult{{q: validQuestion()}},
		imageResults: []imageResult{
			{img: &Image{MIMEType: "text/html", Data: []byte("<html>")}},
			{img: &Image{MIMEType: "image/jpeg", Data: []byte{0xff, 0xd8}}},
		},
	}
	svc := NewService(provider)

	round, err := svc.GenerateRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, provider.imageCalls)
	assert.Contains(t, round.ImageURI, "data:image/jpeg;base64,")
}

func TestGenerateRoundUnexpectedMIMETwiceFails(t *testing.T) {
	provider := &fakeProvider{
		questionResults: []questionResult{{q: validQuestion()}},
		imageResults: []imageResult{
			{img: &Image{MIMEType: "text/html", Data: []byte("<html>")}},
			{img: &Image{MIMEType: "application/json", Data: []byte("{}")}},
		},
	}
	svc := NewService(provider)

	round, err := svc.GenerateRound(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGeneration))
	assert.Nil(t, round)
	assert.Equal(t, 2, provider.imageCalls, "only one re-ask is allowed")
}

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"blank correct name", func(q *Question) { q.CorrectName = "  " }, true},
		{"blank fun fact", func(q *Question) { q.FunFact = "" }, true},
		{"blank visual description", func(q *Question) { q.VisualDescription = "" }, true},
		{"two distractors", func(q *Question) { q.Distractors = q.Distractors[:2] }, true},
		{"four distractors", func(q *Question) { q.Distractors = append(q.Distractors, "Oviraptor") }, true},
		{"blank distractor", func(q *Question) { q.Distractors[1] = " " }, true},
		{"distractor equals correct name", func(q *Question) { q.Distractors[0] = "Therizinosaurus" }, true},
		{"distractor equals correct name ignoring case", func(q *Question) { q.Distractors[2] = "THERIZINOSAURUS" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)

			err := validateQuestion(q)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAllowedImageMIME(t *testing.T) {
	assert.True(t, allowedImageMIME("image/png"))
	assert.True(t, allowedImageMIME("image/jpeg"))
	assert.True(t, allowedImageMIME("image/webp"))
	assert.False(t, allowedImageMIME("image/gif"))
	assert.False(t, allowedImageMIME(""))
}
