package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dinogen/dinogen/internal/config"
	"google.golang.org/genai"
)

type Provider interface {
	GenerateQuestion(ctx context.Context) (*Question, error)
	GenerateImage(ctx context.Context, name, visualDescription string) (*Image, error)
}

type geminiProvider struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// NewGeminiProvider builds the genai-backed provider. The client reads
// GEMINI_API_KEY from the environment on its own.
func NewGeminiProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{
		client:     client,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
	}, nil
}

// questionSchema forces the text model into the exact JSON shape of Question,
// instead of hoping the prompt alone keeps it honest.
var questionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"correctName": {Type: genai.TypeString},
		"distractors": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"funFact":           {Type: genai.TypeString},
		"visualDescription": {Type: genai.TypeString},
	},
	Required: []string{"correctName", "distractors", "funFact", "visualDescription"},
}

func (p *geminiProvider) GenerateQuestion(ctx context.Context) (*Question, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(
		ctx,
		p.textModel,
		genai.Text(questionPrompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   questionSchema,
		},
	)
	if err != nil {
		log.WithError(err).Error("Failed to generate question content")
		return nil, fmt.Errorf("%w: generate content: %v", ErrGeneration, err)
	}

	raw := result.Text()
	log.Debugf("Raw question payload from model:\n%s", raw)

	if raw == "" {
		return nil, fmt.Errorf("%w: empty model response", ErrGeneration)
	}

	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")

	var question Question
	if err := json.Unmarshal([]byte(clean), &question); err != nil {
		log.WithError(err).Errorf("Failed to decode question JSON. Cleaned content:\n%s", clean)
		return nil, fmt.Errorf("%w: decode question JSON: %v", ErrGeneration, err)
	}

	return &question, nil
}

func (p *geminiProvider) GenerateImage(ctx context.Context, name, visualDescription string) (*Image, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateImages(
		ctx,
		p.imageModel,
		BuildImagePrompt(name, visualDescription),
		&genai.GenerateImagesConfig{
			NumberOfImages: 1,
			AspectRatio:    "16:9",
		},
	)
	if err != nil {
		log.WithError(err).Error("Failed to generate round image")
		return nil, fmt.Errorf("%w: generate image: %v", ErrGeneration, err)
	}

	if len(result.GeneratedImages) == 0 || result.GeneratedImages[0].Image == nil {
		return nil, fmt.Errorf("%w: model returned no image", ErrGeneration)
	}

	img := result.GeneratedImages[0].Image
	if len(img.ImageBytes) == 0 {
		return nil, fmt.Errorf("%w: model returned an empty image", ErrGeneration)
	}

	mime := img.MIMEType
	if mime == "" {
		mime = "image/png"
	}

	return &Image{MIMEType: mime, Data: img.ImageBytes}, nil
}
