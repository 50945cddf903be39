// Package artist turns the four solved words into a celebration image via
// Google's image generation API. Strictly decorative: every failure here is
// logged and swallowed by the caller, never fatal to the run.
package artist

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const promptTemplate = "Generate an image that visually represents the following four words:\n" +
	"```\n%s\n```\nMake the image in the style of `%s` and be creative."

// styles is the pool of art styles sampled per run.
var styles = []string{
	"abstract art",
	"surrealism",
	"pop art",
	"impressionism",
	"cubism",
	"modern art",
	"fantasy illustration",
	"digital art",
	"watercolor painting",
	"oil painting",
	"collage",
	"pixel art",
	"graffiti",
	"cartoon style",
	"photorealism",
	"minimalism",
	"vintage poster",
	"art deco",
	"steampunk",
	"retro style",
	"futuristic design",
	"nature scene",
	"urban landscape",
	"whimsical illustration",
	"children's book illustration",
	"gothic art",
	"folk art",
	"expressionism",
	"baroque style",
	"renaissance painting",
	"abstract expressionism",
	"studio ghibli",
}

func buildPrompt(words []string, style string) string {
	return fmt.Sprintf(promptTemplate, strings.Join(words, ", "), style)
}

// Artwork is a generated image plus the prompt that produced it. The prompt
// is surfaced in the replay next to the image.
type Artwork struct {
	Prompt string
	PNG    []byte
}

// Generator creates artwork from solved words.
type Generator struct {
	client *genai.Client
	model  string
	log    *zap.Logger
	pick   func(n int) int
}

// NewGenerator builds a generator backed by the GenAI API.
func NewGenerator(ctx context.Context, apiKey, model string, log *zap.Logger) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("artist: API key is required")
	}
	if model == "" {
		model = "imagen-3.0-generate-002"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Generator{client: client, model: model, log: log, pick: rand.Intn}, nil
}

// Generate produces one image representing the given words.
func (g *Generator) Generate(ctx context.Context, words []string) (Artwork, error) {
	style := styles[g.pick(len(styles))]
	prompt := buildPrompt(words, style)

	g.log.Info("generating artwork",
		zap.String("model", g.model),
		zap.String("style", style),
		zap.Strings("words", words))

	resp, err := g.client.Models.GenerateImages(ctx, g.model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	})
	if err != nil {
		return Artwork{}, fmt.Errorf("generate image: %w", err)
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return Artwork{}, fmt.Errorf("no image returned")
	}

	return Artwork{Prompt: prompt, PNG: resp.GeneratedImages[0].Image.ImageBytes}, nil
}
