package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/domain/entity"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/pkg/promptbrain"
)

// hugUsecase orchestrates the AI message operations. Weave, Stitch and
// Regenerate are credit-gated: the cost is deducted before the backend call
// and is not refunded when the backend fails, because every gated operation
// still resolves to usable content through its deterministic fallback.
type hugUsecase struct {
	generation domain.GenerationClient
	creditRepo domain.CreditRepository
	costs      config.CreditsConfig
	logger     *slog.Logger
}

// NewHugUsecase creates a new HugUsecase instance.
func NewHugUsecase(
	generation domain.GenerationClient,
	creditRepo domain.CreditRepository,
	costs config.CreditsConfig,
	logger *slog.Logger,
) domain.HugUsecase {
	return &hugUsecase{
		generation: generation,
		creditRepo: creditRepo,
		costs:      costs,
		logger:     logger,
	}
}

const defaultRecipient = "someone special"

// lengthTarget maps a duration token to a word target and its guidance text.
func lengthTarget(messageLength string) (int, string) {
	switch messageLength {
	case "30sec":
		return 75, "approximately 75 words (30 seconds reading time)"
	case "1.5min":
		return 225, "approximately 225 words (1.5 minutes reading time)"
	case "2min":
		return 300, "approximately 300 words (2 minutes reading time)"
	default:
		return 150, "approximately 150 words (1 minute reading time)"
	}
}

func (u *hugUsecase) chargeCredits(ctx context.Context, userID string, cost int, operation string) error {
	if cost <= 0 {
		return nil
	}
	ok, err := u.creditRepo.Deduct(ctx, userID, cost)
	if err != nil {
		return fmt.Errorf("charge for %s: %w", operation, err)
	}
	if !ok {
		u.logger.Info("credit gate refused", "operation", operation, "user_id", userID, "cost", cost)
		return domain.NewInsufficientCreditError(cost)
	}
	return nil
}

func (u *hugUsecase) Weave(ctx context.Context, req domain.WeaveRequest) (string, error) {
	if req.UserID == "" {
		return "", domain.NewInvalidInputError("user id is required")
	}
	if len(req.Ingredients) == 0 {
		return "", domain.NewInvalidInputError("at least one ingredient is required to weave a message")
	}

	if err := u.chargeCredits(ctx, req.UserID, u.costs.WeaveCost, "weave"); err != nil {
		return "", err
	}

	recipient := req.RecipientName
	if recipient == "" {
		recipient = defaultRecipient
	}

	_, lengthGuidance := lengthTarget(req.MessageLength)

	contents := make([]string, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		contents[i] = fmt.Sprintf("%q", ing.Content)
	}

	promptCtx := promptbrain.PromptContext{
		RelationshipType: promptbrain.MapRelationship(req.Anchor),
		Tone:             promptbrain.MapTone(req.Tone),
		Occasion:         promptbrain.MapOccasion(req.Occasion),
		Emotion:          promptbrain.MapEmotion(req.Anchor),
		RecipientName:    recipient,
		MessageLength:    promptbrain.MapMessageLength(req.MessageLength),
		CustomContext:    "Weave these specific ingredients into the message: " + strings.Join(contents, ", "),
	}
	base := promptbrain.GeneratePrompt(promptCtx)

	var ingredientsText strings.Builder
	for i, ing := range req.Ingredients {
		fmt.Fprintf(&ingredientsText, "INGREDIENT %d:\nPrompt: %q\nStory/Content: %s\n---\n\n", i+1, ing.Prompt, ing.Content)
	}

	systemPrompt := fmt.Sprintf(`%s

CRITICAL WEAVING REQUIREMENTS:
1. You MUST incorporate content from ALL %d ingredients provided
2. Use the EXACT stories, details, and specific content from each ingredient
3. The core emotional anchor to convey is: %q
4. Write directly to %s in second person
5. TARGET LENGTH: %s
6. Reference specific details, moments, actions, and examples from the ingredients
7. Create smooth transitions between different stories/ingredients
8. Make it feel authentic - like you personally witnessed these moments
9. End with a meaningful conclusion that ties everything together

FORBIDDEN:
- Do NOT write generic statements about %s
- Do NOT skip any ingredients - use them ALL
- Do NOT create content not mentioned in the ingredients
- Do NOT write vague platitudes

Your goal is to create a flowing, cohesive message that makes %s feel %q by incorporating every single ingredient's content.`,
		base.SystemPrompt, len(req.Ingredients), req.Anchor, recipient, lengthGuidance, recipient, recipient, req.Anchor)

	userPrompt := fmt.Sprintf(`Create a personal message for %s using ALL these ingredients. Each ingredient contains specific content that MUST be incorporated into the final message:

%s
REQUIREMENTS:
- Use content from ALL %d ingredients above
- Make %s feel %q
- Include specific details, stories, and examples from each ingredient
- Create a flowing narrative that connects all the stories naturally
- Write directly to %s

Create the complete message now:`,
		recipient, ingredientsText.String(), len(req.Ingredients), recipient, req.Anchor, recipient)

	message, err := u.generation.Generate(ctx, domain.GenerationRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  0.7,
	})
	if err != nil {
		u.logger.Warn("weave backend failed, serving fallback", "user_id", req.UserID, "error", err)
		return weaveFallback(recipient, req.Anchor, req.Ingredients), nil
	}
	return message, nil
}

// weaveFallback composes the message locally: salutation, ingredient contents
// in collection order, and a closing line that names the anchor.
func weaveFallback(recipient, anchor string, ingredients []domain.IngredientInput) string {
	contents := make([]string, len(ingredients))
	for i, ing := range ingredients {
		contents[i] = ing.Content
	}

	return fmt.Sprintf(`Dear %s,

I wanted to take a moment to share something with you.

%s

These thoughts have been on my mind, and I felt it was important to express them. I hope this message conveys how much you mean to me and helps you feel %s.

With love and appreciation.`, recipient, strings.Join(contents, "\n\n"), anchor)
}

func (u *hugUsecase) Stitch(ctx context.Context, req domain.StitchRequest) (string, error) {
	if req.UserID == "" {
		return "", domain.NewInvalidInputError("user id is required")
	}
	if strings.TrimSpace(req.CurrentMessage) == "" {
		return "", domain.NewInvalidInputError("current message is required to stitch")
	}

	if err := u.chargeCredits(ctx, req.UserID, u.costs.StitchCost, "stitch"); err != nil {
		return "", err
	}

	recipient := req.RecipientName
	if recipient == "" {
		recipient = defaultRecipient
	}

	promptCtx := promptbrain.PromptContext{
		RelationshipType: promptbrain.MapRelationship(req.Anchor),
		Tone:             promptbrain.ToneHeartfelt,
		Emotion:          promptbrain.MapEmotion(req.Anchor),
		RecipientName:    recipient,
		CustomContext:    "This is a refinement task. Polish and improve the existing message while maintaining its core sentiment and personal elements.",
	}
	base := promptbrain.GeneratePrompt(promptCtx)

	focus := "Focus on overall flow and impact"
	if req.Improvements != "" {
		focus = "Focus on: " + req.Improvements
	}

	systemPrompt := fmt.Sprintf(`%s

REFINEMENT GUIDELINES:
1. Maintain the core feeling: %q
2. Keep the personal voice and authentic tone
3. Improve flow, clarity, and emotional impact
4. Fix any awkward phrasing or transitions
5. Ensure the message effectively conveys %q to %s
6. Preserve all specific personal details and memories
7. Make minimal changes - enhance, don't rewrite
8. %s

Return only the improved message, no explanations.`,
		base.SystemPrompt, req.Anchor, req.Anchor, recipient, focus)

	userPrompt := fmt.Sprintf(`Please refine and improve this message to %s, ensuring it effectively conveys %q:

%s

Enhance the message while preserving its authentic voice and personal elements.`,
		recipient, req.Anchor, req.CurrentMessage)

	message, err := u.generation.Generate(ctx, domain.GenerationRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  0.5,
	})
	if err != nil {
		u.logger.Warn("stitch backend failed, serving fallback", "user_id", req.UserID, "error", err)
		return normalizeWhitespace(req.CurrentMessage), nil
	}
	return message, nil
}

// normalizeWhitespace trims every line, drops empty ones and rejoins with
// blank lines. Running it twice yields the same result.
func normalizeWhitespace(message string) string {
	lines := strings.Split(message, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n\n")
}

func (u *hugUsecase) Regenerate(ctx context.Context, req domain.RegenerateRequest) (string, error) {
	if req.UserID == "" {
		return "", domain.NewInvalidInputError("user id is required")
	}
	if strings.TrimSpace(req.CurrentMessage) == "" {
		return "", domain.NewInvalidInputError("current message is required to regenerate")
	}

	if err := u.chargeCredits(ctx, req.UserID, u.costs.RegenerateCost, "regenerate"); err != nil {
		return "", err
	}

	recipient := req.RecipientName
	if recipient == "" {
		recipient = defaultRecipient
	}

	length := req.MessageLength
	if length == "" {
		length = "medium"
	}
	tone := req.Tone
	if tone == "" {
		tone = "heartfelt"
	}
	occasion := req.Occasion
	if occasion == "" {
		occasion = "general connection"
	}

	systemPrompt := fmt.Sprintf(`You are an AI assistant specialized in creating heartfelt, personalized messages called "Soul Hugs." Your role is to regenerate an existing message with fresh language while maintaining the same emotional core and personal touches.

Key guidelines:
- Keep the same emotional anchor and personal ingredients
- Use different phrasing and structure than the original
- Maintain the warmth and authenticity
- Target length: %s (brief=30-50 words, medium=75-125 words, extended=150-200 words)
- Tone: %s
- Occasion: %s`, length, tone, occasion)

	var ingredientLines strings.Builder
	for _, ing := range req.Ingredients {
		fmt.Fprintf(&ingredientLines, "- %s: %s\n", ing.Prompt, ing.Content)
	}

	displayOccasion := req.Occasion
	if displayOccasion == "" {
		displayOccasion = "Just because"
	}
	displayTone := req.Tone
	if displayTone == "" {
		displayTone = "Heartfelt"
	}

	userPrompt := fmt.Sprintf(`Please regenerate this Soul Hug message with fresh language while keeping the same emotional essence:

Recipient: %s
Emotional Anchor: %s
Occasion: %s
Tone: %s

Personal Ingredients:
%s
Current Message:
%q

Please create a new version that feels fresh but maintains the same emotional impact and personal touches.`,
		recipient, req.Anchor, displayOccasion, displayTone, ingredientLines.String(), req.CurrentMessage)

	message, err := u.generation.Generate(ctx, domain.GenerationRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  0.8,
		MaxTokens:    200,
	})
	if err != nil {
		u.logger.Warn("regenerate backend failed, serving fallback", "user_id", req.UserID, "error", err)
		return normalizeWhitespace(req.CurrentMessage), nil
	}
	return message, nil
}

// promptFallbacks is the positional replacement list for story prompts that
// fail validation, and the full result when the backend is unavailable.
var promptFallbacks = []string{
	"When they showed incredible strength and courage",
	"That time they proved their worth clearly",
	"How they naturally makes others feel better",
	"Their gift they doesn't fully recognize yet",
	"When they chose kindness over easy path",
	"The way they brightens everyone's whole day",
	"What people say about them when absent",
	"That moment they stood up for someone",
	"Why they deserves to know their impact",
}

var bannedPromptTerms = []string{"smell", "scent", "odor", "fragrance", "aroma"}

const promptCount = 9

func (u *hugUsecase) GeneratePrompts(ctx context.Context, req domain.GeneratePromptsRequest) ([]entity.StoryPrompt, error) {
	recipient := req.RecipientName
	if recipient == "" {
		recipient = defaultRecipient
	}

	systemPrompt := fmt.Sprintf(`You are generating prompts for someone who wants their recipient to feel %q when they read the message. Generate exactly 9 prompts (5-6 words each) that inspire stories proving the recipient deserves to feel this way.

KEY INSIGHT: The writer wants %s to feel %q when they receive this message. Create prompts that inspire stories about times when %s demonstrated qualities, actions, or character that prove they deserve to feel %q.

RULES:
- 5-6 words exactly
- Focus on evidence that supports them feeling %q
- No smell/scent references
- Create curiosity about specific moments
- Include %s's name naturally when it fits

Return JSON only:
{"prompts": [{"id": "1", "text": "prompt text here", "icon": ""}]}`,
		req.Anchor, recipient, req.Anchor, recipient, req.Anchor, req.Anchor, recipient)

	var userPrompt strings.Builder
	fmt.Fprintf(&userPrompt, "Generate 9 personalized prompts (5-6 words each) for someone expressing %q to %s", req.Anchor, recipient)
	if req.Occasion != "" {
		fmt.Fprintf(&userPrompt, " for %s", req.Occasion)
	}
	if req.Tone != "" {
		fmt.Fprintf(&userPrompt, " with a %s tone", req.Tone)
	}
	fmt.Fprintf(&userPrompt, ".\n\nContext: This is for a heartfelt message about feeling %q. Create prompts that will inspire authentic, specific stories rather than generic responses. Leave icon field empty.", req.Anchor)

	raw, err := u.generation.Generate(ctx, domain.GenerationRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt.String(),
		Temperature:  0.5,
		MaxTokens:    500,
		JSONResponse: true,
	})
	if err != nil {
		u.logger.Info("prompt backend unavailable, serving fallback prompts", "error", err)
		return fallbackStoryPrompts(), nil
	}

	var parsed struct {
		Prompts []entity.StoryPrompt `json:"prompts"`
	}
	if err := sonic.UnmarshalString(raw, &parsed); err != nil {
		u.logger.Warn("prompt response unparseable, serving fallback prompts", "error", err)
		return fallbackStoryPrompts(), nil
	}

	prompts := make([]entity.StoryPrompt, 0, promptCount)
	for i := 0; i < promptCount; i++ {
		var candidate entity.StoryPrompt
		if i < len(parsed.Prompts) {
			candidate = parsed.Prompts[i]
		}
		text := sanitizePromptText(candidate.Text)
		if !validPromptText(text) {
			text = promptFallbacks[i]
		}
		id := candidate.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		prompts = append(prompts, entity.StoryPrompt{ID: id, Text: text, Icon: ""})
	}
	return prompts, nil
}

func fallbackStoryPrompts() []entity.StoryPrompt {
	prompts := make([]entity.StoryPrompt, len(promptFallbacks))
	for i, text := range promptFallbacks {
		prompts[i] = entity.StoryPrompt{ID: strconv.Itoa(i + 1), Text: text, Icon: ""}
	}
	return prompts
}

// sanitizePromptText strips everything except word characters and spaces,
// which removes emojis and stray punctuation from backend output.
func sanitizePromptText(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ' ':
			b.WriteRune(r)
		case r == '\'':
			// keep contractions like "doesn't"
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// validPromptText enforces the 5-6 word window and the banned-term list.
func validPromptText(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, term := range bannedPromptTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	words := len(strings.Fields(text))
	return words >= 5 && words <= 6
}
