package promptbrain

import (
	"fmt"
	"strings"
)

// GeneratePrompt composes the system and user prompts for the given context.
// Unknown axis values fall back to the close_friend / heartfelt / gratitude /
// medium table entries so the output is always well formed. The result is
// deterministic: equal contexts produce byte-identical prompts.
func GeneratePrompt(ctx PromptContext) GeneratedPrompt {
	rel, ok := relationshipPrompts[ctx.RelationshipType]
	if !ok {
		rel = relationshipPrompts[CloseFriend]
	}
	tone, ok := toneModifiers[ctx.Tone]
	if !ok {
		tone = toneModifiers[ToneHeartfelt]
	}
	emotion, ok := emotionGuidance[ctx.Emotion]
	if !ok {
		emotion = emotionGuidance[EmotionGratitude]
	}
	length := ctx.MessageLength
	if length == "" {
		length = LengthMedium
	}
	lengthGuideline, ok := lengthGuidelines[length]
	if !ok {
		lengthGuideline = lengthGuidelines[LengthMedium]
	}

	var occasion string
	if ctx.Occasion != "" {
		occasion = occasionContexts[ctx.Occasion]
	}

	return GeneratedPrompt{
		SystemPrompt:      buildSystemPrompt(rel, tone, emotion, occasion, lengthGuideline, ctx),
		UserPrompt:        buildUserPrompt(ctx),
		Context:           ctx,
		SuggestedElements: suggestedElements(ctx),
	}
}

// buildSystemPrompt assembles the fixed-header sections in canonical order.
// Sections without source text (no occasion, no custom context) are omitted
// entirely rather than emitted empty.
func buildSystemPrompt(rel relationshipGuidance, tone, emotion, occasion, lengthGuideline string, ctx PromptContext) string {
	sections := []string{
		"You are an expert at crafting heartfelt, personalized messages that deeply resonate with recipients.",
		"RELATIONSHIP CONTEXT: " + rel.SystemContext,
		"TONE GUIDANCE: " + tone,
		"EMOTIONAL CORE: " + emotion,
	}
	if occasion != "" {
		sections = append(sections, "OCCASION CONTEXT: "+occasion)
	}
	sections = append(sections, "MESSAGE LENGTH: "+lengthGuideline)
	sections = append(sections, "PERSONALIZATION GUIDELINES: "+rel.PersonalityHints)
	if ctx.CustomContext != "" {
		sections = append(sections, "ADDITIONAL CONTEXT: "+ctx.CustomContext)
	}
	sections = append(sections, "IMPORTANT: Create a message that feels authentic, personal, and deeply meaningful. Avoid generic phrases and instead focus on specific, heartfelt sentiments that would genuinely touch the recipient.")

	return strings.Join(sections, "\n\n")
}

func buildUserPrompt(ctx PromptContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Please write a %s message ", ctx.Tone)
	if ctx.RecipientName != "" {
		fmt.Fprintf(&b, "to %s ", ctx.RecipientName)
	}
	fmt.Fprintf(&b, "expressing %s", ctx.Emotion)
	if ctx.Occasion != "" {
		fmt.Fprintf(&b, " for their %s", ctx.Occasion)
	}
	fmt.Fprintf(&b, ". The relationship is %s", strings.ReplaceAll(string(ctx.RelationshipType), "_", " "))
	if ctx.MessageLength != "" {
		fmt.Fprintf(&b, " and the message should be %s length", ctx.MessageLength)
	}
	b.WriteString(".")
	return b.String()
}

// suggestedElements collects keyword hints from the relationship, occasion and
// emotion axes, deduplicated with first occurrence order preserved.
func suggestedElements(ctx PromptContext) []string {
	var elements []string

	switch ctx.RelationshipType {
	case RomanticPartner, Spouse:
		elements = append(elements, "shared memories", "future dreams", "daily moments", "inside jokes")
	case FamilyParent:
		elements = append(elements, "childhood memories", "life lessons learned", "gratitude for guidance")
	case FamilyChild:
		elements = append(elements, "pride in growth", "unconditional love", "hopes for future")
	case CloseFriend:
		elements = append(elements, "friendship milestones", "shared adventures", "mutual support")
	case Colleague:
		elements = append(elements, "professional achievements", "teamwork", "mutual respect")
	}

	switch ctx.Occasion {
	case OccasionBirthday:
		elements = append(elements, "year in review", "birthday wishes", "celebration of life")
	case OccasionGraduation:
		elements = append(elements, "academic journey", "future possibilities", "achievement recognition")
	case OccasionWedding:
		elements = append(elements, "love celebration", "future together", "commitment honor")
	}

	switch ctx.Emotion {
	case EmotionGratitude:
		elements = append(elements, "specific examples", "impact on life", "appreciation details")
	case EmotionLove:
		elements = append(elements, "reasons why", "emotional connection", "deep feelings")
	case EmotionPride:
		elements = append(elements, "specific accomplishments", "character growth", "admiration")
	}

	seen := make(map[string]struct{}, len(elements))
	deduped := elements[:0]
	for _, e := range elements {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		deduped = append(deduped, e)
	}
	return deduped
}

// GenerateVariations returns count prompts for the same context. The first is
// the base prompt; each subsequent one appends a numbered variation directive
// asking for a different emotional angle.
func GenerateVariations(ctx PromptContext, count int) []GeneratedPrompt {
	if count < 1 {
		count = 1
	}
	variations := make([]GeneratedPrompt, 0, count)
	variations = append(variations, GeneratePrompt(ctx))
	for i := 1; i < count; i++ {
		variant := GeneratePrompt(ctx)
		variant.SystemPrompt += fmt.Sprintf("\n\nVARIATION %d: Focus on a slightly different emotional angle or use alternative phrasing while maintaining the same core sentiment.", i+1)
		variations = append(variations, variant)
	}
	return variations
}

// AvailableOptions lists every valid member of each axis.
func AvailableOptions() Options {
	return Options{
		RelationshipTypes: append([]RelationshipType(nil), relationshipOrder...),
		Tones:             append([]ToneType(nil), toneOrder...),
		Occasions:         append([]OccasionType(nil), occasionOrder...),
		Emotions:          append([]EmotionType(nil), emotionOrder...),
		MessageLengths:    append([]MessageLength(nil), lengthOrder...),
	}
}
