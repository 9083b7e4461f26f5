package promptbrain

import (
	"strings"
	"testing"
)

func TestGeneratePromptDeterministic(t *testing.T) {
	ctx := PromptContext{
		RelationshipType: CloseFriend,
		Tone:             ToneWarm,
		Occasion:         OccasionBirthday,
		Emotion:          EmotionGratitude,
		RecipientName:    "Sarah",
		MessageLength:    LengthMedium,
	}

	first := GeneratePrompt(ctx)
	second := GeneratePrompt(ctx)

	if first.SystemPrompt != second.SystemPrompt {
		t.Error("system prompt differs between identical calls")
	}
	if first.UserPrompt != second.UserPrompt {
		t.Error("user prompt differs between identical calls")
	}
}

func TestGeneratePromptSections(t *testing.T) {
	tests := []struct {
		name        string
		ctx         PromptContext
		wantHeaders []string
		skipHeaders []string
	}{
		{
			name: "all sections present",
			ctx: PromptContext{
				RelationshipType: FamilyParent,
				Tone:             ToneHeartfelt,
				Occasion:         OccasionHoliday,
				Emotion:          EmotionLove,
				MessageLength:    LengthExtended,
				CustomContext:    "They just moved across the country.",
			},
			wantHeaders: []string{
				"RELATIONSHIP CONTEXT:",
				"TONE GUIDANCE:",
				"EMOTIONAL CORE:",
				"OCCASION CONTEXT:",
				"MESSAGE LENGTH:",
				"PERSONALIZATION GUIDELINES:",
				"ADDITIONAL CONTEXT:",
			},
		},
		{
			name: "no occasion omits occasion section",
			ctx: PromptContext{
				RelationshipType: CloseFriend,
				Tone:             ToneSincere,
				Emotion:          EmotionGratitude,
			},
			wantHeaders: []string{"RELATIONSHIP CONTEXT:", "MESSAGE LENGTH:"},
			skipHeaders: []string{"OCCASION CONTEXT:", "ADDITIONAL CONTEXT:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GeneratePrompt(tt.ctx)
			for _, h := range tt.wantHeaders {
				if !strings.Contains(got.SystemPrompt, h) {
					t.Errorf("system prompt missing section %q", h)
				}
			}
			for _, h := range tt.skipHeaders {
				if strings.Contains(got.SystemPrompt, h) {
					t.Errorf("system prompt should not contain section %q", h)
				}
			}
			if strings.Contains(got.SystemPrompt, "\n\n\n") {
				t.Error("system prompt contains empty section gap")
			}
		})
	}
}

func TestGeneratePromptFallbacks(t *testing.T) {
	got := GeneratePrompt(PromptContext{
		RelationshipType: "imaginary_bond",
		Tone:             "sardonic",
		Emotion:          "ennui",
	})

	if !strings.Contains(got.SystemPrompt, relationshipPrompts[CloseFriend].SystemContext) {
		t.Error("unknown relationship should fall back to close_friend context")
	}
	if !strings.Contains(got.SystemPrompt, toneModifiers[ToneHeartfelt]) {
		t.Error("unknown tone should fall back to heartfelt modifier")
	}
	if !strings.Contains(got.SystemPrompt, emotionGuidance[EmotionGratitude]) {
		t.Error("unknown emotion should fall back to gratitude guidance")
	}
	if !strings.Contains(got.SystemPrompt, lengthGuidelines[LengthMedium]) {
		t.Error("empty length should fall back to medium guideline")
	}
}

func TestBuildUserPrompt(t *testing.T) {
	tests := []struct {
		name string
		ctx  PromptContext
		want string
	}{
		{
			name: "full context",
			ctx: PromptContext{
				RelationshipType: CloseFriend,
				Tone:             ToneWarm,
				Occasion:         OccasionBirthday,
				Emotion:          EmotionGratitude,
				RecipientName:    "Sarah",
				MessageLength:    LengthMedium,
			},
			want: "Please write a warm message to Sarah expressing gratitude for their birthday. The relationship is close friend and the message should be medium length.",
		},
		{
			name: "minimal context",
			ctx: PromptContext{
				RelationshipType: RomanticPartner,
				Tone:             ToneHeartfelt,
				Emotion:          EmotionLove,
			},
			want: "Please write a heartfelt message expressing love. The relationship is romantic partner.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildUserPrompt(tt.ctx); got != tt.want {
				t.Errorf("user prompt = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSuggestedElementsDeduplicate(t *testing.T) {
	got := suggestedElements(PromptContext{
		RelationshipType: CloseFriend,
		Occasion:         OccasionBirthday,
		Emotion:          EmotionGratitude,
	})

	seen := make(map[string]struct{})
	for _, e := range got {
		if _, dup := seen[e]; dup {
			t.Errorf("duplicate suggested element %q", e)
		}
		seen[e] = struct{}{}
	}
	if len(got) == 0 {
		t.Fatal("expected suggested elements for close_friend context")
	}
	if got[0] != "friendship milestones" {
		t.Errorf("first element = %q, relationship hints should come first", got[0])
	}
}

func TestGenerateVariations(t *testing.T) {
	ctx := PromptContext{
		RelationshipType: Colleague,
		Tone:             ToneProfessional,
		Emotion:          EmotionAdmiration,
	}

	variations := GenerateVariations(ctx, 3)
	if len(variations) != 3 {
		t.Fatalf("got %d variations, want 3", len(variations))
	}
	if strings.Contains(variations[0].SystemPrompt, "VARIATION") {
		t.Error("base variation should not carry a variation directive")
	}
	for i := 1; i < len(variations); i++ {
		if !strings.Contains(variations[i].SystemPrompt, "VARIATION") {
			t.Errorf("variation %d missing directive", i+1)
		}
	}

	if got := GenerateVariations(ctx, 0); len(got) != 1 {
		t.Errorf("count below 1 should yield the base prompt only, got %d", len(got))
	}
}

func TestAvailableOptions(t *testing.T) {
	opts := AvailableOptions()
	if len(opts.RelationshipTypes) != len(relationshipPrompts) {
		t.Errorf("relationship options = %d, want %d", len(opts.RelationshipTypes), len(relationshipPrompts))
	}
	if len(opts.Tones) != len(toneModifiers) {
		t.Errorf("tone options = %d, want %d", len(opts.Tones), len(toneModifiers))
	}
	if len(opts.Occasions) != len(occasionContexts) {
		t.Errorf("occasion options = %d, want %d", len(opts.Occasions), len(occasionContexts))
	}
	if len(opts.Emotions) != len(emotionGuidance) {
		t.Errorf("emotion options = %d, want %d", len(opts.Emotions), len(emotionGuidance))
	}
	if len(opts.MessageLengths) != len(lengthGuidelines) {
		t.Errorf("length options = %d, want %d", len(opts.MessageLengths), len(lengthGuidelines))
	}
}
