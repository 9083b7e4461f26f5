package promptbrain

import "testing"

func TestMapRelationship(t *testing.T) {
	tests := []struct {
		anchor string
		want   RelationshipType
	}{
		{"the love of my life", RomanticPartner},
		{"my romantic partner", RomanticPartner},
		{"my mom who raised me", FamilyParent},
		{"proud of my daughter", FamilyChild},
		{"my big brother", FamilySibling},
		{"my best friend since college", CloseFriend},
		{"a colleague from work", Colleague},
		{"someone I deeply respect", CloseFriend}, // no keyword, default
		{"", CloseFriend},
	}

	for _, tt := range tests {
		t.Run(tt.anchor, func(t *testing.T) {
			if got := MapRelationship(tt.anchor); got != tt.want {
				t.Errorf("MapRelationship(%q) = %v, want %v", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestMapRelationshipRuleOrder(t *testing.T) {
	// "love" outranks "friend" because the romantic rule comes first.
	if got := MapRelationship("a friend I love"); got != RomanticPartner {
		t.Errorf("got %v, want %v (earlier rule must win)", got, RomanticPartner)
	}
}

func TestMapEmotion(t *testing.T) {
	tests := []struct {
		anchor string
		want   EmotionType
	}{
		{"how much I love them", EmotionLove},
		{"so grateful for everything", EmotionGratitude},
		{"thank you for being there", EmotionGratitude},
		{"proud of what they built", EmotionPride},
		{"brings me so much joy", EmotionJoy},
		{"excited for their new chapter", EmotionExcitement},
		{"full of hope", EmotionHope},
		{"I admire their courage", EmotionAdmiration},
		{"want to encourage them", EmotionEncouragement},
		{"they mean the world", EmotionGratitude}, // no keyword, default
	}

	for _, tt := range tests {
		t.Run(tt.anchor, func(t *testing.T) {
			if got := MapEmotion(tt.anchor); got != tt.want {
				t.Errorf("MapEmotion(%q) = %v, want %v", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestMapTone(t *testing.T) {
	tests := []struct {
		tone string
		want ToneType
	}{
		{"warm", ToneWarm},
		{"Playful and light", TonePlayful},
		{"keep it professional", ToneProfessional},
		{"", ToneHeartfelt},
		{"mysterious", ToneHeartfelt},
	}

	for _, tt := range tests {
		if got := MapTone(tt.tone); got != tt.want {
			t.Errorf("MapTone(%q) = %v, want %v", tt.tone, got, tt.want)
		}
	}
}

func TestMapOccasion(t *testing.T) {
	tests := []struct {
		occasion string
		want     OccasionType
	}{
		{"her 30th birthday", OccasionBirthday},
		{"our wedding anniversary", OccasionAnniversary},
		{"college graduation", OccasionGraduation},
		{"thinking of you", OccasionThinkingOfYou},
		{"no reason at all", OccasionJustBecause},
		{"", ""}, // empty stays empty, no occasion section
	}

	for _, tt := range tests {
		if got := MapOccasion(tt.occasion); got != tt.want {
			t.Errorf("MapOccasion(%q) = %v, want %v", tt.occasion, got, tt.want)
		}
	}
}

func TestMapMessageLength(t *testing.T) {
	tests := []struct {
		length string
		want   MessageLength
	}{
		{"30sec", LengthBrief},
		{"1min", LengthMedium},
		{"1.5min", LengthExtended},
		{"2min", LengthDetailed},
		{"", LengthMedium},
		{"forever", LengthMedium},
	}

	for _, tt := range tests {
		if got := MapMessageLength(tt.length); got != tt.want {
			t.Errorf("MapMessageLength(%q) = %v, want %v", tt.length, got, tt.want)
		}
	}
}
