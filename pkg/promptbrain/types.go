// Package promptbrain builds structured AI prompts from a closed set of typed
// axes (relationship, tone, occasion, emotion, length). It is pure: the same
// PromptContext always produces byte-identical prompts and the package does
// no I/O.
package promptbrain

// RelationshipType classifies the bond between sender and recipient.
type RelationshipType string

const (
	RomanticPartner RelationshipType = "romantic_partner"
	Spouse          RelationshipType = "spouse"
	FamilyParent    RelationshipType = "family_parent"
	FamilyChild     RelationshipType = "family_child"
	FamilySibling   RelationshipType = "family_sibling"
	CloseFriend     RelationshipType = "close_friend"
	Colleague       RelationshipType = "colleague"
	Mentor          RelationshipType = "mentor"
	Student         RelationshipType = "student"
	Acquaintance    RelationshipType = "acquaintance"
)

// ToneType is the voice of the message.
type ToneType string

const (
	ToneWarm         ToneType = "warm"
	TonePlayful      ToneType = "playful"
	ToneSincere      ToneType = "sincere"
	ToneProfessional ToneType = "professional"
	ToneCasual       ToneType = "casual"
	ToneHeartfelt    ToneType = "heartfelt"
	ToneEncouraging  ToneType = "encouraging"
	ToneCelebratory  ToneType = "celebratory"
	ToneComforting   ToneType = "comforting"
	ToneGrateful     ToneType = "grateful"
)

// OccasionType is the event the message marks, if any.
type OccasionType string

const (
	OccasionBirthday        OccasionType = "birthday"
	OccasionAnniversary     OccasionType = "anniversary"
	OccasionGraduation      OccasionType = "graduation"
	OccasionPromotion       OccasionType = "promotion"
	OccasionWedding         OccasionType = "wedding"
	OccasionHoliday         OccasionType = "holiday"
	OccasionApology         OccasionType = "apology"
	OccasionCongratulations OccasionType = "congratulations"
	OccasionSympathy        OccasionType = "sympathy"
	OccasionThinkingOfYou   OccasionType = "thinking_of_you"
	OccasionJustBecause     OccasionType = "just_because"
)

// EmotionType is the emotional core the message expresses.
type EmotionType string

const (
	EmotionLove          EmotionType = "love"
	EmotionGratitude     EmotionType = "gratitude"
	EmotionPride         EmotionType = "pride"
	EmotionJoy           EmotionType = "joy"
	EmotionExcitement    EmotionType = "excitement"
	EmotionHope          EmotionType = "hope"
	EmotionCompassion    EmotionType = "compassion"
	EmotionAdmiration    EmotionType = "admiration"
	EmotionNostalgia     EmotionType = "nostalgia"
	EmotionEncouragement EmotionType = "encouragement"
)

// MessageLength is the target message size.
type MessageLength string

const (
	LengthBrief    MessageLength = "brief"    // 30-50 words
	LengthMedium   MessageLength = "medium"   // 75-125 words
	LengthExtended MessageLength = "extended" // 150-200 words
	LengthDetailed MessageLength = "detailed" // 250+ words
)

// PromptContext is the typed axis bundle consumed by GeneratePrompt.
// Occasion and MessageLength may be empty; empty MessageLength means medium.
type PromptContext struct {
	RelationshipType RelationshipType
	Tone             ToneType
	Occasion         OccasionType
	Emotion          EmotionType
	RecipientName    string
	SenderName       string
	MessageLength    MessageLength
	CustomContext    string
}

// GeneratedPrompt is the composition output: the system instruction, the user
// instruction, the context they were built from, and keyword hints for the UI.
type GeneratedPrompt struct {
	SystemPrompt      string
	UserPrompt        string
	Context           PromptContext
	SuggestedElements []string
}

// Options enumerates every valid member of each axis, in table order.
type Options struct {
	RelationshipTypes []RelationshipType
	Tones             []ToneType
	Occasions         []OccasionType
	Emotions          []EmotionType
	MessageLengths    []MessageLength
}
