package promptbrain

// relationshipGuidance carries the two relationship-specific prompt fragments:
// the framing sentence for the system prompt and the personalization hints.
type relationshipGuidance struct {
	SystemContext    string
	PersonalityHints string
}

var relationshipPrompts = map[RelationshipType]relationshipGuidance{
	RomanticPartner: {
		SystemContext:    "You are crafting a message between romantic partners who share deep intimacy and affection.",
		PersonalityHints: "Include references to shared experiences, inside jokes, future dreams together, and expressions of deep love and appreciation.",
	},
	Spouse: {
		SystemContext:    "You are writing to a life partner with whom there is a committed, enduring bond.",
		PersonalityHints: "Reference the journey you've shared, mutual support through challenges, and the depth of partnership beyond romance.",
	},
	FamilyParent: {
		SystemContext:    "You are communicating with a parent figure who has provided guidance and care.",
		PersonalityHints: "Express gratitude for their guidance, acknowledge their sacrifices, and show respect for their wisdom and experience.",
	},
	FamilyChild: {
		SystemContext:    "You are writing to your child with parental love and pride.",
		PersonalityHints: "Express unconditional love, pride in their growth, hopes for their future, and supportive encouragement.",
	},
	FamilySibling: {
		SystemContext:    "You are communicating with a sibling who shares your family history and experiences.",
		PersonalityHints: "Reference shared childhood memories, family traditions, mutual understanding, and sibling bond.",
	},
	CloseFriend: {
		SystemContext:    "You are writing to a dear friend who knows you deeply and shares significant life experiences.",
		PersonalityHints: "Include shared memories, inside references, mutual support, and the comfort of true friendship.",
	},
	Colleague: {
		SystemContext:    "You are communicating with a professional colleague in a work context.",
		PersonalityHints: "Maintain professional tone while showing appreciation, acknowledge their contributions, and express respect.",
	},
	Mentor: {
		SystemContext:    "You are writing to someone who has guided your growth and development.",
		PersonalityHints: "Express gratitude for their guidance, acknowledge how they've influenced your path, show respect for their expertise.",
	},
	Student: {
		SystemContext:    "You are communicating with someone you have guided or taught.",
		PersonalityHints: "Express pride in their progress, offer continued support, and acknowledge their efforts and achievements.",
	},
	Acquaintance: {
		SystemContext:    "You are writing to someone you know but don't have a deeply personal relationship with.",
		PersonalityHints: "Keep tone appropriate for the level of familiarity, be warm but not overly intimate.",
	},
}

var toneModifiers = map[ToneType]string{
	ToneWarm:         "Use gentle, caring language that conveys comfort and affection.",
	TonePlayful:      "Include light humor, playful language, and a sense of fun and joy.",
	ToneSincere:      "Use earnest, genuine language that conveys deep authenticity.",
	ToneProfessional: "Maintain appropriate boundaries while being personable and respectful.",
	ToneCasual:       "Use relaxed, conversational language as if speaking naturally.",
	ToneHeartfelt:    "Express deep emotions with vulnerability and openness.",
	ToneEncouraging:  "Focus on uplifting language that inspires and motivates.",
	ToneCelebratory:  "Use joyful, enthusiastic language that marks a special moment.",
	ToneComforting:   "Provide solace and support with gentle, understanding language.",
	ToneGrateful:     "Express appreciation and thankfulness throughout the message.",
}

var occasionContexts = map[OccasionType]string{
	OccasionBirthday:        "This is a celebration of their life and another year of growth and experiences.",
	OccasionAnniversary:     "This marks a significant milestone in your relationship or their life journey.",
	OccasionGraduation:      "This celebrates an important achievement and transition to a new chapter.",
	OccasionPromotion:       "This acknowledges their professional growth and hard work paying off.",
	OccasionWedding:         "This celebrates love, commitment, and the beginning of a new life chapter.",
	OccasionHoliday:         "This connects to the spirit and traditions of the holiday season.",
	OccasionApology:         "This seeks to make amends and repair any harm done to the relationship.",
	OccasionCongratulations: "This celebrates their success, achievement, or good news.",
	OccasionSympathy:        "This offers comfort and support during a difficult time.",
	OccasionThinkingOfYou:   "This reaches out to let them know they're in your thoughts and heart.",
	OccasionJustBecause:     "This expresses feelings without needing a special occasion as the reason.",
}

var emotionGuidance = map[EmotionType]string{
	EmotionLove:          "Express deep affection, care, and the importance of this person in your life.",
	EmotionGratitude:     "Focus on specific things you appreciate about them and their impact on your life.",
	EmotionPride:         "Celebrate their accomplishments and express how proud you are of who they are.",
	EmotionJoy:           "Share in their happiness and express the delight you feel about their good fortune.",
	EmotionExcitement:    "Convey enthusiasm about their news, plans, or shared experiences.",
	EmotionHope:          "Express optimism about their future and confidence in their abilities.",
	EmotionCompassion:    "Show understanding, empathy, and support for what they're going through.",
	EmotionAdmiration:    "Express respect for their qualities, actions, or character.",
	EmotionNostalgia:     "Reference shared memories and the meaningful history you've built together.",
	EmotionEncouragement: "Provide motivation, support, and belief in their capabilities.",
}

var lengthGuidelines = map[MessageLength]string{
	LengthBrief:    "Keep the message concise and impactful, around 30-50 words. Focus on one key sentiment.",
	LengthMedium:   "Develop 2-3 main points with moderate detail, around 75-125 words.",
	LengthExtended: "Include multiple themes with good detail and examples, around 150-200 words.",
	LengthDetailed: "Create a comprehensive message with rich detail and multiple elements, 250+ words.",
}

// Axis orderings returned by AvailableOptions. Kept explicit so the API
// surface is stable regardless of map iteration order.
var (
	relationshipOrder = []RelationshipType{
		RomanticPartner, Spouse, FamilyParent, FamilyChild, FamilySibling,
		CloseFriend, Colleague, Mentor, Student, Acquaintance,
	}
	toneOrder = []ToneType{
		ToneWarm, TonePlayful, ToneSincere, ToneProfessional, ToneCasual,
		ToneHeartfelt, ToneEncouraging, ToneCelebratory, ToneComforting, ToneGrateful,
	}
	occasionOrder = []OccasionType{
		OccasionBirthday, OccasionAnniversary, OccasionGraduation, OccasionPromotion,
		OccasionWedding, OccasionHoliday, OccasionApology, OccasionCongratulations,
		OccasionSympathy, OccasionThinkingOfYou, OccasionJustBecause,
	}
	emotionOrder = []EmotionType{
		EmotionLove, EmotionGratitude, EmotionPride, EmotionJoy, EmotionExcitement,
		EmotionHope, EmotionCompassion, EmotionAdmiration, EmotionNostalgia, EmotionEncouragement,
	}
	lengthOrder = []MessageLength{LengthBrief, LengthMedium, LengthExtended, LengthDetailed}
)
