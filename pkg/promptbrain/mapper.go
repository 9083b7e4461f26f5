package promptbrain

import "strings"

// The mappers below turn free-text session fields (anchor, tone, occasion,
// length) into typed axes via ordered keyword rules. Rules are evaluated top
// to bottom and the first match wins, so overlapping keywords resolve
// deterministically. Matching is case-insensitive substring containment.

type relationshipRule struct {
	keywords []string
	result   RelationshipType
}

var relationshipRules = []relationshipRule{
	{[]string{"love", "romantic"}, RomanticPartner},
	{[]string{"family", "parent", "mom", "dad"}, FamilyParent},
	{[]string{"child", "son", "daughter"}, FamilyChild},
	{[]string{"sibling", "brother", "sister"}, FamilySibling},
	{[]string{"friend"}, CloseFriend},
	{[]string{"work", "colleague"}, Colleague},
}

// MapRelationship infers the relationship axis from the anchor text.
// Anchors with no matching keyword default to close_friend.
func MapRelationship(anchor string) RelationshipType {
	lower := strings.ToLower(anchor)
	for _, rule := range relationshipRules {
		if containsAny(lower, rule.keywords) {
			return rule.result
		}
	}
	return CloseFriend
}

type emotionRule struct {
	keywords []string
	result   EmotionType
}

var emotionRules = []emotionRule{
	{[]string{"love"}, EmotionLove},
	{[]string{"grateful", "thank"}, EmotionGratitude},
	{[]string{"proud"}, EmotionPride},
	{[]string{"happy", "joy"}, EmotionJoy},
	{[]string{"excited"}, EmotionExcitement},
	{[]string{"hope"}, EmotionHope},
	{[]string{"admire"}, EmotionAdmiration},
	{[]string{"encourage"}, EmotionEncouragement},
}

// MapEmotion infers the emotional core from the anchor text, defaulting to
// gratitude.
func MapEmotion(anchor string) EmotionType {
	lower := strings.ToLower(anchor)
	for _, rule := range emotionRules {
		if containsAny(lower, rule.keywords) {
			return rule.result
		}
	}
	return EmotionGratitude
}

type toneRule struct {
	keyword string
	result  ToneType
}

var toneRules = []toneRule{
	{"warm", ToneWarm},
	{"playful", TonePlayful},
	{"sincere", ToneSincere},
	{"professional", ToneProfessional},
	{"casual", ToneCasual},
	{"encouraging", ToneEncouraging},
	{"celebratory", ToneCelebratory},
	{"comforting", ToneComforting},
	{"grateful", ToneGrateful},
}

// MapTone maps free-text tone to the tone axis. Empty or unrecognized input
// defaults to heartfelt.
func MapTone(tone string) ToneType {
	lower := strings.ToLower(tone)
	for _, rule := range toneRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.result
		}
	}
	return ToneHeartfelt
}

type occasionRule struct {
	keyword string
	result  OccasionType
}

var occasionRules = []occasionRule{
	{"birthday", OccasionBirthday},
	{"anniversary", OccasionAnniversary},
	{"graduation", OccasionGraduation},
	{"promotion", OccasionPromotion},
	{"wedding", OccasionWedding},
	{"holiday", OccasionHoliday},
	{"congratulations", OccasionCongratulations},
	{"thinking", OccasionThinkingOfYou},
}

// MapOccasion maps free-text occasion to the occasion axis. Empty input maps
// to the empty occasion (no OCCASION CONTEXT section); any other unrecognized
// text maps to just_because.
func MapOccasion(occasion string) OccasionType {
	if occasion == "" {
		return ""
	}
	lower := strings.ToLower(occasion)
	for _, rule := range occasionRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.result
		}
	}
	return OccasionJustBecause
}

// MapMessageLength maps a duration token (30sec, 1min, 1.5min, 2min) to the
// length axis. Empty or unrecognized input defaults to medium. The 1.5min
// check runs before 1min so the longer token cannot be shadowed.
func MapMessageLength(length string) MessageLength {
	if length == "" {
		return LengthMedium
	}
	switch {
	case strings.Contains(length, "30s"):
		return LengthBrief
	case strings.Contains(length, "1.5min"):
		return LengthExtended
	case strings.Contains(length, "2min"):
		return LengthDetailed
	case strings.Contains(length, "1min"):
		return LengthMedium
	}
	return LengthMedium
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
