package entity

import "time"

// Stage is one step of the creative flow.
type Stage string

const (
	StageIntention  Stage = "intention"  // Define: who and what feeling
	StageReflection Stage = "reflection" // Gather: collect story ingredients
	StageExpression Stage = "expression" // Craft: weave and polish the message
	StageAudio      Stage = "audio"      // Audio: record/render the hug
)

// Stages lists the flow stages in order.
var Stages = []Stage{StageIntention, StageReflection, StageExpression, StageAudio}

// DisplayName returns the stage name shown in the UI.
func (s Stage) DisplayName() string {
	switch s {
	case StageIntention:
		return "Define"
	case StageReflection:
		return "Gather"
	case StageExpression:
		return "Craft"
	case StageAudio:
		return "Audio"
	}
	return string(s)
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	for _, known := range Stages {
		if s == known {
			return true
		}
	}
	return false
}

// Index returns the position of s in the flow, or -1 for unknown stages.
func (s Stage) Index() int {
	for i, known := range Stages {
		if s == known {
			return i
		}
	}
	return -1
}

// StoryPrompt is one AI-generated story starter shown during the Gather stage.
type StoryPrompt struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Ingredient is one (prompt, content) pair the user contributed toward the
// final message. IDs are monotonic within a session; order is insertion order
// and determines weaving order.
type Ingredient struct {
	ID        int64  `json:"id"`
	Prompt    string `json:"prompt"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// CreativeFlowSession is the central aggregate of one Soul Hug creation flow.
type CreativeFlowSession struct {
	SessionID     string
	RecipientName string
	Anchor        string // the feeling the recipient should experience
	Occasion      string
	Tone          string
	Stage         Stage
	Prompts       []StoryPrompt // replaceable wholesale, one set per anchor/occasion/tone
	Ingredients   []Ingredient
	Descriptors   []string // free-text descriptor set, display order preserved
	FinalMessage  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NextIngredientID returns a unique id for a new ingredient, monotonic with
// respect to the existing ones even when the wall clock repeats.
func (s *CreativeFlowSession) NextIngredientID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, ing := range s.Ingredients {
		if ing.ID >= id {
			id = ing.ID + 1
		}
	}
	return id
}
