package types

// APIResponse is the server's unified response envelope.
type APIResponse[T any] struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// StoryPrompt is one story starter offered during the Gather stage.
type StoryPrompt struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Ingredient is one story contribution toward the final message.
type Ingredient struct {
	ID        int64  `json:"id"`
	Prompt    string `json:"prompt"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Session is the server's session snapshot.
type Session struct {
	SessionID     string        `json:"sessionId"`
	RecipientName string        `json:"recipientName"`
	Anchor        string        `json:"anchor"`
	Occasion      string        `json:"occasion,omitempty"`
	Tone          string        `json:"tone,omitempty"`
	Stage         string        `json:"stage"`
	StageName     string        `json:"stageName"`
	Prompts       []StoryPrompt `json:"aiGeneratedPrompts"`
	Ingredients   []Ingredient  `json:"ingredients"`
	Descriptors   []string      `json:"descriptors"`
	FinalMessage  string        `json:"finalMessage,omitempty"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
}

// CreateSessionRequest creates a new session.
type CreateSessionRequest struct {
	SessionID     string `json:"sessionId"`
	RecipientName string `json:"recipientName,omitempty"`
	Anchor        string `json:"anchor,omitempty"`
	Occasion      string `json:"occasion,omitempty"`
	Tone          string `json:"tone,omitempty"`
}

// UpdateSessionRequest is a partial session update.
type UpdateSessionRequest struct {
	RecipientName *string `json:"recipientName,omitempty"`
	Anchor        *string `json:"anchor,omitempty"`
	Occasion      *string `json:"occasion,omitempty"`
	Tone          *string `json:"tone,omitempty"`
	FinalMessage  *string `json:"finalMessage,omitempty"`
}

// AddIngredientRequest appends one ingredient.
type AddIngredientRequest struct {
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
}

// BackRequest names the stage to return to.
type BackRequest struct {
	Stage string `json:"stage"`
}

// IngredientInput is one (prompt, content) pair handed to weave.
type IngredientInput struct {
	Prompt  string `json:"prompt"`
	Content string `json:"content"`
}

// WeaveRequest composes a message out of ingredients.
type WeaveRequest struct {
	RecipientName string            `json:"recipientName,omitempty"`
	Anchor        string            `json:"anchor"`
	Ingredients   []IngredientInput `json:"ingredients"`
	Occasion      string            `json:"occasion,omitempty"`
	Tone          string            `json:"tone,omitempty"`
	MessageLength string            `json:"messageLength,omitempty"`
}

// StitchRequest refines an existing message.
type StitchRequest struct {
	CurrentMessage string `json:"currentMessage"`
	RecipientName  string `json:"recipientName,omitempty"`
	Anchor         string `json:"anchor,omitempty"`
	Improvements   string `json:"improvements,omitempty"`
}

// RegenerateRequest rewrites an existing message with fresh language.
type RegenerateRequest struct {
	RecipientName  string            `json:"recipientName,omitempty"`
	Anchor         string            `json:"anchor"`
	Ingredients    []IngredientInput `json:"ingredients,omitempty"`
	Occasion       string            `json:"occasion,omitempty"`
	Tone           string            `json:"tone,omitempty"`
	MessageLength  string            `json:"messageLength,omitempty"`
	CurrentMessage string            `json:"currentMessage"`
}

// PromptsRequest asks for story prompts.
type PromptsRequest struct {
	RecipientName string `json:"recipientName,omitempty"`
	Anchor        string `json:"anchor"`
	Occasion      string `json:"occasion,omitempty"`
	Tone          string `json:"tone,omitempty"`
}

// MessageData carries a composed message.
type MessageData struct {
	Message string `json:"message"`
}

// PromptsData carries a generated story-prompt set.
type PromptsData struct {
	Prompts []StoryPrompt `json:"prompts"`
}

// AddCreditsRequest tops up the balance.
type AddCreditsRequest struct {
	Amount int `json:"amount"`
}

// CreditData reports a credit balance.
type CreditData struct {
	UserID  string `json:"userId"`
	Credits int    `json:"credits"`
}
