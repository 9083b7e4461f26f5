package loader

import (
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"
)

// DraftIngredient is one prepared (prompt, content) pair in a draft.
type DraftIngredient struct {
	Prompt  string `yaml:"prompt,omitempty"`
	Content string `yaml:"content"`
}

// Draft is a hug prepared ahead of time in a YAML file. It seeds a new
// session and its ingredients in one command.
type Draft struct {
	SessionID     string            `yaml:"sessionId,omitempty"`
	RecipientName string            `yaml:"recipientName,omitempty"`
	Anchor        string            `yaml:"anchor"`
	Occasion      string            `yaml:"occasion,omitempty"`
	Tone          string            `yaml:"tone,omitempty"`
	MessageLength string            `yaml:"messageLength,omitempty"`
	Ingredients   []DraftIngredient `yaml:"ingredients,omitempty"`
}

// LoadDraft loads a hug draft from a YAML file.
func LoadDraft(filepath string) (*Draft, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var draft Draft
	if err := yaml.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	return &draft, nil
}

// Validate checks the draft for the fields a session needs.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Anchor) == "" {
		return fmt.Errorf("draft is missing the anchor (the feeling the message should carry)")
	}
	for i, ing := range d.Ingredients {
		if strings.TrimSpace(ing.Content) == "" {
			return fmt.Errorf("ingredient %d has no content", i+1)
		}
	}
	return nil
}
