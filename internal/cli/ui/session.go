package ui

import (
	"fmt"
	"strings"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/types"
)

// flowStages lists the stages in flow order with their display names.
var flowStages = []struct {
	Stage string
	Name  string
}{
	{"intention", "Define"},
	{"reflection", "Gather"},
	{"expression", "Craft"},
	{"audio", "Audio"},
}

// RenderStageProgress renders the flow progress bar, highlighting the
// session's current stage.
func RenderStageProgress(current string) string {
	parts := make([]string, 0, len(flowStages))
	for _, s := range flowStages {
		label := fmt.Sprintf("%s (%s)", s.Name, s.Stage)
		if s.Stage == current {
			parts = append(parts, Styles.Accent.Bold(true).Render("● "+label))
		} else {
			parts = append(parts, Styles.Dim.Render("○ "+label))
		}
	}
	return strings.Join(parts, Styles.Dim.Render(" → "))
}

// RenderSession renders a full session snapshot.
func RenderSession(s *types.Session) string {
	var b strings.Builder

	b.WriteString(Styles.Bold.Render("Session "+s.SessionID) + "\n")
	b.WriteString(RenderStageProgress(s.Stage) + "\n\n")

	writeField := func(label, value string) {
		if value == "" {
			value = Styles.Dim.Render("(not set)")
		}
		fmt.Fprintf(&b, "  %-12s %s\n", label+":", value)
	}

	writeField("Recipient", s.RecipientName)
	writeField("Feeling", s.Anchor)
	writeField("Occasion", s.Occasion)
	writeField("Tone", s.Tone)

	if len(s.Descriptors) > 0 {
		writeField("Descriptors", strings.Join(s.Descriptors, ", "))
	}

	if len(s.Prompts) > 0 {
		b.WriteString("\n" + Styles.Bold.Render("Story prompts") + "\n")
		b.WriteString(RenderPrompts(s.Prompts))
	}

	if len(s.Ingredients) > 0 {
		b.WriteString("\n" + Styles.Bold.Render("Ingredients") + "\n")
		for _, ing := range s.Ingredients {
			fmt.Fprintf(&b, "  [%d] %s\n", ing.ID, Styles.Dim.Render(ing.Prompt))
			fmt.Fprintf(&b, "      %s\n", ing.Content)
		}
	}

	if s.FinalMessage != "" {
		b.WriteString("\n" + Styles.Bold.Render("Message") + "\n")
		b.WriteString(Styles.MessageBox.Render(s.FinalMessage) + "\n")
	}

	return b.String()
}

// RenderPrompts renders a numbered story-prompt list.
func RenderPrompts(prompts []types.StoryPrompt) string {
	var b strings.Builder
	for i, p := range prompts {
		fmt.Fprintf(&b, "  %2d. %s\n", i+1, p.Text)
	}
	return b.String()
}
