package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/client"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/loader"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/types"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

var beginFile string

var toneOptions = []string{
	"heartfelt", "warm", "celebratory", "playful", "sincere",
	"uplifting", "comforting", "joyful", "loving",
}

var occasionOptions = []string{
	"just because", "birthday", "anniversary", "graduation",
	"wedding", "holiday", "thank you", "thinking of you",
}

// beginCmd starts a new hug
var beginCmd = &cobra.Command{
	Use:   "begin",
	Short: "start a new Soul Hug",
	Long: `Start a new Soul Hug session at the Define stage.

Interactively asks who the hug is for and what feeling it should carry,
or loads everything from a prepared YAML draft with -f. The new session
becomes the current session for subsequent commands.`,
	Example: `  # Interactive start
  $ hugctl begin

  # Start from a draft file (creates the session and its ingredients)
  $ hugctl begin -f hug.yaml`,
	RunE: runBegin,
}

func init() {
	beginCmd.Flags().StringVarP(&beginFile, "file", "f", "", "YAML file containing a hug draft")
	beginCmd.SilenceUsage = true
}

func runBegin(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	apiClient, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	if beginFile != "" {
		return beginFromDraft(ctx, apiClient, cfg, beginFile)
	}

	ui.PrintWelcomeBanner()

	var answers struct {
		Recipient string
		Anchor    string
		Occasion  string
		Tone      string
	}

	questions := []*survey.Question{
		{
			Name:   "recipient",
			Prompt: &survey.Input{Message: "Who is this hug for?"},
		},
		{
			Name: "anchor",
			Prompt: &survey.Input{
				Message: "What feeling should it carry?",
				Help:    "The single feeling you want them to have, like 'deeply appreciated'",
			},
			Validate: survey.Required,
		},
		{
			Name: "occasion",
			Prompt: &survey.Select{
				Message: "What's the occasion?",
				Options: occasionOptions,
				Default: "just because",
			},
		},
		{
			Name: "tone",
			Prompt: &survey.Select{
				Message: "What tone fits?",
				Options: toneOptions,
				Default: "heartfelt",
			},
		},
	}

	if err := survey.Ask(questions, &answers); err != nil {
		ui.PrintError("failed to read answers: %v", err)
		return fmt.Errorf("input failed")
	}

	session, err := apiClient.CreateSession(ctx, &types.CreateSessionRequest{
		SessionID:     uuid.New().String(),
		RecipientName: answers.Recipient,
		Anchor:        answers.Anchor,
		Occasion:      answers.Occasion,
		Tone:          answers.Tone,
	})
	if err != nil {
		ui.PrintErrorBox("Could Not Start", err.Error())
		return fmt.Errorf("session creation failed")
	}

	rememberSession(cfg, session.SessionID)

	ui.PrintSuccessBox("✓ Hug Started", fmt.Sprintf(`Session:   %s
Recipient: %s
Feeling:   %s
Stage:     %s`, session.SessionID, session.RecipientName, session.Anchor, session.StageName))

	fmt.Println()
	ui.PrintInfo("Next steps:")
	ui.PrintBold("  hugctl advance          # Move to Gather and get story prompts")
	ui.PrintBold("  hugctl ingredient add   # Contribute a story")

	return nil
}

// beginFromDraft creates a session and its ingredients from a YAML draft.
func beginFromDraft(ctx context.Context, apiClient *client.APIClient, cfg *config.Config, filepath string) error {
	ui.PrintInfo("Loading draft from file: %s", filepath)

	draft, err := loader.LoadDraft(filepath)
	if err != nil {
		ui.PrintError("failed to load draft: %v", err)
		return fmt.Errorf("draft load failed")
	}

	sessionID := draft.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	session, err := apiClient.CreateSession(ctx, &types.CreateSessionRequest{
		SessionID:     sessionID,
		RecipientName: draft.RecipientName,
		Anchor:        draft.Anchor,
		Occasion:      draft.Occasion,
		Tone:          draft.Tone,
	})
	if err != nil {
		ui.PrintErrorBox("Could Not Start", err.Error())
		return fmt.Errorf("session creation failed")
	}

	for _, ing := range draft.Ingredients {
		if session, err = apiClient.AddIngredient(ctx, session.SessionID, ing.Prompt, ing.Content); err != nil {
			ui.PrintError("failed to add ingredient: %v", err)
			return fmt.Errorf("ingredient add failed")
		}
	}

	rememberSession(cfg, session.SessionID)

	ui.PrintSuccess("Hug started from draft: session %s with %d ingredient(s)",
		session.SessionID, len(session.Ingredients))

	return nil
}
