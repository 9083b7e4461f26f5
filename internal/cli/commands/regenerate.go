package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/types"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

var regenerateLength string

// regenerateCmd rewrites the session's message with fresh language
var regenerateCmd = &cobra.Command{
	Use:   "regenerate [session-id]",
	Short: "rewrite the session's message with fresh language",
	Long: `Rewrite the session's message from the same ingredients with fresh
language and structure. The feeling and the stories stay; the words change.
Costs one credit.`,
	Example: `  $ hugctl regenerate`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runRegenerate,
}

func init() {
	regenerateCmd.Flags().StringVarP(&regenerateLength, "length", "l", "1min", "target read-aloud length: 30sec, 1min, 1.5min or 2min")
	regenerateCmd.SilenceUsage = true
}

func runRegenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	apiClient, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	sessionID, err := resolveSessionID(cfg, args)
	if err != nil {
		return err
	}

	session, err := apiClient.GetSession(ctx, sessionID)
	if err != nil {
		ui.PrintError("failed to get session: %v", err)
		return fmt.Errorf("get failed")
	}

	if session.FinalMessage == "" {
		ui.PrintError("nothing to regenerate: the session has no message yet")
		fmt.Println("\nRun 'hugctl weave' first.")
		return fmt.Errorf("no message")
	}

	ingredients := make([]types.IngredientInput, 0, len(session.Ingredients))
	for _, ing := range session.Ingredients {
		ingredients = append(ingredients, types.IngredientInput{
			Prompt:  ing.Prompt,
			Content: ing.Content,
		})
	}

	ui.PrintInfo("Rewriting the message with fresh language...")

	message, err := apiClient.Regenerate(ctx, &types.RegenerateRequest{
		RecipientName:  session.RecipientName,
		Anchor:         session.Anchor,
		Ingredients:    ingredients,
		Occasion:       session.Occasion,
		Tone:           session.Tone,
		MessageLength:  regenerateLength,
		CurrentMessage: session.FinalMessage,
	})
	if err != nil {
		ui.PrintErrorBox("Regenerate Failed", err.Error())
		return fmt.Errorf("regenerate failed")
	}

	if _, err := apiClient.UpdateSession(ctx, sessionID, &types.UpdateSessionRequest{
		FinalMessage: &message,
	}); err != nil {
		ui.PrintWarning("message rewritten but not saved to session: %v", err)
	}

	fmt.Println()
	ui.PrintMessageBox(message)

	return nil
}
