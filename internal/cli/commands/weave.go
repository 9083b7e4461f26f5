package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/types"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

var weaveLength string

// weaveCmd composes the message from the session's ingredients
var weaveCmd = &cobra.Command{
	Use:   "weave [session-id]",
	Short: "weave the session's ingredients into a message",
	Long: `Weave every gathered ingredient into one flowing message and save
it on the session. Costs one credit, charged before the attempt. If the AI
backend is unreachable the credit still buys a simple assembled message.`,
	Example: `  # Weave at the default length (about a minute read aloud)
  $ hugctl weave

  # A longer read
  $ hugctl weave --length 2min`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWeave,
}

func init() {
	weaveCmd.Flags().StringVarP(&weaveLength, "length", "l", "1min", "target read-aloud length: 30sec, 1min, 1.5min or 2min")
	weaveCmd.SilenceUsage = true
}

func runWeave(cmd *cobra.Command, args []string) error {
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

	if len(session.Ingredients) == 0 {
		ui.PrintError("nothing to weave: the session has no ingredients yet")
		fmt.Println("\nRun 'hugctl ingredient add' to contribute a story.")
		return fmt.Errorf("no ingredients")
	}

	ingredients := make([]types.IngredientInput, 0, len(session.Ingredients))
	for _, ing := range session.Ingredients {
		ingredients = append(ingredients, types.IngredientInput{
			Prompt:  ing.Prompt,
			Content: ing.Content,
		})
	}

	ui.PrintInfo("Weaving %d ingredient(s) into a message for %s...",
		len(ingredients), displayRecipient(session.RecipientName))

	message, err := apiClient.Weave(ctx, &types.WeaveRequest{
		RecipientName: session.RecipientName,
		Anchor:        session.Anchor,
		Ingredients:   ingredients,
		Occasion:      session.Occasion,
		Tone:          session.Tone,
		MessageLength: weaveLength,
	})
	if err != nil {
		ui.PrintErrorBox("Weave Failed", err.Error())
		return fmt.Errorf("weave failed")
	}

	// Keep the woven message on the session for stitch and regenerate.
	if _, err := apiClient.UpdateSession(ctx, sessionID, &types.UpdateSessionRequest{
		FinalMessage: &message,
	}); err != nil {
		ui.PrintWarning("message composed but not saved to session: %v", err)
	}

	fmt.Println()
	ui.PrintMessageBox(message)
	fmt.Println()
	ui.PrintInfo("Polish it with 'hugctl stitch', or try again with 'hugctl regenerate'")

	return nil
}
