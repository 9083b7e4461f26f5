package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/types"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

// promptsCmd fetches fresh story prompts
var promptsCmd = &cobra.Command{
	Use:   "prompts [session-id]",
	Short: "generate fresh story prompts for a session",
	Long: `Generate a fresh set of personalized story prompts from the
session's recipient, feeling, occasion and tone. Free; costs no credits.`,
	Example: `  $ hugctl prompts`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runPrompts,
}

func init() {
	promptsCmd.SilenceUsage = true
}

func runPrompts(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
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

	ui.PrintInfo("Generating story prompts for %s...", displayRecipient(session.RecipientName))

	prompts, err := apiClient.GeneratePrompts(ctx, &types.PromptsRequest{
		RecipientName: session.RecipientName,
		Anchor:        session.Anchor,
		Occasion:      session.Occasion,
		Tone:          session.Tone,
	})
	if err != nil {
		ui.PrintError("failed to generate prompts: %v", err)
		return fmt.Errorf("prompts failed")
	}

	fmt.Println()
	ui.PrintBold("Story prompts:")
	fmt.Println(ui.RenderPrompts(prompts))

	return nil
}

func displayRecipient(name string) string {
	if name == "" {
		return "someone special"
	}
	return name
}
