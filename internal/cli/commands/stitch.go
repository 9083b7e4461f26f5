package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/types"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

var stitchImprovements string

// stitchCmd polishes the session's message
var stitchCmd = &cobra.Command{
	Use:   "stitch [session-id]",
	Short: "polish the session's message",
	Long: `Polish the session's current message: smoother flow, better word
choice, the same stories and feeling. Costs one credit.`,
	Example: `  # General polish
  $ hugctl stitch

  # Polish with a specific focus
  $ hugctl stitch --improve "warmer opening"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStitch,
}

func init() {
	stitchCmd.Flags().StringVarP(&stitchImprovements, "improve", "i", "", "what to focus the polish on")
	stitchCmd.SilenceUsage = true
}

func runStitch(cmd *cobra.Command, args []string) error {
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
		ui.PrintError("nothing to stitch: the session has no message yet")
		fmt.Println("\nRun 'hugctl weave' first.")
		return fmt.Errorf("no message")
	}

	ui.PrintInfo("Polishing the message...")

	message, err := apiClient.Stitch(ctx, &types.StitchRequest{
		CurrentMessage: session.FinalMessage,
		RecipientName:  session.RecipientName,
		Anchor:         session.Anchor,
		Improvements:   stitchImprovements,
	})
	if err != nil {
		ui.PrintErrorBox("Stitch Failed", err.Error())
		return fmt.Errorf("stitch failed")
	}

	if _, err := apiClient.UpdateSession(ctx, sessionID, &types.UpdateSessionRequest{
		FinalMessage: &message,
	}); err != nil {
		ui.PrintWarning("message polished but not saved to session: %v", err)
	}

	fmt.Println()
	ui.PrintMessageBox(message)

	return nil
}
