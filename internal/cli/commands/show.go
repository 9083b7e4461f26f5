package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

// showCmd shows a session
var showCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "show a Soul Hug session",
	Long: `Show a session's stage, ingredients, story prompts and message.
Without an argument, shows the current session.`,
	Example: `  # Show the current session
  $ hugctl show

  # Show a specific session
  $ hugctl show 7f8c9a2e`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.SilenceUsage = true
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
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

	rememberSession(cfg, session.SessionID)

	fmt.Println()
	fmt.Println(ui.RenderSession(session))

	return nil
}
