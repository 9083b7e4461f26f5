package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

var deleteYes bool

// deleteCmd removes a session
var deleteCmd = &cobra.Command{
	Use:   "delete [session-id]",
	Short: "delete a Soul Hug session",
	Long: `Delete a session and everything gathered in it. Asks for
confirmation unless -y is given.`,
	Example: `  $ hugctl delete 7f8c9a2e
  $ hugctl delete -y`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	deleteCmd.SilenceUsage = true
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if !deleteYes {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Delete session %s and everything in it?", sessionID),
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			ui.PrintError("failed to read answer: %v", err)
			return fmt.Errorf("input failed")
		}
		if !confirmed {
			ui.PrintInfo("Nothing deleted")
			return nil
		}
	}

	if err := apiClient.DeleteSession(ctx, sessionID); err != nil {
		ui.PrintError("failed to delete session: %v", err)
		return fmt.Errorf("delete failed")
	}

	if cfg.CurrentSession == sessionID {
		cfg.CurrentSession = ""
		if err := cfg.Save(); err != nil {
			ui.PrintWarning("failed to update config: %v", err)
		}
	}

	ui.PrintSuccess("Session %s deleted", sessionID)
	return nil
}
