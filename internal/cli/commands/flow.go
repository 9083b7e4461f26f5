package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

// advanceCmd moves the session forward one stage
var advanceCmd = &cobra.Command{
	Use:   "advance [session-id]",
	Short: "move the session to its next stage",
	Long: `Move the session forward one stage after its work is done.
Leaving Define requires the feeling to be set; leaving Gather requires at
least one ingredient; leaving Craft requires a finished message. Moving
from Define to Gather generates personalized story prompts.`,
	Example: `  $ hugctl advance`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runAdvance,
}

// backCmd moves the session to an earlier stage
var backCmd = &cobra.Command{
	Use:   "back <stage> [session-id]",
	Short: "return the session to an earlier stage",
	Long: `Return to an earlier stage. Going back never discards anything;
prompts, ingredients and the message all survive.

Stages: intention (Define), reflection (Gather), expression (Craft), audio.`,
	Example: `  # Go back to the Gather stage
  $ hugctl back reflection`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBack,
}

// resetCmd returns the session to the first stage
var resetCmd = &cobra.Command{
	Use:   "reset [session-id]",
	Short: "return the session to the Define stage",
	Long: `Return the session to the Define stage. The session's content is
kept; this only rewinds the flow position.`,
	Example: `  $ hugctl reset`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runReset,
}

func init() {
	advanceCmd.SilenceUsage = true
	backCmd.SilenceUsage = true
	resetCmd.SilenceUsage = true
}

func runAdvance(cmd *cobra.Command, args []string) error {
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

	session, err := apiClient.Advance(ctx, sessionID)
	if err != nil {
		ui.PrintError("cannot advance: %v", err)
		return fmt.Errorf("advance failed")
	}

	ui.PrintSuccess("Now at the %s stage", session.StageName)
	if session.Stage == "reflection" && len(session.Prompts) > 0 {
		fmt.Println()
		ui.PrintBold("Story prompts to get you started:")
		fmt.Println(ui.RenderPrompts(session.Prompts))
	}

	return nil
}

func runBack(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	stage := args[0]
	sessionID, err := resolveSessionID(cfg, args[1:])
	if err != nil {
		return err
	}

	session, err := apiClient.Back(ctx, sessionID, stage)
	if err != nil {
		ui.PrintError("cannot go back: %v", err)
		return fmt.Errorf("back failed")
	}

	ui.PrintSuccess("Back at the %s stage, nothing lost", session.StageName)
	return nil
}

func runReset(cmd *cobra.Command, args []string) error {
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

	session, err := apiClient.Reset(ctx, sessionID)
	if err != nil {
		ui.PrintError("cannot reset: %v", err)
		return fmt.Errorf("reset failed")
	}

	ui.PrintSuccess("Session %s is back at the %s stage", session.SessionID, session.StageName)
	return nil
}
