package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

// creditsCmd shows or tops up the credit balance
var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "show your credit balance",
	Long: `Show the credit balance behind the paid composition operations
(weave, stitch, regenerate). New identities start with a small grant.`,
	Example: `  # Show the balance
  $ hugctl credits

  # Top up
  $ hugctl credits add 5`,
	RunE: runCreditsBalance,
}

var creditsAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "add credits to your balance",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreditsAdd,
}

func init() {
	creditsCmd.AddCommand(creditsAddCmd)
	creditsCmd.SilenceUsage = true
	creditsAddCmd.SilenceUsage = true
}

func runCreditsBalance(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, _, err := newAPIClient()
	if err != nil {
		return err
	}

	balance, err := apiClient.CreditBalance(ctx)
	if err != nil {
		ui.PrintError("failed to get balance: %v", err)
		return fmt.Errorf("balance failed")
	}

	ui.PrintBold("Credits: %d", balance.Credits)
	ui.PrintInfo("Identity: %s", balance.UserID)

	return nil
}

func runCreditsAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	amount, err := strconv.Atoi(args[0])
	if err != nil || amount <= 0 {
		ui.PrintError("amount must be a positive integer: %s", args[0])
		return fmt.Errorf("invalid amount")
	}

	apiClient, _, err := newAPIClient()
	if err != nil {
		return err
	}

	balance, err := apiClient.AddCredits(ctx, amount)
	if err != nil {
		ui.PrintError("failed to add credits: %v", err)
		return fmt.Errorf("add failed")
	}

	ui.PrintSuccess("Added %d credit(s), balance is now %d", amount, balance.Credits)
	return nil
}
