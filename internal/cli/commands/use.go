package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

// useCmd points the CLI at a server
var useCmd = &cobra.Command{
	Use:   "use [server]",
	Short: "point the CLI at a Soul Hug server",
	Long: `Save the server address in ~/.hugctl/config.json. All subsequent
commands talk to this server. A stable identity for the credit ledger is
minted on first use and kept alongside the address.

If server is not provided, defaults to http://localhost:8080.`,
	Example: `  # Use the default local server
  $ hugctl use

  # Use a remote server
  $ hugctl use http://hugs.example.com:8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUse,
}

func init() {
	useCmd.SilenceUsage = true
}

func runUse(cmd *cobra.Command, args []string) error {
	server := "http://localhost:8080"
	if len(args) > 0 {
		server = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return fmt.Errorf("config load failed")
	}

	cfg.Server = server
	if err := cfg.Save(); err != nil {
		ui.PrintError("failed to save config: %v", err)
		return fmt.Errorf("config save failed")
	}

	configPath, _ := config.GetConfigPath()
	ui.PrintSuccess("Using server %s", server)
	ui.PrintInfo("Identity: %s", cfg.UserID)
	ui.PrintInfo("Config saved: %s", configPath)

	return nil
}
