package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/client"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/config"
	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

const version = "0.1.0"

// rootCmd is the root command
var rootCmd = &cobra.Command{
	Use:     "hugctl",
	Short:   "Soul Hug CLI",
	Version: version,
	Long: `A command-line tool for crafting Soul Hugs: personalized, heartfelt
messages woven from your own stories. Walks you through the creative flow
(Define, Gather, Craft), drives the AI composition operations, and tracks
your credit balance.`,
	Example: `  # Point at your server
  $ hugctl use http://localhost:8080

  # Start a new hug interactively
  $ hugctl begin

  # Start from a prepared draft file
  $ hugctl begin -f hug.yaml

  # Gather stories, then weave them into a message
  $ hugctl prompts
  $ hugctl ingredient add "She drove me to the airport at 4am"
  $ hugctl weave

  # Check your credit balance
  $ hugctl credits`,
}

// Execute executes the root command
func Execute() error {
	rootCmd.SetVersionTemplate(formatVersion())
	return rootCmd.Execute()
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(beginCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(advanceCmd)
	rootCmd.AddCommand(backCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(ingredientCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(weaveCmd)
	rootCmd.AddCommand(stitchCmd)
	rootCmd.AddCommand(regenerateCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(deleteCmd)

	// Set custom template with bold uppercase headers
	rootCmd.SetUsageTemplate(usageTemplate())
	rootCmd.SetHelpTemplate(usageTemplate())
}

func usageTemplate() string {
	return `{{if .Long}}{{.Long}}

{{end}}` + ui.Styles.Bold.Render("USAGE") + `
  {{.UseLine}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}

{{if .HasExample}}` + ui.Styles.Bold.Render("EXAMPLES") + `
{{.Example}}

{{end}}{{if .HasAvailableSubCommands}}` + ui.Styles.Bold.Render("COMMANDS") + `{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableLocalFlags}}` + ui.Styles.Bold.Render("OPTIONS") + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}

// formatVersion formats the version output
func formatVersion() string {
	return fmt.Sprintf("hugctl version %s\n", version)
}

// newAPIClient loads the CLI config and builds a client against it.
func newAPIClient() (*client.APIClient, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, nil, fmt.Errorf("config load failed")
	}

	apiClient, err := client.NewAPIClient(cfg.Server, cfg.UserID)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, nil, fmt.Errorf("client creation failed")
	}

	return apiClient, cfg, nil
}

// resolveSessionID returns the session id from args, or the one remembered
// from the last begin.
func resolveSessionID(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.CurrentSession != "" {
		return cfg.CurrentSession, nil
	}
	ui.PrintError("no session specified and no current session remembered")
	fmt.Println("\nRun 'hugctl begin' to start one, or pass a session id.")
	return "", fmt.Errorf("session required")
}

// rememberSession stores the session id for subsequent commands.
func rememberSession(cfg *config.Config, sessionID string) {
	if cfg.CurrentSession == sessionID {
		return
	}
	cfg.CurrentSession = sessionID
	if err := cfg.Save(); err != nil {
		ui.PrintWarning("failed to remember session: %v", err)
	}
}
