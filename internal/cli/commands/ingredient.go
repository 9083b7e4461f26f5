package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/thecustomsoundarchitect/soulliftaudiov-7/internal/cli/ui"
)

var ingredientPrompt string

// ingredientCmd is the parent ingredient command
var ingredientCmd = &cobra.Command{
	Use:   "ingredient",
	Short: "manage a session's story ingredients",
	Long: `Add or remove the stories that get woven into the final message.
Ingredients are gathered during the Gather stage, usually in answer to the
session's story prompts.`,
	Example: `  # Add a story, optionally naming the prompt it answers
  $ hugctl ingredient add "She drove me to the airport at 4am"
  $ hugctl ingredient add -p "A moment they showed up" "She drove me to the airport at 4am"

  # Add interactively, picking a prompt from the session's list
  $ hugctl ingredient add

  # Remove an ingredient by id (ids are shown by 'hugctl show')
  $ hugctl ingredient remove 1724112000000`,
}

var ingredientAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "add a story ingredient",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIngredientAdd,
}

var ingredientRemoveCmd = &cobra.Command{
	Use:   "remove <id> [session-id]",
	Short: "remove a story ingredient",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runIngredientRemove,
}

func init() {
	ingredientAddCmd.Flags().StringVarP(&ingredientPrompt, "prompt", "p", "", "the story prompt this answers")

	ingredientCmd.AddCommand(ingredientAddCmd)
	ingredientCmd.AddCommand(ingredientRemoveCmd)

	ingredientCmd.SilenceUsage = true
	ingredientAddCmd.SilenceUsage = true
	ingredientRemoveCmd.SilenceUsage = true
}

func runIngredientAdd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	sessionID, err := resolveSessionID(cfg, nil)
	if err != nil {
		return err
	}

	content := ""
	if len(args) > 0 {
		content = args[0]
	}

	prompt := ingredientPrompt

	// Interactive path: offer the session's prompts, then ask for the story.
	if content == "" {
		session, err := apiClient.GetSession(ctx, sessionID)
		if err != nil {
			ui.PrintError("failed to get session: %v", err)
			return fmt.Errorf("get failed")
		}

		if prompt == "" && len(session.Prompts) > 0 {
			options := make([]string, 0, len(session.Prompts)+1)
			for _, p := range session.Prompts {
				options = append(options, p.Text)
			}
			options = append(options, "(no prompt, just a story)")

			var picked string
			if err := survey.AskOne(&survey.Select{
				Message: "Which prompt are you answering?",
				Options: options,
			}, &picked); err != nil {
				ui.PrintError("failed to read answer: %v", err)
				return fmt.Errorf("input failed")
			}
			if picked != "(no prompt, just a story)" {
				prompt = picked
			}
		}

		if err := survey.AskOne(&survey.Multiline{
			Message: "Tell the story:",
		}, &content, survey.WithValidator(survey.Required)); err != nil {
			ui.PrintError("failed to read story: %v", err)
			return fmt.Errorf("input failed")
		}
	}

	if strings.TrimSpace(content) == "" {
		ui.PrintError("ingredient content is empty")
		return fmt.Errorf("empty content")
	}

	session, err := apiClient.AddIngredient(ctx, sessionID, prompt, content)
	if err != nil {
		ui.PrintError("failed to add ingredient: %v", err)
		return fmt.Errorf("add failed")
	}

	ui.PrintSuccess("Ingredient added (%d total)", len(session.Ingredients))
	return nil
}

func runIngredientRemove(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	apiClient, cfg, err := newAPIClient()
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		ui.PrintError("ingredient id must be an integer: %s", args[0])
		return fmt.Errorf("invalid id")
	}

	sessionID, err := resolveSessionID(cfg, args[1:])
	if err != nil {
		return err
	}

	session, err := apiClient.RemoveIngredient(ctx, sessionID, id)
	if err != nil {
		ui.PrintError("failed to remove ingredient: %v", err)
		return fmt.Errorf("remove failed")
	}

	ui.PrintSuccess("Ingredient removed (%d remaining)", len(session.Ingredients))
	return nil
}
