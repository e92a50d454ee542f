package client

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/cloo-solutions/moviescreen/internal/cli/output"
	"github.com/spf13/cobra"
)

// InitCmd stores the OMDb API key in the user's config directory.
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Save your OMDb API key",
		Long:  "Stores the OMDb API key (and optionally the API URL) in the user config directory so later commands can use it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, _ := cmd.Flags().GetString("api-key")
			apiURL, _ := cmd.Flags().GetString("api-url")
			return runInit(cmd, apiKey, apiURL)
		},
	}
	return cmd
}

func runInit(cmd *cobra.Command, apiKey, apiURL string) error {
	p := newPrinter(cmd)

	if apiKey == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Enter OMDb API key: ")
		input, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && strings.TrimSpace(input) == "" {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		apiKey = strings.TrimSpace(input)
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required")
	}

	if err := SaveGlobalConfig(&GlobalConfig{APIKey: apiKey, APIURL: apiURL}); err != nil {
		return err
	}

	path, _ := GetConfigPath()
	p.Success("Saved API key to %s", path)
	return nil
}

// LogoutCmd removes the stored API key.
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved OMDb API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := DeleteGlobalConfig(); err != nil {
				return err
			}
			newPrinter(cmd).Success("Removed saved API key")
			return nil
		},
	}
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ResolveColors(noColor))
}

// AddGlobalFlags registers the flags every moviescreen command understands.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("output", false, "Output as JSON")
	cmd.PersistentFlags().String("api-key", "", "OMDb API key (overrides env and config)")
	cmd.PersistentFlags().String("api-url", "", "OMDb API base URL (overrides env and config)")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.PersistentFlags().Bool("debug", false, "Log debug output to stderr")
}
