package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gifsaver/pkg/config"
)

const exampleConfig = `# gifsaver configuration file
#
# Environment variables override these values:
#   GIPHY_API or GIFSAVER_API_KEY, GIFSAVER_OUTPUT_DIR, GIFSAVER_EXPORT_COUNT,
#   GIFSAVER_SEARCH_LIMIT, GIFSAVER_REQUESTS_PER_MINUTE,
#   GIFSAVER_DOWNLOAD_TIMEOUT, GIFSAVER_LOG_LEVEL, GIFSAVER_LOG_FILE

giphy:
  # API key from https://developers.giphy.com
  api_key: ""
  base_url: "https://api.giphy.com"
  # Results requested per search (1-50)
  search_limit: 30

rate_limit:
  requests_per_minute: 60

output:
  base_directory: "saved"
  manifest_name: "list.json"
  extension: ".gif"

export:
  # Files saved by 'gifsaver export' when --count is not given
  count: 10

download:
  timeout: 30s

logging:
  # debug, info, warn, error
  level: "info"
  # Optional log file in addition to stderr
  file: ""
`

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
		Long: `Manage gifsaver configuration.

Configuration is loaded from, highest priority first:
  - Command line flags
  - Environment variables
  - .env files (./.env and ~/.gifsaver.env)
  - Configuration file
  - Default values`,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg.Redacted())
			if err != nil {
				return fmt.Errorf("failed to format configuration: %w", err)
			}

			a.term.PrintHighlight("Current Configuration")
			a.term.Printf("%s", data)
			if a.cfg.Giphy.APIKey == "" {
				a.term.PrintWarning("No API key set. Searches will be rejected by GIPHY.")
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create an example configuration file",
		Long: `Create an example configuration file with all available options.

The file is created as .gifsaver.yaml in the current directory unless a
different path is given with --config.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configFile
			if path == "" {
				path = ".gifsaver.yaml"
			}

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("configuration file already exists: %s", path)
			}

			if err := os.WriteFile(path, []byte(exampleConfig), 0644); err != nil {
				return fmt.Errorf("failed to create configuration file: %w", err)
			}

			a.term.PrintSuccess("Configuration file created: " + path)
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// load already validated; reaching here means it passed
			a.term.PrintSuccess("Configuration is valid")
			if a.cfg.Giphy.APIKey == "" {
				a.term.PrintWarning("No API key set (" + config.APIKeyEnv + ")")
			}
			return nil
		},
	}

	configCmd.AddCommand(showCmd, initCmd, validateCmd)
	return configCmd
}
