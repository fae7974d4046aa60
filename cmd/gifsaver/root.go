package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"gifsaver/internal/downloader"
	"gifsaver/pkg/config"
	"gifsaver/pkg/errors"
	"gifsaver/pkg/giphy"
	"gifsaver/pkg/logger"
	"gifsaver/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"
)

const (
	// skipConfig marks commands that run without loading the configuration
	skipConfig = "skip-config"

	// showLogo marks commands that print the logo on a terminal
	showLogo = "show-logo"

	// defaultQuery is searched when search or export get no query
	defaultQuery = "cat"
)

// app holds the state shared by every command of one invocation
type app struct {
	// Global flags
	configFile string
	outputDir  string
	logLevel   string
	noColor    bool

	// Command flags merged into the configuration when set
	limit int
	count int

	cfg  *config.Config
	log  logger.Logger
	term *ui.Terminal
}

// newRootCmd builds the command tree writing its output to out
func newRootCmd(out io.Writer) (*cobra.Command, *app) {
	a := &app{term: ui.NewTerminal(out)}

	rootCmd := &cobra.Command{
		Use:   "gifsaver",
		Short: "Search GIPHY and save the top results locally",
		Long: `gifsaver searches GIPHY and saves the best-rated results to a local folder.

Results are sorted by content rating, so the tamest GIFs come first. An export
writes the GIFs as 0.gif, 1.gif, ... and records their title, author and rating
in list.json next to them.

The API key is read from GIPHY_API (or GIFSAVER_API_KEY), a .env file or the
configuration file.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.noColor {
				a.term.SetNoColor(true)
			}
			if cmd.Annotations[showLogo] == "true" {
				a.term.PrintLogo()
			}
			if cmd.Annotations[skipConfig] == "true" {
				return nil
			}
			return a.load(cmd)
		},
	}

	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default is ./.gifsaver.yaml or $HOME/.config/gifsaver/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.outputDir, "output", "o", "", "output directory for saved GIFs (default \"saved\")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.SetVersionTemplate(`gifsaver {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newSearchCmd(a),
		newExportCmd(a),
		newListCmd(a),
		newConfigCmd(a),
	)

	return rootCmd, a
}

// load reads the configuration and sets up logging for cmd
func (a *app) load(cmd *cobra.Command) error {
	flags := make(map[string]interface{})
	if a.outputDir != "" {
		flags["output"] = a.outputDir
	}
	if a.logLevel != "" {
		flags["log-level"] = a.logLevel
	}
	if cmd.Flags().Changed("limit") {
		flags["limit"] = a.limit
	}
	if cmd.Flags().Changed("count") {
		flags["count"] = a.count
	}

	cfg, err := config.Load(a.configFile, flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = logger.GetLogger()
	a.log.WithFields(map[string]interface{}{
		"version": version,
		"command": cmd.Name(),
	}).Debug("gifsaver starting")

	return nil
}

// userAgent identifies this build to GIPHY and the media CDN
func userAgent() string {
	return "gifsaver/" + version
}

// newClient returns a search client for the loaded configuration
func (a *app) newClient() *giphy.Client {
	client := giphy.NewClient(a.cfg, nil, nil, a.log)
	client.SetHeader("User-Agent", userAgent())
	return client
}

// newDownloader returns a media downloader for the loaded configuration
func (a *app) newDownloader() *downloader.Downloader {
	d := downloader.New(a.cfg.Download.Timeout, a.log)
	d.SetHeader("User-Agent", userAgent())
	return d
}

// queryFrom joins args into a query, falling back to defaultQuery
func queryFrom(args []string) string {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return defaultQuery
	}
	return query
}

// Execute runs the command line with args and reports a failure on out
func Execute(out io.Writer, args []string) error {
	rootCmd, a := newRootCmd(out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err != nil {
		a.term.PrintError("Error", err)
		if errors.IsType(err, errors.ErrorTypeAuth) {
			a.term.PrintWarning("GIPHY rejected the API key. Set " + config.APIKeyEnv + " or giphy.api_key in the config file.")
		}
	}
	return err
}
