package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"showcase.dev/internal/config"
	"showcase.dev/internal/log"
	"showcase.dev/internal/render"
	"showcase.dev/internal/services"
)

var (
	// Global flags
	contentFile string
	logLevel    string
)

// rootCmd renders the page to stdout when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Render a single-page project portfolio",
	Long: `showcase renders a portfolio page: featured projects, a grid of more
projects, and a profile sidebar, all taken from a YAML content file.

Run without arguments to write the page to stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Configure(log.Config{Level: logLevel, Output: os.Stderr})
	},
	RunE: runRender,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "content file (default $CONTENT_FILE or $DATA_PATH/site.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default $LOG_LEVEL or info)")

	rootCmd.AddCommand(serveCmd, validateCmd)
}

// loadConfig applies the --content flag on top of the environment
func loadConfig() (*config.Config, error) {
	if contentFile != "" {
		if err := os.Setenv("CONTENT_FILE", contentFile); err != nil {
			return nil, err
		}
	}
	return config.Load()
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	renderer, err := render.New()
	if err != nil {
		return err
	}

	pages := services.NewPageService(services.StaticSource{Site: cfg.Site}, renderer)
	_, err = pages.WriteTo(cmd.OutOrStdout())
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
