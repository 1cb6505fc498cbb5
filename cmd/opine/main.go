// Command opine finds topics and ratings in feedback text using a lexicon.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/opine"
)

const (
	Version = "0.1.0"
	appName = "opine"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := rootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalOptions are the flags shared by all commands.
type globalOptions struct {
	debug    bool
	logLevel string
	language string
	encoding string
}

func (g *globalOptions) logger(cmd *cobra.Command) *zap.Logger {
	level := g.logLevel
	if g.debug {
		level = "debug"
	}
	return newLogger(level, cmd.ErrOrStderr())
}

// resolveLanguage returns the language of text from the --language flag.
func (g *globalOptions) resolveLanguage(text string) (opine.Language, error) {
	return opine.ResolveLanguage(g.language, text)
}

func rootCmd(cfg *Config) *cobra.Command {
	global := &globalOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Lexicon based opinion mining",
		Long: `Opine finds the topic and rating of each sentence of feedback text.

Topics and ratings come from a CSV lexicon; negations such as "not",
intensifiers such as "very" and diminishers such as "somewhat" modify them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&global.debug, "debug", "D", false, "log debug messages")
	flags.StringVar(&global.logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVarP(&global.language, "language", "l", cfg.Language,
		`language code such as "en" or "de", or "auto" to detect it`)
	flags.StringVarP(&global.encoding, "encoding", "e", cfg.Encoding, "encoding of text and CSV files")

	cmd.AddCommand(
		analyzeCmd(cfg, global),
		countCmd(cfg, global),
		unknownCmd(global),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}
