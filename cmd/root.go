package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fuzzyforest/shallot-strings/lisp"
	"github.com/spf13/cobra"
)

// DefaultMaxDepth bounds evaluation nesting unless --max-depth is given.
const DefaultMaxDepth = 10000

var (
	rootVerbose  bool
	rootMaxDepth int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shallot",
	Short: "A small lisp with an extensible value universe",
	Long: `A small lisp whose values are composed from independently defined
kinds.  Without a subcommand an interactive repl is started.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return replCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// envConfig returns the environment configuration selected by global flags.
func envConfig() []lisp.Config {
	level := slog.LevelWarn
	if rootVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return []lisp.Config{
		lisp.WithLogger(logger),
		lisp.WithMaximumDepth(rootMaxDepth),
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false,
		"Log runtime diagnostics to stderr")
	rootCmd.PersistentFlags().IntVar(&rootMaxDepth, "max-depth", DefaultMaxDepth,
		"Maximum evaluation depth (0 for no limit)")
}
