package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bent101/wordle-assist/dictionary"
	"github.com/bent101/wordle-assist/recommend"
	"github.com/bent101/wordle-assist/stats"
)

var (
	wordsPath   string
	weightsPath string
	logLevel    string
	logJSON     bool

	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "wordle-assist",
	Short: "Narrow down Wordle answers and suggest the next guess",
	Long: `wordle-assist keeps track of the feedback from each Wordle round, lists
the dictionary words that are still possible, and ranks next guesses.

Examples:
  wordle-assist solve                      # interactive solver
  wordle-assist serve --addr :8080         # JSON API
  wordle-assist simulate --sample 200      # benchmark the strategy`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logLevel, logJSON)
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(l)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&wordsPath, "words", "",
		"Word list, one word per line (embedded list if empty)")
	rootCmd.PersistentFlags().StringVar(&weightsPath, "weights", "",
		"Optional YAML or JSON file with scoring weights")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false,
		"Write logs as JSON")

	rootCmd.AddCommand(solveCmd, serveCmd, simulateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string, json bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if json {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

type engine struct {
	dictionary  []string
	stats       *stats.LetterStats
	recommender *recommend.Recommender
}

// loadEngine reads the dictionary and weights named by the global flags.
func loadEngine() (*engine, error) {
	var (
		words []string
		err   error
	)
	if wordsPath == "" {
		words = dictionary.Default()
	} else if words, err = dictionary.Load(wordsPath); err != nil {
		return nil, err
	}

	weights := recommend.DefaultWeights()
	if weightsPath != "" {
		var warnings []error
		weights, warnings = recommend.LoadWeights(weightsPath)
		for _, w := range warnings {
			logger.Warn("weights file problem, using defaults where needed", "path", weightsPath, "error", w)
		}
	}

	st := stats.New(words)
	rec, err := recommend.New(words, st,
		recommend.WithWeights(weights),
		recommend.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	logger.Debug("engine ready", "words", len(words), "weights", fmt.Sprintf("%+v", weights))
	return &engine{dictionary: words, stats: st, recommender: rec}, nil
}
