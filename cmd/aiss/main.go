// Command aiss answers "tell me about this show, movie, or game" queries.
// It classifies the input into a genre category, retrieves a structured
// description from a generative backend, and renders it to the console.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aiss/internal/backend"
	"aiss/internal/config"
	"aiss/internal/logging"
	"aiss/internal/query"
	"aiss/internal/render"
	"aiss/internal/wiki"
)

var (
	flagMode      string
	flagProvider  string
	flagModel     string
	flagTimeout   int
	flagVerbose   bool
	flagNoContext bool
	flagNoColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "aiss [topic]",
	Short: "Describe a show, movie, or game from a free-text topic",
	Long: `aiss classifies a free-text topic into a genre category, asks a
generative backend for a structured description, and renders the result.

Retrieval modes:
  parsed  schema-validated structured output (default)
  json    JSON by instruction, decoded leniently
  text    plain prose`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(flagVerbose)
		config.LoadEnv()
	},
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	defer logging.Sync()
	ctx := cmd.Context()

	mode, err := query.ParseMode(flagMode)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		logging.L().Warn("config load failed, using defaults")
		cfg = config.DefaultConfig()
	}
	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagTimeout > 0 {
		cfg.TimeoutSeconds = flagTimeout
	}
	if flagNoColor {
		cfg.NoColor = true
	}

	pc, err := cfg.ResolveProvider()
	if err != nil {
		return err
	}
	client, err := backend.NewClient(ctx, pc)
	if err != nil {
		return err
	}

	console := render.NewConsole(os.Stdout, cfg.NoColor)

	opts := []query.EngineOption{
		query.WithProgress(console),
		query.WithContextSentences(cfg.ContextSentences),
	}
	if flagNoContext {
		opts = append(opts, query.WithoutContext())
	} else {
		opts = append(opts, query.WithSummarizer(wiki.New(wiki.DefaultConfig())))
	}
	engine := query.NewEngine(client, opts...)

	input := strings.Join(args, " ")
	outcome, err := engine.Run(ctx, input, mode)
	if err != nil {
		var decodeErr *query.JSONDecodeError
		if errors.As(err, &decodeErr) {
			console.RenderInvalid(decodeErr.Raw)
		}
		return err
	}

	query.RenderOutcome(console, outcome)
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the stored configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := config.ConfigFile()
		if err != nil {
			return err
		}
		fmt.Printf("config file: %s\n", path)
		fmt.Printf("provider: %s\n", orAuto(cfg.Provider))
		fmt.Printf("model: %s\n", orDefault(cfg.Model))
		fmt.Printf("base_url: %s\n", orDefault(cfg.BaseURL))
		fmt.Printf("timeout_seconds: %d\n", cfg.TimeoutSeconds)
		fmt.Printf("context_sentences: %d\n", cfg.ContextSentences)
		fmt.Printf("no_color: %v\n", cfg.NoColor)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			cfg = config.DefaultConfig()
		}

		key, value := args[0], args[1]
		switch key {
		case "provider":
			switch backend.Provider(value) {
			case backend.ProviderOpenAI, backend.ProviderGemini:
			default:
				return fmt.Errorf("unknown provider %q: choose 'openai' or 'gemini'", value)
			}
			cfg.Provider = value
		case "model":
			cfg.Model = value
		case "base_url":
			cfg.BaseURL = value
		case "timeout_seconds":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("timeout_seconds must be a positive integer")
			}
			cfg.TimeoutSeconds = n
		case "context_sentences":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("context_sentences must be a positive integer")
			}
			cfg.ContextSentences = n
		case "no_color":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("no_color must be true or false")
			}
			cfg.NoColor = b
		default:
			return fmt.Errorf("unknown config key %q", key)
		}

		return config.Save(cfg)
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the registered genre categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		console := render.NewConsole(os.Stdout, flagNoColor)
		printCategories(console)
		return nil
	},
}

func orAuto(s string) string {
	if s == "" {
		return "(auto-detect)"
	}
	return s
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func init() {
	rootCmd.Flags().StringVarP(&flagMode, "mode", "m", "parsed", "retrieval mode: parsed, json, or text")
	rootCmd.Flags().StringVar(&flagProvider, "provider", "", "backend provider: openai or gemini")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "model override")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "request timeout in seconds")
	rootCmd.Flags().BoolVar(&flagNoContext, "no-context", false, "skip the background knowledge lookup")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")

	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
