// Package cli implements the command surface and wires the game together.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"guessthelang/internal/config"
	"guessthelang/internal/game"
	"guessthelang/internal/gist"
	"guessthelang/internal/state"
	"guessthelang/internal/telemetry"
	"guessthelang/internal/term"
)

var rootCmd = &cobra.Command{
	Use:   "guessthelang",
	Short: "Guess the programming language of random code snippets",
	Long: `A terminal game: a random code snippet is revealed line by line while
the points on offer tick down. Guess the language before the code runs out.

Snippets come from random public GitHub gists. Provide a personal access
token once with --token to raise the API rate limit; no scopes are needed
and the token is stored locally.`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringP("token", "t", "", "GitHub personal access token (raises the gists rate limit)")
	rootCmd.Flags().IntP("wait", "w", 0, "delay in milliseconds before the first line is revealed")
	rootCmd.Flags().Bool("shuffle", false, "reveal lines in random order")
	rootCmd.Flags().String("theme", "", "highlight theme: dark or light")
	rootCmd.Flags().Bool("no-preload", false, "fetch each round only after the previous one resolves")
	rootCmd.Flags().String("log", "", "write debug logs to this file")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger, logCloser, err := telemetry.NewLogger(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logCloser.Close()

	statePath := cfg.StatePath
	if statePath == "" {
		statePath, err = state.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving state path: %w", err)
		}
	}
	store, err := state.Open(statePath)
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer store.Close()

	ctx := cmd.Context()

	// Token validation happens before the screen switches modes so its
	// errors print normally.
	probe := gist.NewClient(gist.Options{UserAgent: userAgent(), Logger: logger})
	token, err := gist.ResolveToken(ctx, probe, cfg.Token, store)
	if err != nil {
		return err
	}
	client := gist.NewClient(gist.Options{
		Token:     token,
		UserAgent: userAgent(),
		Logger:    logger,
	})

	scr, err := term.Open()
	if err != nil {
		return err
	}
	// Restoration is unconditional, however the round loop exits.
	defer scr.Close()

	keys := term.NewKeyReader(os.Stdin)
	session := game.NewSession(&cfg, client, scr, keys, store, logger)

	runErr := session.Run(ctx)
	if runErr != nil {
		logger.Error("session ended with error", "err", runErr)
	}

	if err := scr.Close(); err != nil && runErr == nil {
		runErr = err
	}
	term.PrintFinalScore(os.Stdout, session.Points(), session.HighScore())
	return runErr
}

// buildConfig layers defaults, environment, then flags.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("token") {
		cfg.Token, _ = flags.GetString("token")
	}
	if flags.Changed("wait") {
		cfg.WaitMS, _ = flags.GetInt("wait")
	}
	if flags.Changed("shuffle") {
		cfg.Shuffle, _ = flags.GetBool("shuffle")
	}
	if flags.Changed("theme") {
		cfg.Theme, _ = flags.GetString("theme")
	}
	if flags.Changed("no-preload") {
		noPreload, _ := flags.GetBool("no-preload")
		cfg.Preload = !noPreload
	}
	if flags.Changed("log") {
		cfg.LogPath, _ = flags.GetString("log")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func userAgent() string {
	return "guessthelang/" + version
}
