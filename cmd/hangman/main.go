// Package main provides the CLI entrypoint for hangman.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"lukechampine.com/frand"

	"github.com/verte-zerg/hangman/internal/art"
	"github.com/verte-zerg/hangman/internal/config"
	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/session"
	"github.com/verte-zerg/hangman/internal/tui"
	"github.com/verte-zerg/hangman/internal/wordlist"
)

const defaultLogLevel = "warn"

type options struct {
	words    string
	index    int
	random   bool
	tui      bool
	noColor  bool
	logLevel string
}

var playOpts = options{logLevel: defaultLogLevel}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hangman",
		Short:         "Console word-guessing game",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playOpts.words, "words", "", "word list file (skips the path prompt)")
	rootCmd.Flags().IntVar(&playOpts.index, "index", 0, "1-based word index, wraps around the list (skips the index prompt)")
	rootCmd.Flags().BoolVar(&playOpts.random, "random", false, "pick a random word instead of asking for an index")
	rootCmd.Flags().BoolVar(&playOpts.tui, "tui", false, "play in a full-screen terminal UI")
	rootCmd.Flags().BoolVar(&playOpts.noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&playOpts.logLevel, "log-level", defaultLogLevel, "diagnostic log level (debug, info, warn, error, disabled)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// settings is the merged view of flags, environment and config file.
type settings struct {
	words    string
	index    *int
	random   bool
	tui      bool
	color    bool
	logLevel string
}

func resolveSettings(cmd *cobra.Command, opts options, fileCfg config.FileConfig, envCfg config.EnvConfig) settings {
	s := settings{
		words:    opts.words,
		random:   opts.random,
		tui:      opts.tui,
		color:    !opts.noColor,
		logLevel: opts.logLevel,
	}
	if !cmd.Flags().Changed("words") {
		switch {
		case envCfg.Words != "":
			s.words = envCfg.Words
		case fileCfg.Game.Words != nil:
			s.words = *fileCfg.Game.Words
		}
	}
	if cmd.Flags().Changed("index") {
		index := opts.index
		s.index = &index
	} else if fileCfg.Game.Index != nil {
		index := *fileCfg.Game.Index
		s.index = &index
	}
	if !cmd.Flags().Changed("log-level") {
		switch {
		case envCfg.LogLevel != "":
			s.logLevel = envCfg.LogLevel
		case fileCfg.Log.Level != nil:
			s.logLevel = *fileCfg.Log.Level
		}
	}
	if !cmd.Flags().Changed("no-color") {
		switch {
		case envCfg.NoColor:
			s.color = false
		case fileCfg.Display.Color != nil:
			s.color = *fileCfg.Display.Color
		}
	}
	applyBoolConfig(cmd, "tui", &s.tui, fileCfg.Display.TUI)
	return s
}

func newLogger(level string, out io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger(), nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.LoadEnv()
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	cfg := resolveSettings(cmd, playOpts, fileCfg, envCfg)

	logger, err := newLogger(cfg.logLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithContext(ctx)
	logger.Debug().Str("config", config.DefaultConfigPath()).Msg("config loaded")

	out := cmd.OutOrStdout()
	in, err := session.NewLineReader(os.Stdin, out)
	if err != nil {
		return err
	}
	closeInput := sync.OnceValue(in.Close)
	defer func() {
		if cerr := closeInput(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close input")
		}
	}()

	s := session.New(in, out, art.NewStyles(cfg.color))
	if err := s.Intro(); err != nil {
		return err
	}
	secret, err := chooseSecret(ctx, s, cfg)
	if errors.Is(err, session.ErrInterrupted) {
		return nil
	}
	if err != nil {
		return err
	}

	g := game.New(secret)
	var outcome game.Outcome
	if cfg.tui {
		// The TUI reads the terminal itself.
		if cerr := closeInput(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close input")
		}
		outcome, err = runTUI(g, out)
	} else {
		outcome, err = s.Play(ctx, g)
	}
	if err != nil {
		if errors.Is(err, session.ErrInterrupted) {
			logger.Debug().Msg("interrupted")
			return nil
		}
		return err
	}
	logger.Debug().Stringer("outcome", outcome).Msg("game finished")
	return nil
}

func chooseSecret(ctx context.Context, s *session.Session, cfg settings) (string, error) {
	logger := zerolog.Ctx(ctx)
	preset := session.Preset{Path: cfg.words, Index: cfg.index}
	if cfg.random {
		// The index is drawn after loading, so any value skips the prompt.
		preset.Index = new(int)
	}
	path, index, err := s.Setup(preset)
	if err != nil {
		return "", err
	}
	words, err := wordlist.Load(path)
	if err != nil {
		return "", wordListLoadError(path, err)
	}
	logger.Debug().Str("path", path).Int("words", len(words)).Msg("word list loaded")
	if cfg.random {
		index = frand.Intn(len(words)) + 1
	}
	secret, err := wordlist.Choose(words, index)
	if err != nil {
		return "", wordListLoadError(path, err)
	}
	logger.Debug().Int("index", index).Msg("secret word chosen")
	if !wordlist.Playable(secret) {
		logger.Warn().Int("index", index).Msg("secret word contains characters that cannot be guessed")
	}
	return secret, nil
}

func runTUI(g *game.Game, out io.Writer) (game.Outcome, error) {
	model := tui.NewModel(g)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return game.InProgress, fmt.Errorf("failed to run TUI: %w", err)
	}
	var err error
	switch model.Outcome() {
	case game.Won:
		_, err = fmt.Fprintln(out, "WIN")
	case game.Lost:
		_, err = fmt.Fprintln(out, "LOSE")
	}
	if err != nil {
		return model.Outcome(), fmt.Errorf("failed to write output: %w", err)
	}
	return model.Outcome(), nil
}

func wordListLoadError(path string, err error) error {
	switch {
	case errors.Is(err, wordlist.ErrResourceNotFound):
		return fmt.Errorf("%w\nexpected a readable text file at: %s", err, path)
	case errors.Is(err, wordlist.ErrEmptyWordList):
		return fmt.Errorf("%w\nthe file must contain words separated by spaces or newlines", err)
	}
	return err
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	parts, err := editorCommand(os.Getenv("EDITOR"))
	if err != nil {
		return err
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func editorCommand(editor string) ([]string, error) {
	editor = strings.TrimSpace(editor)
	if editor == "" {
		editor = "vi"
	}
	parts, err := shellquote.Split(editor)
	if err != nil {
		return nil, fmt.Errorf("invalid EDITOR %q: %w", editor, err)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}
	return parts, nil
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hangman configuration
# Uncomment a value to enable it. CLI flags and environment override config values.

[game]
# words = "words.txt"     # Word list file; skips the path prompt
# index = 1               # 1-based word index; skips the index prompt

[display]
# color = true            # Colored markers and drawings
# tui = false             # Full-screen terminal UI

[log]
# level = %q          # debug, info, warn, error or disabled
`, defaultLogLevel)
}
