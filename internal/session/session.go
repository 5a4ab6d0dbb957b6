// Package session runs a console hangman game over a line-oriented reader.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/hangman/internal/art"
	"github.com/verte-zerg/hangman/internal/game"
)

const (
	pathPrompt  = "Please enter the file path containing words: "
	indexPrompt = "Please enter the index of the word in the file: "
	guessPrompt = "Guess a letter: "

	rejectMarker = "X"
	missMarker   = ":("
	winMessage   = "WIN"
	loseMessage  = "LOSE"
)

// ErrMalformedIndex is returned when the word index is not an integer.
var ErrMalformedIndex = errors.New("word index must be an integer")

// Preset holds startup answers supplied by flags, environment or config.
// Empty fields are prompted for.
type Preset struct {
	Path  string
	Index *int
}

// Session owns the console dialogue for one game.
type Session struct {
	in     LineReader
	out    io.Writer
	styles art.Styles
}

// New creates a Session reading from in and writing to out.
func New(in LineReader, out io.Writer, styles art.Styles) *Session {
	return &Session{in: in, out: out, styles: styles}
}

// Intro prints the banner and, space-separated, the number of allowed
// incorrect guesses.
func (s *Session) Intro() error {
	return s.println(s.styles.Banner(art.Banner()), game.MaxTries)
}

// Setup resolves the word list path and word index, prompting for any value
// the preset does not provide.
func (s *Session) Setup(preset Preset) (string, int, error) {
	rawPath := preset.Path
	if rawPath == "" {
		line, err := s.in.ReadLine(pathPrompt)
		if err != nil {
			return "", 0, err
		}
		rawPath = line
	}
	path := NormalizePath(rawPath)

	if preset.Index != nil {
		return path, *preset.Index, nil
	}
	line, err := s.in.ReadLine(indexPrompt)
	if err != nil {
		return "", 0, err
	}
	index, err := ParseIndex(line)
	if err != nil {
		return "", 0, err
	}
	return path, index, nil
}

// Play runs turns until g is won or lost.
func (s *Session) Play(ctx context.Context, g *game.Game) (game.Outcome, error) {
	logger := zerolog.Ctx(ctx)

	if err := s.printGallows(0); err != nil {
		return game.InProgress, err
	}
	for {
		if err := ctx.Err(); err != nil {
			return game.InProgress, err
		}
		if err := s.println("Secret word:", g.Hidden()); err != nil {
			return game.InProgress, err
		}
		raw, err := s.in.ReadLine(guessPrompt)
		if err != nil {
			return game.InProgress, err
		}
		turn, err := g.Guess(raw)
		if err != nil {
			return g.Outcome(), err
		}
		logger.Debug().
			Str("letter", turn.Letter).
			Bool("accepted", turn.Accepted).
			Bool("hit", turn.Hit).
			Int("incorrect", turn.Incorrect).
			Msg("turn")

		if !turn.Accepted {
			if err := s.println(s.styles.Reject(rejectMarker)); err != nil {
				return game.InProgress, err
			}
			if err := s.println(game.FormatGuessed(turn.Guessed)); err != nil {
				return game.InProgress, err
			}
			continue
		}
		if !turn.Hit {
			if err := s.println(s.styles.Miss(missMarker)); err != nil {
				return game.InProgress, err
			}
			if err := s.printGallows(turn.Incorrect); err != nil {
				return game.InProgress, err
			}
		}

		switch turn.Outcome {
		case game.Won:
			return game.Won, s.println(s.styles.Win(winMessage))
		case game.Lost:
			return game.Lost, s.println(s.styles.Lose(loseMessage))
		}
	}
}

func (s *Session) printGallows(incorrect int) error {
	drawing, err := art.Gallows(incorrect)
	if err != nil {
		return err
	}
	return s.println(s.styles.Gallows(drawing))
}

func (s *Session) println(args ...any) error {
	if _, err := fmt.Fprintln(s.out, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// ParseIndex parses the word index typed by the player.
func ParseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedIndex, strings.TrimSpace(raw))
	}
	return index, nil
}

// NormalizePath cleans a user supplied path, resolving "." and ".." segments
// and converting slashes to the platform separator.
func NormalizePath(raw string) string {
	return filepath.Clean(filepath.FromSlash(strings.TrimSpace(raw)))
}
