package session

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/hangman/internal/art"
	"github.com/verte-zerg/hangman/internal/game"
)

func newSession(input string) (*Session, *bytes.Buffer) {
	out := &bytes.Buffer{}
	reader := NewBufferedReader(strings.NewReader(input), out)
	return New(reader, out, art.NewStyles(false)), out
}

func lines(input ...string) string {
	return strings.Join(input, "\n") + "\n"
}

func TestPlayWinWithoutMisses(t *testing.T) {
	s, out := newSession(lines("c", "a", "t"))
	g := game.New("cat")

	outcome, err := s.Play(context.Background(), g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != game.Won {
		t.Fatalf("expected win, got %v", outcome)
	}
	if g.State().Incorrect != 0 {
		t.Fatalf("expected no incorrect guesses, got %d", g.State().Incorrect)
	}

	text := out.String()
	for _, want := range []string{"Secret word: _ _ _", "Secret word: c a _"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if !strings.HasSuffix(text, "WIN\n") {
		t.Fatalf("expected output to end with WIN:\n%s", text)
	}
	if strings.Contains(text, ":(") {
		t.Fatalf("unexpected miss marker:\n%s", text)
	}
}

func TestPlayMissesDrawGallows(t *testing.T) {
	s, out := newSession(lines("z", "x", "q"))
	g := game.New("cat")

	if _, err := s.Play(context.Background(), g); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
	if g.State().Incorrect != 3 {
		t.Fatalf("expected 3 incorrect guesses, got %d", g.State().Incorrect)
	}
	if g.Outcome() != game.InProgress {
		t.Fatalf("expected game in progress, got %v", g.Outcome())
	}

	text := out.String()
	if got := strings.Count(text, ":(\n"); got != 3 {
		t.Fatalf("expected 3 miss markers, got %d", got)
	}
	third, err := art.Gallows(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, third) {
		t.Fatalf("expected third gallows stage in output:\n%s", text)
	}
}

func TestPlayLoseStopsPrompting(t *testing.T) {
	s, out := newSession(lines("b", "d", "e", "f", "g", "h", "c", "a"))
	g := game.New("cat")

	outcome, err := s.Play(context.Background(), g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != game.Lost {
		t.Fatalf("expected loss, got %v", outcome)
	}
	if g.State().Incorrect != game.MaxTries {
		t.Fatalf("expected %d incorrect guesses, got %d", game.MaxTries, g.State().Incorrect)
	}

	text := out.String()
	if got := strings.Count(text, guessPrompt); got != game.MaxTries {
		t.Fatalf("expected %d prompts, got %d", game.MaxTries, got)
	}
	if !strings.HasSuffix(text, "LOSE\n") || strings.Contains(text, "WIN") {
		t.Fatalf("expected output to end with LOSE only:\n%s", text)
	}
}

func TestPlayRejectsRepeatedGuess(t *testing.T) {
	s, out := newSession(lines("t", "a", "T", "c"))
	g := game.New("cat")

	outcome, err := s.Play(context.Background(), g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != game.Won || g.State().Incorrect != 0 {
		t.Fatalf("expected clean win, got %v with %d misses", outcome, g.State().Incorrect)
	}
	if !reflect.DeepEqual(g.State().Guessed, []rune{'t', 'a', 'c'}) {
		t.Fatalf("unexpected guessed letters: %q", string(g.State().Guessed))
	}
	if !strings.Contains(out.String(), "X\na -> t\n") {
		t.Fatalf("expected rejection feedback:\n%s", out.String())
	}
}

func TestPlayRejectsInvalidInput(t *testing.T) {
	s, out := newSession(lines("ab", "1", "", " c", "c", "a", "t"))
	g := game.New("cat")

	outcome, err := s.Play(context.Background(), g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != game.Won {
		t.Fatalf("expected win, got %v", outcome)
	}
	if got := strings.Count(out.String(), "X\n"); got != 4 {
		t.Fatalf("expected 4 rejections, got %d", got)
	}
	if g.State().Incorrect != 0 {
		t.Fatalf("rejections must not consume tries, got %d", g.State().Incorrect)
	}
}

func TestPlayHonorsCancelledContext(t *testing.T) {
	s, _ := newSession(lines("c"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Play(ctx, game.New("cat")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestIntroPrintsBannerAndTries(t *testing.T) {
	s, out := newSession("")
	if err := s.Intro(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Welcome to the game Hangman") {
		t.Fatalf("expected banner first:\n%s", out.String())
	}
	if !strings.HasSuffix(out.String(), "|___/\n 6\n") {
		t.Fatalf("expected space-separated tries after banner, got %q", out.String())
	}
}

func TestSetupPrompts(t *testing.T) {
	s, out := newSession(lines("dir/../words.txt", " 4 "))
	path, index, err := s.Setup(Preset{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "words.txt" || index != 4 {
		t.Fatalf("unexpected setup: %q %d", path, index)
	}
	if out.String() != pathPrompt+indexPrompt {
		t.Fatalf("unexpected prompts: %q", out.String())
	}
}

func TestSetupUsesPreset(t *testing.T) {
	s, out := newSession("")
	index := -3
	path, got, err := s.Setup(Preset{Path: "./a/./b.txt", Index: &index})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join("a", "b.txt") || got != -3 {
		t.Fatalf("unexpected setup: %q %d", path, got)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no prompts, got %q", out.String())
	}
}

func TestSetupMalformedIndex(t *testing.T) {
	s, _ := newSession(lines("words.txt", "three"))
	if _, _, err := s.Setup(Preset{}); !errors.Is(err, ErrMalformedIndex) {
		t.Fatalf("expected ErrMalformedIndex, got %v", err)
	}
}

func TestParseIndex(t *testing.T) {
	for raw, want := range map[string]int{"1": 1, " 0 ": 0, "-2": -2, "+7": 7} {
		got, err := ParseIndex(raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: expected %d, got %d", raw, want, got)
		}
	}
	for _, raw := range []string{"", "x", "1.5", "2a"} {
		if _, err := ParseIndex(raw); !errors.Is(err, ErrMalformedIndex) {
			t.Fatalf("%q: expected ErrMalformedIndex, got %v", raw, err)
		}
	}
}

func TestBufferedReaderLastLineWithoutNewline(t *testing.T) {
	r := NewBufferedReader(strings.NewReader("a\r\nb"), &bytes.Buffer{})
	for _, want := range []string{"a", "b"} {
		got, err := r.ReadLine("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
	if _, err := r.ReadLine(""); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}
