package art

import (
	"errors"
	"strings"
	"testing"

	"github.com/verte-zerg/hangman/internal/game"
)

func TestGallowsCoversEveryCount(t *testing.T) {
	prev := ""
	for n := 0; n <= game.MaxTries; n++ {
		drawing, err := Gallows(n)
		if err != nil {
			t.Fatalf("count %d: unexpected error: %v", n, err)
		}
		if !strings.Contains(drawing, "x-------x") {
			t.Fatalf("count %d: expected beam in drawing", n)
		}
		if drawing == prev {
			t.Fatalf("count %d: expected drawing to differ from previous stage", n)
		}
		prev = drawing
	}
}

func TestGallowsRejectsOutOfRange(t *testing.T) {
	for _, n := range []int{-1, game.MaxTries + 1, 100} {
		if _, err := Gallows(n); !errors.Is(err, ErrTriesOutOfRange) {
			t.Fatalf("count %d: expected ErrTriesOutOfRange, got %v", n, err)
		}
	}
}

func TestBannerMentionsGame(t *testing.T) {
	if !strings.HasPrefix(Banner(), "Welcome to the game Hangman") {
		t.Fatalf("unexpected banner: %q", Banner())
	}
}

func TestPadBlockUniformWidth(t *testing.T) {
	out := PadBlock("ab\na\nabcd", 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) != 4 {
			t.Fatalf("line %d: expected width 4, got %q", i, line)
		}
	}
}

func TestHeight(t *testing.T) {
	if Height() != 7 {
		t.Fatalf("expected height 7, got %d", Height())
	}
}

func TestPlainStylesLeaveTextUnchanged(t *testing.T) {
	styles := NewStyles(false)
	if styles.Win("WIN") != "WIN" || styles.Reject("X") != "X" {
		t.Fatalf("expected plain styles to return input unchanged")
	}
	drawing, _ := Gallows(6)
	if styles.Gallows(drawing) != drawing {
		t.Fatalf("expected plain gallows to be unchanged")
	}
}

func TestBannerKeepsBackticks(t *testing.T) {
	want := "     |  __  |/ _` | '_ \\ / _` | '_ ` _ \\ / _` | '_ \\ \n"
	if !strings.Contains(Banner(), want) {
		t.Fatalf("banner is missing line %q", want)
	}
	if !strings.HasSuffix(Banner(), "|___/\n") {
		t.Fatalf("unexpected banner ending: %q", Banner())
	}
}

func TestGallowsDrawings(t *testing.T) {
	cases := map[int]string{
		0: "      x-------x",
		1: "        x-------x\n        |\n        |\n        |\n        |\n        |\n    ",
		6: "        x-------x\n        |       |\n        |       0\n        |      /|\\\n        |      / \\\n        |",
	}
	for n, want := range cases {
		got, err := Gallows(n)
		if err != nil {
			t.Fatalf("count %d: unexpected error: %v", n, err)
		}
		if got != want {
			t.Fatalf("count %d: expected %q, got %q", n, want, got)
		}
	}
}
