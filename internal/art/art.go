// Package art holds the banner and gallows drawings.
package art

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hangman/internal/game"
)

// ErrTriesOutOfRange is returned for gallows keys outside [0, game.MaxTries].
var ErrTriesOutOfRange = errors.New("incorrect guess count out of range")

const banner = "Welcome to the game Hangman\n" +
	"      _    _                                         \n" +
	"     | |  | |                                        \n" +
	"     | |__| | __ _ _ __   __ _ _ __ ___   __ _ _ __  \n" +
	"     |  __  |/ _` | '_ \\ / _` | '_ ` _ \\ / _` | '_ \\ \n" +
	"     | |  | | (_| | | | | (_| | | | | | | (_| | | | |\n" +
	"     |_|  |_|\\__,_|_| |_|\\__, |_| |_| |_|\\__,_|_| |_|\n" +
	"                          __/ |                      \n" +
	"                         |___/\n"

var gallows = [game.MaxTries + 1]string{
	"      x-------x",
	"        x-------x\n" +
		"        |\n" +
		"        |\n" +
		"        |\n" +
		"        |\n" +
		"        |\n" +
		"    ",
	"        x-------x\n" +
		"        |       |\n" +
		"        |       0\n" +
		"        |\n" +
		"        |\n" +
		"        |",
	"        x-------x\n" +
		"        |       |\n" +
		"        |       0\n" +
		"        |       |\n" +
		"        |\n" +
		"        |\n" +
		"    ",
	"        x-------x\n" +
		"        |       |\n" +
		"        |       0\n" +
		"        |      /|\\\n" +
		"        |\n" +
		"        |",
	"        x-------x\n" +
		"        |       |\n" +
		"        |       0\n" +
		"        |      /|\\\n" +
		"        |      /\n" +
		"        |",
	"        x-------x\n" +
		"        |       |\n" +
		"        |       0\n" +
		"        |      /|\\\n" +
		"        |      / \\\n" +
		"        |",
}

// Banner returns the opening screen.
func Banner() string {
	return banner
}

// Gallows returns the drawing for the given number of incorrect guesses.
func Gallows(incorrect int) (string, error) {
	if incorrect < 0 || incorrect > game.MaxTries {
		return "", fmt.Errorf("%w: %d", ErrTriesOutOfRange, incorrect)
	}
	return gallows[incorrect], nil
}

// PadBlock right-pads every line of block to the widest line and to at least
// height lines, so drawings of different stages occupy the same area.
func PadBlock(block string, height int) string {
	lines := strings.Split(block, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	for i, line := range lines {
		lines[i] = runewidth.FillRight(line, width)
	}
	return strings.Join(lines, "\n")
}

// Height is the line count of the tallest gallows drawing.
func Height() int {
	height := 0
	for _, drawing := range gallows {
		if n := strings.Count(drawing, "\n") + 1; n > height {
			height = n
		}
	}
	return height
}
