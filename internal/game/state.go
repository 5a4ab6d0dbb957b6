// Package game implements the hangman rules: guess validation, reveal
// rendering and win/lose detection.
package game

import (
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxTries is the number of incorrect guesses that ends a game.
const MaxTries = 6

const (
	placeholder   = '_'
	separator     = " "
	guessedJoiner = " -> "
)

// Outcome is the derived result of a game.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "in progress"
	}
}

// State holds the accepted guesses and the incorrect guess count. Guessed
// letters are lowercase, distinct and in insertion order.
type State struct {
	Guessed   []rune
	Incorrect int
}

// Outcome derives the game result for secret.
func (s State) Outcome(secret string) Outcome {
	if CheckWin(secret, s.Guessed) {
		return Won
	}
	if s.Incorrect >= MaxTries {
		return Lost
	}
	return InProgress
}

// Normalize lowercases raw player input.
func Normalize(raw string) string {
	return cases.Lower(language.Und).String(raw)
}

// IsValidGuess reports whether candidate is a single letter whose lowercase
// form has not been guessed yet.
func IsValidGuess(candidate string, guessed []rune) bool {
	if utf8.RuneCountInString(candidate) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(candidate)
	if !unicode.IsLetter(r) {
		return false
	}
	return !lo.Contains(guessed, unicode.ToLower(r))
}

// TryApplyGuess records candidate when it is valid. The input state is never
// modified; on rejection it is returned as is.
func TryApplyGuess(candidate string, s State) (bool, State) {
	if !IsValidGuess(candidate, s.Guessed) {
		return false, s
	}
	r, _ := utf8.DecodeRuneInString(candidate)
	next := State{
		Guessed:   append(slices.Clone(s.Guessed), unicode.ToLower(r)),
		Incorrect: s.Incorrect,
	}
	return true, next
}

// RenderHidden shows guessed letters of secret and a placeholder for the rest,
// each followed by a separator.
func RenderHidden(secret string, guessed []rune) string {
	var b strings.Builder
	for _, r := range secret {
		if lo.Contains(guessed, unicode.ToLower(r)) {
			b.WriteRune(r)
		} else {
			b.WriteRune(placeholder)
		}
		b.WriteString(separator)
	}
	return b.String()
}

// CheckWin reports whether every letter of secret has been guessed.
func CheckWin(secret string, guessed []rune) bool {
	letters := lo.Uniq([]rune(Normalize(secret)))
	return lo.Every(guessed, letters)
}

// FormatGuessed lists the distinct guessed letters in sorted order.
func FormatGuessed(guessed []rune) string {
	letters := lo.Map(lo.Uniq(guessed), func(r rune, _ int) string {
		return string(r)
	})
	sort.Strings(letters)
	return strings.Join(letters, guessedJoiner)
}
