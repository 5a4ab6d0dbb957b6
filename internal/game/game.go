package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrGameOver is returned when a guess is made after the game has ended.
var ErrGameOver = errors.New("game is over")

// Turn describes the effect of a single guess.
type Turn struct {
	Letter    string
	Accepted  bool
	Hit       bool
	Incorrect int
	Guessed   []rune
	Outcome   Outcome
}

// Game owns the secret word and the state of one session.
type Game struct {
	secret string
	state  State
}

// New starts a game for secret.
func New(secret string) *Game {
	return &Game{secret: Normalize(secret)}
}

// Secret returns the secret word.
func (g *Game) Secret() string {
	return g.secret
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return State{
		Guessed:   append([]rune(nil), g.state.Guessed...),
		Incorrect: g.state.Incorrect,
	}
}

// Outcome returns the current result.
func (g *Game) Outcome() Outcome {
	return g.state.Outcome(g.secret)
}

// Hidden renders the secret word with the current guesses.
func (g *Game) Hidden() string {
	return RenderHidden(g.secret, g.state.Guessed)
}

// Guess applies raw player input. Rejected guesses leave the state unchanged
// and do not consume a try.
func (g *Game) Guess(raw string) (Turn, error) {
	if g.Outcome() != InProgress {
		return Turn{}, ErrGameOver
	}
	letter := Normalize(raw)
	accepted, next := TryApplyGuess(letter, g.state)
	if !accepted {
		return Turn{
			Letter:    letter,
			Incorrect: g.state.Incorrect,
			Guessed:   g.State().Guessed,
			Outcome:   InProgress,
		}, nil
	}

	r, _ := utf8.DecodeRuneInString(letter)
	hit := strings.ContainsRune(g.secret, r)
	if !hit {
		next.Incorrect++
	}
	g.state = next
	return Turn{
		Letter:    letter,
		Accepted:  true,
		Hit:       hit,
		Incorrect: g.state.Incorrect,
		Guessed:   g.State().Guessed,
		Outcome:   g.Outcome(),
	}, nil
}
