package wordle

import (
	"errors"
	"fmt"
)

// MaxTurns is the number of guesses Wordle allows.
const MaxTurns = 6

var ErrTooManyTurns = errors.New("secret not found within the turn limit")

// Game is the record of a simulated game.
type Game struct {
	Secret   Word
	Guesses  []Word
	Patterns []Pattern
	Solved   bool
}

// Simulate plays a solver against secret until it is guessed or maxTurns guesses
// were used (0 means MaxTurns). The game played so far is returned with any error.
func Simulate(dict *Dictionary, secret Word, opts Options, maxTurns int) (Game, error) {
	if maxTurns <= 0 {
		maxTurns = MaxTurns
	}
	game := Game{Secret: secret}
	solver, err := NewSolver(dict, opts)
	if err != nil {
		return game, err
	}
	var prior *Feedback
	for range maxTurns {
		result, err := solver.NextGuess(prior)
		if err != nil {
			return game, fmt.Errorf("simulate %s: %w", secret, err)
		}
		pattern := Encode(result.Guess, secret)
		game.Guesses = append(game.Guesses, result.Guess)
		game.Patterns = append(game.Patterns, pattern)
		if pattern == AllCorrect {
			game.Solved = true
			return game, nil
		}
		prior = &Feedback{Guess: result.Guess, Pattern: pattern}
	}
	return game, fmt.Errorf("simulate %s: %w", secret, ErrTooManyTurns)
}

// Replay resets solver, applies a reported history of guesses and patterns and
// returns the guess for the turn after it. The history need not start with the
// solver's opener. An empty history returns the opener.
func Replay(solver *Solver, history []Feedback) (Result, error) {
	solver.Reset()
	if len(history) == 0 {
		return solver.NextGuess(nil)
	}
	for _, fb := range history[:len(history)-1] {
		solver.candidates = solver.dict.Filter(solver.candidates, fb.Guess, fb.Pattern)
	}
	solver.turn = len(history)
	last := history[len(history)-1]
	return solver.NextGuess(&last)
}
