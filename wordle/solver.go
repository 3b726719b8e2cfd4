package wordle

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultOpener is the first guess of every game. It is the entropy optimum over
// the full answer list, fixed here because recomputing it costs a full search.
const DefaultOpener = "crane"

// ErrNoCandidates means no answer is consistent with the feedback given so far.
var ErrNoCandidates = errors.New("no word matches the feedback")

// Strategy records how NextGuess chose its guess.
type Strategy uint8

const (
	// StrategyOpener is the fixed first guess.
	StrategyOpener Strategy = iota + 1
	// StrategyEndgame guesses the first candidate when at most two remain.
	StrategyEndgame
	// StrategySearch is a full entropy search over the guess vocabulary.
	StrategySearch
)

func (s Strategy) String() string {
	switch s {
	case StrategyOpener:
		return "opener"
	case StrategyEndgame:
		return "endgame"
	case StrategySearch:
		return "search"
	}
	return "none"
}

// Feedback is a guess together with the pattern it received.
type Feedback struct {
	Guess   Word
	Pattern Pattern
}

// Result of one turn. Remaining counts the candidates after the turn's feedback was applied.
type Result struct {
	Guess     Word
	Remaining int
	Strategy  Strategy
	// Entropy is only set by StrategySearch.
	Entropy float64
}

type Options struct {
	// Opener defaults to DefaultOpener.
	Opener string
	// Workers is the number of goroutines sharing the full search, values below 2 use one.
	Workers int
	// Cache is optional and must come from the solver's dictionary.
	Cache *SearchCache
}

// Solver plays one game. It is not safe for concurrent use; callers that share
// one across goroutines must serialize access.
type Solver struct {
	dict    *Dictionary
	opener  Word
	workers int
	cache   *SearchCache

	candidates *WordList
	turn       int
	lastGuess  Word
}

func NewSolver(dict *Dictionary, opts Options) (*Solver, error) {
	opener := opts.Opener
	if opener == "" {
		opener = DefaultOpener
	}
	openerWord, err := ParseWord(opener)
	if err != nil {
		return nil, fmt.Errorf("opener: %w", err)
	}
	if opts.Cache != nil && opts.Cache.dict != dict {
		return nil, errors.New("search cache belongs to a different dictionary")
	}
	ret := &Solver{
		dict:    dict,
		opener:  openerWord,
		workers: opts.Workers,
		cache:   opts.Cache,
	}
	ret.Reset()
	return ret, nil
}

// Reset starts a new game.
func (s *Solver) Reset() {
	s.candidates = s.dict.WordlistAll()
	s.turn = 0
	s.lastGuess = Word{}
}

// NextGuess applies prior, when not nil, to the candidates and returns the next guess.
// When the feedback history leaves no candidate it returns ErrNoCandidates and a
// zero Result; the game can only continue after Reset.
func (s *Solver) NextGuess(prior *Feedback) (Result, error) {
	s.turn++
	if prior != nil {
		s.candidates = s.dict.Filter(s.candidates, prior.Guess, prior.Pattern)
	}
	remaining := s.candidates.Len()

	var ret Result
	switch {
	case remaining == 0:
		log.Debug().Int("turn", s.turn).Msg("no candidates left")
		return Result{}, ErrNoCandidates
	case s.turn == 1:
		ret = Result{Guess: s.opener, Remaining: remaining, Strategy: StrategyOpener}
	case remaining <= 2:
		first, _ := s.candidates.First()
		ret = Result{Guess: s.dict.Answer(first), Remaining: remaining, Strategy: StrategyEndgame}
	default:
		best := s.search()
		ret = Result{Guess: best.Word, Remaining: remaining, Strategy: StrategySearch, Entropy: best.Entropy}
	}
	s.lastGuess = ret.Guess
	log.Debug().
		Int("turn", s.turn).
		Int("remaining", remaining).
		Stringer("guess", ret.Guess).
		Stringer("strategy", ret.Strategy).
		Msg("next guess")
	return ret, nil
}

func (s *Solver) search() Scored {
	if s.cache != nil {
		if best, ok := s.cache.get(s.candidates); ok {
			return best
		}
	}
	start := time.Now()
	best := s.dict.BestGuess(s.candidates, s.workers)
	log.Debug().
		Int("candidates", s.candidates.Len()).
		Int("guesses", s.dict.GuessLen()).
		Dur("elapsed", time.Since(start)).
		Float64("entropy", best.Entropy).
		Msg("entropy search")
	if s.cache != nil {
		s.cache.add(s.candidates, best)
	}
	return best
}

// Candidates returns a copy of the answers still consistent with the feedback.
func (s *Solver) Candidates() *WordList {
	return s.candidates.Clone()
}

func (s *Solver) CandidateStrings() []string {
	return s.dict.WordlistStrings(s.candidates)
}

// LastGuess is the guess most recently returned, false before the first turn.
func (s *Solver) LastGuess() (Word, bool) {
	return s.lastGuess, !s.lastGuess.IsZero()
}

// Turn is the number of NextGuess calls since Reset.
func (s *Solver) Turn() int {
	return s.turn
}

func (s *Solver) Dictionary() *Dictionary {
	return s.dict
}
