package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSolver(t *testing.T, d *Dictionary, opts Options) *Solver {
	t.Helper()
	s, err := NewSolver(d, opts)
	require.NoError(t, err)
	return s
}

func TestFirstTurnIsOpener(t *testing.T) {
	d := embeddedDictionary(t)
	s := newSolver(t, d, Options{})

	result, err := s.NextGuess(nil)
	require.NoError(t, err)
	assert.Equal(t, Result{Guess: MustWord(DefaultOpener), Remaining: d.Len(), Strategy: StrategyOpener}, result)

	// play on a little, then start over
	_, err = s.NextGuess(&Feedback{Guess: result.Guess, Pattern: Encode(result.Guess, MustWord("cigar"))})
	require.NoError(t, err)
	require.Less(t, s.Candidates().Len(), d.Len())

	s.Reset()
	assert.Equal(t, 0, s.Turn())
	_, ok := s.LastGuess()
	assert.False(t, ok)
	result, err = s.NextGuess(nil)
	require.NoError(t, err)
	assert.Equal(t, MustWord(DefaultOpener), result.Guess)
	assert.Equal(t, d.Len(), result.Remaining)
}

func TestCustomOpener(t *testing.T) {
	d := embeddedDictionary(t)
	s := newSolver(t, d, Options{Opener: "SOARE"})
	result, err := s.NextGuess(nil)
	require.NoError(t, err)
	assert.Equal(t, "soare", result.Guess.String())

	_, err = NewSolver(d, Options{Opener: "soar"})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestEndgameTwoCandidates(t *testing.T) {
	d, err := NewDictionary([]string{"mango", "tango"}, []string{"mxxxx"})
	require.NoError(t, err)
	s := newSolver(t, d, Options{})

	result, err := s.NextGuess(nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyOpener, result.Strategy)
	assert.Equal(t, 2, result.Remaining)

	result, err = s.NextGuess(nil)
	require.NoError(t, err)
	assert.Equal(t, Result{Guess: MustWord("mango"), Remaining: 2, Strategy: StrategyEndgame}, result)

	result, err = s.NextGuess(&Feedback{Guess: MustWord("mango"), Pattern: Encode(MustWord("mango"), MustWord("tango"))})
	require.NoError(t, err)
	assert.Equal(t, Result{Guess: MustWord("tango"), Remaining: 1, Strategy: StrategyEndgame}, result)
}

func TestShakeScenario(t *testing.T) {
	d := embeddedDictionary(t)
	s := newSolver(t, d, Options{Workers: 2})
	secret := MustWord("shake")

	result, err := s.NextGuess(nil)
	require.NoError(t, err)
	require.Equal(t, d.Len(), result.Remaining)

	previous := result.Remaining
	for turn := 2; turn <= MaxTurns+1; turn++ {
		pattern := Encode(result.Guess, secret)
		if pattern == AllCorrect {
			break
		}
		require.LessOrEqual(t, turn, MaxTurns, "not solved in time")
		result, err = s.NextGuess(&Feedback{Guess: result.Guess, Pattern: pattern})
		require.NoError(t, err)
		require.LessOrEqual(t, result.Remaining, previous)
		require.GreaterOrEqual(t, result.Remaining, 1)
		require.True(t, s.Candidates().Contains(mustID(t, d, secret)))
		last, ok := s.LastGuess()
		require.True(t, ok)
		require.Equal(t, result.Guess, last)
		require.Equal(t, turn, s.Turn())
		previous = result.Remaining
	}
	assert.Equal(t, secret, result.Guess)
}

func mustID(t *testing.T, d *Dictionary, w Word) WordID {
	t.Helper()
	wl, err := d.WordlistFromStrings([]string{w.String()})
	require.NoError(t, err)
	id, ok := wl.First()
	require.True(t, ok)
	return id
}

func TestSearchAfterOpener(t *testing.T) {
	d := embeddedDictionary(t)
	s := newSolver(t, d, Options{})
	_, err := s.NextGuess(nil)
	require.NoError(t, err)

	fb := Feedback{Guess: MustWord("crane"), Pattern: MustPattern("BBGBG")}
	result, err := s.NextGuess(&fb)
	require.NoError(t, err)
	assert.Equal(t, StrategySearch, result.Strategy)
	assert.Equal(t, 6, result.Remaining)

	want := d.BestGuess(d.Filter(d.WordlistAll(), fb.Guess, fb.Pattern), 1)
	assert.Equal(t, want.Word, result.Guess)
	assert.Equal(t, want.Entropy, result.Entropy)
}

func TestInconsistentHistory(t *testing.T) {
	d := embeddedDictionary(t)
	s := newSolver(t, d, Options{})
	_, err := s.NextGuess(nil)
	require.NoError(t, err)
	_, err = s.NextGuess(&Feedback{Guess: MustWord("crane"), Pattern: MustPattern("BBGBG")})
	require.NoError(t, err)

	// contradicts the first feedback, the a can not be gray
	result, err := s.NextGuess(&Feedback{Guess: MustWord("aback"), Pattern: MustPattern("BBBBB")})
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Equal(t, Result{}, result)
	assert.Equal(t, 0, s.Candidates().Len())
	assert.Empty(t, s.CandidateStrings())

	_, err = s.NextGuess(nil)
	assert.ErrorIs(t, err, ErrNoCandidates)

	s.Reset()
	result, err = s.NextGuess(nil)
	require.NoError(t, err)
	assert.Equal(t, d.Len(), result.Remaining)
}

func TestFirstTurnEmptiedByPrior(t *testing.T) {
	d := embeddedDictionary(t)
	s := newSolver(t, d, Options{})
	// every answer has a vowel, so nothing survives an all gray aeiou
	result, err := s.NextGuess(&Feedback{Guess: MustWord("aeiou"), Pattern: MustPattern("BBBBB")})
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Equal(t, Result{}, result)
	assert.Equal(t, 1, s.Turn())
	_, ok := s.LastGuess()
	assert.False(t, ok)
}

func TestCandidatesIsACopy(t *testing.T) {
	d := embeddedDictionary(t)
	s := newSolver(t, d, Options{})
	_, err := s.NextGuess(nil)
	require.NoError(t, err)
	_, err = s.NextGuess(&Feedback{Guess: MustWord("crane"), Pattern: MustPattern("BBGBG")})
	require.NoError(t, err)

	c := s.Candidates()
	c.Insert(0)
	assert.Equal(t, []string{"awake", "evade", "abate", "abase", "agate", "shake"}, s.CandidateStrings())
}

func TestSearchCache(t *testing.T) {
	d := embeddedDictionary(t)
	cache, err := d.NewSearchCache(16)
	require.NoError(t, err)

	other := embeddedDictionary(t)
	_, err = NewSolver(other, Options{Cache: cache})
	assert.Error(t, err)

	fb := Feedback{Guess: MustWord("crane"), Pattern: MustPattern("BBBBB")}
	plain := newSolver(t, d, Options{})
	cached := newSolver(t, d, Options{Cache: cache})
	for range 2 {
		want, err := Replay(plain, []Feedback{fb})
		require.NoError(t, err)
		got, err := Replay(cached, []Feedback{fb})
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 1, cache.Len())
	}
}

func TestReplay(t *testing.T) {
	d := embeddedDictionary(t)
	s := newSolver(t, d, Options{})

	result, err := Replay(s, nil)
	require.NoError(t, err)
	assert.Equal(t, StrategyOpener, result.Strategy)

	secret := MustWord("cigar")
	history := []Feedback{
		{Guess: MustWord("soare"), Pattern: Encode(MustWord("soare"), secret)},
		{Guess: MustWord("humph"), Pattern: Encode(MustWord("humph"), secret)},
	}
	result, err = Replay(s, history)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Turn())

	want := d.WordlistAll()
	for _, fb := range history {
		want = d.Filter(want, fb.Guess, fb.Pattern)
	}
	assert.Equal(t, want.Len(), result.Remaining)
	assert.Equal(t, d.WordlistStrings(want), s.CandidateStrings())
	assert.Contains(t, s.CandidateStrings(), "cigar")
}
