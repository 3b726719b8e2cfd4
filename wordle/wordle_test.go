package wordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powellquiring/wordlesolver/words"
)

func embeddedDictionary(t testing.TB) *Dictionary {
	t.Helper()
	lists := words.Embedded()
	d, err := NewDictionary(lists.Answers, lists.Guesses)
	require.NoError(t, err)
	return d
}

func TestNewDictionary(t *testing.T) {
	d, err := NewDictionary(
		[]string{"mango", "tango", "MANGO", "cargo"},
		[]string{"zzzzz", "tango", "aaaaa", "zzzzz"},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"mango", "tango", "cargo"}, d.WordlistStrings(d.WordlistAll()))

	var vocabulary []string
	for _, w := range d.Guesses() {
		vocabulary = append(vocabulary, w.String())
	}
	assert.Equal(t, []string{"zzzzz", "tango", "aaaaa", "mango", "cargo"}, vocabulary)
	assert.Equal(t, 5, d.GuessLen())

	assert.True(t, d.IsAnswer(MustWord("cargo")))
	assert.False(t, d.IsAnswer(MustWord("zzzzz")))
	assert.True(t, d.IsGuess(MustWord("zzzzz")))
	assert.True(t, d.IsGuess(MustWord("mango")))
	assert.False(t, d.IsGuess(MustWord("bingo")))
}

func TestNewDictionaryErrors(t *testing.T) {
	_, err := NewDictionary(nil, []string{"crane"})
	assert.ErrorIs(t, err, ErrEmptyAnswers)

	_, err = NewDictionary([]string{"crane", "toolong"}, nil)
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = NewDictionary([]string{"crane"}, []string{"cr-ne"})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestWordlist(t *testing.T) {
	d := embeddedDictionary(t)
	all := d.WordlistAll()
	assert.Equal(t, d.Len(), all.Len())
	first, ok := all.First()
	require.True(t, ok)
	assert.Equal(t, WordID(0), first)

	empty := d.WordlistEmpty()
	assert.Equal(t, 0, empty.Len())
	_, ok = empty.First()
	assert.False(t, ok)
	assert.Empty(t, d.WordlistStrings(empty))

	wl, err := d.WordlistFromStrings([]string{"shake", "cigar"})
	require.NoError(t, err)
	// answer order, not argument order
	assert.Equal(t, []string{"cigar", "shake"}, d.WordlistStrings(wl))

	_, err = d.WordlistFromStrings([]string{"zzzzz"})
	assert.Error(t, err)

	clone := wl.Clone()
	assert.True(t, clone.Equal(wl))
	clone.Insert(first + 5)
	assert.False(t, clone.Equal(wl))
	assert.Equal(t, 2, wl.Len())
}

func TestFilter(t *testing.T) {
	d := embeddedDictionary(t)
	all := d.WordlistAll()
	guess := MustWord("crane")
	observed := Encode(guess, MustWord("shake"))

	filtered := d.Filter(all, guess, observed)
	assert.Equal(t, []string{"awake", "evade", "abate", "abase", "agate", "shake"}, d.WordlistStrings(filtered))

	again := d.Filter(filtered, guess, observed)
	assert.True(t, again.Equal(filtered), "filtering twice changes nothing")
	assert.Equal(t, d.Len(), all.Len(), "input is not modified")

	none := d.Filter(all, guess, MustPattern("GGGGY"))
	assert.Equal(t, 0, none.Len())
}

func TestFilterNeverGrows(t *testing.T) {
	d := embeddedDictionary(t)
	candidates := d.WordlistAll()
	for _, g := range []string{"soare", "cigar", "humph", "jumpy"} {
		guess := MustWord(g)
		for _, id := range candidates.Range {
			filtered := d.Filter(candidates, guess, Encode(guess, d.Answer(id)))
			require.LessOrEqual(t, filtered.Len(), candidates.Len())
			require.True(t, filtered.Contains(id))
			var previous = -1
			for _, fid := range filtered.Range {
				require.True(t, candidates.Contains(fid))
				require.Greater(t, int(fid), previous)
				previous = int(fid)
			}
		}
	}
}
