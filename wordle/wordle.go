package wordle

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set"
)

// WordID is an index into the dictionary answers
type WordID uint16

// WordList is a set of answers, iterated in answer order.
type WordList bitset.BitSet

var ErrEmptyAnswers = errors.New("answer list is empty")

// Dictionary holds the answers that can be secrets and the larger vocabulary of
// words that can be guessed. It is never modified after NewDictionary and can be
// shared by any number of solvers.
type Dictionary struct {
	answers     []Word
	guesses     []Word
	answerIndex map[Word]WordID
	guessSet    mapset.Set
}

// NewDictionary builds a dictionary. The guess vocabulary is extra followed by
// answers with repeats dropped, and that order breaks ties between guesses.
func NewDictionary(answers, extra []string) (*Dictionary, error) {
	ret := &Dictionary{
		answerIndex: make(map[Word]WordID, len(answers)),
		guessSet:    mapset.NewSet(),
	}
	for _, s := range answers {
		word, err := ParseWord(s)
		if err != nil {
			return nil, fmt.Errorf("answers: %w", err)
		}
		if _, ok := ret.answerIndex[word]; ok {
			continue
		}
		if len(ret.answers) > int(^WordID(0)) {
			return nil, fmt.Errorf("answers: more than %d words", int(^WordID(0))+1)
		}
		ret.answerIndex[word] = WordID(len(ret.answers))
		ret.answers = append(ret.answers, word)
	}
	if len(ret.answers) == 0 {
		return nil, ErrEmptyAnswers
	}
	for _, s := range extra {
		word, err := ParseWord(s)
		if err != nil {
			return nil, fmt.Errorf("guesses: %w", err)
		}
		ret.addGuess(word)
	}
	for _, word := range ret.answers {
		ret.addGuess(word)
	}
	return ret, nil
}

func (d *Dictionary) addGuess(word Word) {
	if d.guessSet.Add(word) {
		d.guesses = append(d.guesses, word)
	}
}

// Len is the number of answers.
func (d *Dictionary) Len() int {
	return len(d.answers)
}

// GuessLen is the size of the guess vocabulary.
func (d *Dictionary) GuessLen() int {
	return len(d.guesses)
}

func (d *Dictionary) Answer(id WordID) Word {
	return d.answers[id]
}

// Guesses returns the vocabulary in tie breaking order. The slice must not be modified.
func (d *Dictionary) Guesses() []Word {
	return d.guesses
}

func (d *Dictionary) IsAnswer(word Word) bool {
	_, ok := d.answerIndex[word]
	return ok
}

func (d *Dictionary) IsGuess(word Word) bool {
	return d.guessSet.Contains(word)
}

func (d *Dictionary) WordlistAll() *WordList {
	ret := d.WordlistEmpty()
	bs := (*bitset.BitSet)(ret)
	for i := range d.answers {
		bs.Set(uint(i))
	}
	return ret
}

func (d *Dictionary) WordlistEmpty() *WordList {
	return (*WordList)(bitset.New(uint(len(d.answers))))
}

// WordlistFromStrings returns the answers named by strings.
func (d *Dictionary) WordlistFromStrings(strings []string) (*WordList, error) {
	ret := d.WordlistEmpty()
	for _, s := range strings {
		word, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		id, ok := d.answerIndex[word]
		if !ok {
			return nil, fmt.Errorf("%q is not an answer", s)
		}
		ret.Insert(id)
	}
	return ret, nil
}

// Words returns the members of wordlist in answer order.
func (d *Dictionary) Words(wordlist *WordList) []Word {
	ret := make([]Word, 0, wordlist.Len())
	for _, id := range wordlist.Range {
		ret = append(ret, d.answers[id])
	}
	return ret
}

func (d *Dictionary) WordlistStrings(wordlist *WordList) []string {
	ret := make([]string, 0, wordlist.Len())
	for _, id := range wordlist.Range {
		ret = append(ret, d.answers[id].String())
	}
	return ret
}

// Filter returns the candidates that would have produced observed for guess.
func (d *Dictionary) Filter(candidates *WordList, guess Word, observed Pattern) *WordList {
	ret := d.WordlistEmpty()
	for _, id := range candidates.Range {
		if Encode(guess, d.answers[id]) == observed {
			ret.Insert(id)
		}
	}
	return ret
}

func (wl *WordList) Range(yield func(i int, id WordID) bool) {
	bs := (*bitset.BitSet)(wl)
	i := 0
	for id, ok := bs.NextSet(0); ok; id, ok = bs.NextSet(id + 1) {
		if !yield(i, WordID(id)) {
			return
		}
		i++
	}
}

// First returns the lowest numbered answer in the list.
func (wl *WordList) First() (WordID, bool) {
	bs := (*bitset.BitSet)(wl)
	id, ok := bs.NextSet(0)
	return WordID(id), ok
}

func (wl *WordList) Len() int {
	bs := (*bitset.BitSet)(wl)
	return int(bs.Count())
}

func (wl *WordList) Contains(id WordID) bool {
	bs := (*bitset.BitSet)(wl)
	return bs.Test(uint(id))
}

func (wl *WordList) Insert(id WordID) {
	bs := (*bitset.BitSet)(wl)
	bs.Set(uint(id))
}

func (wl *WordList) Clone() *WordList {
	bs := (*bitset.BitSet)(wl)
	return (*WordList)(bs.Clone())
}

func (wl *WordList) Equal(other *WordList) bool {
	return (*bitset.BitSet)(wl).Equal((*bitset.BitSet)(other))
}

// key identifies the set, lists from the same dictionary share a key only when equal.
func (wl *WordList) key() string {
	words := (*bitset.BitSet)(wl).Bytes()
	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}
