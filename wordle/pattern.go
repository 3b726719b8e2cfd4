package wordle

import (
	"errors"
	"fmt"
	"strings"
)

// WordLength is the number of letters in every word the engine handles.
const WordLength = 5

// PatternCount is the number of distinct patterns, 3^WordLength.
const PatternCount = 243

// ErrMalformedInput is returned by ParseWord and ParsePattern.
var ErrMalformedInput = errors.New("malformed input")

// Word is a five letter lowercase word.
type Word [WordLength]byte

// Color is the feedback for one letter of a guess.
type Color uint8

const (
	Absent Color = iota
	Present
	Correct
)

// Pattern is the feedback for a whole guess.
type Pattern [WordLength]Color

// AllCorrect is the pattern of a winning guess.
var AllCorrect = Pattern{Correct, Correct, Correct, Correct, Correct}

func (w Word) String() string {
	return string(w[:])
}

// IsZero reports whether w was never assigned.
func (w Word) IsZero() bool {
	return w == Word{}
}

// ParseWord accepts five letters a-z in either case, surrounding space is ignored.
func ParseWord(s string) (Word, error) {
	var ret Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLength {
		return ret, fmt.Errorf("%w: word %q is not %d letters", ErrMalformedInput, s, WordLength)
	}
	for i := range WordLength {
		c := s[i]
		if c < 'a' || c > 'z' {
			return ret, fmt.Errorf("%w: word %q has non letter %q", ErrMalformedInput, s, c)
		}
		ret[i] = c
	}
	return ret, nil
}

// MustWord is ParseWord for literals, it panics on bad input.
func MustWord(s string) Word {
	ret, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return ret
}

// ParsePattern accepts five of G (correct), Y (present) and B (absent) in either case.
func ParsePattern(s string) (Pattern, error) {
	var ret Pattern
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != WordLength {
		return ret, fmt.Errorf("%w: pattern %q is not %d symbols", ErrMalformedInput, s, WordLength)
	}
	for i := range WordLength {
		switch s[i] {
		case 'G':
			ret[i] = Correct
		case 'Y':
			ret[i] = Present
		case 'B':
			ret[i] = Absent
		default:
			return ret, fmt.Errorf("%w: pattern %q has unknown symbol %q", ErrMalformedInput, s, s[i])
		}
	}
	return ret, nil
}

// MustPattern is ParsePattern for literals, it panics on bad input.
func MustPattern(s string) Pattern {
	ret, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return ret
}

func (c Color) String() string {
	switch c {
	case Absent:
		return "B"
	case Present:
		return "Y"
	case Correct:
		return "G"
	}
	panic(fmt.Sprintf("unknown color %d", uint8(c)))
}

func (p Pattern) String() string {
	var sb strings.Builder
	for _, c := range p {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Code packs the pattern into [0, PatternCount), first letter most significant.
func (p Pattern) Code() int {
	ret := 0
	for _, c := range p {
		ret = ret*3 + int(c)
	}
	return ret
}

// Encode returns the feedback Wordle gives for guess when the answer is secret.
//
// Exact matches are taken first and consume their secret letter. The remaining
// guess letters, left to right, are Present only while an unconsumed copy of the
// letter is left in the secret, so a repeated guess letter is never credited more
// often than the secret holds it.
func Encode(guess, secret Word) Pattern {
	var ret Pattern
	var used [WordLength]bool
	for i := range WordLength {
		if guess[i] == secret[i] {
			ret[i] = Correct
			used[i] = true
		}
	}
	for i := range WordLength {
		if ret[i] == Correct {
			continue
		}
		for j := range WordLength {
			if !used[j] && secret[j] == guess[i] {
				ret[i] = Present
				used[j] = true
				break
			}
		}
	}
	return ret
}
