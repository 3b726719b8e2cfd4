// Package words loads the two word lists the solver needs: the answers that can
// be secrets and the extra words that are valid guesses only.
//
// The lists live as newline separated files in a cache directory. When the cache
// is missing they are downloaded once (Fetch) and written there (Save). Small
// built in lists (Embedded) let tests and offline demos run without either.
package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	AnswersFile = "answers.txt"
	GuessesFile = "guesses.txt"
)

var (
	// ErrNotCached means a list file is missing from the cache directory.
	ErrNotCached = errors.New("word lists not cached")
	// ErrBootstrap means the lists were neither cached nor downloadable.
	ErrBootstrap = errors.New("word list bootstrap failed")
)

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_guesses.txt
var embeddedGuesses string

// Lists are the answers and the words that are valid guesses but never answers.
type Lists struct {
	Answers []string
	Guesses []string
}

// Embedded returns the built in lists.
func Embedded() Lists {
	return Lists{
		Answers: normalize(strings.NewReader(embeddedAnswers)),
		Guesses: normalize(strings.NewReader(embeddedGuesses)),
	}
}

// Load reads both lists from dir.
func Load(dir string) (Lists, error) {
	var ret Lists
	var err error
	if ret.Answers, err = readWordFile(filepath.Join(dir, AnswersFile)); err != nil {
		return Lists{}, err
	}
	if ret.Guesses, err = readWordFile(filepath.Join(dir, GuessesFile)); err != nil {
		return Lists{}, err
	}
	if len(ret.Answers) == 0 {
		return Lists{}, fmt.Errorf("%s: no words", filepath.Join(dir, AnswersFile))
	}
	return ret, nil
}

// Save writes both lists to dir, creating it if needed.
func Save(dir string, lists Lists) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := writeWordFile(filepath.Join(dir, AnswersFile), lists.Answers); err != nil {
		return err
	}
	return writeWordFile(filepath.Join(dir, GuessesFile), lists.Guesses)
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotCached, path)
		}
		return nil, err
	}
	defer f.Close()
	ret, err := scanWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ret, nil
}

// writeWordFile writes through a temporary file so a failed write never leaves
// a truncated list behind for Load to find.
func writeWordFile(path string, words []string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, word := range words {
		w.WriteString(word)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

func normalize(r io.Reader) []string {
	ret, _ := scanWords(r)
	return ret
}

// scanWords keeps lowercased five letter a-z lines and drops everything else.
func scanWords(r io.Reader) ([]string, error) {
	var ret []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if len(w) == 5 && isAlpha(w) {
			ret = append(ret, w)
		}
	}
	return ret, sc.Err()
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
