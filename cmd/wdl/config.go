package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/powellquiring/wordlesolver/wordle"
	"github.com/powellquiring/wordlesolver/words"
)

// GlobalConfiguration is filled in from the global flags, which also read the
// environment and a .env file.
type GlobalConfiguration struct {
	cacheDir   string
	answersURL string
	guessesURL string
	embedded   bool
	opener     string
	workers    int

	dictionary *wordle.Dictionary
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".wordle"
	}
	return filepath.Join(dir, "wordlesolver")
}

func (c *GlobalConfiguration) Sources() words.Sources {
	return words.Sources{AnswersURL: c.answersURL, GuessesURL: c.guessesURL}
}

func (c *GlobalConfiguration) Options() wordle.Options {
	return wordle.Options{Opener: c.opener, Workers: c.workers}
}

// Dictionary loads the word lists once, downloading them if they are not cached.
func (c *GlobalConfiguration) Dictionary(ctx context.Context) (*wordle.Dictionary, error) {
	if c.dictionary != nil {
		return c.dictionary, nil
	}
	var lists words.Lists
	if c.embedded {
		lists = words.Embedded()
	} else {
		var err error
		if lists, err = words.NewFetcher().Ensure(ctx, c.cacheDir, c.Sources()); err != nil {
			return nil, err
		}
	}
	d, err := wordle.NewDictionary(lists.Answers, lists.Guesses)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("answers", d.Len()).Int("guesses", d.GuessLen()).Bool("embedded", c.embedded).Msg("dictionary")
	c.dictionary = d
	return d, nil
}

func humanizeCount(n int) string {
	return humanize.Comma(int64(n))
}
