package words

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultAnswersURL = "https://gist.githubusercontent.com/scholtes/94f3c0303ba6a7768b47583aff36654d/raw/wordle-La.txt"
	DefaultGuessesURL = "https://gist.githubusercontent.com/cfreshman/cdcdf777450c5b5301e439061d29694c/raw/wordle-allowed-guesses.txt"
)

// Sources are where Fetch downloads the lists from.
type Sources struct {
	AnswersURL string
	GuessesURL string
}

func DefaultSources() Sources {
	return Sources{AnswersURL: DefaultAnswersURL, GuessesURL: DefaultGuessesURL}
}

// Fetcher downloads word lists.
type Fetcher struct {
	Client *http.Client
	// Attempts per list, at least one.
	Attempts int
	// Backoff is multiplied by the attempt number between attempts.
	Backoff time.Duration
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		Client:   &http.Client{Timeout: 30 * time.Second},
		Attempts: 3,
		Backoff:  time.Second,
	}
}

// Fetch downloads both lists concurrently.
func (f *Fetcher) Fetch(ctx context.Context, src Sources) (Lists, error) {
	var ret Lists
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ret.Answers, err = f.fetchList(ctx, src.AnswersURL)
		return err
	})
	g.Go(func() error {
		var err error
		ret.Guesses, err = f.fetchList(ctx, src.GuessesURL)
		return err
	})
	if err := g.Wait(); err != nil {
		return Lists{}, err
	}
	if len(ret.Answers) == 0 {
		return Lists{}, fmt.Errorf("%s: no words", src.AnswersURL)
	}
	return ret, nil
}

func (f *Fetcher) fetchList(ctx context.Context, url string) ([]string, error) {
	attempts := max(f.Attempts, 1)
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		var ret []string
		if ret, err = f.get(ctx, url); err == nil {
			log.Debug().Str("url", url).Int("words", len(ret)).Msg("fetched word list")
			return ret, nil
		}
		log.Warn().Err(err).Str("url", url).Int("attempt", attempt).Msg("fetch word list")
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.Backoff * time.Duration(attempt)):
		}
	}
	return nil, err
}

func (f *Fetcher) get(ctx context.Context, url string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return scanWords(resp.Body)
}

// Ensure returns the lists cached in dir, downloading and caching them first
// when they are missing. Any failure wraps ErrBootstrap.
func (f *Fetcher) Ensure(ctx context.Context, dir string, src Sources) (Lists, error) {
	lists, err := Load(dir)
	if err == nil {
		return lists, nil
	}
	if !errors.Is(err, ErrNotCached) {
		return Lists{}, fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	log.Info().Str("dir", dir).Msg("word lists not cached, downloading")
	if lists, err = f.Fetch(ctx, src); err != nil {
		return Lists{}, fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	if err := Save(dir, lists); err != nil {
		return Lists{}, fmt.Errorf("%w: %w", ErrBootstrap, err)
	}
	return lists, nil
}
