package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/wordlesolver/wordle"
)

const searchCacheSize = 100_000

// simulate plays every answer, one solver per game, and prints the games grouped
// by the number of guesses they took.
func simulate(ctx context.Context, globalConfig *GlobalConfiguration, progress bool) error {
	d, err := globalConfig.Dictionary(ctx)
	if err != nil {
		return err
	}
	cache, err := d.NewSearchCache(searchCacheSize)
	if err != nil {
		return err
	}
	opts := globalConfig.Options()
	// games run in parallel, each search runs on its game's goroutine
	opts.Workers = 1
	opts.Cache = cache

	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.Default(int64(d.Len()))
	} else {
		bar = progressbar.DefaultSilent(int64(d.Len()))
	}

	start := time.Now()
	games := make([]wordle.Game, d.Len())
	failed := make([]error, d.Len())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(globalConfig.workers, 1))
	for i, id := range d.WordlistAll().Range {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			games[i], failed[i] = wordle.Simulate(d, d.Answer(id), opts, 0)
			bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	bar.Finish()

	sortedGames := make(map[int][]wordle.Game)
	total := 0
	var failures []wordle.Game
	for i, game := range games {
		if failed[i] != nil {
			failures = append(failures, game)
			continue
		}
		sortedGames[len(game.Guesses)] = append(sortedGames[len(game.Guesses)], game)
		total += len(game.Guesses)
	}

	keys := make([]int, 0, len(sortedGames))
	for k := range sortedGames {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	fmt.Println()
	for _, numGuesses := range keys {
		fmt.Println(numGuesses, humanizeCount(len(sortedGames[numGuesses])), " ---------------------")
		for _, game := range sortedGames[numGuesses] {
			printGame(game)
		}
	}
	if len(failures) > 0 {
		fmt.Println("failed", humanizeCount(len(failures)), " ---------------------")
		for _, game := range failures {
			printGame(game)
		}
	}
	solved := len(games) - len(failures)
	if solved > 0 {
		fmt.Printf("solved %s of %s, average %.3f guesses\n",
			humanizeCount(solved), humanizeCount(len(games)), float64(total)/float64(solved))
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("cached", cache.Len()).
		Msg("simulation done")
	return nil
}

func printGame(game wordle.Game) {
	fmt.Print(game.Secret, ":")
	for _, guess := range game.Guesses {
		fmt.Print(" ", guess)
	}
	fmt.Println()
}
