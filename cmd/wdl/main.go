package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/wordlesolver/server"
	"github.com/powellquiring/wordlesolver/wordle"
	"github.com/powellquiring/wordlesolver/words"
)

// play reports the next guess for a game given as guess/pattern pairs
func play(ctx context.Context, globalConfig *GlobalConfiguration, args []string) error {
	d, err := globalConfig.Dictionary(ctx)
	if err != nil {
		return err
	}
	history, err := parseHistory(args)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	solver, err := wordle.NewSolver(d, globalConfig.Options())
	if err != nil {
		return err
	}
	result, err := wordle.Replay(solver, history)
	if err != nil {
		return cli.Exit(err.Error(), 3)
	}
	fmt.Printf("%s (%s) remaining %d:", result.Guess, result.Strategy, result.Remaining)
	for _, word := range solver.CandidateStrings() {
		fmt.Print(" ", word)
	}
	fmt.Println()
	return nil
}

func parseHistory(args []string) ([]wordle.Feedback, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("must have pairs of guess pattern")
	}
	var ret []wordle.Feedback
	for i := 0; i < len(args); i += 2 {
		guess, err := wordle.ParseWord(args[i])
		if err != nil {
			return nil, err
		}
		pattern, err := wordle.ParsePattern(args[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w, use G Y B like bbgyb", err)
		}
		ret = append(ret, wordle.Feedback{Guess: guess, Pattern: pattern})
	}
	return ret, nil
}

// solve plays one game against each secret and prints the guesses
func solve(ctx context.Context, globalConfig *GlobalConfiguration, secrets []string) error {
	d, err := globalConfig.Dictionary(ctx)
	if err != nil {
		return err
	}
	for _, s := range secrets {
		secret, err := wordle.ParseWord(s)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		if !d.IsAnswer(secret) {
			log.Warn().Stringer("secret", secret).Msg("secret is not in the answer list")
		}
		game, err := wordle.Simulate(d, secret, globalConfig.Options(), 0)
		fmt.Print(secret, ":")
		for i, guess := range game.Guesses {
			fmt.Print(" ", guess, "/", game.Patterns[i])
		}
		fmt.Println()
		if err != nil {
			log.Error().Err(err).Msg("solve")
		}
	}
	return nil
}

// first ranks opening guesses by entropy over every answer
func first(ctx context.Context, globalConfig *GlobalConfiguration, n int) error {
	d, err := globalConfig.Dictionary(ctx)
	if err != nil {
		return err
	}
	for _, scored := range d.Rank(d.WordlistAll(), n, globalConfig.workers) {
		fmt.Printf("%s %.4f\n", scored.Word, scored.Entropy)
	}
	return nil
}

func fetch(ctx context.Context, globalConfig *GlobalConfiguration) error {
	lists, err := words.NewFetcher().Ensure(ctx, globalConfig.cacheDir, globalConfig.Sources())
	if err != nil {
		return err
	}
	fmt.Printf("%s answers, %s extra guesses in %s\n",
		humanizeCount(len(lists.Answers)), humanizeCount(len(lists.Guesses)), globalConfig.cacheDir)
	return nil
}

func serve(ctx context.Context, globalConfig *GlobalConfiguration, port string) error {
	d, err := globalConfig.Dictionary(ctx)
	if err != nil {
		return err
	}
	solver, err := wordle.NewSolver(d, globalConfig.Options())
	if err != nil {
		return err
	}
	srv := server.New(solver)
	log.Info().Str("port", port).Int("answers", d.Len()).Int("guesses", d.GuessLen()).Msg("starting server")
	return srv.Start(":" + port)
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

func main() {
	_ = godotenv.Load()

	globalConfig := &GlobalConfiguration{}
	profile := false
	logLevel := "info"
	// command specific flags
	port := "5001"
	firstCount := 10
	progress := true
	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle solver that guesses the word with the most information",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "cache-dir",
				Value:       defaultCacheDir(),
				Usage:       "directory holding answers.txt and guesses.txt",
				Sources:     cli.EnvVars("WORDLE_CACHE_DIR"),
				Destination: &globalConfig.cacheDir,
			},
			&cli.StringFlag{
				Name:        "answers-url",
				Value:       words.DefaultAnswersURL,
				Usage:       "where to download the answer list when it is not cached",
				Sources:     cli.EnvVars("WORDLE_ANSWERS_URL"),
				Destination: &globalConfig.answersURL,
			},
			&cli.StringFlag{
				Name:        "guesses-url",
				Value:       words.DefaultGuessesURL,
				Usage:       "where to download the extra guess list when it is not cached",
				Sources:     cli.EnvVars("WORDLE_GUESSES_URL"),
				Destination: &globalConfig.guessesURL,
			},
			&cli.BoolFlag{
				Name:        "embedded",
				Aliases:     []string{"e"},
				Usage:       "use the small built in word lists instead of the cache",
				Sources:     cli.EnvVars("WORDLE_EMBEDDED"),
				Destination: &globalConfig.embedded,
			},
			&cli.StringFlag{
				Name:        "opener",
				Value:       wordle.DefaultOpener,
				Aliases:     []string{"f"},
				Usage:       "first word to guess",
				Sources:     cli.EnvVars("WORDLE_OPENER"),
				Destination: &globalConfig.opener,
			},
			&cli.IntFlag{
				Name:        "workers",
				Value:       runtime.GOMAXPROCS(0),
				Aliases:     []string{"w"},
				Usage:       "goroutines used by a search or a simulation",
				Sources:     cli.EnvVars("WORDLE_WORKERS"),
				Destination: &globalConfig.workers,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "trace, debug, info, warn or error",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Destination: &logLevel,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, setupLogging(logLevel)
		},
		Commands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "download the word lists into the cache directory unless already there",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return fetch(ctx, globalConfig)
				},
			},
			{
				Name: "play",
				Usage: `play [guess pattern]...
				Get the next guess for a game of wordle in progress by entering each guess with
				the pattern it received, G for green, Y for yellow and B for gray, like: crane bbgyb
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					return play(ctx, globalConfig, cmd.Args().Slice())
				},
			},
			{
				Name:  "solve",
				Usage: "solve secret... play a game against each secret and show the guesses",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() < 1 {
						return cli.Exit("must have at least one secret", 2)
					}
					return solve(ctx, globalConfig, cmd.Args().Slice())
				},
			},
			{
				Name: "sim",
				Usage: `sim
				Simulate a game for every answer and print how many guesses each one took.
				`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "progress",
						Value:       true,
						Aliases:     []string{"p"},
						Usage:       "show progress bar",
						Destination: &progress,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					return simulate(ctx, globalConfig, progress)
				},
			},
			{
				Name:  "first",
				Usage: "rank first words by entropy over all answers",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "count",
						Value:       10,
						Aliases:     []string{"n"},
						Usage:       "number of words, 0 is all words",
						Destination: &firstCount,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					return first(ctx, globalConfig, firstCount)
				},
			},
			{
				Name:  "serve",
				Usage: "serve the solver as a JSON API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "port",
						Value:       "5001",
						Sources:     cli.EnvVars("PORT"),
						Destination: &port,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return serve(ctx, globalConfig, port)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
