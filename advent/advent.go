// Command advent runs Advent of Code solutions against their inputs.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cespare/aoc/puzzle"
	_ "github.com/cespare/aoc/y2017"
	_ "github.com/cespare/aoc/y2019"
	_ "github.com/cespare/aoc/y2020"
	_ "github.com/cespare/aoc/y2023"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var (
		year        = flag.Int("year", 0, "Event year (overrides AOC_YEAR and the config file)")
		day         = flag.Int("day", 0, "Day to run (overrides AOC_DAY)")
		all         = flag.Bool("all", false, "Run every registered day (of -year, if set)")
		inputs      = flag.String("inputs", "", "Input directory (overrides AOC_INPUTS and the config file)")
		configFile  = flag.String("config", "", "Config file (default aoc.ini, if present)")
		check       = flag.String("check", "", "Compare answers with this YAML file")
		verbose     = flag.Bool("v", false, "Log timing and memory details")
		interactive = flag.Bool("i", false, "Prompt for days to run")
		cpuProfile  = flag.String("cpuprofile", "", "Write a CPU profile to this directory")
		memProfile  = flag.String("memprofile", "", "Write a memory profile to this directory")
		fgprofFile  = flag.String("fgprof", "", "Write a wall-clock fgprof profile to this file")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [selector...]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "where a selector is year/day (2020/13) or a day of the current year,")
		fmt.Fprintln(os.Stderr, "and these days are available:")
		listDays(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	path, required := "aoc.ini", false
	if *configFile != "" {
		path, required = *configFile, true
	}
	cfg, err := loadConfig(path, required, os.Getenv)
	if err != nil {
		log.Fatal().Err(err).Msg("Bad configuration")
	}
	if *year != 0 {
		cfg.year = *year
	}
	if *day != 0 {
		cfg.day = *day
	}
	if *inputs != "" {
		cfg.inputDir = *inputs
	}
	if err := cfg.validate(); err != nil {
		log.Fatal().Err(err).Msg("Bad configuration")
	}

	r := &runner{cfg: cfg, out: os.Stdout, log: log.Logger}
	if *check != "" {
		if r.answers, err = loadAnswers(*check); err != nil {
			log.Fatal().Err(err).Msg("Cannot load answers")
		}
	}

	var keys []puzzle.Key
	switch {
	case *all:
		keys = selected(cfg.year)
	case flag.NArg() > 0:
		for _, arg := range flag.Args() {
			k, err := puzzle.ParseKey(arg, cfg.year)
			if err != nil {
				log.Fatal().Err(err).Msg("Bad selector")
			}
			keys = append(keys, k)
		}
	case cfg.day != 0:
		if cfg.year == 0 {
			log.Fatal().Msg("A day was given without a year")
		}
		keys = []puzzle.Key{{Year: cfg.year, Day: cfg.day}}
	case !*interactive:
		flag.Usage()
		os.Exit(2)
	}

	stop, err := startProfiling(*cpuProfile, *memProfile, *fgprofFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot start profiling")
	}
	ok := r.runAll(keys)
	if *interactive {
		if err := r.interact(); err != nil {
			log.Error().Err(err).Msg("Interactive session failed")
			ok = false
		}
	}
	if err := stop(); err != nil {
		log.Error().Err(err).Msg("Cannot write profile")
		ok = false
	}
	if !ok {
		os.Exit(1)
	}
}
