package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vaughan0/go-ini"
)

const (
	defaultInputDir = "inputs"
	defaultPattern  = "%d/%02d.txt"
)

// config says where inputs live and which event to use when a selector
// names only a day.
type config struct {
	inputDir string
	pattern  string // formatted with year and day
	year     int
	day      int
}

// loadConfig builds the configuration from, in increasing precedence, the
// defaults, the ini file at path, and the environment. A missing ini file
// is only an error if required is set. Flags are applied by the caller.
func loadConfig(path string, required bool, getenv func(string) string) (config, error) {
	c := config{inputDir: defaultInputDir, pattern: defaultPattern}
	file, err := ini.LoadFile(path)
	switch {
	case err == nil:
		if err := c.applyINI(file); err != nil {
			return c, fmt.Errorf("%s: %s", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return c, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if err := c.applyEnv(getenv); err != nil {
		return c, err
	}
	return c, c.validate()
}

func (c *config) applyINI(file ini.File) error {
	if dir, ok := file.Get("inputs", "dir"); ok {
		c.inputDir = dir
	}
	if pattern, ok := file.Get("inputs", "pattern"); ok {
		c.pattern = pattern
	}
	if year, ok := file.Get("run", "year"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(year))
		if err != nil {
			return fmt.Errorf("bad [run] year %q", year)
		}
		c.year = n
	}
	return nil
}

func (c *config) applyEnv(getenv func(string) string) error {
	if dir := getenv("AOC_INPUTS"); dir != "" {
		c.inputDir = dir
	}
	for _, v := range []struct {
		name string
		dst  *int
	}{
		{"AOC_YEAR", &c.year},
		{"AOC_DAY", &c.day},
	} {
		s := getenv(v.name)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("bad %s value %q", v.name, s)
		}
		*v.dst = n
	}
	return nil
}

func (c config) validate() error {
	if c.year != 0 && c.year < 2015 {
		return fmt.Errorf("bad year %d", c.year)
	}
	if c.day < 0 || c.day > 25 {
		return fmt.Errorf("bad day %d", c.day)
	}
	if strings.Count(c.pattern, "%") != 2 {
		return fmt.Errorf("input pattern %q must have one verb for the year and one for the day", c.pattern)
	}
	return nil
}

// inputPath returns the input file for a day.
func (c config) inputPath(year, day int) string {
	return filepath.Join(c.inputDir, fmt.Sprintf(c.pattern, year, day))
}
