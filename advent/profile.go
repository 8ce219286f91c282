package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"
)

// startProfiling starts whichever profiles were requested. The returned
// function stops them and flushes their output.
func startProfiling(cpuDir, memDir, fgprofFile string) (stop func() error, err error) {
	if cpuDir != "" && memDir != "" {
		return nil, errors.New("-cpuprofile and -memprofile can't be used together")
	}
	var stops []func() error
	switch {
	case cpuDir != "":
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(cpuDir), profile.NoShutdownHook, profile.Quiet)
		stops = append(stops, func() error { p.Stop(); return nil })
	case memDir != "":
		p := profile.Start(profile.MemProfile, profile.ProfilePath(memDir), profile.NoShutdownHook, profile.Quiet)
		stops = append(stops, func() error { p.Stop(); return nil })
	}
	if fgprofFile != "" {
		f, err := os.Create(fgprofFile)
		if err != nil {
			for _, s := range stops {
				s()
			}
			return nil, err
		}
		stopFG := fgprof.Start(f, fgprof.FormatPprof)
		stops = append(stops, func() error {
			if err := stopFG(); err != nil {
				f.Close()
				return fmt.Errorf("error writing fgprof profile: %s", err)
			}
			return f.Close()
		})
	}
	return func() error {
		var firstErr error
		for _, s := range stops {
			if err := s(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}, nil
}
