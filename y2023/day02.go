package y2023

import (
	"fmt"

	"github.com/cespare/aoc/puzzle"
	"github.com/cespare/aoc/strview"
)

func init() {
	puzzle.Register(2023, 2, func(in puzzle.Input) puzzle.Problem { return day02{in} })
}

type day02 struct{ puzzle.Input }

type cubes struct {
	red, green, blue int
}

func (c cubes) power() int { return c.red * c.green * c.blue }

type cubeGame struct {
	id     int
	rounds []cubes
}

// parseCubeGame parses lines like
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
func parseCubeGame(line string) (cubeGame, error) {
	var g cubeGame
	v := strview.New(line)
	if !v.StartsWith("Game ") {
		return g, fmt.Errorf("bad game %q", line)
	}
	v.ForwardMut(len("Game "))
	g.id = int(v.ChopUint())
	if !v.StartsWith(":") {
		return g, fmt.Errorf("bad game %q", line)
	}
	v.ForwardMut(1)
	for !v.Empty() {
		round := v.ChopByDelim(';')
		var c cubes
		for !round.Empty() {
			draw := round.ChopByDelim(',')
			draw.TrimLeftMut()
			n := int(draw.ChopUint())
			draw.TrimLeftMut()
			switch draw.String() {
			case "red":
				c.red += n
			case "green":
				c.green += n
			case "blue":
				c.blue += n
			default:
				return g, fmt.Errorf("bad cube color %q in %q", draw, line)
			}
		}
		g.rounds = append(g.rounds, c)
	}
	return g, nil
}

// fewest returns the smallest bag that could have produced the game.
func (g cubeGame) fewest() cubes {
	var m cubes
	for _, r := range g.rounds {
		m.red = max(m.red, r.red)
		m.green = max(m.green, r.green)
		m.blue = max(m.blue, r.blue)
	}
	return m
}

func (d day02) games() ([]cubeGame, error) {
	lines, err := d.Lines()
	if err != nil {
		return nil, err
	}
	var games []cubeGame
	for _, line := range lines {
		if line == "" {
			continue
		}
		g, err := parseCubeGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

func (d day02) Part1() (any, error) {
	games, err := d.games()
	if err != nil {
		return nil, err
	}
	bag := cubes{red: 12, green: 13, blue: 14}
	sum := 0
	for _, g := range games {
		m := g.fewest()
		if m.red <= bag.red && m.green <= bag.green && m.blue <= bag.blue {
			sum += g.id
		}
	}
	return sum, nil
}

func (d day02) Part2() (any, error) {
	games, err := d.games()
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, g := range games {
		sum += g.fewest().power()
	}
	return sum, nil
}
