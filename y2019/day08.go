package y2019

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/aoc/puzzle"
)

func init() {
	puzzle.Register(2019, 8, func(in puzzle.Input) puzzle.Problem {
		return day08{Input: in, width: 25, height: 6}
	})
}

type day08 struct {
	puzzle.Input
	width, height int
}

func (d day08) layers() ([]string, error) {
	raw, err := d.Raw()
	if err != nil {
		return nil, err
	}
	data := strings.TrimSpace(raw)
	size := d.width * d.height
	if len(data) == 0 || len(data)%size != 0 {
		return nil, fmt.Errorf("image has %d pixels, which is not a multiple of %dx%d", len(data), d.width, d.height)
	}
	if i := strings.IndexFunc(data, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		return nil, fmt.Errorf("bad pixel %q at offset %d", data[i], i)
	}
	var layers []string
	for len(data) > 0 {
		layers = append(layers, data[:size])
		data = data[size:]
	}
	return layers, nil
}

func (d day08) Part1() (any, error) {
	layers, err := d.layers()
	if err != nil {
		return nil, err
	}
	best := layers[0]
	for _, layer := range layers[1:] {
		if strings.Count(layer, "0") < strings.Count(best, "0") {
			best = layer
		}
	}
	return strings.Count(best, "1") * strings.Count(best, "2"), nil
}

// Part2 stacks the layers, front to back, and renders the visible pixels
// with '#' for white and '.' for black.
func (d day08) Part2() (any, error) {
	layers, err := d.layers()
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for y := 0; y < d.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < d.width; x++ {
			c := byte(' ')
			for _, layer := range layers {
				px := layer[y*d.width+x]
				if px == '2' {
					continue
				}
				if px > '2' {
					return nil, fmt.Errorf("bad color %q", px)
				}
				c = ".#"[px-'0']
				break
			}
			b.WriteByte(c)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return nil, errors.New("image is fully transparent")
	}
	return b.String(), nil
}
