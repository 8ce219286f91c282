package puzzle

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	for _, tt := range []struct {
		contents string
		want     []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
		{"a\n\n", []string{"a", ""}},
	} {
		in := writeInput(t, tt.contents)
		got, err := in.Lines()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Lines(%q)", tt.contents)
	}
}

func TestRaw(t *testing.T) {
	in := writeInput(t, "1,2\r\n3\n")
	got, err := in.Raw()
	require.NoError(t, err)
	assert.Equal(t, "1,2\n3\n", got)
}

func TestMissingInput(t *testing.T) {
	in := Input(filepath.Join(t.TempDir(), "nope.txt"))
	_, err := in.Lines()
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = in.Raw()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeInput(t *testing.T, contents string) Input {
	t.Helper()
	name := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(name, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return Input(name)
}

type fakeProblem struct {
	p1, p2 any
	err2   error
}

func (p fakeProblem) Part1() (any, error) { return p.p1, nil }
func (p fakeProblem) Part2() (any, error) { return p.p2, p.err2 }

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	r := Run(&buf, fakeProblem{p1: 514579, err2: ErrNotImplemented})
	assert.Regexp(t, regexp.MustCompile(`^  \| Part1 \([0-9,]+µs\): 514579\n  \| Part2 \([0-9,]+µs\): not implemented\n$`), buf.String())
	assert.False(t, r.Failed())
	assert.EqualValues(t, 514579, r.Parts[0].Answer)

	buf.Reset()
	r = Run(&buf, fakeProblem{p1: ".#\n#.", err2: errors.New("bad line")})
	assert.Regexp(t, regexp.MustCompile(`^  \| Part1 \([0-9,]+µs\):\n  \|   \.#\n  \|   #\.\n  \| Part2 \([0-9,]+µs\): error: bad line\n$`), buf.String())
	assert.True(t, r.Failed())
}

func TestParseKey(t *testing.T) {
	for _, tt := range []struct {
		s           string
		defaultYear int
		want        Key
		wantErr     bool
	}{
		{"2020/13", 0, Key{2020, 13}, false},
		{"2023/1", 2020, Key{2023, 1}, false},
		{"7", 2019, Key{2019, 7}, false},
		{"7", 0, Key{}, true},
		{"26", 2020, Key{}, true},
		{"0", 2020, Key{}, true},
		{"x/3", 2020, Key{}, true},
		{"2020/", 2020, Key{}, true},
		{"12/3", 2020, Key{}, true},
	} {
		got, err := ParseKey(tt.s, tt.defaultYear)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKey(%q, %d): got nil error", tt.s, tt.defaultYear)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKey(%q, %d): %s", tt.s, tt.defaultYear, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKey(%q, %d): got %s; want %s", tt.s, tt.defaultYear, got, tt.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	New := func(Input) Problem { return fakeProblem{} }
	Register(1990, 3, New)
	Register(1990, 1, New)
	Register(1989, 25, New)
	assert.Panics(t, func() { Register(1990, 1, New) })

	var got []Key
	for _, k := range Days() {
		if k.Year < 2000 {
			got = append(got, k)
		}
	}
	assert.Equal(t, []Key{{1989, 25}, {1990, 1}, {1990, 3}}, got)

	_, ok := Lookup(1990, 3)
	assert.True(t, ok)
	_, ok = Lookup(1990, 2)
	assert.False(t, ok)

	years := Years()
	assert.Contains(t, years, 1989)
	assert.Contains(t, years, 1990)
}
