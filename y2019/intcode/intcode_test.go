package intcode

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) []int64 {
	t.Helper()
	prog, err := Parse(s)
	require.NoError(t, err)
	return prog
}

func TestParse(t *testing.T) {
	got, err := Parse("1,-2, 3,4\n")
	require.NoError(t, err)
	want := []int64{1, -2, 3, 4}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("Parse: got %v; want %v\n%s", got, want, diff)
	}
	for _, s := range []string{"", "1,,2", "1,x", "1.5"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q): got nil error", s)
		}
	}
}

func TestFinalMemory(t *testing.T) {
	for _, tt := range []struct {
		prog string
		want []int64
	}{
		{"1,9,10,3,2,3,11,0,99,30,40,50", []int64{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"1,0,0,0,99", []int64{2, 0, 0, 0, 99}},
		{"2,3,0,3,99", []int64{2, 3, 0, 6, 99}},
		{"2,4,4,5,99,0", []int64{2, 4, 4, 5, 99, 9801}},
		{"1,1,1,4,99,5,6,0,99", []int64{30, 1, 1, 4, 2, 5, 6, 0, 99}},
		{"1002,4,3,4,33", []int64{1002, 4, 3, 4, 99}},
		{"1101,100,-1,4,0", []int64{1101, 100, -1, 4, 99}},
	} {
		m := New(mustParse(t, tt.prog))
		_, err := m.RunIO()
		require.NoError(t, err, tt.prog)
		assert.True(t, m.Halted())
		got := make([]int64, len(tt.want))
		for i := range got {
			got[i] = m.Mem(int64(i))
		}
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("%s: memory differs:\n%s", tt.prog, diff)
		}
	}
}

func TestComparisonsAndJumps(t *testing.T) {
	const big = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31," +
		"1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104," +
		"999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"
	for _, tt := range []struct {
		prog  string
		input int64
		want  int64
	}{
		{"3,9,8,9,10,9,4,9,99,-1,8", 8, 1},
		{"3,9,8,9,10,9,4,9,99,-1,8", 7, 0},
		{"3,9,7,9,10,9,4,9,99,-1,8", 5, 1},
		{"3,3,1108,-1,8,3,4,3,99", 8, 1},
		{"3,3,1107,-1,8,3,4,3,99", 9, 0},
		{"3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", 0, 0},
		{"3,3,1105,-1,9,1101,0,0,12,4,12,99,1", 3, 1},
		{big, 7, 999},
		{big, 8, 1000},
		{big, 9, 1001},
	} {
		out, err := New(mustParse(t, tt.prog)).RunIO(tt.input)
		require.NoError(t, err)
		if len(out) != 1 || out[0] != tt.want {
			t.Errorf("%s with input %d: got %v; want [%d]", tt.prog, tt.input, out, tt.want)
		}
	}
}

func TestRelativeMode(t *testing.T) {
	quine := "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	prog := mustParse(t, quine)
	out, err := New(prog).RunIO()
	require.NoError(t, err)
	assert.Equal(t, prog, out)

	out, err = New(mustParse(t, "1102,34915192,34915192,7,4,7,99,0")).RunIO()
	require.NoError(t, err)
	assert.Equal(t, []int64{1219070632396864}, out)

	out, err = New(mustParse(t, "104,1125899906842624,99")).RunIO()
	require.NoError(t, err)
	assert.Equal(t, []int64{1125899906842624}, out)
}

func TestErrors(t *testing.T) {
	for _, tt := range []struct {
		prog string
		msg  string
	}{
		{"98,0,0,0", "unknown opcode 98 at pc 0"},
		{"11101,1,1,0,99", "immediate-mode write"},
		{"301,0,0,0,99", "bad mode 3"},
		{"1,-1,0,0,99", "negative address -1"},
	} {
		_, err := New(mustParse(t, tt.prog)).RunIO()
		if assert.Error(t, err, tt.prog) {
			assert.Contains(t, err.Error(), tt.msg)
		}
	}
	out, err := New(mustParse(t, "4,0,3,0,99")).RunIO()
	assert.ErrorIs(t, err, ErrNoInput)
	assert.Equal(t, []int64{4}, out)
}

func TestRunChannels(t *testing.T) {
	in := make(chan int64, 1)
	out := make(chan int64, 1)
	m := New(mustParse(t, "3,0,1001,0,1,0,4,0,99"))
	errc := make(chan error, 1)
	go func() { errc <- m.Run(nil, in, out) }()
	in <- 41
	assert.EqualValues(t, 42, <-out)
	require.NoError(t, <-errc)

	quit := make(chan struct{})
	m = New(mustParse(t, "3,0,99"))
	go func() { errc <- m.Run(quit, make(chan int64), out) }()
	close(quit)
	assert.ErrorIs(t, <-errc, ErrStopped)
}
