package strview

import "testing"

func TestChopByDelim(t *testing.T) {
	for _, tt := range []struct {
		s    string
		c    byte
		tok  string
		rest string
	}{
		{"a,b,c", ',', "a", "b,c"},
		{",b", ',', "", "b"},
		{"abc", ',', "abc", ""},
		{"abc,", ',', "abc", ""},
		{"", ',', "", ""},
	} {
		v := New(tt.s)
		tok := v.ChopByDelim(tt.c)
		if tok.String() != tt.tok || v.String() != tt.rest {
			t.Errorf("ChopByDelim(%q, %q): got (%q, %q); want (%q, %q)",
				tt.s, tt.c, tok, v, tt.tok, tt.rest)
		}
	}
}

func TestChopBySV(t *testing.T) {
	for _, tt := range []struct {
		s     string
		delim string
		tok   string
		rest  string
	}{
		{"a -> b -> c", " -> ", "a", "b -> c"},
		{"abc\n\n", "\n\n", "abc", ""},
		{"abc", "\n\n", "abc", ""},
		{"x", "long delimiter", "x", ""},
		{"abc", "", "abc", ""},
	} {
		v := New(tt.s)
		tok := v.ChopBySV(tt.delim)
		if tok.String() != tt.tok || v.String() != tt.rest {
			t.Errorf("ChopBySV(%q, %q): got (%q, %q); want (%q, %q)",
				tt.s, tt.delim, tok, v, tt.tok, tt.rest)
		}
	}
}

func TestChopInt(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want int64
		rest string
	}{
		{"123", 123, ""},
		{"-42 x", -42, " x"},
		{"+7,", 7, ","},
		{"x", 0, "x"},
		{"-", 0, ""},
		{"", 0, ""},
		{"0012", 12, ""},
	} {
		v := New(tt.s)
		got := v.ChopInt()
		if got != tt.want || v.String() != tt.rest {
			t.Errorf("ChopInt(%q): got (%d, %q); want (%d, %q)", tt.s, got, v, tt.want, tt.rest)
		}
	}
}

func TestChopUint(t *testing.T) {
	v := New("18446744073709551615 rest")
	if got, want := v.ChopUint(), uint64(18446744073709551615); got != want {
		t.Errorf("got %d; want %d", got, want)
	}
	if v.String() != " rest" {
		t.Errorf("got rest %q", v)
	}
	v = New("-3")
	if got := v.ChopUint(); got != 0 || v.String() != "-3" {
		t.Errorf("ChopUint(-3): got (%d, %q)", got, v)
	}
	if got := New("99 bottles").ToUint(); got != 99 {
		t.Errorf("ToUint: got %d; want 99", got)
	}
}

func TestClamping(t *testing.T) {
	v := New("hello")
	if got := v.Take(10).String(); got != "hello" {
		t.Errorf("Take(10): got %q", got)
	}
	if got := v.Take(-1).String(); got != "" {
		t.Errorf("Take(-1): got %q", got)
	}
	if got := v.Forward(3).String(); got != "lo" {
		t.Errorf("Forward(3): got %q", got)
	}
	if got := v.Forward(9).String(); got != "" {
		t.Errorf("Forward(9): got %q", got)
	}
	for _, tt := range []struct {
		start, end int
		want       string
	}{
		{1, 3, "el"},
		{3, 1, ""},
		{-2, 2, "he"},
		{4, 100, "o"},
		{100, 200, ""},
	} {
		if got := v.Substr(tt.start, tt.end).String(); got != tt.want {
			t.Errorf("Substr(%d, %d): got %q; want %q", tt.start, tt.end, got, tt.want)
		}
	}

	w := v
	if got := w.TakeMut(2).String(); got != "he" || w.String() != "llo" {
		t.Errorf("TakeMut(2): got (%q, %q)", got, w)
	}
	w.ForwardMut(100)
	if !w.Empty() {
		t.Errorf("ForwardMut(100) left %q", w)
	}
	if v.String() != "hello" {
		t.Errorf("original view changed to %q", v)
	}
}

func TestTrimAndPredicates(t *testing.T) {
	v := New(" \t\r\nGame 12: x")
	if got := v.TrimLeft().String(); got != "Game 12: x" {
		t.Errorf("TrimLeft: got %q", got)
	}
	if v.Len() != 14 {
		t.Errorf("TrimLeft modified the receiver: %q", v)
	}
	v.TrimLeftMut()
	if !v.StartsWith("Game ") || v.StartsWith("game") {
		t.Errorf("StartsWith wrong for %q", v)
	}
	if !v.EndsWith(": x") || v.EndsWith("y") {
		t.Errorf("EndsWith wrong for %q", v)
	}
	if v.At(0) != 'G' {
		t.Errorf("At(0): got %q", v.At(0))
	}
	word := v.ChopWhile(func(c byte) bool { return c != ' ' })
	if word.String() != "Game" || v.String() != " 12: x" {
		t.Errorf("ChopWhile: got (%q, %q)", word, v)
	}
}
