// Package strview provides View, a cursor over a string for picking apart
// fixed-format puzzle input without allocating.
//
// The Mut methods consume text from the front of the view they are called
// on. The other methods return a new view and leave the receiver alone.
// Every count is clamped to the text remaining, so no method reads past the
// end of the string.
package strview

import "strings"

type View struct {
	s string
}

func New(s string) View { return View{s} }

func (v View) String() string { return v.s }
func (v View) Len() int       { return len(v.s) }
func (v View) Empty() bool    { return len(v.s) == 0 }

// At returns the i'th byte. It panics if i is out of range.
func (v View) At(i int) byte { return v.s[i] }

func (v View) clamp(n int) int {
	return max(0, min(n, len(v.s)))
}

// Take returns the first n bytes.
func (v View) Take(n int) View { return View{v.s[:v.clamp(n)]} }

// TakeMut removes the first n bytes and returns them.
func (v *View) TakeMut(n int) View {
	n = v.clamp(n)
	t := v.s[:n]
	v.s = v.s[n:]
	return View{t}
}

// Forward returns the view without its first n bytes.
func (v View) Forward(n int) View { return View{v.s[v.clamp(n):]} }

func (v *View) ForwardMut(n int) { v.s = v.s[v.clamp(n):] }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// TrimLeft returns the view without leading whitespace.
func (v View) TrimLeft() View {
	v.TrimLeftMut()
	return v
}

func (v *View) TrimLeftMut() {
	i := 0
	for i < len(v.s) && isSpace(v.s[i]) {
		i++
	}
	v.s = v.s[i:]
}

// ChopByDelim removes and returns the text before the first c. The c itself
// is dropped. If there is no c, the rest of the view is returned.
func (v *View) ChopByDelim(c byte) View {
	i := strings.IndexByte(v.s, c)
	if i < 0 {
		return v.TakeMut(len(v.s))
	}
	t := v.s[:i]
	v.s = v.s[i+1:]
	return View{t}
}

// ChopBySV is like ChopByDelim for a multi-byte delimiter.
func (v *View) ChopBySV(delim string) View {
	i := strings.Index(v.s, delim)
	if i < 0 || delim == "" {
		return v.TakeMut(len(v.s))
	}
	t := v.s[:i]
	v.s = v.s[i+len(delim):]
	return View{t}
}

// ChopWhile removes and returns the longest prefix whose bytes all satisfy
// pred.
func (v *View) ChopWhile(pred func(byte) bool) View {
	i := 0
	for i < len(v.s) && pred(v.s[i]) {
		i++
	}
	return v.TakeMut(i)
}

// ChopInt removes an optionally signed decimal integer from the front of
// the view and returns its value. Nothing past the last digit is consumed.
// If there are no digits the result is 0.
func (v *View) ChopInt() int64 {
	neg := false
	if len(v.s) > 0 && (v.s[0] == '-' || v.s[0] == '+') {
		neg = v.s[0] == '-'
		v.s = v.s[1:]
	}
	n := int64(v.ChopUint())
	if neg {
		return -n
	}
	return n
}

// ChopUint is like ChopInt but only accepts a leading '+'.
func (v *View) ChopUint() uint64 {
	if len(v.s) > 0 && v.s[0] == '+' {
		v.s = v.s[1:]
	}
	var n uint64
	for len(v.s) > 0 && isDigit(v.s[0]) {
		n = n*10 + uint64(v.s[0]-'0')
		v.s = v.s[1:]
	}
	return n
}

// ToUint returns the value of the leading digits without consuming them.
func (v View) ToUint() uint64 { return v.ChopUint() }

func (v View) StartsWith(prefix string) bool { return strings.HasPrefix(v.s, prefix) }
func (v View) EndsWith(suffix string) bool   { return strings.HasSuffix(v.s, suffix) }

// Substr returns bytes [start, end) of the view. Both bounds are clamped.
func (v View) Substr(start, end int) View {
	start = v.clamp(start)
	end = max(start, v.clamp(end))
	return View{v.s[start:end]}
}
