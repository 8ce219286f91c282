//go:build !unix

package puzzle

func maxRSS() int64 { return 0 }
