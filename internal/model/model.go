// Package model contains data structures for storing initially provided flags and search results
package model

// GrepParam - stores all flags and parameters of one search run. Built once
// by parser from os.Args and the environment, never mutated afterwards.
type GrepParam struct {
	CtxAfter     int    // A n — print N lines after each matching line
	CtxBefore    int    // B n — print N lines before each matching line
	CountFound   bool   // c — print only the number of matching lines, A/B/C are ignored
	IgnoreCase   bool   // i — lower-case input lines for search as well as the pattern itself
	InvertResult bool   // v — print only lines that DON'T contain the pattern
	Pattern      string // substring to search for
	FileName     string // name of the file to search in
}

// Match - a single found line: its 1-based number in the input and the line
// text itself. Text is a slice of the loaded file contents and must not
// outlive it.
type Match struct {
	Line int
	Text string
}
