package processor_test

import (
	"testing"

	"github.com/UnendingLoop/gremp/internal/model"
	"github.com/UnendingLoop/gremp/internal/processor"
	"github.com/stretchr/testify/require"
)

func TestProcess(t *testing.T) {
	contents := "Rust:\nSafe, fast, productive.\nPick three.\nDuct tape."

	cases := []struct {
		name     string
		gp       model.GrepParam
		contents string
		want     []string
	}{
		{
			name:     "Positive - default output format",
			gp:       model.GrepParam{Pattern: "duct"},
			contents: contents,
			want:     []string{"2. Safe, fast, productive."},
		},
		{
			name:     "Positive - ignore case",
			gp:       model.GrepParam{Pattern: "rUsT", IgnoreCase: true},
			contents: "Rust:\nSafe, fast, productive.\nPick three.\nTrust me.",
			want:     []string{"1. Rust:", "4. Trust me."},
		},
		{
			name:     "Positive - no matches means no output records",
			gp:       model.GrepParam{Pattern: "monomorphization"},
			contents: contents,
			want:     []string{},
		},
		{
			name:     "Positive - count matching lines",
			gp:       model.GrepParam{Pattern: "t", CountFound: true},
			contents: contents,
			want:     []string{"4"},
		},
		{
			name:     "Positive - count with zero matches",
			gp:       model.GrepParam{Pattern: "nothing", CountFound: true},
			contents: contents,
			want:     []string{"0"},
		},
		{
			name:     "Positive - count ignores context flags",
			gp:       model.GrepParam{Pattern: "duct", CountFound: true, CtxAfter: 2, CtxBefore: 2},
			contents: contents,
			want:     []string{"1"},
		},
		{
			name:     "Positive - invert result",
			gp:       model.GrepParam{Pattern: "duct", InvertResult: true},
			contents: contents,
			want:     []string{"1. Rust:", "3. Pick three.", "4. Duct tape."},
		},
		{
			name:     "Positive - context around a single match",
			gp:       model.GrepParam{Pattern: "two", CtxAfter: 1, CtxBefore: 1},
			contents: "one\ntwo\nthree\nfour",
			want:     []string{"1. one", "2. two", "3. three"},
		},
		{
			name:     "Positive - separator between distant groups",
			gp:       model.GrepParam{Pattern: "w", CtxAfter: 1, CtxBefore: 1},
			contents: "alpha\nwindow\nbeta\ngamma\ndelta\neps\nlow\nzeta",
			want:     []string{"1. alpha", "2. window", "3. beta", "--", "6. eps", "7. low", "8. zeta"},
		},
		{
			name:     "Positive - overlapping windows print each line once",
			gp:       model.GrepParam{Pattern: "b", CtxAfter: 1, CtxBefore: 1},
			contents: "a\nbb\nbc\nd\ne",
			want:     []string{"1. a", "2. bb", "3. bc", "4. d"},
		},
		{
			name:     "Positive - context clamped to file bounds",
			gp:       model.GrepParam{Pattern: "one", CtxAfter: 5, CtxBefore: 5},
			contents: "one\ntwo",
			want:     []string{"1. one", "2. two"},
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, processor.Process(&tt.gp, tt.contents))
		})
	}
}
