// Package runner drives one end-to-end search: load the file, match, emit the result
package runner

import (
	"fmt"
	"io"

	"github.com/UnendingLoop/gremp/internal/model"
	"github.com/UnendingLoop/gremp/internal/processor"
	"github.com/UnendingLoop/gremp/internal/reader"
)

// Run performs the single search described by gp and writes one
// newline-terminated record per result line to out. A read failure aborts
// before anything is written; an empty result writes nothing and is not an
// error.
func Run(gp *model.GrepParam, out io.Writer) error {
	contents, err := reader.ReadInput(gp.FileName)
	if err != nil {
		return err
	}

	for _, line := range processor.Process(gp, contents) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("couldn't write result: %w", err)
		}
	}

	return nil
}
