// Package reader loads the whole target file into memory as a single string
package reader

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadInput returns the full contents of fileName. The read either fully
// succeeds or fails - there is no retry and no streaming. Non-text content
// is a failure: the file must be valid UTF-8.
func ReadInput(fileName string) (string, error) {
	// make sure the file exists before reading
	info, err := os.Stat(fileName)
	if err != nil {
		return "", fmt.Errorf("error opening file %q: %w", fileName, err)
	}
	// make sure it's not a directory
	if info.IsDir() {
		return "", fmt.Errorf("specified source filename %q is a directory", fileName)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return "", fmt.Errorf("couldn't read file %q: %w", fileName, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %q is not valid UTF-8 text", fileName)
	}
	return string(data), nil
}
