package chromlgs

import (
	"fmt"
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// ParseDelimiter turns a command line delimiter value into a rune. The
// escapes `\t` and "tab" are accepted for tab. "auto" is not handled here.
func ParseDelimiter(value string) (rune, error) {
	switch value {
	case `\t`, "tab", "\t":
		return '\t', nil
	case "comma":
		return ',', nil
	case "space":
		return ' ', nil
	}

	runes := []rune(value)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}

	return runes[0], nil
}
