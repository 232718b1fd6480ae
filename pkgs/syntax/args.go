package syntax

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/keskad/tinyprintf/pkgs/printf"
)

// ParseArgs converts command line words into the Go values a format string
// consumes, one word per entry in want (see printf.Arguments).
//
// Integers take decimal, 0x, 0o and 0b forms and may be negative; unsigned
// values up to 32 bits are accepted as well. A char is either a single
// character or its numeric code. Booleans take the strconv.ParseBool forms
// or a number.
func ParseArgs(want []printf.Argument, raw []string) ([]any, error) {
	if len(want) != len(raw) {
		return nil, fmt.Errorf("format consumes %d arguments, got %d", len(want), len(raw))
	}

	result := make([]any, 0, len(raw))
	for i, arg := range want {
		v, err := parseArg(arg, raw[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		result = append(result, v)
	}
	return result, nil
}

func parseArg(arg printf.Argument, word string) (any, error) {
	switch arg.Kind {
	case printf.Str:
		return word, nil
	case printf.Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(word), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid float: %s", word)
		}
		return float32(f), nil
	case printf.Ptr:
		p, err := strconv.ParseUint(strings.TrimSpace(word), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid pointer: %s", word)
		}
		return uintptr(p), nil
	case printf.I8:
		if arg.Verb == 'b' {
			return parseBool(word)
		}
		return parseChar(word)
	}
	return parseInt(word)
}

func parseInt(word string) (int64, error) {
	word = strings.TrimSpace(word)
	n, err := strconv.ParseInt(word, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %s", word)
	}
	if n < math.MinInt32 || n > math.MaxUint32 {
		return 0, fmt.Errorf("integer out of 32 bit range: %s", word)
	}
	return n, nil
}

func parseBool(word string) (any, error) {
	if b, err := strconv.ParseBool(word); err == nil {
		return b, nil
	}
	n, err := parseInt(word)
	if err != nil {
		return nil, fmt.Errorf("invalid bool: %s", word)
	}
	return n, nil
}

// parseChar takes a single non-digit character or a character code.
func parseChar(word string) (any, error) {
	if len(word) == 1 && (word[0] < '0' || word[0] > '9') {
		return word[0], nil
	}
	n, err := parseInt(word)
	if err != nil {
		return nil, fmt.Errorf("invalid char: %s", word)
	}
	return n, nil
}
