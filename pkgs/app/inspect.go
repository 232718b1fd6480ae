package app

import (
	"strings"

	"github.com/keskad/tinyprintf/pkgs/printf"
)

// InspectAction lists the directives of format and the arguments it
// consumes.
func (app *PrintfApp) InspectAction(format string) error {
	w := app.out()
	directives := printf.Directives(format)
	if len(directives) == 0 {
		_, err := printf.Fprintf(w, "No directives\n")
		return err
	}

	for i, d := range directives {
		if _, err := printf.Fprintf(w, "%2d  %-12s %s\n", i+1, d.String(), describe(d)); err != nil {
			return err
		}
	}

	kinds := printf.Kinds(format)
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	if len(names) == 0 {
		names = append(names, "(none)")
	}
	_, err := printf.Fprintf(w, "arguments: %s\n", strings.Join(names, " "))
	return err
}

func describe(d printf.Directive) string {
	switch d.Verb {
	case 'd', 'i':
		return "signed decimal"
	case 'u':
		return "unsigned decimal"
	case 'x', 'X':
		return "hexadecimal"
	case 'o':
		return "octal"
	case 'c':
		return "character"
	case 'b':
		return "boolean"
	case 's':
		return "string"
	case 'p':
		return "pointer"
	case 'f', 'F':
		return "fixed float"
	case 'e', 'E':
		return "exponent float"
	case 'g', 'G':
		return "shortest float"
	case '%':
		return "literal percent"
	}
	return "unknown, printed as is"
}
