package memimage

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/keskad/tinyprintf/pkgs/printf"
)

// ErrBadImage reports an image description that cannot be laid out.
var ErrBadImage = errors.New("bad image description")

type imageFile struct {
	Format string     `yaml:"format"`
	Args   []argEntry `yaml:"args"`
}

// argEntry is a single-key mapping such as "int: 42" or "str: speed".
type argEntry struct {
	Int   *int64   `yaml:"int"`
	Uint  *uint32  `yaml:"uint"`
	Float *float32 `yaml:"float"`
	Str   *string  `yaml:"str"`
	Bool  *bool    `yaml:"bool"`
	Char  *string  `yaml:"char"`
	Ptr   *uint32  `yaml:"ptr"`
}

func (e argEntry) set() int {
	n := 0
	for _, isSet := range []bool{e.Int != nil, e.Uint != nil, e.Float != nil, e.Str != nil, e.Bool != nil, e.Char != nil, e.Ptr != nil} {
		if isSet {
			n++
		}
	}
	return n
}

// Load decodes a YAML image description:
//
//	format: "%s=%d (%.2f)\n"
//	args:
//	  - str: speed
//	  - int: 42
//	  - float: 1.5
//
// Argument entries are int, uint, float, str, bool, char or ptr. The number
// of entries and their kinds are checked against what the format consumes.
func Load(r io.Reader) (*Image, error) {
	var f imageFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	kinds := printf.Kinds(f.Format)
	if len(kinds) != len(f.Args) {
		return nil, fmt.Errorf("%w: format consumes %d arguments, got %d", ErrBadImage, len(kinds), len(f.Args))
	}

	b := NewBuilder()
	for i, a := range f.Args {
		if a.set() != 1 {
			return nil, fmt.Errorf("%w: argument %d must have exactly one of int, uint, float, str, bool, char, ptr", ErrBadImage, i)
		}
		if err := add(b, kinds[i], a); err != nil {
			return nil, fmt.Errorf("%w: argument %d: %s", ErrBadImage, i, err)
		}
	}

	img := b.Build(f.Format)
	logrus.Debugf("memimage: laid out %d bytes, format at 0x%04x, %d argument words", len(img.Mem), img.Format, len(img.Args))
	return img, nil
}

func add(b *Builder, kind printf.ArgType, a argEntry) error {
	switch kind {
	case printf.Str:
		if a.Str == nil {
			return fmt.Errorf("%s expected", kind)
		}
		b.Str(*a.Str)
		return nil
	case printf.Float:
		if a.Float == nil {
			return fmt.Errorf("%s expected", kind)
		}
		b.Float(*a.Float)
		return nil
	}

	switch {
	case a.Int != nil:
		if *a.Int < math.MinInt32 || *a.Int > math.MaxUint32 {
			return fmt.Errorf("int %d does not fit in 32 bits", *a.Int)
		}
		b.Uint(uint32(*a.Int))
	case a.Uint != nil:
		b.Uint(*a.Uint)
	case a.Bool != nil:
		b.Bool(*a.Bool)
	case a.Char != nil:
		if len(*a.Char) != 1 {
			return fmt.Errorf("char must be a single byte, got %q", *a.Char)
		}
		b.Char((*a.Char)[0])
	case a.Ptr != nil:
		b.Ptr(*a.Ptr)
	default:
		return fmt.Errorf("%s expected", kind)
	}
	return nil
}
