package memimage_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keskad/tinyprintf/pkgs/memimage"
	"github.com/keskad/tinyprintf/pkgs/printf"
)

func render(img *memimage.Image) (string, int32) {
	sink := printf.NewBufferSink(make([]byte, 128))
	n := img.Run(sink)
	return sink.String(), n
}

func TestBuilderRun(t *testing.T) {
	img := memimage.NewBuilder().
		Str("speed").
		Int(-42).
		Float(1.5).
		Bool(true).
		Char('x').
		Ptr(0x2000).
		Build("%s=%05d (%.2f) %b %c %#p")

	out, n := render(img)
	assert.Equal(t, "speed=-0042 (1.50) true x 0x2000", out)
	assert.Equal(t, int32(len(out)), n)
}

func TestRunRewindsArguments(t *testing.T) {
	img := memimage.NewBuilder().Int(7).Build("cv%d")
	first, _ := render(img)
	second, _ := render(img)
	assert.Equal(t, "cv7", first)
	assert.Equal(t, first, second)
}

func TestStringsAreInterned(t *testing.T) {
	b := memimage.NewBuilder()
	a := b.Intern("loco")
	assert.Equal(t, a, b.Intern("loco"))
	assert.NotEqual(t, a, b.Intern("train"))
}

func TestStringAddressingIsIndependent(t *testing.T) {
	// format and argument string share no bytes; the string is read through
	// its own address, not relative to the format
	img := &memimage.Image{
		Mem:    []byte("ab\x00[%s]\x00"),
		Format: 3,
		Args:   []uint32{0},
	}
	out, _ := render(img)
	assert.Equal(t, "[ab]", out)
}

func TestOutOfRangeReadsAsTerminator(t *testing.T) {
	img := &memimage.Image{Mem: []byte("abc"), Format: 0}
	out, n := render(img)
	assert.Equal(t, "abc", out)
	assert.Equal(t, int32(3), n)
}

func TestMissingWordPanics(t *testing.T) {
	img := memimage.NewBuilder().Build("%d")
	assert.Panics(t, func() { render(img) })
}

func TestLoad(t *testing.T) {
	doc := `
format: "%s=%d (%.1f) %c %b %x %p\n"
args:
  - str: speed
  - int: -3
  - float: 2.5
  - char: "z"
  - bool: false
  - uint: 255
  - ptr: 0x10
`
	img, err := memimage.Load(strings.NewReader(doc))
	require.NoError(t, err)

	out, _ := render(img)
	assert.Equal(t, "speed=-3 (2.5) z false ff 10\n", out)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{name: "argument count", doc: "format: \"%d %d\"\nargs:\n  - int: 1\n"},
		{name: "string expected", doc: "format: \"%s\"\nargs:\n  - int: 1\n"},
		{name: "float expected", doc: "format: \"%f\"\nargs:\n  - str: x\n"},
		{name: "integer expected", doc: "format: \"%d\"\nargs:\n  - str: x\n"},
		{name: "two keys", doc: "format: \"%d\"\nargs:\n  - int: 1\n    uint: 2\n"},
		{name: "long char", doc: "format: \"%c\"\nargs:\n  - char: ab\n"},
		{name: "int too large", doc: "format: \"%d\"\nargs:\n  - int: 99999999999\n"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := memimage.Load(strings.NewReader(c.doc))
			assert.True(t, errors.Is(err, memimage.ErrBadImage), "expected ErrBadImage, got %v", err)
		})
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	_, err := memimage.Load(strings.NewReader("format: [unterminated"))
	assert.Error(t, err)
}
