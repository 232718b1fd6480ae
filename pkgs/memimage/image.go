// Package memimage runs the printf interpreter over a flat memory image, the
// way it runs on a microcontroller: the format string and every referenced
// string live at addresses in a read-only memory block, and arguments are a
// list of 32 bit words with floats passed as their bit pattern.
package memimage

import (
	"math"

	"github.com/keskad/tinyprintf/pkgs/printf"
)

// Image is a printf.Source over program memory.
type Image struct {
	Mem    []byte
	Format uint32   // address of the NUL terminated format string
	Args   []uint32 // argument words in call order

	next int
}

func (img *Image) load(addr uint64) byte {
	if addr >= uint64(len(img.Mem)) {
		return 0
	}
	return img.Mem[addr]
}

func (img *Image) FormatChar(offset uint32) byte {
	return img.load(uint64(img.Format) + uint64(offset))
}

// StringChar reads from the address carried by the handle, independently of
// where the format string lives.
func (img *Image) StringChar(h printf.Handle, offset uint32) byte {
	return img.load(uint64(h) + uint64(offset))
}

// Arg pops the next word. Running out of words panics with a *printf.ArgError.
func (img *Image) Arg(kind printf.ArgType) printf.Value {
	if img.next >= len(img.Args) {
		panic(&printf.ArgError{Index: img.next, Kind: kind, Err: printf.ErrMissingArgument})
	}
	w := img.Args[img.next]
	img.next++

	switch kind {
	case printf.Float:
		return printf.FloatValue(math.Float32frombits(w))
	case printf.Str:
		return printf.StrValue(printf.Handle(w))
	case printf.Ptr:
		return printf.PtrValue(uint64(w))
	}
	return printf.IntValue(kind, w)
}

// Run rewinds the argument list and renders the image into sink.
func (img *Image) Run(sink printf.Sink) int32 {
	img.next = 0
	return printf.Run(printf.Join(img, sink))
}

// Builder lays out an Image. Strings are stored once, NUL terminated.
type Builder struct {
	mem     []byte
	args    []uint32
	strings map[string]uint32
}

func NewBuilder() *Builder {
	return &Builder{strings: map[string]uint32{}}
}

// Intern stores s in memory and returns its address.
func (b *Builder) Intern(s string) uint32 {
	if addr, ok := b.strings[s]; ok {
		return addr
	}
	addr := uint32(len(b.mem))
	b.mem = append(b.mem, s...)
	b.mem = append(b.mem, 0)
	b.strings[s] = addr
	return addr
}

func (b *Builder) Int(v int32) *Builder {
	b.args = append(b.args, uint32(v))
	return b
}

func (b *Builder) Uint(v uint32) *Builder {
	b.args = append(b.args, v)
	return b
}

func (b *Builder) Float(f float32) *Builder {
	b.args = append(b.args, math.Float32bits(f))
	return b
}

func (b *Builder) Str(s string) *Builder {
	b.args = append(b.args, b.Intern(s))
	return b
}

func (b *Builder) Bool(v bool) *Builder {
	if v {
		return b.Uint(1)
	}
	return b.Uint(0)
}

func (b *Builder) Char(c byte) *Builder { return b.Uint(uint32(c)) }

func (b *Builder) Ptr(addr uint32) *Builder { return b.Uint(addr) }

// Build stores the format string and returns the finished Image.
func (b *Builder) Build(format string) *Image {
	addr := b.Intern(format)
	return &Image{Mem: b.mem, Format: addr, Args: b.args}
}
