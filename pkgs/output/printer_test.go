package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolePrinter(t *testing.T) {
	var out bytes.Buffer
	p := ConsolePrinter{W: &out}

	n, err := p.Printf("cv%d=%s\n", 29, "ok")
	assert.NoError(t, err)
	assert.Equal(t, "cv29=ok\n", out.String())
	assert.Equal(t, out.Len(), n)
}

func TestBufferPrinterKeepsLastResult(t *testing.T) {
	p := NewBufferPrinter(32)
	assert.Equal(t, "", p.Last())
	assert.False(t, p.Truncated())

	_, _ = p.Printf("first %d", 1)
	n, err := p.Printf("second %s", "call")
	assert.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "second call", p.Last())
	assert.False(t, p.Truncated())
	assert.Equal(t, 32, p.Cap())
}

func TestBufferPrinterTruncates(t *testing.T) {
	p := NewBufferPrinter(6)

	n, err := p.Printf("%s", "locomotive")
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "locom", p.Last())
	assert.True(t, p.Truncated())
}

func TestExtraArgumentsAreIgnored(t *testing.T) {
	p := NewBufferPrinter(16)
	n, err := p.Printf("F%d", 1, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "F1", p.Last())
}
