package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXorSum(t *testing.T) {
	cases := []struct {
		input    []byte
		expected byte
	}{
		{[]byte{}, 0},
		{[]byte{0x00}, 0x00},
		{[]byte{0x01}, 0x01},
		{[]byte{0x01, 0x02}, 0x03},
		{[]byte{0xFF, 0x01}, 0xFE},
		{[]byte{0xAA, 0x55}, 0xFF},
		{[]byte{0x10, 0x20, 0x30}, 0x00},
		{[]byte("hi")[:1], 'h'},
	}

	for _, c := range cases {
		got := xorSum(c.input)
		if got != c.expected {
			t.Errorf("xorSum(%v) = %02X; want %02X", c.input, got, c.expected)
		}
	}
}

func TestBuildFrame(t *testing.T) {
	assert.Equal(t, []byte{0x07, 0x00, 0x50, 0x00, 'h', 'i', 'h' ^ 'i'}, buildFrame([]byte("hi")))
	assert.Equal(t, []byte{0x05, 0x00, 0x50, 0x00, 0x00}, buildFrame(nil))
}

func TestParseFrame(t *testing.T) {
	payload, err := parseFrame(buildFrame([]byte("speed=42")))
	assert.NoError(t, err)
	assert.Equal(t, "speed=42", string(payload))

	bad := [][]byte{
		{0x05, 0x00},
		{0x07, 0x00, 0x40, 0x00, 'h', 'i', 'h' ^ 'i'},
		{0x08, 0x00, 0x50, 0x00, 'h', 'i', 'h' ^ 'i'},
		{0x07, 0x00, 0x50, 0x00, 'h', 'i', 0x00},
	}
	for _, pkt := range bad {
		_, err := parseFrame(pkt)
		assert.ErrorIs(t, err, ErrBadFrame, "% x", pkt)
	}
}
