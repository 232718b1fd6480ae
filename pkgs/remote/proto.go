package remote

import (
	"encoding/binary"
	"errors"
)

// header marks a console line datagram.
const header = 0x0050

// frameOverhead is dataLen, header and the trailing checksum.
const frameOverhead = 2 + 2 + 1

// MaxPayload is the longest payload a frame can carry.
const MaxPayload = 0xFFFF - frameOverhead

var ErrBadFrame = errors.New("bad frame")

// buildFrame lays out dataLen(LE) | header(LE) | payload | xor
func buildFrame(payload []byte) []byte {
	buf := make([]byte, 4, len(payload)+frameOverhead)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(len(payload)+frameOverhead))
	binary.LittleEndian.PutUint16(buf[2:4], header)
	buf = append(buf, payload...)
	return append(buf, xorSum(payload))
}

// parseFrame returns the payload carried by pkt.
func parseFrame(pkt []byte) ([]byte, error) {
	if len(pkt) < frameOverhead {
		return nil, ErrBadFrame
	}
	dataLen := binary.LittleEndian.Uint16(pkt[0:2])
	if binary.LittleEndian.Uint16(pkt[2:4]) != header || int(dataLen) != len(pkt) {
		return nil, ErrBadFrame
	}
	payload := pkt[4 : len(pkt)-1]
	if xorSum(payload) != pkt[len(pkt)-1] {
		return nil, ErrBadFrame
	}
	return payload, nil
}

func xorSum(b []byte) byte {
	var x byte
	for _, v := range b {
		x ^= v
	}
	return x
}
