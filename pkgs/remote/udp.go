package remote

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/keskad/tinyprintf/pkgs/printf"
)

// Dial connects a Printer to a console listening on addr:port.
func Dial(addr string, port uint16, options ...Option) (*Printer, error) {
	p := Printer{timeout: time.Second * 10, size: 256}
	for _, option := range options {
		option(&p)
	}

	conn, err := net.DialTimeout("udp", fmt.Sprintf("%s:%d", addr, port), p.timeout)
	if err != nil {
		return nil, fmt.Errorf("UDP dial error while connecting to console: %s", err)
	}
	p.conn = conn
	p.buf = make([]byte, p.size)
	return &p, nil
}

// Printer formats each call into a bounded buffer and sends the result as
// one datagram. Output longer than the buffer is truncated; the returned
// count is still the full length.
type Printer struct {
	conn    net.Conn
	buf     []byte
	timeout time.Duration
	size    int
}

type Option func(*Printer)

func Timeout(timeout time.Duration) Option {
	return func(p *Printer) {
		p.timeout = timeout
	}
}

// BufferSize sets the formatting buffer, terminator included.
func BufferSize(size int) Option {
	return func(p *Printer) {
		if size > MaxPayload+1 {
			size = MaxPayload + 1
		}
		if size < 1 {
			size = 1
		}
		p.size = size
	}
}

func (p *Printer) Printf(format string, a ...any) (n int, err error) {
	sink := printf.NewBufferSink(p.buf)
	count := printf.Run(printf.Join(printf.NewArgs(format, a), sink))
	if int(count) > sink.Len() {
		logrus.Debugf("remote: line truncated from %d to %d characters", count, sink.Len())
	}

	_ = p.conn.SetWriteDeadline(time.Now().Add(p.timeout))
	if _, err := p.conn.Write(buildFrame(sink.Bytes())); err != nil {
		return int(count), fmt.Errorf("cannot send line: %w", err)
	}
	return int(count), nil
}

func (p *Printer) Close() error {
	return p.conn.Close()
}

// Listen receives frames on pc and passes each payload to handle until ctx
// is done or the connection fails. Malformed datagrams are skipped.
func Listen(ctx context.Context, pc net.PacketConn, handle func(line []byte) error) error {
	stop := context.AfterFunc(ctx, func() {
		_ = pc.SetReadDeadline(time.Now())
	})
	defer stop()

	buf := make([]byte, 0xFFFF)
	for {
		n, from, err := pc.ReadFrom(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("cannot receive: %w", err)
		}
		payload, err := parseFrame(buf[:n])
		if err != nil {
			logrus.Debugf("remote: dropping %d bytes from %s: %s", n, from, err)
			continue
		}
		if err := handle(payload); err != nil {
			return err
		}
	}
}
