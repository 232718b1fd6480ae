package app

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"

	"github.com/keskad/tinyprintf/pkgs/printf"
	"github.com/keskad/tinyprintf/pkgs/remote"
)

// ListenAction prints every line sent by a remote printer until ctx is done.
func (app *PrintfApp) ListenAction(ctx context.Context, addr string, port uint16) error {
	pc, err := net.ListenPacket("udp", fmt.Sprintf("%s:%d", addr, port))
	if err != nil {
		return fmt.Errorf("cannot listen: %w", err)
	}
	defer pc.Close()

	logrus.Infof("Listening on %s", pc.LocalAddr())
	return remote.Listen(ctx, pc, func(line []byte) error {
		format := "%s"
		if app.Newline {
			format = "%s\n"
		}
		_, err := printf.Fprintf(app.out(), format, string(line))
		return err
	})
}
