package app

import (
	"bytes"
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keskad/tinyprintf/pkgs/config"
	"github.com/keskad/tinyprintf/pkgs/output"
	"github.com/keskad/tinyprintf/pkgs/remote"
)

type recordingPrinter struct {
	format string
	args   []any
	calls  int
}

func (r *recordingPrinter) Printf(format string, a ...any) (n int, err error) {
	r.format = format
	r.args = a
	r.calls++
	return 0, nil
}

type closingPrinter struct {
	recordingPrinter
	closeErr error
	closed   bool
}

func (c *closingPrinter) Close() error {
	c.closed = true
	return c.closeErr
}

func TestPrintActionReportsCloseError(t *testing.T) {
	p := &closingPrinter{closeErr: errors.New("connection refused")}
	app := PrintfApp{P: p}

	err := app.PrintAction("F%d", []string{"1"})
	assert.ErrorIs(t, err, p.closeErr)
	assert.True(t, p.closed)

	p = &closingPrinter{}
	app = PrintfApp{P: p}
	assert.NoError(t, app.PrintAction("F%d", []string{"1"}))
	assert.True(t, p.closed)
}

func TestPrintActionParsesArguments(t *testing.T) {
	rec := &recordingPrinter{}
	app := PrintfApp{P: rec}

	require.NoError(t, app.PrintAction("cv%d=%s", []string{"0x1d", "on"}))
	assert.Equal(t, "cv%d=%s", rec.format)
	assert.Equal(t, []any{int64(29), "on"}, rec.args)
}

func TestPrintActionRejectsBadArguments(t *testing.T) {
	rec := &recordingPrinter{}
	app := PrintfApp{P: rec}

	assert.Error(t, app.PrintAction("%d", []string{"fast"}))
	assert.Error(t, app.PrintAction("%d %d", []string{"1"}))
	assert.Equal(t, 0, rec.calls)
}

func TestPrintActionConsoleNewline(t *testing.T) {
	var out bytes.Buffer
	app := PrintfApp{P: output.ConsolePrinter{W: &out}, Out: &out, Newline: true}

	require.NoError(t, app.PrintAction("F%d %b", []string{"3", "true"}))
	assert.Equal(t, "F3 true\n", out.String())
}

func TestPrintActionShowsBuffer(t *testing.T) {
	var out bytes.Buffer
	app := PrintfApp{P: output.NewBufferPrinter(4), Out: &out}

	require.NoError(t, app.PrintAction("%s", []string{"abcdef"}))
	assert.Equal(t, "abc", out.String())
}

func TestFormatAction(t *testing.T) {
	var out bytes.Buffer
	app := PrintfApp{Out: &out}

	require.NoError(t, app.FormatAction("%s-%d", []string{"loco", "42"}, 6))
	assert.Equal(t, "buffer    : [loco-]\nstored    : 5 of 5\ncount     : 7\ntruncated : true\n", out.String())

	assert.Error(t, app.FormatAction("x", nil, 0))
}

func TestInspectAction(t *testing.T) {
	var out bytes.Buffer
	app := PrintfApp{Out: &out}

	require.NoError(t, app.InspectAction("speed=%05d %s%%"))
	assert.Contains(t, out.String(), "%05d")
	assert.Contains(t, out.String(), "signed decimal")
	assert.Contains(t, out.String(), "literal percent")
	assert.Contains(t, out.String(), "arguments: i32 str\n")

	out.Reset()
	require.NoError(t, app.InspectAction("%*d|%.*f"))
	assert.Contains(t, out.String(), "%*d ")
	assert.Contains(t, out.String(), "%.*f ")
	assert.NotContains(t, out.String(), "%0d")
	assert.Contains(t, out.String(), "arguments: i16 i32 i16 float\n")

	out.Reset()
	require.NoError(t, app.InspectAction("plain"))
	assert.Equal(t, "No directives\n", out.String())
}

func TestReplayAction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.yaml")
	doc := "format: \"cv%d=%s\"\nargs:\n  - int: 3\n  - str: ok\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var out bytes.Buffer
	app := PrintfApp{Out: &out, Newline: true}
	require.NoError(t, app.ReplayAction(path))
	assert.Equal(t, "cv3=ok\n", out.String())

	assert.Error(t, app.ReplayAction(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestInitializePrinter(t *testing.T) {
	app := PrintfApp{Config: &config.Configuration{Output: config.Output{Type: config.OutputBuffer, BufferSize: 8}}}
	require.NoError(t, app.initializePrinter())
	bp, ok := app.P.(*output.BufferPrinter)
	require.True(t, ok)
	assert.Equal(t, 8, bp.Cap())

	app = PrintfApp{Config: &config.Configuration{Output: config.Output{Type: "serial"}}}
	assert.Error(t, app.initializePrinter())
}

func TestPrintActionOverUDP(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	app := PrintfApp{Config: &config.Configuration{Output: config.Output{
		Type:       config.OutputUDP,
		Address:    "127.0.0.1",
		Port:       uint16(pc.LocalAddr().(*net.UDPAddr).Port),
		BufferSize: 64,
	}}}
	require.NoError(t, app.PrintAction("speed=%d", []string{"80"}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var got string
	err = remote.Listen(ctx, pc, func(line []byte) error {
		got = string(line)
		cancel()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "speed=80", got)
}

func TestInitializeReadsConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("TINYPRINTF_OUTPUT_TYPE", "buffer")

	app := PrintfApp{}
	require.NoError(t, app.Initialize())
	assert.Equal(t, config.OutputBuffer, app.Config.Output.Type)

	t.Setenv("TINYPRINTF_LOG_LEVEL", "chatty")
	assert.Error(t, app.Initialize())
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
