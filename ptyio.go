package vtcore

import (
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// PTYSize is the character-cell and optional pixel size of a pty, mirroring
// the fields TIOCSWINSZ expects.
type PTYSize struct {
	Rows, Cols       uint16
	PixelWidthHeight [2]uint16
}

// PTY is the external collaborator spec.md calls C1: a byte stream the
// terminal reads from and writes responses to, plus a resize hook. The
// core never constructs a PTY itself — a host opens one (typically with
// OpenPTY below) and wires it to a Terminal via NewRunLoop.
type PTY interface {
	io.ReadWriter
	io.Closer
	Resize(size PTYSize) error
}

// osPTY adapts github.com/creack/pty to the PTY interface.
type osPTY struct {
	f    *os.File
	cmd  *exec.Cmd
}

// OpenPTY starts cmd attached to a new pseudo-terminal of the given size
// and returns a PTY wrapping it. The child's stdio is the pty slave; the
// returned PTY reads/writes the master side.
func OpenPTY(cmd *exec.Cmd, size PTYSize) (PTY, error) {
	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: size.Rows,
		Cols: size.Cols,
		X:    size.PixelWidthHeight[0],
		Y:    size.PixelWidthHeight[1],
	})
	if err != nil {
		return nil, err
	}
	return &osPTY{f: f, cmd: cmd}, nil
}

func (p *osPTY) Read(b []byte) (int, error)  { return p.f.Read(b) }
func (p *osPTY) Write(b []byte) (int, error) { return p.f.Write(b) }

func (p *osPTY) Close() error {
	p.f.Close()
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	return p.cmd.Wait()
}

func (p *osPTY) Resize(size PTYSize) error {
	return pty.Setsize(p.f, &pty.Winsize{
		Rows: size.Rows,
		Cols: size.Cols,
		X:    size.PixelWidthHeight[0],
		Y:    size.PixelWidthHeight[1],
	})
}
