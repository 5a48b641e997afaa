package vtcore

import (
	"io"
	"os/exec"
	"runtime"
	"testing"
	"time"
)

func TestOpenPTYReadsChildOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty support is unix-only")
	}

	cmd := exec.Command("echo", "hello from pty")
	p, err := OpenPTY(cmd, PTYSize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("OpenPTY failed: %v", err)
	}
	defer p.Close()

	buf := make([]byte, 256)
	deadline := time.Now().Add(2 * time.Second)
	var got []byte
	for time.Now().Before(deadline) {
		n, err := p.Read(buf)
		got = append(got, buf[:n]...)
		if err != nil {
			break
		}
		if len(got) > 0 {
			break
		}
	}

	if len(got) == 0 {
		t.Fatal("expected to read some output from the child process")
	}
}

func TestOpenPTYResize(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty support is unix-only")
	}

	cmd := exec.Command("cat")
	p, err := OpenPTY(cmd, PTYSize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("OpenPTY failed: %v", err)
	}
	defer p.Close()

	if err := p.Resize(PTYSize{Rows: 40, Cols: 120}); err != nil {
		t.Errorf("expected Resize to succeed on a live pty, got %v", err)
	}
}

func TestOpenPTYWriteEchoesBack(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("pty support is unix-only")
	}

	cmd := exec.Command("cat")
	p, err := OpenPTY(cmd, PTYSize{Rows: 24, Cols: 80})
	if err != nil {
		t.Fatalf("OpenPTY failed: %v", err)
	}
	defer p.Close()

	if _, err := p.Write([]byte("ping\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	buf := make([]byte, 64)
	n, err := p.Read(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("Read failed: %v", err)
	}
	if n == 0 {
		t.Error("expected cat to echo the written bytes back")
	}
}
