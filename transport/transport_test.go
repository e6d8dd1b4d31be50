package transport

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

type bufCloser struct {
	buf    bytes.Buffer
	closed bool
	err    error
}

func (b *bufCloser) Write(p []byte) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	return b.buf.Write(p)
}

func (b *bufCloser) String() string { return b.buf.String() }

func (b *bufCloser) Close() error {
	b.closed = true
	return nil
}

func TestPortSend(t *testing.T) {
	buf := &bufCloser{}
	p := New("test", buf)
	for _, line := range []string{"C1 1500\n", "C2 1000\n"} {
		if err := p.Send(line); err != nil {
			t.Fatalf("Send(%q): %v", line, err)
		}
	}
	if got, want := buf.String(), "C1 1500\nC2 1000\n"; got != want {
		t.Errorf("wrote %q, want %q", got, want)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if !buf.closed {
		t.Error("Close did not close the stream")
	}
	var we *WriteError
	if err := p.Send("C1 1600\n"); !errors.As(err, &we) {
		t.Errorf("Send after Close = %v, want *WriteError", err)
	}
}

func TestPortWriteFailure(t *testing.T) {
	boom := errors.New("boom")
	buf := &bufCloser{err: boom}
	p := New("test", buf)
	err := p.Send("C3 1200\n")
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("Send = %v, want *WriteError", err)
	}
	if we.Line != "C3 1200\n" {
		t.Errorf("WriteError.Line = %q", we.Line)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Send error %v does not wrap the write error", err)
	}
	if !strings.Contains(err.Error(), `"C3 1200"`) {
		t.Errorf("error %q does not name the line", err)
	}
}

func TestOpenMissingPort(t *testing.T) {
	_, err := Open(Config{Name: "/dev/does-not-exist-rc-bridge"})
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Open = %v, want ErrUnavailable", err)
	}
}

func TestDryRun(t *testing.T) {
	var out bytes.Buffer
	d := DryRun{Logger: log.New(&out, "", 0)}
	if err := d.Send("C4 2000\n"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "dry run: C4 2000\n"; got != want {
		t.Errorf("logged %q, want %q", got, want)
	}
}
