package mufmt

import (
	"bufio"
	"io"
)

// Buffer is a [Sink] over a fixed byte slice. Bytes that do not fit are
// dropped, but still counted as emitted, so the count returned by a render
// call is the length the output would have had.
type Buffer struct {
	buf       []byte
	n         int
	truncated bool
}

// NewBuffer returns a Buffer that writes into buf, which it never grows.
func NewBuffer(buf []byte) *Buffer {
	return &Buffer{buf: buf}
}

// Emit stores c if there is room.
func (b *Buffer) Emit(c byte) int {
	if b.n >= len(b.buf) {
		b.truncated = true
		return 0
	}
	b.buf[b.n] = c
	b.n++
	return 1
}

// Bytes returns the stored bytes. The slice aliases the Buffer's storage.
func (b *Buffer) Bytes() []byte { return b.buf[:b.n] }

// String returns the stored bytes as a string.
func (b *Buffer) String() string { return string(b.buf[:b.n]) }

// Len returns the number of stored bytes.
func (b *Buffer) Len() int { return b.n }

// Truncated reports whether any byte was dropped since the last Reset.
func (b *Buffer) Truncated() bool { return b.truncated }

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() {
	b.n = 0
	b.truncated = false
}

// WriterSink is a [Sink] that writes to an [io.Writer]. After the first
// write error every later byte is dropped; Err reports that error.
type WriterSink struct {
	w   io.Writer
	one [1]byte
	err error
}

// NewWriterSink returns a WriterSink writing to w. Each byte is a separate
// Write call unless w is an [io.ByteWriter]; wrap slow writers in a
// [bufio.Writer].
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes c, returning 0 once the writer has failed.
func (ws *WriterSink) Emit(c byte) int {
	if ws.err != nil {
		return 0
	}
	if bw, ok := ws.w.(io.ByteWriter); ok {
		ws.err = bw.WriteByte(c)
	} else {
		ws.one[0] = c
		_, ws.err = ws.w.Write(ws.one[:])
	}
	if ws.err != nil {
		return 0
	}
	return 1
}

// Err returns the first write error, if any.
func (ws *WriterSink) Err() error { return ws.err }

// Fprintf renders format with vals to w and returns the number of bytes
// rendered along with the first error w reported.
func Fprintf(w io.Writer, format string, vals ...any) (int, error) {
	bw := bufio.NewWriter(w)
	ws := NewWriterSink(bw)
	n := Render(ws, format, ArgsOf(vals...)...)
	if err := ws.Err(); err != nil {
		return n, err
	}
	return n, bw.Flush()
}

// Sprintf renders format with vals and returns the result.
func Sprintf(format string, vals ...any) string {
	args := ArgsOf(vals...)
	buf := make([]byte, Render(Discard, format, args...))
	b := NewBuffer(buf)
	Render(b, format, args...)
	return b.String()
}

// Snprintf renders format with args into dst, dropping whatever does not
// fit, and returns the length the complete output would have had.
func Snprintf(dst []byte, format string, args ...Arg) int {
	return Render(NewBuffer(dst), format, args...)
}
