package runtime

import (
	"io"
	"strconv"
	"sync"
	"unicode/utf8"

	"github.com/goliatone/go-htmlgen/pkg/escape"
)

// Buffer is the growable output every Renderable writes into. Append methods
// never fail; the buffer grows as needed.
type Buffer struct {
	b      []byte
	policy escape.Policy
}

// NewBuffer returns an empty buffer with at least capacity bytes reserved.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{b: make([]byte, 0, capacity)}
}

// Policy reports the escape policy used by AppendEscaped.
func (b *Buffer) Policy() escape.Policy {
	return b.policy
}

// SetPolicy replaces the escape policy and returns the previous one.
func (b *Buffer) SetPolicy(p escape.Policy) escape.Policy {
	prev := b.policy
	b.policy = p
	return prev
}

// Grow reserves room for n more bytes.
func (b *Buffer) Grow(n int) {
	if n <= 0 || cap(b.b)-len(b.b) >= n {
		return
	}
	grown := make([]byte, len(b.b), 2*cap(b.b)+n)
	copy(grown, b.b)
	b.b = grown
}

// AppendString writes s verbatim.
func (b *Buffer) AppendString(s string) {
	b.b = append(b.b, s...)
}

// AppendByte writes a single byte verbatim.
func (b *Buffer) AppendByte(c byte) {
	b.b = append(b.b, c)
}

// AppendRune writes the UTF-8 encoding of r verbatim.
func (b *Buffer) AppendRune(r rune) {
	b.b = utf8.AppendRune(b.b, r)
}

// AppendEscaped writes s escaped with the buffer policy.
func (b *Buffer) AppendEscaped(s string) {
	b.b = b.policy.Into(b.b, s)
}

// AppendEscapedRune writes r escaped with the buffer policy.
func (b *Buffer) AppendEscapedRune(r rune) {
	b.b = b.policy.RuneInto(b.b, r)
}

// AppendInt writes the decimal form of v.
func (b *Buffer) AppendInt(v int64) {
	b.b = strconv.AppendInt(b.b, v, 10)
}

// AppendUint writes the decimal form of v.
func (b *Buffer) AppendUint(v uint64) {
	b.b = strconv.AppendUint(b.b, v, 10)
}

// AppendFloat writes the shortest decimal form of v that round-trips at the
// given bit size.
func (b *Buffer) AppendFloat(v float64, bitSize int) {
	b.b = strconv.AppendFloat(b.b, v, 'f', -1, bitSize)
}

// Write implements io.Writer. Bytes are written verbatim.
func (b *Buffer) Write(p []byte) (int, error) {
	b.b = append(b.b, p...)
	return len(p), nil
}

// WriteTo implements io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.b)
	return int64(n), err
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Bytes returns the written bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte {
	return b.b
}

// String returns a copy of the written bytes.
func (b *Buffer) String() string {
	return string(b.b)
}

// Truncate discards everything after the first n bytes. It panics if n is
// negative or greater than Len.
func (b *Buffer) Truncate(n int) {
	if n < 0 || n > len(b.b) {
		panic("runtime: truncation out of range")
	}
	b.b = b.b[:n]
}

// Reset empties the buffer, keeping its capacity and restoring the default
// policy.
func (b *Buffer) Reset() {
	b.b = b.b[:0]
	b.policy = escape.Default
}

const maxPooledCapacity = 64 << 10

var bufferPool = sync.Pool{
	New: func() any {
		return NewBuffer(512)
	},
}

func getBuffer() *Buffer {
	return bufferPool.Get().(*Buffer)
}

func releaseBuffer(b *Buffer) {
	if cap(b.b) > maxPooledCapacity {
		return
	}
	b.Reset()
	bufferPool.Put(b)
}
