package runtime

import (
	"io"
	"reflect"
	"sync/atomic"

	"github.com/goliatone/go-htmlgen/pkg/escape"
)

// Renderable is implemented by every value that can appear in a template slot.
//
// RenderTo writes the HTML form of the value into buf. SizeHint estimates how
// many bytes RenderTo will write; it only drives buffer pre-reservation, so an
// estimate that is too small costs a reallocation and nothing else.
type Renderable interface {
	RenderTo(buf *Buffer)
	SizeHint() int
}

// Absenter is implemented by renderables that can be absent, such as Option.
// Absent values render nothing and suppress optional attributes.
type Absenter interface {
	IsAbsent() bool
}

// SizeHint is a process-wide moving estimate of rendered output size, used to
// size buffers for renderables that cannot estimate themselves.
type SizeHint struct {
	value atomic.Int64
}

// NewSizeHint returns an estimate seeded with v.
func NewSizeHint(v int) *SizeHint {
	h := &SizeHint{}
	h.value.Store(int64(v))
	return h
}

// Get returns the current estimate with some headroom added.
func (h *SizeHint) Get() int {
	v := h.value.Load()
	return int(v + v/8 + 75)
}

// Update folds an observed size into the estimate. Concurrent updates may
// overwrite each other; the estimate only needs to be roughly right.
func (h *SizeHint) Update(n int) {
	old := h.value.Load()
	if old == 0 {
		old = int64(n)
	}
	h.value.Store(old - old/4 + int64(n)/4)
}

var renderHint = NewSizeHint(0)

// Render writes r into a fresh buffer and returns the result.
func Render(r Renderable) string {
	return string(RenderBytes(r))
}

// RenderPolicy is Render with an explicit escape policy.
func RenderPolicy(r Renderable, policy escape.Policy) string {
	return Render(WithPolicy(policy, r))
}

// RenderBytes writes r into a fresh buffer and returns its bytes.
func RenderBytes(r Renderable) []byte {
	if r == nil {
		return nil
	}
	buf := NewBuffer(max(r.SizeHint(), renderHint.Get()))
	r.RenderTo(buf)
	renderHint.Update(buf.Len())
	return buf.Bytes()
}

// WriteTo renders r into a pooled buffer and copies the result to w.
func WriteTo(w io.Writer, r Renderable) (int64, error) {
	if r == nil {
		return 0, nil
	}
	buf := getBuffer()
	defer releaseBuffer(buf)

	buf.Grow(r.SizeHint())
	r.RenderTo(buf)
	return buf.WriteTo(w)
}

// Present reports whether v should be rendered by an optional attribute.
// Nil values, false booleans and absent Options are not present; every other
// value, including the empty string, is. Pointers are followed, so a
// pointer to false is not present either.
func Present(v any) bool {
	switch typed := v.(type) {
	case nil:
		return false
	case bool:
		return typed
	case Bool:
		return bool(typed)
	case Absenter:
		return !typed.IsAbsent()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return !isNilPointer(v)
	}
	if rv.IsNil() {
		return false
	}
	return Present(rv.Elem().Interface())
}
