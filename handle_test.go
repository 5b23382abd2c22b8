package anyhandle

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/anyhandle/shared"
	"github.com/wippyai/anyhandle/typeid"
)

// valuer is the interface derived objects are stored under.
type valuer interface {
	Value() int
	SetValue(int)
}

type baseObject struct{}

func (baseObject) Value() int   { return -1 }
func (baseObject) SetValue(int) {}

type derivedObject struct {
	baseObject
	n int
}

func (d *derivedObject) Value() int     { return d.n }
func (d *derivedObject) SetValue(n int) { d.n = n }

type record struct {
	name string
}

func TestHandle_Layout(t *testing.T) {
	var h Handle
	want := unsafe.Sizeof(typeid.Identity{}) + unsafe.Sizeof(shared.Erased{})
	assert.Equal(t, want, unsafe.Sizeof(h))
}

func TestHandle_Zero(t *testing.T) {
	var h Handle
	assert.True(t, h.Empty())
	assert.False(t, h.HasValue())
	assert.False(t, h.IsMutable())
	assert.Equal(t, reflect.TypeFor[typeid.Void](), h.Type())
	assert.Zero(t, h.UseCount())
	assert.Zero(t, h.Addr())
	assert.True(t, h.Pointer().IsNil())
	assert.True(t, h.MutablePointer().IsNil())
	assert.True(t, h.Equals(Handle{}))
	assert.Equal(t, "0x0(void@non-mutable@empty)", h.String())
}

func TestHandle_EmptyIdentityDropsPointer(t *testing.T) {
	p := shared.New(record{name: "leak"})
	e := p.Erase()

	h := newHandle(typeid.Empty(), e)
	assert.True(t, h.Empty())
	assert.True(t, h.Pointer().IsNil())
	assert.EqualValues(t, 2, p.UseCount())

	moved := newHandleMove(typeid.Empty(), &e)
	assert.True(t, moved.Empty())
	assert.Zero(t, moved.Addr())
	assert.False(t, e.IsNil(), "source keeps its reference")

	e.Release()
	assert.EqualValues(t, 1, p.UseCount())
	p.Release()
}

func TestHandle_TypedNil(t *testing.T) {
	h := MakeObserver[record](nil, typeid.Mutable)
	defer h.Reset()

	assert.False(t, h.Empty())
	assert.False(t, h.HasValue())
	assert.Zero(t, h.UseCount())

	r := MutableCast[record](h)
	require.True(t, r.HasValue())
	p := r.Value()
	assert.True(t, p.IsNil())
	p.Release()
}

func TestHandle_CloneMoveReset(t *testing.T) {
	p := shared.New(record{name: "a"})
	h := Make(p, typeid.Mutable)
	assert.EqualValues(t, 2, h.UseCount())

	c := h.Clone()
	assert.EqualValues(t, 3, h.UseCount())
	assert.True(t, c.Equals(h))

	m := c.Move()
	assert.False(t, c.HasValue())
	assert.False(t, c.Empty(), "moved-from handle keeps its identity")
	assert.True(t, c.Identity().Equals(h.Identity()))
	assert.EqualValues(t, 3, m.UseCount())

	m.Reset()
	assert.True(t, m.Empty())
	h.Reset()
	assert.EqualValues(t, 1, p.UseCount())
	p.Release()
}

func TestHandle_Swap(t *testing.T) {
	a := New(record{name: "a"}, typeid.Mutable)
	b := New(42, typeid.NonMutable)
	aAddr, bAddr := a.Addr(), b.Addr()

	a.Swap(&b)
	assert.Equal(t, bAddr, a.Addr())
	assert.Equal(t, reflect.TypeFor[int](), a.Type())
	assert.False(t, a.IsMutable())
	assert.Equal(t, aAddr, b.Addr())
	assert.Equal(t, reflect.TypeFor[record](), b.Type())
	assert.True(t, b.IsMutable())

	a.Reset()
	b.Reset()
}

func TestHandle_Projections(t *testing.T) {
	p := shared.New(record{name: "x"})
	defer p.Release()

	mut := Make(p, typeid.Mutable)
	defer mut.Reset()
	ro := Make(p, typeid.NonMutable)
	defer ro.Reset()

	mp := mut.MutablePointer()
	assert.Equal(t, p.Addr(), mp.Addr())
	mp.Release()

	// Downgraded: the pointee is mutable but the handle is not.
	rmp := ro.MutablePointer()
	assert.True(t, rmp.IsNil())
	rp := ro.Pointer()
	assert.Equal(t, p.Addr(), rp.Addr())
	rp.Release()
	assert.True(t, ro.HasValue())
}

func TestHandle_EqualsVersusEqual(t *testing.T) {
	p := shared.New(record{name: "x"})
	defer p.Release()

	mut := Make(p, typeid.Mutable)
	defer mut.Reset()
	ro := Make(p, typeid.NonMutable)
	defer ro.Reset()

	assert.True(t, Equal(mut, ro))
	assert.Zero(t, Compare(mut, ro))
	assert.False(t, mut.Equals(ro))

	other := New(record{name: "x"}, typeid.Mutable)
	defer other.Reset()
	assert.False(t, Equal(mut, other))
	assert.NotEqual(t, Less(mut, other), Less(other, mut))
	assert.Zero(t, CompareAddr(mut, p.Addr()))
	assert.Positive(t, CompareAddr(mut, 0))

	var empty Handle
	assert.True(t, Equal(empty, Handle{}))
	assert.Negative(t, Compare(empty, mut))
}

func TestHandle_String(t *testing.T) {
	h := New(record{}, typeid.Mutable)
	defer h.Reset()
	assert.Contains(t, h.String(), "(anyhandle.record@mutable@non-empty)")
	assert.Contains(t, h.String(), "0x")
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.0.0-alpha-004", Version())
}

type marker struct{}

func TestHandle_ZeroSizeValuesCompareByOwner(t *testing.T) {
	a := New(marker{}, typeid.Mutable)
	defer a.Reset()
	b := New(marker{}, typeid.Mutable)
	defer b.Reset()

	assert.False(t, Equal(a, b))
	assert.False(t, a.Equals(b))
	assert.NotZero(t, Compare(a, b))
	assert.Equal(t, -Compare(a, b), Compare(b, a))

	c := a.Clone()
	defer c.Reset()
	assert.True(t, Equal(a, c))
	assert.True(t, a.Equals(c))
	assert.Zero(t, Compare(a, c))
}
