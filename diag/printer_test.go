package diag

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/anyhandle"
	"github.com/wippyai/anyhandle/errors"
	"github.com/wippyai/anyhandle/typeid"
)

type sample struct{}

func TestFormatHandle(t *testing.T) {
	h := anyhandle.New(sample{}, typeid.Mutable)
	defer h.Reset()

	got := FormatHandle(h)
	assert.True(t, strings.HasPrefix(got, fmt.Sprintf("%#x(", h.Addr())))
	assert.True(t, strings.HasSuffix(got, "(diag.sample@mutable@non-empty)"))

	assert.Equal(t, "0x0(void@non-mutable@empty)", FormatHandle(anyhandle.Handle{}))
}

func TestFormatIdentity(t *testing.T) {
	assert.Equal(t, "diag.sample@non-mutable@non-empty",
		FormatIdentity(typeid.Make[sample](typeid.NonMutable)))
	assert.Equal(t, "void@non-mutable@empty", FormatIdentity(typeid.Empty()))
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "empty source", FormatCode(errors.KindEmptySource))
	assert.Equal(t, "bad source type", FormatCode(errors.KindBadSourceType))
	assert.Equal(t, "bad source mutability", FormatCode(errors.KindBadSourceMutability))
	assert.Equal(t, "undefined", FormatCode(errors.KindUndefined))
}

func TestFormatError(t *testing.T) {
	h := anyhandle.New(sample{}, typeid.NonMutable)
	defer h.Reset()

	r := anyhandle.MutableCast[sample](h)
	assert.Equal(t, "{ code={bad source mutability} }", FormatError(r.Err()))
	assert.Equal(t, "{ code={bad source mutability} }", FormatCastError(r.CastError()))

	_, err := anyhandle.MutableCastOrError[int](h)
	require.Error(t, err)
	assert.Equal(t,
		"bad any handle cast : { actual={diag.sample@non-mutable}, expected={int@mutable} }: bad source type",
		FormatError(err))

	assert.Equal(t, "plain", FormatError(stderrors.New("plain")))
	assert.Equal(t, "<nil>", FormatError(nil))
}

func TestPrinter_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	assert.False(t, p.styled)

	h := anyhandle.New(sample{}, typeid.Mutable)
	defer h.Reset()

	require.NoError(t, p.Handle(h))
	require.NoError(t, p.Identity(h.Identity()))
	require.NoError(t, p.Error(anyhandle.Cast[int](h).Err()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, FormatHandle(h), lines[0])
	assert.Equal(t, "diag.sample@mutable@non-empty", lines[1])
	assert.Equal(t, "{ code={bad source type} }", lines[2])
}

func TestRenderRegistry(t *testing.T) {
	entries := []typeid.Identity{
		typeid.Make[sample](typeid.NonMutable),
		typeid.Make[sample](typeid.Mutable),
	}

	out := RenderRegistry(entries, false)
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "MUTABILITY")
	assert.Contains(t, out, "diag.sample")
	assert.Contains(t, out, reflect.TypeFor[sample]().PkgPath())
	assert.Contains(t, out, "non-mutable")
	assert.Equal(t, 2, strings.Count(out, "diag.sample"))

	styled := RenderRegistry(entries, true)
	assert.Contains(t, styled, "diag.sample")
}

func TestPrinter_Registry(t *testing.T) {
	typeid.Make[sample](typeid.Mutable)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Registry())
	assert.Contains(t, buf.String(), "diag.sample")
}
