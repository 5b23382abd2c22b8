package errors

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type config struct{}

func TestKind_Message(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindEmptySource, "empty source"},
		{KindBadSourceType, "bad source type"},
		{KindBadSourceMutability, "bad source mutability"},
		{KindUndefined, "undefined"},
	}

	for _, tt := range tests {
		if got := tt.kind.Message(); got != tt.want {
			t.Errorf("%q.Message() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCastError(t *testing.T) {
	err := NewCastError(KindBadSourceType)

	if err.Code() != KindBadSourceType {
		t.Errorf("Code = %v, want %v", err.Code(), KindBadSourceType)
	}
	if !strings.Contains(err.Error(), "bad source type") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrBadSourceType) {
		t.Error("errors.Is should match same code")
	}
	if errors.Is(err, ErrEmptySource) {
		t.Error("errors.Is should not match different code")
	}
	if !IsBadSourceType(err) || IsEmptySource(err) || IsBadSourceMutability(err) {
		t.Error("predicates disagree with code")
	}

	var zero CastError
	if zero.Code() != KindUndefined {
		t.Errorf("zero Code = %v, want undefined", zero.Code())
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: New(PhaseMutableCast, KindBadSourceMutability).
				Actual(reflect.TypeFor[config](), false).
				Expected(reflect.TypeFor[config](), true).
				Build(),
			contains: []string{
				"bad any handle cast",
				"actual={errors.config@non-mutable}",
				"expected={errors.config@mutable}",
				"bad source mutability",
			},
		},
		{
			name:     "minimal error",
			err:      &Error{Phase: PhaseCast},
			contains: []string{"bad any handle cast", "actual={<nil>@non-mutable}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_ExactMessage(t *testing.T) {
	err := New(PhaseCast, KindBadSourceType).
		Actual(reflect.TypeFor[int](), true).
		Expected(reflect.TypeFor[config](), false).
		Build()

	want := "bad any handle cast : { actual={int@mutable}, expected={errors.config@non-mutable} }: bad source type"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestError_Is(t *testing.T) {
	err := New(PhaseCast, KindBadSourceType).
		Actual(reflect.TypeFor[int](), false).
		Expected(reflect.TypeFor[string](), false).
		Build()

	if !err.Is(&Error{Phase: PhaseCast, Kind: KindBadSourceType}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseMutableCast, Kind: KindBadSourceType}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseCast, Kind: KindEmptySource}) {
		t.Error("Is should not match different kind")
	}

	if !errors.Is(err, ErrBadSourceType) {
		t.Error("errors.Is should match the outcome code")
	}
	if errors.Is(err, ErrBadSourceMutability) {
		t.Error("errors.Is should not match a different outcome code")
	}
	if !IsBadSourceType(err) {
		t.Error("IsBadSourceType should see through *Error")
	}
	if got := err.CastError(); got != ErrBadSourceType {
		t.Errorf("CastError() = %v, want %v", got, ErrBadSourceType)
	}

	var target *Error
	wrapped := errors.Join(errors.New("context"), err)
	if !errors.As(wrapped, &target) || target != err {
		t.Error("errors.As should find *Error")
	}
}

func TestCastInfo_String(t *testing.T) {
	info := CastInfo{Type: reflect.TypeFor[config](), Mutable: true}
	if got, want := info.String(), "errors.config@mutable"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
