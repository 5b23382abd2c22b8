package anyhandle

import "cmp"

// Equal reports whether a and b hold the same value. Identities are not
// compared; use Handle.Equals for that.
//
// Values are compared by address. Go may place distinct zero-size values at
// one address, so those are compared by the owner they were created with
// instead: clones of one handle are equal, separately built ones are not.
func Equal(a, b Handle) bool {
	return a.key() == b.key()
}

// Compare orders handles by the same key Equal uses.
func Compare(a, b Handle) int {
	return cmp.Compare(a.key(), b.key())
}

// Less reports whether a orders before b.
func Less(a, b Handle) bool {
	return Compare(a, b) < 0
}

// CompareAddr orders h's stored address against addr, such as the Addr of a
// typed pointer. The address 0 stands for nil.
func CompareAddr(h Handle, addr uintptr) int {
	return cmp.Compare(h.Addr(), addr)
}
