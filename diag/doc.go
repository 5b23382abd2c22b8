// Package diag renders handles, identities and cast failures for logs and
// test output.
//
// Formats follow the String methods of the rendered values:
//
//	handle     0xc000012345(pkg.T@mutable@non-empty)
//	identity   pkg.T@non-mutable@non-empty
//	cast error { code={bad source type} }
//	raised     bad any handle cast : { actual={pkg.T@non-mutable}, expected={pkg.U@mutable} }
//
// A Printer writing to a terminal adds color. RenderRegistry lays out the
// interned identities as a table.
package diag
