// Package anyhandle stores shared ownership of values of statically unknown
// type and recovers typed ownership later, checking both the type and a
// mutability capability recorded with it.
//
// # Architecture Overview
//
//	anyhandle/       Handle, construction and casts
//	├── shared/      Reference-counted pointers, typed and erased
//	├── typeid/      Interned (type, mutability) identities
//	├── errors/      Cast error codes and the raised cast error
//	├── table/       Keyed handle store with lifecycle observers
//	└── diag/        Human-readable rendering for logs and test failures
//
// # Quick Start
//
// Erase a value and recover it:
//
//	p := shared.New(Account{ID: 7})
//	defer p.Release()
//
//	h := anyhandle.Make(p, typeid.Mutable)
//	defer h.Reset()
//
//	r := anyhandle.MutableCast[Account](h)
//	if r.HasError() {
//	    return r.Err()
//	}
//	acct := r.Value()
//	defer acct.Release()
//	acct.Get().Balance += 10
//
// # Mutability
//
// The mutability flag is recorded when the handle is built and governs what
// later casts permit. A mutable value may be handed out read-only:
//
//	h := anyhandle.Make(p, typeid.NonMutable)
//	anyhandle.MutableCast[Account](h).Code() // errors.KindBadSourceMutability
//	anyhandle.Cast[Account](h).HasValue()    // true
//
// typeid.Const[Account] names the read-only Account. Building with it records
// a non-mutable Account, and casting to it views the same value:
//
//	anyhandle.Cast[typeid.Const[Account]](h).Value().Load().Value()
//
// Handles built from an erased pointer record typeid.Void, and a Void cast
// returns a pointer at the stored address.
//
// # Failure Reporting
//
// Cast and MutableCast never panic; they return a Result holding either the
// pointer or an error code. CastOrError and MutableCastOrError return an
// *errors.Error with the actual and expected (type, mutability) pairs, and
// MustCast and MustMutableCast panic with that same error. All families make
// the same decision in the same order: empty source, then type, then
// mutability.
//
// # Ownership
//
// Handles own a reference to their value. Clone shares it, Move transfers it
// and Reset gives it up. Copying a Handle by assignment does not take a
// reference. Pointer, MutablePointer and successful casts return new
// references that the caller must Release.
package anyhandle
