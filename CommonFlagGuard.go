package plane2d

import (
	"golang.org/x/exp/constraints"
)

/// A scoped bit toggle over an externally owned flag word. The managed bit
/// is set for the guard's whole scope and cleared exactly once on exit:
///
///	guard := MakeFlagGuard(&world.M_flags, WorldFlags.E_locked)
///	defer guard.Release()
///
/// The deferred Release runs on every exit path, panics included. This is
/// not a mutex; it does not block a second caller. It makes a guarded
/// region detectable so reentrant mutation can be rejected by the caller.
/// The zero value is unusable; a guard must be bound at construction.
type FlagGuard[T constraints.Unsigned] struct {
	flags *T
	value T
}

/// Bind a guard to a flag word and set the managed bit.
func MakeFlagGuard[T constraints.Unsigned](flags *T, value T) FlagGuard[T] {
	*flags |= value
	return FlagGuard[T]{
		flags: flags,
		value: value,
	}
}

/// Clear the managed bit. Intended to be deferred immediately after
/// construction.
func (g FlagGuard[T]) Release() {
	*g.flags &^= g.value
}
