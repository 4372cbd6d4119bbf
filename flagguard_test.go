package plane2d_test

import (
	"testing"

	"github.com/plane2d/plane2d"
)

func TestFlagGuardSetsAndClears(t *testing.T) {
	var flags uint32 = 0x0010

	func() {
		guard := plane2d.MakeFlagGuard(&flags, uint32(0x0002))
		defer guard.Release()

		if flags&0x0002 == 0 {
			t.Fatalf("managed bit not set inside the scope")
		}
		if flags&0x0010 == 0 {
			t.Fatalf("unmanaged bits must be left alone")
		}
	}()

	if flags != 0x0010 {
		t.Fatalf("expected only the pre-existing bit after release, got %#04x", flags)
	}
}

func TestFlagGuardClearsOnPanic(t *testing.T) {
	var flags uint32

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected the panic to propagate")
			}
		}()

		guard := plane2d.MakeFlagGuard(&flags, uint32(0x0001))
		defer guard.Release()
		panic("unwound")
	}()

	if flags != 0 {
		t.Fatalf("expected the bit cleared after a panic, got %#04x", flags)
	}
}

func TestFlagGuardNested(t *testing.T) {
	var flags uint8

	outer := plane2d.MakeFlagGuard(&flags, uint8(0x01))
	inner := plane2d.MakeFlagGuard(&flags, uint8(0x02))

	if flags != 0x03 {
		t.Fatalf("expected both bits set, got %#02x", flags)
	}

	inner.Release()
	if flags != 0x01 {
		t.Fatalf("expected only the outer bit, got %#02x", flags)
	}

	outer.Release()
	if flags != 0 {
		t.Fatalf("expected no bits, got %#02x", flags)
	}
}

func TestFlagGuardWiderWords(t *testing.T) {
	var flags uint64

	guard := plane2d.MakeFlagGuard(&flags, uint64(1)<<63)
	if flags != 1<<63 {
		t.Fatalf("expected the top bit set, got %#x", flags)
	}
	guard.Release()
	if flags != 0 {
		t.Fatalf("expected zero, got %#x", flags)
	}
}
