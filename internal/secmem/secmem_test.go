package secmem

import (
	"errors"
	"testing"
)

func TestWipe(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	Wipe(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %#02x", i, b)
		}
	}
}

func TestAllocFree(t *testing.T) {
	buf := Alloc(32)
	if len(buf) != 32 {
		t.Fatalf("Alloc(32) returned %d bytes", len(buf))
	}
	for i := range buf {
		buf[i] = 0xFF
	}
	Free(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zeroed after Free: %#02x", i, b)
		}
	}
}

func TestDoWipesOnReturn(t *testing.T) {
	var escaped []byte
	err := Do(16, func(buf []byte) error {
		for i := range buf {
			buf[i] = 0xAA
		}
		escaped = buf
		return nil
	})
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	for i, b := range escaped {
		if b != 0 {
			t.Fatalf("byte %d not zeroed after Do: %#02x", i, b)
		}
	}
}

func TestDoWipesOnError(t *testing.T) {
	wantErr := errors.New("staged failure")
	var escaped []byte
	err := Do(8, func(buf []byte) error {
		buf[0] = 0x5A
		escaped = buf
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("Do error = %v, want %v", err, wantErr)
	}
	if escaped[0] != 0 {
		t.Fatal("buffer not zeroed on error return")
	}
}

func TestDoWipesOnPanic(t *testing.T) {
	var escaped []byte
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		_ = Do(8, func(buf []byte) error {
			buf[0] = 0x5A
			escaped = buf
			panic("boom")
		})
	}()
	if escaped[0] != 0 {
		t.Fatal("buffer not zeroed after panic")
	}
}
