// Package secmem provides buffers for staging secret material, released
// through a wiping path. Go's runtime offers no guaranteed-erase
// allocation, and none of the libraries this module builds on cover the
// concern, so the guarantee provided here is best-effort but explicit:
// a buffer released through Free (directly or via Do) is zeroed before
// it becomes unreachable, on every exit path including panics.
package secmem

// Alloc returns a fresh n-byte buffer intended for secret material.
// Release it with Free.
func Alloc(n int) []byte {
	return make([]byte, n)
}

// Free wipes b. Callers must not use b afterwards.
func Free(b []byte) {
	Wipe(b)
}

// Wipe zeroes b in place.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Do runs fn with a fresh n-byte secret buffer and wipes the buffer when
// fn returns, whether normally, with an error, or by panicking.
func Do(n int, fn func(b []byte) error) error {
	b := Alloc(n)
	defer Free(b)
	return fn(b)
}
