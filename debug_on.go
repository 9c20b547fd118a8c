//go:build asslice_debug

package asslice

// debugAssertions makes conflicting Borrow and BorrowMut calls panic.
const debugAssertions = true
