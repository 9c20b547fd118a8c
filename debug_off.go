//go:build !asslice_debug

package asslice

const debugAssertions = false
