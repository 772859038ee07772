//go:build !windows

package utfx

// Wide is the platform wide character unit. Unix-like systems use UTF-32.
type Wide = uint32
