//go:build windows

package utfx

// Wide is the platform wide character unit. Windows uses UTF-16.
type Wide = uint16
