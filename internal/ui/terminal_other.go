//go:build !windows

package ui

// InitTerminal is a no-op outside Windows, where terminals already understand colour codes.
func InitTerminal() func() {
	return func() {}
}
