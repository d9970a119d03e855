//go:build windows

package player

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	// Windows manages process groups differently; the default attributes are safe.
	return nil
}
