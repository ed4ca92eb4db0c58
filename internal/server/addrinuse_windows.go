//go:build windows
// +build windows

package server

import (
	"errors"
	"syscall"
)

// wsaeaddrinuse is WSAEADDRINUSE (10048), the error Windows sockets actually
// return on a double bind; syscall.EADDRINUSE does not match it reliably.
const wsaeaddrinuse = syscall.Errno(10048)

func isAddrInUse(err error) bool {
	if errors.Is(err, syscall.EADDRINUSE) {
		return true
	}
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == wsaeaddrinuse
}
