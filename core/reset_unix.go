//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package core

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode restores echo and canonical input; escape sequences alone don't restore termios
// Best effort, errors are ignored in crash context
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
}
