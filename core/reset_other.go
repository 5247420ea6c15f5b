//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package core

func resetTerminalMode() {}
