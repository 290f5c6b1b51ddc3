//go:build linux

package main

import "golang.org/x/sys/unix"

// setRawMode turns off line buffering and echo on the terminal so single key
// presses can be read. Output processing stays on.
func setRawMode(fd uintptr) (func(), error) {
	settings, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	saved := *settings
	settings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	settings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	settings.Cflag &^= unix.CSIZE | unix.PARENB
	settings.Cflag |= unix.CS8

	if err := unix.IoctlSetTermios(int(fd), unix.TCSETS, settings); err != nil {
		return nil, err
	}
	return func() { _ = unix.IoctlSetTermios(int(fd), unix.TCSETS, &saved) }, nil
}
