//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

// Windows API functions for console control
var (
	modkernel32            = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleOutputCP = modkernel32.NewProc("SetConsoleOutputCP")
	procGetConsoleMode     = modkernel32.NewProc("GetConsoleMode")
	procSetConsoleMode     = modkernel32.NewProc("SetConsoleMode")
	procGetStdHandle       = modkernel32.NewProc("GetStdHandle")
)

const (
	stdOutputHandle                 = uintptr(-11 & 0xFFFFFFFF)
	enableVirtualTerminalProcessing = 0x0004
	cpUTF8                          = 65001
)

// initConsole switches the console to UTF-8 so the box drawing characters
// print, and enables ANSI escapes.
func initConsole() {
	procSetConsoleOutputCP.Call(cpUTF8)

	stdoutHandle, _, _ := procGetStdHandle.Call(stdOutputHandle)
	if stdoutHandle != 0 {
		var mode uint32
		procGetConsoleMode.Call(stdoutHandle, uintptr(unsafe.Pointer(&mode)))
		procSetConsoleMode.Call(stdoutHandle, uintptr(mode|enableVirtualTerminalProcessing))
	}
}
