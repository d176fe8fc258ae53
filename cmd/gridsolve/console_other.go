//go:build !windows

package main

// initConsole is a no-op: terminals outside Windows already take UTF-8.
func initConsole() {}
