//go:build darwin

// Package darwin provides macOS platform support using the window server,
// CoreGraphics and AppKit.
// Space and window queries require CGo (Objective-C frameworks).
// When CGo is disabled, the package compiles as a no-op stub.
package darwin
