//go:build cgo && darwin

package z3

/*
// Homebrew locations on Apple Silicon and Intel; missing directories are harmless.
#cgo CFLAGS: -I/opt/homebrew/include -I/usr/local/include
#cgo LDFLAGS: -L/opt/homebrew/lib -L/usr/local/lib
*/
import "C"
