package commands

import "github.com/atotto/clipboard"

// Clipboard receives the result text when --copy is given.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

// SystemClipboard returns the operating system clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
