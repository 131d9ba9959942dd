package client

import "github.com/atotto/clipboard"

type systemClipboard struct{}

// NewSystemClipboard returns a [Clipboard] backed by the platform clipboard
// utility (pbcopy, xclip, xsel, wl-copy or the Windows API).
func NewSystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
