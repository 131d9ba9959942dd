package client

import "errors"

var (
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
	ErrNoMessage            = errors.New("no message given")
	ErrInvalidSalt          = errors.New("salt must be standard base64")
)
