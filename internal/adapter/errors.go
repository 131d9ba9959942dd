package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("message not found")
	ErrDecryptionFailed    = errors.New("unable to decrypt message")
	ErrUnavailable         = errors.New("broker unavailable")
	ErrTimeout             = errors.New("broker did not reply in time")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedReply     = errors.New("unexpected reply")
)
