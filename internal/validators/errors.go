package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMessage        = errors.New("message is required")
	ErrWhitespaceMessage   = errors.New("message must not be blank")
	ErrMessageTooLarge     = errors.New("message exceeds maximum size")
	ErrInvalidUTF8         = errors.New("message is not valid UTF-8")
	ErrEmptyMessageID      = errors.New("message id is required")
	ErrMessageIDTooLong    = errors.New("message id is too long")
	ErrEmptyAESKey         = errors.New("aes key is required")
	ErrAESKeyTooLong       = errors.New("aes key is too long")
	ErrInvalidAESKey       = errors.New("aes key must be base64 of 32 bytes")

	// ErrInvalidIdentifierFormat is returned by the dispatcher when a
	// receive payload is not a JSON identifier object.
	ErrInvalidIdentifierFormat = errors.New("invalid identifier format")
)
