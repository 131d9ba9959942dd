package validators

import (
	"context"
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-secret-broker/models"
)

const (
	FieldPlaintext = "plaintext"
	FieldMessageID = "messageId"
	FieldAESKey    = "aesKey"
)

const (
	// MaxMessageIDLength is the longest accepted messageId, in characters.
	MaxMessageIDLength = 100
	// MaxAESKeyLength is the longest accepted aesKey, in characters, checked
	// before the key is decoded.
	MaxAESKeyLength = 500

	aesKeySize = 32
)

// Plaintext is the validated form of a save request body.
type Plaintext string

type SecretMessageValidator struct {
	maxMessageSize int
}

// NewSecretMessageValidator validates save payloads as [Plaintext] and
// retrieve payloads as [models.SecretMessageIdentifier].
func NewSecretMessageValidator(maxMessageSize int) Validator {
	return &SecretMessageValidator{maxMessageSize: maxMessageSize}
}

func (v *SecretMessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case Plaintext:
		return v.validatePlaintext(value)
	case *Plaintext:
		return v.validatePlaintext(*value)

	case models.SecretMessageIdentifier:
		return v.validateIdentifier(value, fields...)
	case *models.SecretMessageIdentifier:
		return v.validateIdentifier(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SecretMessageValidator) validatePlaintext(p Plaintext) error {
	switch {
	case len(p) == 0:
		return ErrEmptyMessage
	case len(p) > v.maxMessageSize:
		return ErrMessageTooLarge
	case !utf8.ValidString(string(p)):
		return ErrInvalidUTF8
	case strings.TrimSpace(string(p)) == "":
		return ErrWhitespaceMessage
	}

	return nil
}

func (v *SecretMessageValidator) validateIdentifier(id models.SecretMessageIdentifier, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessageID, FieldAESKey}
	}

	for _, f := range fields {
		switch f {
		case FieldMessageID:
			if id.MessageID == "" {
				return ErrEmptyMessageID
			}
			if utf8.RuneCountInString(id.MessageID) > MaxMessageIDLength {
				return ErrMessageIDTooLong
			}
		case FieldAESKey:
			if id.AESKey == "" {
				return ErrEmptyAESKey
			}
			if utf8.RuneCountInString(id.AESKey) > MaxAESKeyLength {
				return ErrAESKeyTooLong
			}
			key, err := base64.StdEncoding.DecodeString(id.AESKey)
			if err != nil || len(key) != aesKeySize {
				return ErrInvalidAESKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
