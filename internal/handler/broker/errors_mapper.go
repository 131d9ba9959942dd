package broker

import (
	"errors"

	"github.com/MKhiriev/go-secret-broker/internal/app"
	"github.com/MKhiriev/go-secret-broker/internal/crypto"
	"github.com/MKhiriev/go-secret-broker/internal/service"
	"github.com/MKhiriev/go-secret-broker/internal/store"
	"github.com/MKhiriev/go-secret-broker/internal/validators"
)

// errorMessages is matched in order, so an error wrapping several of these
// sentinels always gets the first matching text.
var errorMessages = []struct {
	err     error
	message string
}{
	{validators.ErrEmptyMessage, app.MsgEmptyMessage},
	{validators.ErrWhitespaceMessage, app.MsgBlankMessage},
	{validators.ErrMessageTooLarge, app.MsgMessageTooLarge},
	{validators.ErrInvalidUTF8, app.MsgInvalidUTF8},
	{validators.ErrEmptyMessageID, app.MsgMessageIDRequired},
	{validators.ErrMessageIDTooLong, app.MsgMessageIDTooLong},
	{validators.ErrEmptyAESKey, app.MsgAESKeyRequired},
	{validators.ErrAESKeyTooLong, app.MsgAESKeyTooLong},
	{validators.ErrInvalidAESKey, app.MsgInvalidAESKey},
	{validators.ErrInvalidIdentifierFormat, app.MsgInvalidRequestFormat},

	{store.ErrStoreUnavailable, app.MsgStorageUnavailable},
	{crypto.ErrRNGFailure, app.MsgUnableToGenerateKey},

	{service.ErrMessageNotFound, app.MsgMessageNotFound},

	// wrong key, tampered or truncated envelopes are not told apart
	{crypto.ErrBadKeyOrCorruption, app.MsgUnableToDecrypt},
	{crypto.ErrMalformedEnvelope, app.MsgUnableToDecrypt},
	{crypto.ErrInvalidKeySize, app.MsgUnableToDecrypt},
	{service.ErrInvalidPlaintext, app.MsgUnableToDecrypt},
}

func messageFromError(err error) string {
	for _, e := range errorMessages {
		if errors.Is(err, e.err) {
			return e.message
		}
	}
	return app.MsgInternalServerError
}
