package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_service_mock.go -package=mock

// EnvelopeService encrypts and decrypts secret messages.
//
// Envelope format: base64.StdEncoding( IV(16 bytes) ‖ AES-256-CBC(PKCS#7(plaintext)) ).
type EnvelopeService interface {
	// GenerateKey draws KeySize bytes from the random source.
	GenerateKey() ([]byte, error)

	// Encrypt seals plaintext under key with a fresh IV and returns the
	// base64 envelope.
	Encrypt(plaintext, key []byte) (string, error)

	// Decrypt opens an envelope produced by Encrypt. It returns
	// ErrMalformedEnvelope for framing problems and ErrBadKeyOrCorruption
	// for padding failures.
	Decrypt(envelope string, key []byte) ([]byte, error)
}
