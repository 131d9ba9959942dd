// Package crypto implements the secret envelope: random AES-256 keys and
// AES-CBC encryption with PKCS#7 padding, framed as
// base64(IV ‖ ciphertext) with a fresh 16-byte IV per message.
//
// It also carries two legacy helpers kept for tooling: a random password
// generator and PBKDF2 key derivation. Neither is used on the broker path.
package crypto
