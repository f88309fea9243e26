package sealed

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

// lock will encrypt the payload with the given Key, authenticating the header, and append the given Salt to the payload.
// Exposure of the Salt doesn't weaken the Key, since the passphrase is also required to arrive at the same Key.
func lock(key Key, salt Salt, header, data []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	cipherText := append(gcm.Seal(nonce, nonce, data, header), salt...)
	return cipherText, nil
}

// unlock will decrypt the payload after stripping the Salt from the end of it.
// The Salt length is expected to match the Key length (which is enforced by KeyGenerator).
func unlock(key Key, header, data []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize+gcm.Overhead()+len(key) {
		return nil, fmt.Errorf("%w: sealed payload is too short", ErrInvalidData)
	}
	nonce, cipherText := data[:nonceSize], data[nonceSize:]
	cipherText = cipherText[:len(cipherText)-len(key)]
	return gcm.Open(nil, nonce, cipherText, header)
}

func newGCM(key Key) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
