package nodehash

const (
	// KeyLen is the length of every CipherKey.
	KeyLen = 13
)

var magicKey = [KeyLen]byte{0x6f, 0x70, 0x69, 0x65, 0x77, 0x66, 0x36, 0x61, 0x73, 0x63, 0x78, 0x6c, 0x76}

// CipherKey is the RC4 key used to obscure an Address.
type CipherKey [KeyLen]byte

// Bytes returns the key as a slice for use with package keystream.
func (k CipherKey) Bytes() []byte {
	return k[:]
}

// DeriveKey returns the CipherKey for the given checksum.
// The first byte is the checksum, the rest is fixed, so equal checksums always produce equal keys.
func DeriveKey(sum byte) CipherKey {
	key := magicKey
	key[0] = sum
	return key
}

// Checksum sums every byte of data, wrapping at 256.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}
