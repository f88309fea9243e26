/*
Package keystream provides the RC4 keystream used to obscure node addresses.

RC4 is broken as a cipher and must NOT be used to protect anything of value.
It's provided here because existing node hash strings were produced with it, and reading or producing them requires the same keystream.

# How it works:

A key of 1 to 256 bytes initializes the keystream, which is combined with every byte that passes through Crypt, Reader, or Writer using XOR.
The operation is symmetric, so the same key both obscures and recovers data.

# Important note:

A Reader or Writer consumes the keystream as data passes through it.
Use Reset to start over from the beginning of the keystream for the same key, like when reusing a Writer for a new payload.
*/
package keystream
