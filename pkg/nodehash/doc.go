/*
Package nodehash converts peer addresses to and from the node hash strings exchanged by Winny-compatible overlays.

A node hash string hides an address like "123.1.2.3:1234" behind an "@" tagged hex string like "@ba9582a383c7d6e79cd5d8c71f7347".
This is obfuscation, NOT encryption.
Anyone holding this package can recover the address, and a Token should never be treated as a secret.
See package sealed for a scheme that actually requires a secret.

# How it works:

A one byte Checksum is computed by summing every byte of the Address, wrapping at 256.
The Checksum becomes the first byte of a 13 byte CipherKey, the other 12 bytes are fixed.
The Address is run through the RC4 keystream for that key, and the Checksum is prepended to the result.
Finally, the payload is hex encoded and tagged with "@".

Decoding reverses this, and verifies that the recovered Address sums to the Checksum carried in the Token.
A failure to decode is always reported as a *NodeFormatError, and errors.Is may be used with ErrTooShort, ErrBadTag, ErrBadEncoding, or ErrChecksum to tell the cases apart.

# Important note:

There are only 256 possible keys, and any two addresses with the same Checksum share one.
This matches existing deployments and is kept as-is so that tokens remain interchangeable.
*/
package nodehash
