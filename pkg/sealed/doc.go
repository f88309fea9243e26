/*
Package sealed hides node addresses with a key derived from a shared passphrase.
This uses AES-GCM encryption, and is a separate scheme from the "@" node hash strings in package nodehash.
Sealed tokens are tagged with "!" and are NOT understood by peers that only speak nodehash.

# How it works:

A key and salt is generated from the given passphrase with scrypt, using the settings of a KeyGenerator.
The generator settings are written at the start of the token and authenticated along with the address, so Open only needs the passphrase.
The salt is appended to the encrypted payload so the same key can be derived later given the same passphrase.
A fresh salt and nonce is used each time, so sealing the same address twice gives different tokens.

# General guidelines:
  - Both short and long delay iteration GeneratorOpt functions are provided, choose the correct iterations for your use-case using either SetLongDelayIterations or SetShortDelayIterations.
  - If you're not an expert, then don't use SetIterations, SetCPUCost, or SetRelativeBlockSize.
  - Open refuses settings above MaxIterations, MaxRelBlockSize, or MaxCPUCost, and combinations that need more than MaxMemory or MaxWork, since a token may come from an untrusted peer.
*/
package sealed
