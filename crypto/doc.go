/*
Package crypto provides the hashing and signature recovery primitives the
swap core verifies requests with.

Signers are identified by 20 byte Ethereum style addresses: the last 20
bytes of the keccak256 hash of an uncompressed secp256k1 public key.
Signatures are 64 bytes in the compact EIP-2098 form, with the recovery id
stored in the top bit of s.
*/
package crypto
