/*
Package swap implements the encoded swap descriptor shared by the posted and
locked state machines, the digests its signatures are made over and the
protocol configuration.

An encoded swap is 32 bytes, big-endian:

	0       version
	1-5     amount
	6-15    salt (byte 6 carries the flags)
	16-20   fee for the liquidity provider
	21-25   expire timestamp
	26-27   out chain
	28      out coin index
	29-30   in chain
	31      in coin index
*/
package swap
