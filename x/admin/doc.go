/*
Package admin keeps the deployment administrator and the whitelist of
supported coins.

The whitelist maps a one byte coin index, as used in encoded swaps, to the
token of the in-chain ledger. A slot can be filled only once.
*/
package admin
