/*
Package xswap defines the interfaces shared by every part of the swap core:
storage, messages, handlers and the identities of the parties involved.

Extensions living under x/ implement the individual state machines (posted
swaps, locked swaps, the pool directory and ledger, administration). The app
package routes a raw instruction to one of them and the store package
provides the key value backends they persist to.
*/
package xswap
