/*
Package posted implements the in-chain side of a swap.

An initiator posts a signed encoded swap and the amount is moved into
custody. A liquidity provider bonds the swap to its pool, and executes it
with the release signature of the initiator once the swap was paid out on
the out-chain. Unexecuted swaps can be cancelled after they expire, which
refunds the poster.

Records are keyed by the encoded swap. A removed record keeps its slot
with a zero poster, so the same encoded swap can never be posted twice.
*/
package posted
