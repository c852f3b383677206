/*
Package locked implements the out-chain side of a swap.

A liquidity provider locks the net amount of a requested swap from its
pool balance for a short period. Within that period anyone can release
the swap to the recipient with the release signature of the initiator,
paying the service fee to the premium pool unless it was waived. Once the
period is over an unreleased lock can be unlocked, which returns the funds
to the pool.

Records are keyed by the swap id. A removed record keeps its slot, so a
swap can be locked only once.
*/
package locked
