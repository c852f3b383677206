/*
Package pool implements the liquidity provider directory and the pool
ledger.

Every pool has a nonzero index, one owner and any number of authorized
identities; each identity belongs to at most one pool. Pool 0 is owned by
the premium manager, which collects service fees and may release swaps
with the fee waived.

Pool balances are kept per pool and coin index and only change through
deposit, withdraw, lock, unlock and the service fee of release.
*/
package pool
