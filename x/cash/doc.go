/*
Package cash is the asset-transfer ledger of the in-chain side.

Balances are kept per holder and token. There is no logic in the tokens,
except that the balance of a holder may not go below zero or overflow.
Swap custody is an ordinary holder configured by the swap package.
*/
package cash
