/*
Package x contains the extensions of the swap core.

Extensions implement Handlers and Decorators for one part of the state
(posted swaps, locked swaps, pools, the coin whitelist) and are combined
together by the app package into a single router.

Caller identity is never read from instruction payloads. Handlers ask an
Authenticator which holders signed the instruction.
*/
package x
