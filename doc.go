/*
Package remit defines interfaces used throughout the escrow extensions, such
as: storage, identities, genesis options and context helpers.

Funds are escrowed by x/remittance and held in wallets managed by x/cash. Look
into this package to get a brief overview of design decisions made around
interfaces and extension building blocks.
*/
package remit
