/*
Package remittance implements a two-secret, hash-locked escrow of native
value.

The owner of the contract locks value under a key derived from the identity
of a recipient and two secrets, usually handed to the recipient by two
different parties. Only the recipient, presenting both secrets, can redeem
the locked amount and only once.

	key := GenerateHash(contract, recipient, secretA, secretB)

The contract address is part of the key, so the same secrets used with two
contract instances never produce the same key.

An escrow is never deleted. After a withdrawal it stays in the ledger with a
zero amount and rejects every further withdrawal attempt.

Every operation is executed in isolation and either applies all of its
changes (ledger, wallets and event log) or none of them.
*/
package remittance
