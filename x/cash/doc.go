/*
Package cash defines a simple implementation of native value held by
accounts.

Every account owns a single wallet holding a non negative amount of value
units. There is no logic in the coins, except that the balance of any wallet
may not go below zero nor overflow. Thus, this implementation is referred to
as cash. Simple and safe.

Contracts hold value in a wallet of their own, addressed by their condition.
*/
package cash
