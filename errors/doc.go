/*
Package errors implements custom error interfaces for remit.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. It is best to define a new
error here if you feel it's going to be somewhat package-agnostic.

x/remittance is a good package to take a look at in terms of declaring custom
errors.

Register a custom error with Register(code, description) and reuse it with
Wrap(ErrXyz, "...") or Wrapf. The code lets clients tell the kinds of errors
apart and act accordingly.

Wrapping a registered error records a stack trace. Only the first wrap keeps
it, so wrap where the failure happens and never in a package level variable:
`var ErrFoo = errors.Wrap(errors.ErrInput, "foo")` records the stack of the
package initialization.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context
for the error
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
