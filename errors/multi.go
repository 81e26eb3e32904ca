package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored. If no
// non-nil error is provided, nil is returned. If only one non-nil error is
// provided, it is returned as it is.
//
// The result is of every kind that any of the grouped errors is, so
//   ErrWithdrawalDenied.Is(Append(ErrWithdrawalDenied, ErrEscrowEmpty))
//   ErrEscrowEmpty.Is(Append(ErrWithdrawalDenied, ErrEscrowEmpty))
// are both true. Code and Cause of the result are those of the first error.
func Append(errs ...error) error {
	var res multiErr
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		// Flatten so that the grouped errors never nest.
		if m, ok := err.(*multiErr); ok {
			res.errs = append(res.errs, m.errs...)
		} else {
			res.errs = append(res.errs, err)
		}
	}
	switch len(res.errs) {
	case 0:
		return nil
	case 1:
		return res.errs[0]
	default:
		return &res
	}
}

type multiErr struct {
	errs []error
}

func (m *multiErr) Error() string {
	msgs := make([]string, len(m.errs))
	for i, err := range m.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Cause returns the first of the grouped errors.
func (m *multiErr) Cause() error {
	return m.errs[0]
}

// Format prints the stack trace of the first grouped error when requested
// with %+v.
func (m *multiErr) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%d errors occurred:", len(m.errs))
		for _, err := range m.errs {
			fmt.Fprintf(s, "\n\t* %+v", err)
		}
		return
	}
	fmt.Fprint(s, m.Error())
}

var _ causer = (*multiErr)(nil)
