package assert

import (
	"testing"

	"github.com/iov-one/remit/errors"
)

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		ErrWant  error
		ErrGot   error
		WantFail bool
	}{
		"same error": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.ErrEmpty,
			WantFail: false,
		},
		"compared to nil": {
			ErrWant:  nil,
			ErrGot:   errors.ErrEmpty,
			WantFail: true,
		},
		"both nil": {
			ErrWant:  nil,
			ErrGot:   nil,
			WantFail: false,
		},
		"wrapped": {
			ErrWant:  errors.ErrEmpty,
			ErrGot:   errors.Wrap(errors.ErrEmpty, "test"),
			WantFail: false,
		},
		"one of many": {
			ErrWant:  errors.ErrAmount,
			ErrGot:   errors.Append(errors.ErrEmpty, errors.ErrAmount),
			WantFail: false,
		},
		"different kind": {
			ErrWant:  errors.ErrAmount,
			ErrGot:   errors.ErrEmpty,
			WantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			mock := &tmock{TB: t}
			IsErr(mock, tc.ErrWant, tc.ErrGot)
			failed := mock.failcalls > 0
			if tc.WantFail != failed {
				t.Fatalf("unexpected failed call state: %d failures", mock.failcalls)
			}
		})
	}
}

func TestEqualAndNil(t *testing.T) {
	mock := &tmock{TB: t}
	Equal(mock, []byte("a"), []byte("a"))
	Nil(mock, nil)
	var empty []byte
	Nil(mock, empty)
	if mock.failcalls != 0 {
		t.Fatalf("unexpected failures: %d", mock.failcalls)
	}

	Equal(mock, 1, 2)
	Nil(mock, "not nil")
	Nil(mock, 0)
	if mock.failcalls != 3 {
		t.Fatalf("want 3 failures, got %d", mock.failcalls)
	}
}

func TestPanics(t *testing.T) {
	mock := &tmock{TB: t}
	Panics(mock, func() { panic("boom") })
	if mock.failcalls != 0 {
		t.Fatalf("unexpected failures: %d", mock.failcalls)
	}
	Panics(mock, func() {})
	if mock.failcalls != 1 {
		t.Fatalf("want 1 failure, got %d", mock.failcalls)
	}
}

// tmock mocks testing.TB and only counts failure calls. It ignores all other
// input.
type tmock struct {
	testing.TB
	failcalls int
}

func (t *tmock) Fatal(args ...interface{}) {
	t.TB.Log(args...)
	t.failcalls++
}

func (t *tmock) Fatalf(s string, args ...interface{}) {
	t.TB.Logf(s, args...)
	t.failcalls++
}
