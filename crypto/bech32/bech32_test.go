package bech32

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/iov-one/remit/errors"
)

func TestBech32EncodeDecode(t *testing.T) {
	cases := map[string]struct {
		enc     string
		payload string
	}{
		"text payload": {
			// bech32 -e -h remit 746573742d7061796c6f6164
			enc:     "remit1w3jhxapdwpshjmr0v9jq2hznl0",
			payload: "746573742d7061796c6f6164",
		},
		"address payload": {
			enc:     "remit1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5z24gx7",
			payload: "0102030405060708090a0b0c0d0e0f1011121314",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			want, err := hex.DecodeString(tc.payload)
			if err != nil {
				t.Fatal(err)
			}

			hrp, payload, err := Decode(tc.enc)
			if err != nil {
				t.Fatal(err)
			}
			if hrp != HRP {
				t.Fatalf("unexpected human readable part: %q", hrp)
			}
			if !bytes.Equal(want, payload) {
				t.Logf("want %d", want)
				t.Logf("got  %d", payload)
				t.Fatal("invalid decode")
			}

			raw, err := Encode(hrp, payload)
			if err != nil {
				t.Fatalf("cannot encode: %s", err)
			}
			if raw != tc.enc {
				t.Fatalf("invalid encoding: %q", raw)
			}
		})
	}
}

func TestDecodeHRP(t *testing.T) {
	// Same payload as above, encoded with a foreign prefix.
	const foreign = "tiov1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5w8tjwv"
	if _, err := DecodeHRP(foreign, HRP); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
	if _, err := DecodeHRP(foreign, "tiov"); err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if _, _, err := Decode("remit1invalidchecksum"); !errors.ErrInput.Is(err) {
		t.Fatalf("want input error, got %+v", err)
	}
}
