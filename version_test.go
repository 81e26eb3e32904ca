package remit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/remit"
)

func TestVersion(t *testing.T) {
	remit.GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", remit.Version())

	remit.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0-dev 12345678", remit.Version())
	remit.GitCommit = ""
}
