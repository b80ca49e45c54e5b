package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("R3 = 200", From("R%d = %d", 3, 200))
	assert.Equal("plain", From("plain"))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	n, err := Fprintf(out, "Enter a value for R%d: ", 7)
	assert.NoError(err)
	assert.Equal("Enter a value for R7: ", out.String())
	assert.Equal(out.Len(), n)
}
