package constraintsolve

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeIDReversible(t *testing.T) {
	r := require.New(t)

	for _, raw := range []string{"n1", "hex:3,-2", "A::n1", ""} {
		enc := encodeID(raw)
		if raw == "" {
			r.Equal("empty", enc)

			continue
		}
		decoded, err := base64.RawURLEncoding.DecodeString(enc)
		r.NoError(err)
		r.Equal(raw, string(decoded))
	}
}

func TestVarNamesDistinct(t *testing.T) {
	r := require.New(t)

	r.NotEqual(colorVarName("n1", 0), colorVarName("n1", 1))
	r.NotEqual(colorVarName("n1", 0), colorVarName("n2", 0))
	r.NotEqual(colorVarName("n1", 0), unusedVarName("n1"))
	r.NotEqual(distVarName("A", "n1", 0), distVarName("B", "n1", 0))
	r.NotEqual(distVarName("A", "n1", 0), distVarName("A", "n1", 1))
}
