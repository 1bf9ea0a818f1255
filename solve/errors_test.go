package solve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindStrings(t *testing.T) {
	r := require.New(t)

	r.Equal("InputParse", KindInputParse.String())
	r.Equal("TerminalValidation", KindTerminalValidation.String())
	r.Equal("GraphInvariant", KindGraphInvariant.String())
	r.Equal("Unsat", KindUnsat.String())
	r.Equal("Unknown", KindUnknown.String())
	r.Equal("Timeout", KindTimeout.String())
	r.Equal("Internal", KindInternal.String())
}

func TestErrorWrapsCause(t *testing.T) {
	r := require.New(t)

	cause := errors.New("underlying")
	err := newError(KindUnsat, "dfs backend", cause)

	r.ErrorIs(err, cause)
	r.Contains(err.Error(), "Unsat")
	r.Contains(err.Error(), "dfs backend")
	r.Contains(err.Error(), "underlying")
}

func TestErrorWithoutCause(t *testing.T) {
	r := require.New(t)

	err := newError(KindInternal, "walk failed", nil)
	r.Nil(errors.Unwrap(err))
	r.Contains(err.Error(), "Internal")
}
