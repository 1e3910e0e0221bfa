package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := fmt.Errorf("saving: %w", NewStoreError(OpWrite, "failed to save document", cause))

	var se *StoreError
	require.True(t, errors.As(err, &se))
	require.True(t, se.IsWrite())
	require.ErrorIs(t, err, cause)
	require.Contains(t, se.Error(), "permission denied")
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError("section not found")
	require.Equal(t, "section not found", err.Error())

	var nf *NotFoundError
	require.True(t, errors.As(error(err), &nf))
}
