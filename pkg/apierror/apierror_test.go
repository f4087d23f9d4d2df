package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	require.Equal(t, "FORBIDDEN: nope", New("FORBIDDEN", "nope", "", http.StatusForbidden).Error())
	require.Equal(t, "BAD_REQUEST: bad (valor)", New("BAD_REQUEST", "bad", "valor", http.StatusBadRequest).Error())

	var nilErr *APIError
	require.Equal(t, "", nilErr.Error())
}

func TestBadRequestWrapsCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := BadRequest("invalid body", cause)

	require.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	require.Equal(t, "unexpected EOF", err.Details)
	require.ErrorIs(t, err, cause)

	var target *APIError
	require.True(t, errors.As(error(err), &target))
	require.Equal(t, "BAD_REQUEST", target.Code)
}
