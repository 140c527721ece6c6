package errors_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjsky311/GHS-label-quick-search/pkg/errors"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.CodeInternal, "unexpected failure"},
		{"malformed cas", errors.ErrCodeCASMalformed, "CAS number is malformed"},
		{"upstream", errors.ErrCodeDataSourceUnavailable, "pubchem unreachable"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)

			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail)
			assert.Nil(t, ae.Cause)
		})
	}
}

func TestAppError_ErrorFormat(t *testing.T) {
	ae := errors.New(errors.ErrCodeCASMalformed, "CAS number is malformed")
	assert.Equal(t, "[CAS_002] CAS number is malformed", ae.Error())

	withDetail := ae.WithDetail("input=abc")
	assert.Equal(t, "[CAS_002] CAS number is malformed: input=abc", withDetail.Error())
	assert.Empty(t, ae.Detail, "WithDetail must not mutate the receiver")
}

func TestWithDetail_NilReceiver(t *testing.T) {
	var ae *errors.AppError
	assert.Nil(t, ae.WithDetail("x"))
	assert.Nil(t, ae.WithCause(fmt.Errorf("x")))
}

func TestWrap(t *testing.T) {
	t.Run("nil error yields nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.CodeInternal, "ignored"))
	})

	t.Run("cause is reachable", func(t *testing.T) {
		root := stderrors.New("connection refused")
		ae := errors.Wrap(root, errors.ErrCodeDataSourceUnavailable, "pubchem request failed")
		assert.True(t, stderrors.Is(ae, root))
		assert.Equal(t, errors.ErrCodeDataSourceUnavailable, ae.Code)
	})

	t.Run("unknown code keeps the inner code", func(t *testing.T) {
		inner := errors.New(errors.ErrCodeDataSourceParseError, "bad json")
		ae := errors.Wrap(inner, errors.CodeUnknown, "classification fetch")
		assert.Equal(t, errors.ErrCodeDataSourceParseError, ae.Code)
	})
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, errors.ErrCodeCanceled, errors.FromContext(context.Canceled).Code)
	assert.Equal(t, errors.ErrCodeTimeout, errors.FromContext(fmt.Errorf("wrapped: %w", context.DeadlineExceeded)).Code)
	assert.Nil(t, errors.FromContext(stderrors.New("other")))
}

func TestIsCode_TraversesChain(t *testing.T) {
	inner := errors.New(errors.ErrCodeChemicalNotFound, "missing")
	outer := fmt.Errorf("search: %w", inner)
	assert.True(t, errors.IsCode(outer, errors.ErrCodeChemicalNotFound))
	assert.False(t, errors.IsCode(outer, errors.ErrCodeCASMalformed))
}

func TestIsNotFound(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"generic", errors.NotFound("not found"), true},
		{"chemical", errors.New(errors.ErrCodeChemicalNotFound, "x"), true},
		{"unresolved name", errors.New(errors.ErrCodeNameUnresolved, "x"), true},
		{"wrapped", fmt.Errorf("outer: %w", errors.New(errors.ErrCodeDataSourceNoRecord, "x")), true},
		{"internal", errors.Internal("boom"), false},
		{"plain", stderrors.New("plain"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errors.IsNotFound(tc.err))
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errors.IsValidation(errors.InvalidParam("bad")))
	assert.True(t, errors.IsValidation(errors.New(errors.ErrCodeBatchTooLarge, "x")))
	assert.False(t, errors.IsValidation(errors.Internal("x")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeRateLimit, errors.GetCode(errors.RateLimit("slow down")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, errors.Unavailable("down").HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, errors.New(errors.ErrCodeCASEmpty, "empty").HTTPStatus())
}
