package faults

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFault_HTTPStatus(t *testing.T) {
	tests := []struct {
		name  string
		fault *Fault
		want  int
	}{
		{"validation", Validationf("bad input"), http.StatusBadRequest},
		{"not found", NotFoundf("missing"), http.StatusNotFound},
		{"gateway", Gateway("upstream failed", errors.New("boom")), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fault.HTTPStatus())
		})
	}
}

func TestFault_Error(t *testing.T) {
	f := Validationf("invalid vibe %q", "sarcastic")
	assert.Equal(t, `validation: invalid vibe "sarcastic"`, f.Error())

	wrapped := Gateway("call failed", errors.New("timeout"))
	assert.Equal(t, "gateway: call failed: timeout", wrapped.Error())
}

func TestFault_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	f := Gateway("call failed", cause)

	assert.ErrorIs(t, f, cause)
	assert.Nil(t, Validationf("bad").Unwrap())
}

func TestAs(t *testing.T) {
	f, ok := As(NotFoundf("missing"))
	require.True(t, ok)
	assert.Equal(t, KindNotFound, f.Kind)

	wrapped := fmt.Errorf("handler: %w", Validationf("bad input"))
	f, ok = As(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindValidation, f.Kind)
	assert.Equal(t, "bad input", f.Message)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
	_, ok = As(nil)
	assert.False(t, ok)
}
