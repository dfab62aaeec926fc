package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "card not found", err: ErrCardNotFound, wantStatus: http.StatusNotFound, wantCode: "CARD_NOT_FOUND"},
		{name: "wrapped card not found", err: fmt.Errorf("card detail: %w", ErrCardNotFound), wantStatus: http.StatusNotFound, wantCode: "CARD_NOT_FOUND"},
		{name: "invalid sort order", err: ErrInvalidSortOrder, wantStatus: http.StatusBadRequest, wantCode: "INVALID_SORT_ORDER"},
		{name: "invalid zoom", err: fmt.Errorf("geo points: %w", ErrInvalidZoom), wantStatus: http.StatusBadRequest, wantCode: "INVALID_ZOOM"},
		{name: "invalid focus", err: ErrInvalidFocus, wantStatus: http.StatusBadRequest, wantCode: "INVALID_FOCUS"},
		{name: "anything else", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.ToErrorResponse().Code)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalMessage(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dsn user:secret@tcp"))
	assert.Equal(t, "internal server error", httpErr.Error())
}
