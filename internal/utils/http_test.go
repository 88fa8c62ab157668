package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type rejection struct {
		Error string `json:"error"`
		Key   string `json:"key,omitempty"`
	}

	tests := []struct {
		name       string
		data       any
		status     int
		wantBody   string
		wantStatus int
	}{
		{
			name:       "map",
			data:       map[string]string{"key": "value"},
			status:     http.StatusOK,
			wantBody:   `{"key":"value"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "struct with omitted field",
			data:       rejection{Error: "key-missing"},
			status:     http.StatusBadRequest,
			wantBody:   `{"error":"key-missing"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "nil",
			data:       nil,
			status:     http.StatusOK,
			wantBody:   `null`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "json number kept verbatim",
			data:       map[string]any{"n": json.Number("1.0")},
			status:     http.StatusOK,
			wantBody:   `{"n":1.0}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "slice",
			data:       []int{1, 2, 3},
			status:     http.StatusCreated,
			wantBody:   `[1,2,3]`,
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
