// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decorators

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-payload-guard/fields"
	"github.com/MKhiriev/go-payload-guard/internal/mock"
	"github.com/MKhiriev/go-payload-guard/internal/utils"
	"github.com/MKhiriev/go-payload-guard/models"
	"github.com/MKhiriev/go-payload-guard/validators"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// okHandler answers 200 with the raw body it received.
var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
})

func newRouter(mw func(http.Handler) http.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.With(mw).Post("/", okHandler)
	return router
}

func post(t *testing.T, h http.Handler, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func postJSON(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	return post(t, h, "application/json", body)
}

func errorResponse(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

// ── AbortCodes ────────────────────────────────────────────────────────────────

func TestNew_DefaultCodes(t *testing.T) {
	d := New(AbortCodes{})
	assert.Equal(t, AbortCodes{
		InvalidContentType: 406,
		KeyMissing:         400,
		InvalidType:        400,
		ValidationFailure:  400,
		ValidationError:    400,
	}, d.Codes())
}

func TestNew_KeepsConfiguredCodes(t *testing.T) {
	d := New(AbortCodes{KeyMissing: 422, ValidationError: 409})

	codes := d.Codes()
	assert.Equal(t, 422, codes.KeyMissing)
	assert.Equal(t, 409, codes.ValidationError)
	assert.Equal(t, 406, codes.InvalidContentType)
	assert.Equal(t, 400, codes.InvalidType)
	assert.Equal(t, 400, codes.ValidationFailure)
}

// ── JSONRequired ──────────────────────────────────────────────────────────────

func TestJSONRequired(t *testing.T) {
	h := newRouter(New(AbortCodes{}).JSONRequired)

	tests := []struct {
		name        string
		contentType string
		want        int
	}{
		{"application/json", "application/json", http.StatusOK},
		{"with charset", "application/json; charset=utf-8", http.StatusOK},
		{"structured suffix", "application/vnd.api+json", http.StatusOK},
		{"plain text", "text/plain", http.StatusNotAcceptable},
		{"form", "application/x-www-form-urlencoded", http.StatusNotAcceptable},
		{"no content type", "", http.StatusNotAcceptable},
		{"malformed", "application/", http.StatusNotAcceptable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := post(t, h, tt.contentType, `{}`)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

// TestJSONRequired_DoesNotParseBody verifies that JSONRequired only looks at
// the header, like a content-type gate.
func TestJSONRequired_DoesNotParseBody(t *testing.T) {
	h := newRouter(New(AbortCodes{}).JSONRequired)

	rr := postJSON(t, h, `not json`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "not json", rr.Body.String())
}

// ── ValidateWithFields ────────────────────────────────────────────────────────

func TestValidateWithFields(t *testing.T) {
	d := New(AbortCodes{ValidationFailure: http.StatusUnprocessableEntity})
	h := newRouter(d.ValidateWithFields(validators.Spec{
		validators.Field("a", fields.Int(fields.MinValue(0))),
		validators.Object("b",
			validators.Field("c", fields.Boolean(fields.Nullable())),
		),
		validators.Field("d", fields.String(fields.Optional(), fields.MaxLength(3))),
	}))

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantError string
		wantKey   string
	}{
		{"valid", `{"a": 5, "b": {"c": null}}`, http.StatusOK, "", ""},
		{"valid with optional", `{"a": 5, "b": {"c": true}, "d": "abc"}`, http.StatusOK, "", ""},
		{"key missing", `{"b": {"c": true}}`, http.StatusBadRequest, "key-missing", "a"},
		{"nested key missing", `{"a": 1, "b": {}}`, http.StatusBadRequest, "key-missing", "b.c"},
		{"invalid value", `{"a": -1, "b": {"c": true}}`, http.StatusUnprocessableEntity, "invalid-type-or-value", "a"},
		{"float for int", `{"a": 1.0, "b": {"c": true}}`, http.StatusUnprocessableEntity, "invalid-type-or-value", "a"},
		{"not an object", `{"a": 1, "b": "x"}`, http.StatusUnprocessableEntity, "invalid-type-or-value", "b"},
		{"optional too long", `{"a": 1, "b": {"c": false}, "d": "abcd"}`, http.StatusUnprocessableEntity, "invalid-type-or-value", "d"},
		{"root is a list", `[]`, http.StatusUnprocessableEntity, "invalid-type-or-value", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, h, tt.body)
			require.Equal(t, tt.wantCode, rr.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.body, rr.Body.String(), "handler must see the original body")
				return
			}

			resp := errorResponse(t, rr)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, tt.wantKey, resp.Key)
			assert.NotEmpty(t, resp.Message)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestValidateWithFields_ContentTypeAndSyntax(t *testing.T) {
	h := newRouter(New(AbortCodes{}).ValidateWithFields(validators.Spec{
		validators.Field("a", fields.String()),
	}))

	rr := post(t, h, "text/plain", `{"a": "x"}`)
	assert.Equal(t, http.StatusNotAcceptable, rr.Code)
	assert.Equal(t, "invalid-content-type", errorResponse(t, rr).Error)

	for _, body := range []string{``, `{"a":`, `{"a": "x"} {"b": 1}`} {
		rr = postJSON(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
		assert.Equal(t, "invalid-json", errorResponse(t, rr).Error)
	}
}

func TestValidateWithFields_EmptySpecOnlyChecksContentType(t *testing.T) {
	h := newRouter(New(AbortCodes{}).ValidateWithFields(validators.Spec{}))

	assert.Equal(t, http.StatusOK, postJSON(t, h, `anything`).Code)
	assert.Equal(t, http.StatusNotAcceptable, post(t, h, "text/plain", `{}`).Code)
}

func TestValidateWithFields_PanicsOnMalformedSpec(t *testing.T) {
	d := New(AbortCodes{})

	assert.Panics(t, func() {
		d.ValidateWithFields(validators.Spec{validators.Field("a", nil)})
	})
	assert.Panics(t, func() {
		d.ValidateWithFields(validators.Spec{
			validators.Field("a", fields.Int()),
			validators.Field("a", fields.String()),
		})
	})
}

// ── ValidateKeys / ValidateCommon ─────────────────────────────────────────────

func TestValidateKeys(t *testing.T) {
	d := New(AbortCodes{KeyMissing: http.StatusConflict})
	h := newRouter(d.ValidateKeys(
		validators.Key("a"),
		validators.Key("b"),
		validators.Key("c", validators.Key("d"), validators.Key("e")),
	))

	assert.Equal(t, http.StatusOK, postJSON(t, h, `{"a": 1, "b": 1, "c": {"d": 1, "e": 1}}`).Code)

	rr := postJSON(t, h, `{"a": 1, "b": 1, "c": {"d": 1}}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "c.e", errorResponse(t, rr).Key)

	rr = postJSON(t, h, `{"a": 1, "b": 1, "c": 5}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestValidateCommon(t *testing.T) {
	d := New(AbortCodes{InvalidType: http.StatusUnsupportedMediaType})
	h := newRouter(d.ValidateCommon(validators.Types{
		validators.TypeOf("a", fields.KindString),
		validators.TypeOf("b", fields.KindInt),
		validators.TypesOf("c", validators.TypeOf("d", fields.KindInt)),
	}))

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"a": "x", "b": 1, "c": {"d": 1}}`, http.StatusOK},
		{"missing", `{"a": "x", "c": {"d": 1}}`, http.StatusBadRequest},
		{"wrong type", `{"a": 1, "b": 1, "c": {"d": 1}}`, http.StatusUnsupportedMediaType},
		{"nested wrong type", `{"a": "x", "b": 1, "c": {"d": "1"}}`, http.StatusUnsupportedMediaType},
		{"nested not an object", `{"a": "x", "b": 1, "c": 1}`, http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postJSON(t, h, tt.body).Code)
		})
	}
}

func TestValidateCommon_PanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() {
		New(AbortCodes{}).ValidateCommon(validators.Types{validators.TypeOf("a", fields.Kind(0))})
	})
}

// ── ValidateWithSchema ────────────────────────────────────────────────────────

func TestValidateWithSchema(t *testing.T) {
	schema, err := validators.NewSchema([]byte(`
type: object
required: [name]
properties:
  name: {type: string}
  age: {type: integer, minimum: 0}
`))
	require.NoError(t, err)

	d := New(AbortCodes{ValidationError: http.StatusTeapot})
	h := newRouter(d.ValidateWithSchema(schema))

	assert.Equal(t, http.StatusOK, postJSON(t, h, `{"name": "x", "age": 3}`).Code)

	rr := postJSON(t, h, `{"name": "x", "age": -3}`)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "schema-violation", errorResponse(t, rr).Error)

	assert.Equal(t, http.StatusTeapot, postJSON(t, h, `{"age": 3}`).Code)
}

func TestValidateWithSchema_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { New(AbortCodes{}).ValidateWithSchema(nil) })
}

// ── With ──────────────────────────────────────────────────────────────────────

func TestWith_PassesDecodedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock.NewMockValidator(ctrl)
	v.EXPECT().
		Validate(map[string]any{"n": json.Number("1.5")}).
		Return(nil)

	h := newRouter(New(AbortCodes{}).With(v))
	assert.Equal(t, http.StatusOK, postJSON(t, h, `{"n": 1.5}`).Code)
}

func TestWith_UnexpectedErrorIs500(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(gomock.Any()).Return(errors.New("database is on fire"))

	h := newRouter(New(AbortCodes{}).With(v))
	rr := postJSON(t, h, `{}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := errorResponse(t, rr)
	assert.Equal(t, "unexpected", resp.Error)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Message)
}

func TestWith_NotCalledForWrongContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mock.NewMockValidator(ctrl)
	v.EXPECT().Validate(gomock.Any()).Times(0)

	h := newRouter(New(AbortCodes{}).With(v))
	assert.Equal(t, http.StatusNotAcceptable, post(t, h, "text/html", `{}`).Code)
}

// ── stacking and Body ─────────────────────────────────────────────────────────

// TestStackedDecorators_ReadBodyOnce verifies that decorators stacked on one
// route share the decoded body and the handler can still read it.
func TestStackedDecorators_ReadBodyOnce(t *testing.T) {
	d := New(AbortCodes{})

	var decoded any
	var raw string
	router := chi.NewRouter()
	router.
		With(
			d.JSONRequired,
			d.ValidateKeys(validators.Key("a")),
			d.ValidateWithFields(validators.Spec{validators.Field("a", fields.Int())}),
		).
		Post("/", func(w http.ResponseWriter, r *http.Request) {
			var ok bool
			decoded, ok = Body(r)
			require.True(t, ok)
			b, _ := io.ReadAll(r.Body)
			raw = string(b)
			w.WriteHeader(http.StatusNoContent)
		})

	rr := postJSON(t, router, `{"a": 7}`)
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, map[string]any{"a": json.Number("7")}, decoded)
	assert.Equal(t, `{"a": 7}`, raw)

	rr = postJSON(t, router, `{"a": "7"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestValidateKeys_BodyTooLarge(t *testing.T) {
	router := chi.NewRouter()
	router.Use(middleware.RequestSize(8))
	router.With(New(AbortCodes{}).ValidateKeys(validators.Key("a"))).Post("/", okHandler)

	rr := postJSON(t, router, `{"a": "0123456789"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, "body-too-large", errorResponse(t, rr).Error)

	assert.Equal(t, http.StatusOK, postJSON(t, router, `{"a": 1}`).Code)
}

func TestBody_WithoutDecorator(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	_, ok := Body(req)
	assert.False(t, ok)
}

func TestReject_CarriesTraceID(t *testing.T) {
	router := newRouter(New(AbortCodes{}).ValidateKeys(validators.Key("a")))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), utils.TraceIDCtxKey, "trace-42"))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	resp := errorResponse(t, rr)
	assert.Equal(t, "trace-42", resp.TraceID)
	assert.Equal(t, "a", resp.Key)

	// without a trace id the field is omitted
	rr = postJSON(t, router, `{}`)
	assert.NotContains(t, rr.Body.String(), "trace_id")
}
