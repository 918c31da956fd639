package webform_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/webform"
)

func newTestService(t *testing.T) *webform.Service {
	t.Helper()
	signup := formkit.NewSchema("signup").
		Field("email", formkit.Named("IsRequired"), formkit.Named("Email")).
		Field("age", formkit.Named("Nullable"), formkit.Named("IsNumber"), formkit.Named("Between", 18, 130))
	return webform.New(webform.WithSchema(signup))
}

func postJSON(t *testing.T, h http.Handler, path, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest("POST", path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		r.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) formkit.Result {
	t.Helper()
	var res formkit.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestValidateEndpoint(t *testing.T) {
	t.Parallel()

	h := newTestService(t).Router()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()

		w := postJSON(t, h, "/forms/signup/validate", `{"email":"a@example.com","age":30}`)
		require.Equal(t, http.StatusOK, w.Code)

		res := decodeResult(t, w)
		assert.True(t, res.Success)
		assert.Equal(t, "a@example.com", res.Data["email"])
	})

	t.Run("failing payload returns 422 with field errors", func(t *testing.T) {
		t.Parallel()

		w := postJSON(t, h, "/forms/signup/validate", `{"email":"not-an-email","age":12}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		res := decodeResult(t, w)
		assert.False(t, res.Success)
		assert.Equal(t, []string{"email", "age"}, res.FailedFields())
		assert.Nil(t, res.Data)
	})

	t.Run("unknown form", func(t *testing.T) {
		t.Parallel()

		w := postJSON(t, h, "/forms/nope/validate", `{}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		w := postJSON(t, h, "/forms/signup/validate", `{"email":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unsupported content type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/forms/signup/validate", strings.NewReader("<xml/>"))
		r.Header.Set("Content-Type", "text/xml")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("form encoded payload", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/forms/signup/validate", strings.NewReader("email=a%40example.com"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeResult(t, w).Success)
	})

	t.Run("localizes messages from accept-language", func(t *testing.T) {
		t.Parallel()

		w := postJSON(t, h, "/forms/signup/validate", `{"email":"","age":30}`, "Accept-Language", "uk-UA,uk;q=0.9")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		res := decodeResult(t, w)
		require.Len(t, res.Errors, 1)
		assert.NotEqual(t, "field is required", res.Errors[0].Message)
	})
}

func TestValidateFieldEndpoint(t *testing.T) {
	t.Parallel()

	h := newTestService(t).Router()

	t.Run("passing value", func(t *testing.T) {
		t.Parallel()

		w := postJSON(t, h, "/forms/signup/fields/email/validate", `{"email":"a@example.com"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeResult(t, w).Success)
	})

	t.Run("failing value reports the real field name", func(t *testing.T) {
		t.Parallel()

		w := postJSON(t, h, "/forms/signup/fields/email/validate", `{"email":"nope"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		res := decodeResult(t, w)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "email", res.Errors[0].Field)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		w := postJSON(t, h, "/forms/signup/fields/nope/validate", `{}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("absent value fails required", func(t *testing.T) {
		t.Parallel()

		w := postJSON(t, h, "/forms/signup/fields/email/validate", `{}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		res := decodeResult(t, w)
		assert.Equal(t, []string{"email"}, res.FailedFields())
	})
}

func TestDiscoveryEndpoints(t *testing.T) {
	t.Parallel()

	h := newTestService(t).Router()

	t.Run("healthz", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/healthz", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("lists forms", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/forms", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Forms []string `json:"forms"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"signup"}, body.Forms)
	})

	t.Run("describes a form", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/forms/signup", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Form   string `json:"form"`
			Fields []struct {
				Name  string `json:"name"`
				Rules []struct {
					Name   string `json:"name"`
					Params []any  `json:"params"`
				} `json:"rules"`
			} `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "signup", body.Form)
		require.Len(t, body.Fields, 2)
		assert.Equal(t, "email", body.Fields[0].Name)
		assert.Equal(t, "Between", body.Fields[1].Rules[2].Name)
	})

	t.Run("describe unknown form", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/forms/nope", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
