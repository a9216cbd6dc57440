package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_Lifecycle(t *testing.T) {
	router := newTestRouter(t)

	// No profile yet.
	w := doRequest(t, router, http.MethodGet, "/api/v1/profile", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/profile/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["logged_in"])

	// Create.
	w = doRequest(t, router, http.MethodPost, "/api/v1/profile", `{"username":"MetaSlayer99"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	profile := decodeBody(t, w)["profile"].(map[string]interface{})
	assert.Equal(t, "MetaSlayer99", profile["username"])
	assert.NotEmpty(t, profile["id"])

	// Duplicate create conflicts.
	w = doRequest(t, router, http.MethodPost, "/api/v1/profile", `{"username":"SomeoneElse"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Patch bio, leave username alone.
	w = doRequest(t, router, http.MethodPatch, "/api/v1/profile", `{"bio":"Tank main"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/v1/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody(t, w)["profile"].(map[string]interface{})
	assert.Equal(t, "Tank main", got["bio"])
	assert.Equal(t, "MetaSlayer99", got["username"])

	w = doRequest(t, router, http.MethodGet, "/api/v1/profile/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["logged_in"])
}

func TestProfileHandler_CreateValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/profile", `{"username":"ab"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/profile", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/api/v1/profile", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
