package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthz(t *testing.T) {
	router, mockStore := newTestServer(t)

	mockStore.EXPECT().Ping().Return(nil)

	w := performRequest(router, "GET", "/healthz", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthzStoreDown(t *testing.T) {
	router, mockStore := newTestServer(t)

	mockStore.EXPECT().Ping().Return(assert.AnError)

	w := performRequest(router, "GET", "/healthz", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestShutdownBeforeRun(t *testing.T) {
	s := NewServer(nil, nil, 20000, 10)

	assert.NoError(t, s.Shutdown(context.Background()))
}
