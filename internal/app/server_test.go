package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewServer tests server construction.
func TestNewServer(t *testing.T) {
	handler := http.NewServeMux()
	server := NewServer(handler, "5000")

	require.NotNil(t, server.httpServer)
	assert.Equal(t, ":5000", server.httpServer.Addr)
	assert.Equal(t, handler, server.httpServer.Handler)
}

// TestServer_Shutdown tests shutdown of a server that never started.
func TestServer_Shutdown(t *testing.T) {
	server := NewServer(http.NewServeMux(), "0")
	assert.NoError(t, server.Shutdown())
}
