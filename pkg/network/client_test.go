package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClientFactory_NewHTTPClient(t *testing.T) {
	factory := NewClientFactory("")

	client := factory.NewHTTPClient(5 * time.Second)
	require.NotNil(t, client)
	require.Equal(t, 5*time.Second, client.Timeout)
	require.Nil(t, client.Transport)
}

func TestClientFactory_NewHTTPClient_WithProxy(t *testing.T) {
	factory := NewClientFactory("http://127.0.0.1:8118")

	client := factory.NewHTTPClient(5 * time.Second)
	require.NotNil(t, client)
	require.NotNil(t, client.Transport)
}

func TestClientFactory_NewClientFactoryForTest(t *testing.T) {
	expected := &http.Client{}
	factory := NewClientFactoryForTest(expected)

	client := factory.NewHTTPClient(5 * time.Second)
	require.Equal(t, expected, client)
}

func TestClientFactory_InjectedClientReachesServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	factory := NewClientFactoryForTest(server.Client())
	client := factory.NewHTTPClient(time.Second)

	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExtractHost(t *testing.T) {
	require.Equal(t, "example.com", ExtractHost("https://example.com/path?q=1"))
	require.Equal(t, "news.example.com:8080", ExtractHost("http://news.example.com:8080/"))
	require.Equal(t, "not a url", ExtractHost("not a url"))
}
