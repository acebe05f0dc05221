package network

import (
	"net/http"
	"net/url"
	"time"

	"github.com/Noooste/azuretls-client"
)

// ClientFactory creates outbound HTTP clients with shared proxy configuration.
type ClientFactory struct {
	proxyURL       string
	testHTTPClient *http.Client // For testing only
}

// NewClientFactory creates a factory. proxyURL may be empty for direct access.
func NewClientFactory(proxyURL string) *ClientFactory {
	return &ClientFactory{proxyURL: proxyURL}
}

// NewClientFactoryForTest creates a factory that always returns the given
// http.Client. This is only for use in tests.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{testHTTPClient: client}
}

// NewHTTPClient creates a standard http.Client with the configured proxy.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}

	client := &http.Client{Timeout: timeout}
	if f.proxyURL != "" {
		if parsed, err := url.Parse(f.proxyURL); err == nil {
			client.Transport = &http.Transport{
				Proxy: http.ProxyURL(parsed),
			}
		}
	}
	return client
}

// NewAzureSession creates an azuretls.Session with a Chrome fingerprint.
// Search engines reject the default Go client fingerprint, so snippet
// fetching goes through this session instead.
func (f *ClientFactory) NewAzureSession(timeout time.Duration) *azuretls.Session {
	session := azuretls.NewSession()
	session.Browser = azuretls.Chrome
	session.SetTimeout(timeout)

	if f.proxyURL != "" {
		_ = session.SetProxy(f.proxyURL)
	}
	return session
}

// ExtractHost returns the host part of a raw URL, or the input if it does not parse.
func ExtractHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}
	return parsed.Host
}
