package utils

import (
	"net/http"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// The client keeps cookies between requests, so a server session survives
// from an upload to the following download. Redirects are not followed:
// the response carrying the redirect is returned to the caller as is.
//
// Each call returns an independent client instance with its own
// configuration, cookie jar, and connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New()

	// cookiejar.New never fails with nil options
	jar, _ := cookiejar.New(nil)
	client.SetCookieJar(jar)

	client.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))

	return &HTTPClient{Client: client}
}
