package docs

import (
	"fmt"
	"net/url"
)

// Configure points the API description at the public base URL.
// Only host and scheme are taken from it; paths stay under /api.
func Configure(baseURL string) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base url %q: missing host", baseURL)
	}

	SwaggerInfo.Host = u.Host
	if u.Scheme != "" {
		SwaggerInfo.Schemes = []string{u.Scheme}
	}
	return nil
}

// JSON renders the registered API description
func JSON() string {
	return SwaggerInfo.ReadDoc()
}
