package httpclient

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Config struct {
	Timeout time.Duration `mapstructure:"timeout"`
	BaseURL string        `mapstructure:"base_url"`
}

// NewHTTPClient builds the client used for outbound provider calls. When BaseURL
// is set every request is sent to that scheme and host instead of the one the
// caller built, keeping path and query intact.
func NewHTTPClient(cfg Config) (*http.Client, error) {
	client := &http.Client{Timeout: cfg.Timeout}

	if cfg.BaseURL == "" {
		return client, nil
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", cfg.BaseURL)
	}

	client.Transport = &rewriteTransport{base: base, next: http.DefaultTransport}

	return client, nil
}

type rewriteTransport struct {
	base *url.URL
	next http.RoundTripper
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.base.Scheme
	out.URL.Host = t.base.Host
	out.URL.Path = singleJoin(t.base.Path, req.URL.Path)
	out.Host = t.base.Host

	return t.next.RoundTrip(out)
}

func singleJoin(prefix, path string) string {
	if prefix == "" || prefix == "/" {
		return path
	}

	switch {
	case prefix[len(prefix)-1] == '/' && len(path) > 0 && path[0] == '/':
		return prefix + path[1:]
	case prefix[len(prefix)-1] != '/' && (len(path) == 0 || path[0] != '/'):
		return prefix + "/" + path
	}

	return prefix + path
}
