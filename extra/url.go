package extra

import (
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/zoobzio/validino"
)

// URLOption configures URL.
type URLOption func(*urlConfig)

type urlConfig struct {
	schemes       []string
	defaultScheme string
	defaultHost   string
	checkExists   bool
	client        *http.Client
}

// WithSchemes sets the accepted schemes. The default is http and https.
// Include "" to accept scheme-less input and let WithDefaultScheme fill it.
func WithSchemes(schemes ...string) URLOption {
	return func(c *urlConfig) {
		c.schemes = schemes
	}
}

// WithDefaultScheme sets the scheme used when the input has none.
// The default is http.
func WithDefaultScheme(scheme string) URLOption {
	return func(c *urlConfig) {
		c.defaultScheme = scheme
	}
}

// WithDefaultHost sets the host used when the input has none.
func WithDefaultHost(host string) URLOption {
	return func(c *urlConfig) {
		c.defaultHost = host
	}
}

// CheckExists issues a HEAD request and accepts 2xx and 3xx responses.
// Only http and https may be accepted schemes when it is enabled.
func CheckExists() URLOption {
	return func(c *urlConfig) {
		c.checkExists = true
	}
}

// WithHTTPClient sets the client used by CheckExists.
func WithHTTPClient(client *http.Client) URLOption {
	return func(c *urlConfig) {
		c.client = client
	}
}

// URL parses a URL, checks its scheme, fills in the default scheme and host
// and returns the resulting URL string.
func URL(msg validino.Msg, opts ...URLOption) validino.Validator {
	cfg := urlConfig{
		schemes:       []string{"http", "https"},
		defaultScheme: "http",
		client: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var configErr error
	if cfg.checkExists {
		for _, s := range cfg.schemes {
			if s != "http" && s != "https" {
				configErr = &validino.ConfigError{
					Err:    validino.ErrUnsupportedCheck,
					Detail: s,
				}
				break
			}
		}
	}

	return validino.Func(func(value any, _ validino.Context) (any, error) {
		if configErr != nil {
			return nil, configErr
		}
		s, ok := value.(string)
		if !ok {
			return nil, fail(msg, "url.schema", "schema not allowed")
		}
		u, err := url.Parse(s)
		if err != nil || !slices.Contains(cfg.schemes, u.Scheme) {
			return nil, fail(msg, "url.schema", "schema not allowed")
		}
		if u.Scheme == "" && cfg.defaultScheme != "" {
			u.Scheme = cfg.defaultScheme
		}
		if u.Host == "" && cfg.defaultHost != "" {
			u.Host = cfg.defaultHost
		}
		out := u.String()

		if cfg.checkExists {
			if err := cfg.head(out, msg); err != nil {
				return nil, err
			}
		}
		return out, nil
	})
}

// head requires target to answer a HEAD request with a 2xx or 3xx status.
// The default client does not follow redirects.
func (cfg urlConfig) head(target string, msg validino.Msg) error {
	req, err := http.NewRequest(http.MethodHead, target, nil)
	if err != nil {
		return fail(msg, "url.http_error", "http error")
	}
	resp, err := cfg.client.Do(req)
	if err != nil {
		return fail(msg, "url.http_error", "http error")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return fail(msg, "url.not_exists", "url not OK")
	}
	return nil
}
