package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultTimeout bounds a single probe when no timeout is configured.
	DefaultTimeout = 10 * time.Second
	// DefaultConcurrency is the worker bound used by CheckAll.
	DefaultConcurrency = 4

	maxRedirects = 10
	userAgent    = "healthcheck/1.0"
)

// Options configures a Prober. The zero value gets sensible defaults.
type Options struct {
	// Timeout bounds the whole request, including the independent
	// certificate inspection for https targets.
	Timeout time.Duration
	// FollowRedirects controls whether 3xx responses are chased. When
	// false the first response is reported as-is.
	FollowRedirects bool
	// Concurrency bounds the worker pool used by CheckAll.
	Concurrency int
	// Logger receives debug output for each probe. Nil disables logging.
	Logger *zap.Logger
}

// Prober performs health probes against HTTP(S) endpoints. It owns a single
// reusable HTTP client so probes of the same host can share connections;
// reuse is an optimization only and never changes what a probe reports.
type Prober struct {
	opts   Options
	client *http.Client
	log    *zap.Logger

	// rootCAs overrides the system trust store during certificate
	// verification. Tests use it to trust locally generated certs.
	rootCAs *x509.CertPool
}

// New creates a Prober from opts.
func New(opts Options) *Prober {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// The fetch transport skips certificate verification: whether the
	// endpoint serves content and whether its certificate is trustworthy
	// are answered separately, the latter by inspectCertificate. A site
	// with a bad cert that still returns 200 is reported as healthy with
	// ssl_valid=false rather than as unreachable.
	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: true},
			MaxIdleConnsPerHost: 4,
		},
		CheckRedirect: redirectPolicy(opts.FollowRedirects),
	}

	return &Prober{
		opts:   opts,
		client: client,
		log:    log,
	}
}

func redirectPolicy(follow bool) func(*http.Request, []*http.Request) error {
	if !follow {
		return func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return errTooManyRedirects
		}
		return nil
	}
}

// Close closes the prober's idle connections.
func (p *Prober) Close() {
	p.client.CloseIdleConnections()
}

// ValidateURL reports whether raw is an absolute http or https URL. It is
// the same gate Check applies before touching the network.
func ValidateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q (want http or https)", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", raw)
	}
	return u, nil
}

// Check probes a single URL and always returns a Result: every failure mode
// is captured in the result's error field rather than surfaced to the
// caller. Malformed URLs fail fast without any network activity.
func (p *Prober) Check(ctx context.Context, rawURL string) Result {
	res := Result{
		URL:       rawURL,
		Timestamp: time.Now().UTC(),
		FinalURL:  rawURL,
	}

	u, err := ValidateURL(rawURL)
	if err != nil {
		res.setError(fmt.Sprintf("Invalid URL: %v", err))
		p.log.Debug("probe rejected", zap.String("url", rawURL), zap.Error(err))
		return res
	}

	reqCtx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, u.String(), nil)
	if err != nil {
		res.setError(fmt.Sprintf("Invalid URL: %v", err))
		return res
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := p.client.Do(req)

	tlsFailed := false
	if err != nil {
		kind := classify(err)
		tlsFailed = kind == failTLS
		res.setError(describeFailure(kind, err, p.opts.Timeout))
	} else {
		elapsed := time.Since(start).Seconds()
		res.ResponseTime = &elapsed

		code := resp.StatusCode
		res.StatusCode = &code
		res.StatusHealthy = healthyStatus(code)
		res.FinalURL = resp.Request.URL.String()

		// Drain before closing so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	if u.Scheme == "https" {
		res.SSLChecked = true
		if tlsFailed {
			// The fetch already failed at the TLS layer; a second
			// handshake against the same endpoint adds nothing.
			valid := false
			res.SSLValid = &valid
		} else {
			p.inspectCertificate(u, &res)
		}
	}

	p.log.Debug("probe complete",
		zap.String("url", rawURL),
		zap.Bool("healthy", res.StatusHealthy),
		zap.Boolp("ssl_valid", res.SSLValid),
		zap.Stringp("error", res.Error),
	)
	return res
}
