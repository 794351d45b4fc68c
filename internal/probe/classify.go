package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"time"
)

// failureKind partitions transport failures for error reporting.
type failureKind int

const (
	failUnknown failureKind = iota
	failTimeout
	failConnection
	failTLS
	failRedirect
)

// errTooManyRedirects is returned by the redirect policy once the hop bound
// is exceeded. The http.Client wraps it in a *url.Error, so classify must
// unwrap with errors.Is.
var errTooManyRedirects = errors.New("exceeded maximum number of redirects")

func classify(err error) failureKind {
	if errors.Is(err, errTooManyRedirects) {
		return failRedirect
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return failTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return failTimeout
	}

	var (
		verifyErr *tls.CertificateVerificationError
		recordErr tls.RecordHeaderError
		hostErr   x509.HostnameError
		authErr   x509.UnknownAuthorityError
		certErr   x509.CertificateInvalidError
	)
	switch {
	case errors.As(err, &verifyErr),
		errors.As(err, &recordErr),
		errors.As(err, &hostErr),
		errors.As(err, &authErr),
		errors.As(err, &certErr):
		return failTLS
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return failConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return failConnection
	}
	return failUnknown
}

// describeFailure renders a transport failure as the human-readable message
// stored on the Result.
func describeFailure(kind failureKind, err error, timeout time.Duration) string {
	switch kind {
	case failTimeout:
		return fmt.Sprintf("Timeout Error: request took longer than %s", timeout)
	case failConnection:
		return fmt.Sprintf("Connection Error: %v", err)
	case failTLS:
		return fmt.Sprintf("SSL Error: %v", err)
	case failRedirect:
		return "Too Many Redirects: the request exceeded the maximum number of redirects"
	default:
		return fmt.Sprintf("Request Error: %v", err)
	}
}
