package probe

import (
	"crypto/tls"
	"crypto/x509"
	"math"
	"net"
	"net/url"
	"time"
)

// inspectCertificate opens a raw TLS connection to the target host and
// judges the presented certificate chain: validity against the trust store
// and hostname, plus expiry and days until expiry.
//
// The handshake itself skips verification so the leaf is available even when
// it would not validate; an expired or self-signed certificate still yields
// an expiry date and a (negative) day count. Validation then happens
// explicitly against the chain's intermediates.
//
// A connection-level failure here merges into the result's error field
// without overwriting a transport failure already recorded, since the HTTP
// fetch and the certificate inspection can fail independently. A plain
// validation failure is not an error: it is the answer, ssl_valid=false.
func (p *Prober) inspectCertificate(u *url.URL, res *Result) {
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "443"
	}

	valid := false

	dialer := &net.Dialer{Timeout: p.opts.Timeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", net.JoinHostPort(host, port), &tls.Config{
		ServerName:         host,
		InsecureSkipVerify: true,
	})
	if err != nil {
		res.SSLValid = &valid
		res.setError("SSL Error: " + err.Error())
		return
	}
	defer conn.Close()

	certs := conn.ConnectionState().PeerCertificates
	if len(certs) == 0 {
		res.SSLValid = &valid
		res.setError("SSL Error: server presented no certificate")
		return
	}

	leaf := certs[0]
	now := time.Now().UTC()
	expiry := ExpiryTime{leaf.NotAfter.UTC()}
	days := int(math.Floor(expiry.Sub(now).Hours() / 24))
	res.SSLExpiry = &expiry
	res.SSLDaysUntilExpiry = &days

	intermediates := x509.NewCertPool()
	for _, c := range certs[1:] {
		intermediates.AddCert(c)
	}
	_, verifyErr := leaf.Verify(x509.VerifyOptions{
		DNSName:       host,
		Roots:         p.rootCAs, // nil means system roots
		Intermediates: intermediates,
		CurrentTime:   now,
	})
	valid = verifyErr == nil
	res.SSLValid = &valid
}
