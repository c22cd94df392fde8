package web

import (
	"context"
	"crypto/tls"
	"sync"

	"github.com/charmbracelet/log"
)

// CertReloader serves the TLS certificate of the HTTP server and swaps it
// for the one on disk when asked to reload.
type CertReloader struct {
	certMu   sync.RWMutex
	cert     *tls.Certificate
	certPath string
	keyPath  string
	logger   *log.Logger
}

// NewCertReloader loads the key pair and, where the platform supports it,
// reloads it on SIGHUP until ctx is done.
func NewCertReloader(ctx context.Context, certPath, keyPath string, logger *log.Logger) (*CertReloader, error) {
	reloader := &CertReloader{
		certPath: certPath,
		keyPath:  keyPath,
		logger:   logger,
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	reloader.cert = &cert
	reloader.watch(ctx)

	return reloader, nil
}

// Reload replaces the served certificate. On failure the old certificate is
// kept.
func (cr *CertReloader) Reload() error {
	cr.logger.Info("attempting to reload TLS certificate and key", "cert", cr.certPath, "key", cr.keyPath)
	newCert, err := tls.LoadX509KeyPair(cr.certPath, cr.keyPath)
	if err != nil {
		cr.logger.Error("failed to reload TLS certificate, keeping old certificate", "err", err)
		return err //nolint:wrapcheck
	}

	cr.certMu.Lock()
	defer cr.certMu.Unlock()
	cr.cert = &newCert
	return nil
}

// GetCertificateFunc returns a function that can be used with tls.Config.GetCertificate.
func (cr *CertReloader) GetCertificateFunc() func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	return func(*tls.ClientHelloInfo) (*tls.Certificate, error) {
		cr.certMu.RLock()
		defer cr.certMu.RUnlock()
		return cr.cert, nil
	}
}

// TLSConfig returns a server TLS configuration backed by the reloader.
func (cr *CertReloader) TLSConfig() *tls.Config {
	return &tls.Config{
		MinVersion:     tls.VersionTLS12,
		GetCertificate: cr.GetCertificateFunc(),
	}
}
