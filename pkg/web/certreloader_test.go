package web

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matryer/is"
)

func generateTestCert(t *testing.T, certPath, keyPath, cn string) {
	t.Helper()
	is := is.New(t)

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	is.NoErr(err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Minute),
		NotAfter:     time.Now().Add(time.Hour),
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	is.NoErr(err)

	keyDer, err := x509.MarshalECPrivateKey(key)
	is.NoErr(err)

	is.NoErr(os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	is.NoErr(os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDer}), 0o600))
}

func commonName(t *testing.T, cr *CertReloader) string {
	t.Helper()
	is := is.New(t)
	cert, err := cr.GetCertificateFunc()(nil)
	is.NoErr(err)
	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	is.NoErr(err)
	return leaf.Subject.CommonName
}

func TestCertReloader(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	generateTestCert(t, certPath, keyPath, "cert-v1")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cr, err := NewCertReloader(ctx, certPath, keyPath, log.New(io.Discard))
	is.NoErr(err)
	is.Equal(commonName(t, cr), "cert-v1")
	is.True(cr.TLSConfig().GetCertificate != nil)

	generateTestCert(t, certPath, keyPath, "cert-v2")
	is.NoErr(cr.Reload())
	is.Equal(commonName(t, cr), "cert-v2")

	// A broken key pair keeps the served certificate.
	is.NoErr(os.WriteFile(keyPath, []byte("garbage"), 0o600))
	is.True(cr.Reload() != nil)
	is.Equal(commonName(t, cr), "cert-v2")
}

func TestCertReloaderMissingFiles(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	_, err := NewCertReloader(context.Background(), filepath.Join(dir, "cert.pem"), filepath.Join(dir, "key.pem"), log.New(io.Discard))
	is.True(err != nil)
}
