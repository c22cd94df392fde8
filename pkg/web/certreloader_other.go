//go:build !unix

package web

import "context"

// watch is a no-op on platforms without SIGHUP. Use Reload instead.
func (cr *CertReloader) watch(context.Context) {}
