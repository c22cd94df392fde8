//go:build unix

package web

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func (cr *CertReloader) watch(ctx context.Context) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP)
	go func() {
		defer signal.Stop(sigChan)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigChan:
				_ = cr.Reload()
			}
		}
	}()
}
