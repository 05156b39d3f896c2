package app

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// LoadTLSConfig reads a PEM key pair. A non-empty chainFile holds intermediate
// certificates that are served after the leaf.
func LoadTLSConfig(certFile, keyFile, chainFile string) (*tls.Config, error) {
	certPEM, err := os.ReadFile(certFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate: %w", err)
	}
	keyPEM, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}
	if chainFile != "" {
		chainPEM, err := os.ReadFile(chainFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read certificate chain: %w", err)
		}
		certPEM = append(append(certPEM, '\n'), chainPEM...)
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to load key pair: %w", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// RunFiberTLS serves app over TLS on addr until ctx is done.
func RunFiberTLS(ctx context.Context, group *errgroup.Group, app *fiber.App, addr string, tlsConfig *tls.Config) {
	group.Go(func() error {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", addr, err)
		}
		if err := app.Listener(tls.NewListener(ln, tlsConfig)); err != nil && !errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("failed to serve TLS: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
		return nil
	})
}
