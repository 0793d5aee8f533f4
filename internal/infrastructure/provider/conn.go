// Package provider holds the grpc plumbing shared by the version-specific
// trader clients.
package provider

import (
	"crypto/tls"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const defaultPort = "9945"

// Dial opens a grpc connection to the given provider endpoint. Endpoints
// with an https scheme, or an explicit :443 port, get transport security,
// anything else is dialed in cleartext. The port defaults to 9945 when the
// endpoint does not carry one.
func Dial(endpoint string) (*grpc.ClientConn, error) {
	addr, useTLS, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	creds := insecure.NewCredentials()
	if useTLS {
		creds = credentials.NewTLS(&tls.Config{})
	}
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", endpoint, err)
	}
	return conn, nil
}

func parseEndpoint(endpoint string) (string, bool, error) {
	withScheme := endpoint
	if !strings.Contains(withScheme, "://") {
		withScheme = "//" + withScheme
	}
	u, err := url.Parse(withScheme)
	if err != nil {
		return "", false, fmt.Errorf("invalid endpoint %s: %w", endpoint, err)
	}
	if len(u.Host) <= 0 {
		return "", false, fmt.Errorf("invalid endpoint %s: missing host", endpoint)
	}

	port := u.Port()
	if len(port) <= 0 {
		port = defaultPort
		if u.Scheme == "https" {
			port = "443"
		}
	}
	useTLS := u.Scheme == "https" || port == "443"
	return fmt.Sprintf("%s:%s", u.Hostname(), port), useTLS, nil
}
