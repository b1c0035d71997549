package util

import (
	"fmt"
	"net"
	"strconv"
)

// FormatAddr returns "host:port".
func FormatAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// ValidateBindHost checks that host is either empty (all interfaces)
// or a parseable IP address.  The listener binds to addresses, not
// names, so hostnames are rejected up front with a clear message.
func ValidateBindHost(host string) error {
	if host == "" {
		return nil
	}
	if net.ParseIP(host) == nil {
		return fmt.Errorf("cannot parse %q as an IP address", host)
	}
	return nil
}

// FindFreePort returns an available TCP port on 127.0.0.1.
func FindFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("finding free port: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
