// Package system discovers the operating system's resolver configuration,
// used when a query plan names no nameserver of its own.
package system

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// resolvConfPath is where POSIX systems keep the resolver list.
const resolvConfPath = "/etc/resolv.conf"

// DefaultNameservers returns the system resolver addresses.
func DefaultNameservers() ([]string, error) {
	return ReadResolvConf(resolvConfPath)
}

// ReadResolvConf parses the nameserver lines of a resolv.conf-format file.
// Comments and unrelated directives are skipped; the order of entries is
// preserved, so the first-listed resolver is tried first.
func ReadResolvConf(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading resolver configuration: %w", err)
	}
	defer f.Close()

	var servers []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "nameserver" {
			servers = append(servers, fields[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading resolver configuration: %w", err)
	}
	if len(servers) == 0 {
		return nil, fmt.Errorf("no nameservers found in %s", path)
	}
	return servers, nil
}
