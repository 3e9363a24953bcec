// Package probe generates candidate specification URLs for a domain and
// validates whether a candidate actually serves a Swagger/OpenAPI document.
package probe

import (
	"fmt"
	"strings"
)

// basicPaths are the well-known specification paths probed on every scan.
// Order matters: confirmed endpoints are reported in generation order.
var basicPaths = []string{ //nolint: gochecknoglobals
	"/swagger.json",
	"/swagger/v1/swagger.json",
	"/swagger/v2/swagger.json",
	"/swagger/v3/swagger.json",
	"/openapi.json",
	"/openapi/v1.json",
	"/openapi/v2.json",
	"/api-docs",
	"/v2/api-docs",
	"/v3/api-docs",
	"/swagger-ui.html",
}

// deepExtraPaths are additionally probed in deep mode.
var deepExtraPaths = []string{ //nolint: gochecknoglobals
	"/docs",
	"/swagger-resources",
	"/swagger-resources/configuration/ui",
	"/swagger-resources/configuration/security",
	"/api/swagger.json",
	"/api/openapi.json",
	"/spec",
	"/spec.json",
}

// protoPort is one protocol/port combination to probe. A zero port means the
// scheme default and is omitted from the URL.
type protoPort struct {
	proto string
	port  int
}

// basicProtoPorts are always probed; deepExtraProtoPorts are added in deep
// mode. The deep (http, 80) entry normalizes to the same base URL as the
// default http entry and collapses during dedup.
var (
	basicProtoPorts = []protoPort{ //nolint: gochecknoglobals
		{proto: "https"},
		{proto: "http"},
		{proto: "http", port: 8080},
	}
	deepExtraProtoPorts = []protoPort{ //nolint: gochecknoglobals
		{proto: "http", port: 80},
		{proto: "http", port: 8000},
		{proto: "http", port: 9000},
	}
)

// baseURL builds the scheme://host[:port] prefix for a combination, dropping
// the port when it is unset or the scheme's implicit default.
func (pp protoPort) baseURL(domain string) string {
	base := fmt.Sprintf("%s://%s", pp.proto, domain)
	defaultPort := (pp.proto == "http" && pp.port == 80) || (pp.proto == "https" && pp.port == 443)
	if pp.port != 0 && !defaultPort {
		base = fmt.Sprintf("%s:%d", base, pp.port)
	}

	return strings.TrimRight(base, "/")
}

// Candidates returns the deduplicated, ordered list of candidate URLs for a
// domain. It is a pure function: same inputs always produce the same output.
// Deep mode extends both the endpoint path set and the protocol/port set.
//
// Deduplication runs on the final constructed URL string, preserving first
// occurrence, so combinations that normalize to the same base collapse.
func Candidates(domain string, deep bool) []string {
	paths := basicPaths
	protoPorts := basicProtoPorts
	if deep {
		paths = append(append([]string{}, basicPaths...), deepExtraPaths...)
		protoPorts = append(append([]protoPort{}, basicProtoPorts...), deepExtraProtoPorts...)
	}

	seen := make(map[string]struct{}, len(protoPorts)*len(paths))
	urls := make([]string, 0, len(protoPorts)*len(paths))
	for _, pp := range protoPorts {
		base := pp.baseURL(domain)
		for _, p := range paths {
			u := base + p
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
		}
	}

	return urls
}
