package logging

import (
	"log/slog"
	"net/textproto"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders carry credentials. Names are canonical MIME header keys.
var sensitiveHeaders = []string{
	"Authorization",
	"Proxy-Authorization",
	"Cookie",
	"Set-Cookie",
	"X-Api-Key",
}

// IsSensitiveHeader reports whether the header name carries credentials and
// must not be logged verbatim. Matching is case-insensitive.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, textproto.CanonicalMIMEHeaderKey(name))
}

// Attribute keys masked wherever they appear, including nested groups.
var (
	redactedKeys     = []string{"password", "secret", "token", "dsn", "url_file", "dsn_file"}
	redactedPrefixes = []string{"secret_", "api_key"}
)

// Values masked regardless of key, for secrets that slip into messages or
// free-form fields.
var redactedValues = []*regexp.Regexp{
	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline api_key=... and apikey: ...
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// Userinfo in connection URLs: postgres://user:pw@host, redis://:pw@host.
	regexp.MustCompile(`[a-z][a-z0-9+\-.]*://[^\s:/@]*:[^\s@/]+@`),
}

// newRedactAttr builds the masq ReplaceAttr used by every handler New creates.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for _, h := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(h), masq.WithFieldName(strings.ToLower(h)))
	}
	for _, k := range redactedKeys {
		opts = append(opts, masq.WithFieldName(k))
	}
	for _, p := range redactedPrefixes {
		opts = append(opts, masq.WithFieldPrefix(p))
	}
	for _, re := range redactedValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
