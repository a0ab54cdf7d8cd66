package urlutil

import (
	"net/url"
	"path"
	"strings"
)

// trackingPrefixes lists query keys that only carry campaign attribution.
// Matching is a case-insensitive prefix test, so "utm_" covers every utm_* key.
var trackingPrefixes = []string{
	"utm_",
	"fbclid",
}

var staticExtensions = map[string]struct{}{
	".css":   {},
	".gif":   {},
	".ico":   {},
	".jpeg":  {},
	".jpg":   {},
	".js":    {},
	".mp3":   {},
	".mp4":   {},
	".pdf":   {},
	".png":   {},
	".svg":   {},
	".ttf":   {},
	".webp":  {},
	".woff":  {},
	".woff2": {},
	".zip":   {},
}

// Canonicalize drops tracking query parameters from raw and re-encodes the
// remaining ones in their original order. Scheme, host, path and fragment are
// left untouched. Input that does not parse is split by hand at the first
// "#" and "?" and only its query is rewritten.
func Canonicalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return canonicalizeUnparsed(raw)
	}
	u.RawQuery = canonicalQuery(u.RawQuery)
	u.ForceQuery = false
	return u.String()
}

func canonicalizeUnparsed(raw string) string {
	rest, fragment, hasFragment := strings.Cut(raw, "#")
	base, query, hasQuery := strings.Cut(rest, "?")
	if !hasQuery {
		return raw
	}
	out := base
	if q := canonicalQuery(query); q != "" {
		out += "?" + q
	}
	if hasFragment {
		out += "#" + fragment
	}
	return out
}

// IsTrackingParam reports whether key is a tracking-only query parameter.
func IsTrackingParam(key string) bool {
	lk := strings.ToLower(key)
	for _, prefix := range trackingPrefixes {
		if strings.HasPrefix(lk, prefix) {
			return true
		}
	}
	return false
}

func canonicalQuery(raw string) string {
	if raw == "" {
		return ""
	}
	parts := make([]string, 0, strings.Count(raw, "&")+1)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(pair, "=")
		key, kerr := url.QueryUnescape(rawKey)
		val, verr := url.QueryUnescape(rawVal)
		if kerr != nil || verr != nil {
			// Undecodable pairs are kept verbatim unless the raw key is a tracker.
			if !IsTrackingParam(rawKey) {
				parts = append(parts, pair)
			}
			continue
		}
		if IsTrackingParam(key) {
			continue
		}
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(val))
	}
	return strings.Join(parts, "&")
}

// StripQuery returns raw without its query string and fragment.
func StripQuery(raw string) string {
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		return raw[:i]
	}
	return raw
}

// ResolveLink resolves href against base. Non-navigational links
// (mailto:, tel:, javascript:) resolve to "".
func ResolveLink(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	lower := strings.ToLower(href)
	if href == "" ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "javascript:") {
		return ""
	}
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base != nil {
		u = base.ResolveReference(u)
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	return u.String()
}

// SameHost compares base's host with the host of rawURL, ignoring case and
// a leading "www.".
func SameHost(base *url.URL, rawURL string) bool {
	if base == nil {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return false
	}
	return normalizeHost(base.Hostname()) == normalizeHost(u.Hostname())
}

// IsCrawlable reports whether raw is an absolute http(s) URL that does not
// point at a static asset.
func IsCrawlable(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return !isStaticAssetPath(u.Path)
}

// RobotsURL returns the robots.txt location for the site rooted at base.
func RobotsURL(base string) string {
	return strings.TrimRight(base, "/") + "/robots.txt"
}

func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

func isStaticAssetPath(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	if ext == "" {
		return false
	}
	_, ok := staticExtensions[ext]
	return ok
}
