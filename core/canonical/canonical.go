package canonical

import (
	"net/url"
	"strings"
)

// DefaultPathSuffix is the shortener redirect-tracking artifact removed from paths.
const DefaultPathSuffix = "/cl/s"

// Canonicalizer strips tracking parameters and compares canonical URLs.
// The zero value is not usable; call New.
type Canonicalizer struct {
	tracking   ParamSet
	pathSuffix string
}

// New creates a Canonicalizer. A nil set falls back to DefaultTrackingParams.
// An empty pathSuffix disables suffix stripping in NormalizePath.
func New(tracking ParamSet, pathSuffix string) *Canonicalizer {
	if tracking == nil {
		tracking = DefaultTrackingParams()
	}
	return &Canonicalizer{
		tracking:   tracking,
		pathSuffix: pathSuffix,
	}
}

// defaultCanonicalizer backs the package-level helpers.
var defaultCanonicalizer = New(DefaultTrackingParams(), DefaultPathSuffix)

// Canonicalize normalizes rawURL with the built-in tracking set.
func Canonicalize(rawURL string) string {
	return defaultCanonicalizer.Canonicalize(rawURL)
}

// Canonicalize removes tracking query parameters from rawURL and strips
// trailing slashes. Unparseable input is returned unchanged.
//
// Trimming a slash can expose a tracked key at the end of the query
// ("?x=1&utm_source/"), so passes repeat until the string stops changing.
// Each pass only removes characters, which bounds the loop.
func (c *Canonicalizer) Canonicalize(rawURL string) string {
	for {
		next := c.canonicalizeOnce(rawURL)
		if next == rawURL {
			return next
		}
		rawURL = next
	}
}

// canonicalizeOnce filters the query once and trims trailing slashes once.
func (c *Canonicalizer) canonicalizeOnce(rawURL string) string {
	if rawURL == "" {
		return rawURL
	}
	if _, err := url.Parse(rawURL); err != nil {
		return rawURL
	}

	// Split by hand so the retained parts keep their exact encoding.
	rest, fragment, hasFragment := strings.Cut(rawURL, "#")
	base, rawQuery, hasQuery := strings.Cut(rest, "?")

	var b strings.Builder
	b.Grow(len(rawURL))
	b.WriteString(base)

	if hasQuery {
		filtered := c.filterQuery(rawQuery)
		switch {
		case filtered != "":
			b.WriteByte('?')
			b.WriteString(filtered)
		case rawQuery == "":
			// A bare "?" carries nothing to filter; keep it as given.
			b.WriteByte('?')
		}
	}
	if hasFragment {
		b.WriteByte('#')
		b.WriteString(fragment)
	}

	return strings.TrimRight(b.String(), "/")
}

// filterQuery drops tracked keys from a raw query string, preserving the
// order and encoding of everything else. Empty segments are discarded.
func (c *Canonicalizer) filterQuery(rawQuery string) string {
	if rawQuery == "" {
		return ""
	}

	kept := make([]string, 0, strings.Count(rawQuery, "&")+1)
	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}
		key, _, _ := strings.Cut(segment, "=")
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		if c.tracking.Has(key) {
			continue
		}
		kept = append(kept, segment)
	}
	return strings.Join(kept, "&")
}

// Tracking returns the parameter set in use.
func (c *Canonicalizer) Tracking() ParamSet {
	return c.tracking
}
