package canonical

import (
	"net/url"
	"strings"
)

// Comparison outcomes reported by Compare.
const (
	ReasonMatch            = "URLs match"
	ReasonDifferentDomains = "Different domains"
	ReasonDifferentPaths   = "Different paths"
)

// NormalizePath strips trailing slashes and then one trailing DefaultPathSuffix.
func NormalizePath(path string) string {
	return defaultCanonicalizer.NormalizePath(path)
}

// NormalizePath strips trailing slashes and then one trailing configured suffix.
func (c *Canonicalizer) NormalizePath(path string) string {
	path = strings.TrimRight(path, "/")
	if c.pathSuffix != "" && strings.HasSuffix(path, c.pathSuffix) {
		path = strings.TrimSuffix(path, c.pathSuffix)
	}
	return path
}

// Compare reports whether two resolved URLs denote the same resource using
// the default path suffix.
func Compare(urlA, urlB string) (bool, string) {
	return defaultCanonicalizer.Compare(urlA, urlB)
}

// Compare reports whether urlA and urlB have the same host and the same
// normalized path (case-insensitive). Unparseable input never matches.
func (c *Canonicalizer) Compare(urlA, urlB string) (bool, string) {
	a, errA := url.Parse(urlA)
	b, errB := url.Parse(urlB)
	if errA != nil || errB != nil {
		return false, ReasonDifferentDomains
	}

	if Netloc(a) != Netloc(b) {
		return false, ReasonDifferentDomains
	}

	pathA := c.NormalizePath(a.EscapedPath())
	pathB := c.NormalizePath(b.EscapedPath())
	if !strings.EqualFold(pathA, pathB) {
		return false, ReasonDifferentPaths
	}

	return true, ReasonMatch
}

// Netloc returns the network location of u as written: userinfo, host and port.
func Netloc(u *url.URL) string {
	if u.User != nil {
		return u.User.String() + "@" + u.Host
	}
	return u.Host
}

// Host returns the network location of rawURL, or "" when it cannot be parsed.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return Netloc(u)
}
