// Package canonical normalizes resolved URLs and decides whether two of them
// point at the same resource.
//
// # Canonicalization
//
// Canonicalize removes marketing and analytics query parameters (the UTM family,
// click IDs, referral markers, mailing-list IDs and similar noise) and strips
// trailing slashes from the rebuilt URL. It never fails: input that cannot be
// parsed is returned unchanged. The operation is idempotent.
//
// Retained query parameters keep their original encoding and order, so a URL
// that carries no tracking parameters comes back byte-for-byte (minus trailing
// slashes).
//
// # Comparison
//
// Compare looks at the host and the path only:
//
//  1. Hosts (including userinfo and port) must be identical, case-sensitive.
//  2. Paths are normalized with NormalizePath (trailing slashes and one trailing
//     "/cl/s" shortener artifact removed) and compared case-insensitively.
//
// Query strings and fragments are not compared. Tracking
// noise is already removed by the canonicalizer.
//
// # Usage
//
//	c := canonical.New(canonical.DefaultTrackingParams(), "/cl/s")
//	clean := c.Canonicalize("https://example.com/page?utm_source=x")
//	ok, reason := c.Compare(clean, "https://example.com/Page")
package canonical
