package canonical

import "strings"

// trackingParams is the built-in list of query keys that never identify a resource.
var trackingParams = []string{
	// UTM parameters
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
	// Click IDs
	"fbclid", "gclid", "twclid",
	// Referral markers
	"ref", "ref_src", "ref_url", "ref_map", "ref_type", "ref_id", "ref_content",
	"source", "campaign", "medium",
	// Marketing platforms
	"_ga", "_hsenc", "_hsmi", "mc_cid", "mc_eid", "ml_subscriber", "ml_subscriber_hash",
	"_ke", "hsCtaTracking", "_branch_match_id", "dm_i", "eh",
	// Generic noise
	"s", "t", "share", "action", "feature", "tracking", "tracked", "debug",
	"sa", "ved", "ei", "url", "src", "source_id", "sourceid", "hash",
}

// ParamSet is a case-insensitive set of query parameter names.
type ParamSet map[string]struct{}

// NewParamSet builds a set from the given names. Names are lowercased.
func NewParamSet(names ...string) ParamSet {
	set := make(ParamSet, len(names))
	set.Add(names...)
	return set
}

// DefaultTrackingParams returns a fresh copy of the built-in tracking parameter set.
func DefaultTrackingParams() ParamSet {
	return NewParamSet(trackingParams...)
}

// Add inserts names into the set. Blank names are ignored.
func (s ParamSet) Add(names ...string) {
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		s[name] = struct{}{}
	}
}

// Has reports whether name is tracked, ignoring case.
func (s ParamSet) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}
