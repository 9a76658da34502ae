package catalog

// Tier is the coarse popularity bucket derived from the follower count.
type Tier string

const (
	TierNano  Tier = "nano"
	TierMicro Tier = "micro"
	TierMid   Tier = "mid"
	TierMacro Tier = "macro"
	TierMega  Tier = "mega"
)

// Tier thresholds (inclusive lower bounds).
const (
	MegaThreshold  = 1_000_000
	MacroThreshold = 100_000
	MidThreshold   = 50_000
	MicroThreshold = 10_000
)

// Classify maps a follower/subscriber count to its tier bucket.
func Classify(followers int) Tier {
	switch {
	case followers >= MegaThreshold:
		return TierMega
	case followers >= MacroThreshold:
		return TierMacro
	case followers >= MidThreshold:
		return TierMid
	case followers >= MicroThreshold:
		return TierMicro
	default:
		return TierNano
	}
}
