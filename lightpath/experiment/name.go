package experiment

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "angled", "bent", "blazing", "bright", "brilliant", "burnished",
		"clear", "coherent", "crimson", "crystal", "dappled", "dim", "faint",
		"flickering", "focused", "gilded", "glancing", "gleaming", "glowing",
		"golden", "hazy", "hidden", "iridescent", "lucid", "luminous", "lunar",
		"mirrored", "misty", "opal", "pale", "pearly", "polished", "prismatic",
		"radiant", "scattered", "shimmering", "silver", "slanted", "solar",
		"sparkling", "split", "stray", "sunlit", "twilight", "vivid", "wandering",
	}

	nouns = []string{
		"aurora", "beacon", "beam", "candle", "comet", "corona", "dawn", "dusk",
		"ember", "facet", "flare", "flash", "glare", "gleam", "glimmer", "glint",
		"halo", "horizon", "lantern", "lens", "lighthouse", "meteor", "moon",
		"nebula", "photon", "prism", "pulsar", "quasar", "rainbow", "ray",
		"reflection", "shadow", "shard", "sparkle", "spectrum", "star",
		"sunbeam", "sunrise", "sunset", "torch", "twinkle", "vista", "window",
	}
)

// GenerateRunName creates a memorable identifier in the format "adjective-noun"
func GenerateRunName() string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return adj + "-" + noun
}

// GenerateRunID appends a UTC timestamp to a memorable name so IDs sort by time
func GenerateRunID(now time.Time) string {
	return GenerateRunName() + "-" + now.UTC().Format("20060102-150405")
}
