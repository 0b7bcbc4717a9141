// Package names provides naming helpers for devcontainer configurations:
// sanitizers for display and Docker runtime names, search-pattern
// normalization, and a deterministic name generator used for suggestions.
package names

import (
	"hash/fnv"
	"strings"
)

var adjectives = []string{
	"amber", "ancient", "bold", "brave", "bright", "calm", "clever",
	"cosmic", "crimson", "curious", "daring", "eager", "electric",
	"emerald", "fearless", "fierce", "gentle", "gilded", "golden",
	"happy", "hidden", "humble", "icy", "jolly", "keen", "lively",
	"lucky", "mellow", "mighty", "misty", "noble", "patient", "polished",
	"proud", "quiet", "rapid", "restless", "rustic", "scarlet", "serene",
	"sharp", "silent", "silver", "sleek", "solar", "stable", "steady",
	"stormy", "sturdy", "sunny", "swift", "tidy", "tranquil", "vivid",
	"wandering", "warm", "wild", "wise", "witty", "young",
}

var nouns = []string{
	"anchor", "badger", "beacon", "canyon", "cedar", "comet", "compass",
	"condor", "coral", "crane", "delta", "dolphin", "ember", "falcon",
	"fjord", "forge", "fox", "galaxy", "glacier", "grove", "harbor",
	"hawk", "heron", "island", "lagoon", "lantern", "lynx", "maple",
	"meadow", "meteor", "nebula", "orbit", "osprey", "otter", "owl",
	"panda", "peak", "pine", "prairie", "raven", "reef", "ridge",
	"river", "salmon", "sparrow", "spruce", "summit", "tiger", "trail",
	"tundra", "valley", "walrus", "willow", "wolf", "wren", "zenith",
}

// Generate produces a deterministic adjective-noun name from the given
// parts. The same parts always yield the same name, so suggested container
// names stay stable across runs for the same project.
func Generate(parts ...string) string {
	seed := strings.Join(parts, "/")

	h := fnv.New64a()
	h.Write([]byte("adjective:" + seed))
	adjective := adjectives[h.Sum64()%uint64(len(adjectives))]

	h = fnv.New64a()
	h.Write([]byte("noun:" + seed))
	noun := nouns[h.Sum64()%uint64(len(nouns))]

	return adjective + "-" + noun
}
