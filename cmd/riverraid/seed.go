package main

import (
	"github.com/cespare/xxhash/v2"
)

// courseSeed turns a course name into a river seed. The same name always
// flies the same river.
func courseSeed(name string) int64 {
	seed := int64(xxhash.Sum64String(name) >> 1)
	if seed == 0 {
		// Zero asks for a time-based seed.
		seed = 1
	}
	return seed
}

// runSeed resolves the seed flags. fixed reports whether restarts should
// replay the same river.
func runSeed() (seed int64, fixed bool) {
	if flagCourse != "" {
		return courseSeed(flagCourse), true
	}
	return flagSeed, flagSeed != 0
}
