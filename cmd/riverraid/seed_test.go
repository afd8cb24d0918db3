package main

import (
	"testing"
)

func TestCourseSeedIsStable(t *testing.T) {
	a := courseSeed("amazon")
	if a != courseSeed("amazon") {
		t.Fatal("same course name gave different seeds")
	}
	if a == courseSeed("nile") {
		t.Error("different course names gave the same seed")
	}
	if a <= 0 {
		t.Errorf("courseSeed() = %d, want positive", a)
	}
}

func TestRunSeed(t *testing.T) {
	defer func(c string, s int64) { flagCourse, flagSeed = c, s }(flagCourse, flagSeed)

	tests := []struct {
		name   string
		course string
		seed   int64
		want   int64
		fixed  bool
	}{
		{"random", "", 0, 0, false},
		{"explicit seed", "", 42, 42, true},
		{"course wins", "amazon", 42, courseSeed("amazon"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagCourse, flagSeed = tt.course, tt.seed
			got, fixed := runSeed()
			if got != tt.want || fixed != tt.fixed {
				t.Errorf("runSeed() = (%d, %v), want (%d, %v)", got, fixed, tt.want, tt.fixed)
			}
		})
	}
}
