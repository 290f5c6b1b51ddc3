// File: utils/rules_test.go
package utils

import (
	"errors"
	"testing"
)

func TestStandardRulesAreValid(t *testing.T) {
	if err := StandardRules().Validate(); err != nil {
		t.Fatalf("StandardRules().Validate() = %v, want nil", err)
	}
}

func TestRulesLayout(t *testing.T) {
	rules := StandardRules()

	arena := rules.Arena()
	if arena != NewRect(17, 17, 566, 366) {
		t.Errorf("Arena() = %v", arena)
	}
	if rules.HalfWidth() != 283 {
		t.Errorf("HalfWidth() = %v, want 283", rules.HalfWidth())
	}
	if left := rules.LeftHalf(); left != NewRect(17, 17, 283, 366) {
		t.Errorf("LeftHalf() = %v", left)
	}
	if right := rules.RightHalf(); right != NewRect(300, 17, 283, 366) {
		t.Errorf("RightHalf() = %v", right)
	}
	if right := rules.RightHalf(); right.Right() != arena.Right() {
		t.Errorf("right half ends at %v, arena at %v", right.Right(), arena.Right())
	}
}

func TestRulesValidateRejectsBrokenLayouts(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"Zero margin", func(r *Rules) { r.BorderMargin.X = 0 }},
		{"Paddle taller than arena", func(r *Rules) { r.PaddleSize.Y = 400 }},
		{"Paddle wider than half", func(r *Rules) { r.PaddleSize.X = 300 }},
		{"Zero radius", func(r *Rules) { r.BallRadius = 0 }},
		{"No winning score", func(r *Rules) { r.WinningScore = 0 }},
		{"Negative paddle speed", func(r *Rules) { r.PaddleSpeed = -1 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rules := StandardRules()
			tc.mutate(&rules)
			err := rules.Validate()
			if !errors.Is(err, ErrInvalidRules) {
				t.Errorf("Validate() = %v, want ErrInvalidRules", err)
			}
		})
	}
}
