// ABOUTME: Lift enum shared by program tables and one-rep-max lookups.
// ABOUTME: Parses display names and short aliases case-insensitively.
package models

import (
	"fmt"
	"strings"
)

// Lift names a main barbell movement. The value doubles as the OneRM key.
type Lift string

const (
	LiftSnatch     Lift = "Snatch"
	LiftCleanJerk  Lift = "Clean & Jerk"
	LiftDeadlift   Lift = "Deadlift"
	LiftBench      Lift = "Bench Press"
	LiftBackSquat  Lift = "Back Squat"
	LiftFrontSquat Lift = "Front Squat"
	LiftPushPress  Lift = "Push Press"
)

// AllLifts lists every lift in settings display order.
var AllLifts = []Lift{
	LiftSnatch, LiftCleanJerk, LiftDeadlift, LiftBench,
	LiftBackSquat, LiftFrontSquat, LiftPushPress,
}

var liftAliases = map[string]Lift{
	"snatch":       LiftSnatch,
	"sn":           LiftSnatch,
	"clean & jerk": LiftCleanJerk,
	"clean-jerk":   LiftCleanJerk,
	"cj":           LiftCleanJerk,
	"c&j":          LiftCleanJerk,
	"deadlift":     LiftDeadlift,
	"dl":           LiftDeadlift,
	"bench press":  LiftBench,
	"bench":        LiftBench,
	"back squat":   LiftBackSquat,
	"back-squat":   LiftBackSquat,
	"bs":           LiftBackSquat,
	"front squat":  LiftFrontSquat,
	"front-squat":  LiftFrontSquat,
	"fs":           LiftFrontSquat,
	"push press":   LiftPushPress,
	"push-press":   LiftPushPress,
	"pp":           LiftPushPress,
}

// ParseLift resolves a display name or alias to a Lift.
func ParseLift(s string) (Lift, error) {
	if l, ok := liftAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return "", fmt.Errorf("unknown lift: %q", s)
}

// IsValid reports whether l is one of the known lifts.
func (l Lift) IsValid() bool {
	for _, known := range AllLifts {
		if l == known {
			return true
		}
	}
	return false
}
