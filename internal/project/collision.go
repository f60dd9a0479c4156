package project

import (
	"fmt"
	"path"

	"github.com/secforge/secforge/pkg/models"
)

// CollisionPolicy decides what happens when two emitted files share a path.
type CollisionPolicy int

const (
	// CollisionKeep keeps every entry and records the duplicates in the report.
	// Exports write the last entry for a path.
	CollisionKeep CollisionPolicy = iota

	// CollisionWarn behaves like CollisionKeep and also logs each duplicate path.
	CollisionWarn

	// CollisionReject fails generation with ErrPathCollision.
	CollisionReject
)

// String returns the flag spelling of the policy.
func (p CollisionPolicy) String() string {
	switch p {
	case CollisionKeep:
		return "keep"
	case CollisionWarn:
		return "warn"
	case CollisionReject:
		return "reject"
	}
	return fmt.Sprintf("CollisionPolicy(%d)", int(p))
}

// ParseCollisionPolicy maps a flag value to a policy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "", "keep":
		return CollisionKeep, nil
	case "warn":
		return CollisionWarn, nil
	case "reject":
		return CollisionReject, nil
	}
	return CollisionKeep, fmt.Errorf("unknown collision policy %q (want keep, warn or reject)", s)
}

// findCollisions returns every path emitted more than once, ordered by first
// appearance. Paths are compared after path.Clean, so "a/./b" collides with "a/b".
func findCollisions(files []models.File) []models.PathCollision {
	counts := make(map[string]int, len(files))
	var order []string
	for _, f := range files {
		p := path.Clean(f.Path)
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}

	var collisions []models.PathCollision
	for _, p := range order {
		if n := counts[p]; n > 1 {
			collisions = append(collisions, models.PathCollision{Path: p, Count: n})
		}
	}
	return collisions
}
