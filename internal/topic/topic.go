package topic

// Package topic picks the algorithm topic of the day. The choice is
// deterministic per calendar date so every launch on the same day shows the
// same topic.

import (
	"hash/fnv"
	"time"
)

// Topic is a daily algorithm study topic
type Topic struct {
	Name  string
	Blurb string // short markdown blurb for the topic card
}

// topics is the fixed rotation; order matters for date hashing stability
var topics = []Topic{
	{
		Name:  "BFS",
		Blurb: "Breadth-first search explores a graph level by level from a source node. Use a **queue** and a visited set; first arrival is the shortest path in unweighted graphs.",
	},
	{
		Name:  "DFS",
		Blurb: "Depth-first search dives along one branch before backtracking. Recursive or with an explicit **stack**; the backbone of cycle detection and topological sort.",
	},
	{
		Name:  "Binary Search",
		Blurb: "Binary search halves a **sorted** range each step. Watch the invariant on the half-open interval and the midpoint overflow idiom `lo + (hi-lo)/2`.",
	},
	{
		Name:  "Sliding Window",
		Blurb: "A sliding window maintains an aggregate over a moving subarray. Grow the right edge, shrink the left while the constraint is violated; each element enters and leaves once.",
	},
	{
		Name:  "Two Pointers",
		Blurb: "Two pointers walk a sequence from both ends or at different speeds. Classic for pair sums in sorted arrays, dedup in place, and cycle detection.",
	},
}

// DateLayout keys the daily selection
const DateLayout = "2006-01-02"

// ForDate returns the topic assigned to the given date
func ForDate(date time.Time) Topic {
	key := date.Format(DateLayout)
	hasher := fnv.New32a()
	hasher.Write([]byte(key))
	return topics[int(hasher.Sum32())%len(topics)]
}

// Today returns the topic for the current date
func Today() Topic {
	return ForDate(time.Now())
}

// All returns the full topic rotation
func All() []Topic {
	out := make([]Topic, len(topics))
	copy(out, topics)
	return out
}
