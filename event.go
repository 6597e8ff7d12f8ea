package kdtree

import "sort"

// EventKind tags whether an Event marks a primitive's extent starting or
// ending at a given plane position on some axis.
type EventKind int

const (
	// End sorts before Start at equal position: a primitive that exactly
	// touches a plane is treated as ending before the next one begins.
	// This tie-break is load-bearing — it keeps the left-count function
	// monotonic as the plane sweeps.
	End EventKind = iota
	Start
)

// Event is a candidate split-plane position derived from one primitive's
// extent on one axis. Events are derived data: produced at the start of a
// build call and discarded once that node's split is chosen.
type Event struct {
	Axis      Axis
	Position  float64
	Kind      EventKind
	PrimIndex int // index into the node's primRef slice, not the caller's original slice
}

// buildEventLists emits Start/End events for every primitive in prims on
// every axis and returns them sorted by position ascending, End before
// Start at equal position.
func buildEventLists(prims []primRef) [3][]Event {
	var lists [3][]Event
	for _, a := range axes {
		events := make([]Event, 0, 2*len(prims))
		for i, p := range prims {
			events = append(events,
				Event{Axis: a, Position: p.box.Min.Get(a), Kind: Start, PrimIndex: i},
				Event{Axis: a, Position: p.box.Max.Get(a), Kind: End, PrimIndex: i},
			)
		}
		sortEvents(events)
		lists[a] = events
	}
	return lists
}

func sortEvents(events []Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Position != events[j].Position {
			return events[i].Position < events[j].Position
		}
		return events[i].Kind < events[j].Kind
	})
}
