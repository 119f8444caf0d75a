package core

// Trip is one taxi's fixed origin/destination pair.
type Trip struct {
	Origin, Dest NodeID
}

// WaitEvent records an induced delay before entering an edge.
type WaitEvent struct {
	Node   NodeID  // where the taxi was held
	From   float64 // minutes
	To     float64 // minutes
	Reason string
}

// ReasonCapacity marks waits forced by edge-capacity contention.
const ReasonCapacity = "capacity"

// TaxiState is one taxi's progress along a search branch.
// States are never mutated in place across branches; expansion produces a
// fresh copy via Clone/JointState.WithTaxi.
type TaxiState struct {
	Pos         NodeID
	AvailableAt float64 // minutes at which the taxi may move again
	Done        bool    // sticky: true once Pos == Dest
	Dest        NodeID
	Route       []NodeID // visited nodes, append-only
	Waits       []WaitEvent
}

// NewTaxiState builds the initial state for a trip. A trip whose origin
// equals its destination starts done with completion time zero.
func NewTaxiState(trip Trip) TaxiState {
	return TaxiState{
		Pos:         trip.Origin,
		AvailableAt: 0,
		Done:        trip.Origin == trip.Dest,
		Dest:        trip.Dest,
		Route:       []NodeID{trip.Origin},
	}
}

// Clone returns a deep copy whose Route and Waits slices share no backing
// array with the receiver, so a branch may append without aliasing siblings.
func (t TaxiState) Clone() TaxiState {
	c := t
	c.Route = make([]NodeID, len(t.Route), len(t.Route)+1)
	copy(c.Route, t.Route)
	c.Waits = make([]WaitEvent, len(t.Waits), len(t.Waits)+1)
	copy(c.Waits, t.Waits)
	return c
}

// JointState holds one TaxiState per trip, in trip input order.
type JointState []TaxiState

// NewJointState builds the root joint state for a trip list.
func NewJointState(trips []Trip) JointState {
	js := make(JointState, len(trips))
	for i, trip := range trips {
		js[i] = NewTaxiState(trip)
	}
	return js
}

// AllDone reports whether every taxi has reached its destination.
func (js JointState) AllDone() bool {
	for i := range js {
		if !js[i].Done {
			return false
		}
	}
	return true
}

// WithTaxi returns a copy of js with taxi idx replaced. The slice of states
// is copied; untouched states are shared, which is safe because they are
// never mutated in place.
func (js JointState) WithTaxi(idx int, state TaxiState) JointState {
	next := make(JointState, len(js))
	copy(next, js)
	next[idx] = state
	return next
}
