package core

import (
	"errors"
	"fmt"
)

// Default tuning values, in minutes and km/h.
const (
	DefaultWaitPenalty = 30.0
	DefaultSpeedKmh    = 40.0
)

// Validation errors returned by Instance.Validate.
var (
	ErrNoNodes        = errors.New("network must have at least one node")
	ErrNodeOutOfRange = errors.New("node outside 1..NumNodes")
	ErrBadDistance    = errors.New("edge distance must be positive")
	ErrBadWaitPenalty = errors.New("wait penalty must be positive")
	ErrBadSpeed       = errors.New("speed must be positive")
	ErrNilNetwork     = errors.New("instance has no network")
)

// Instance is a complete routing problem: the static network, one trip per
// taxi (order defines taxi indices), and the tuning parameters.
type Instance struct {
	Network     *Network
	Trips       []Trip
	WaitPenalty float64 // minutes added per contention retry
	SpeedKmh    float64
}

// NewInstance creates an instance with default wait penalty and speed.
func NewInstance(network *Network, trips []Trip) *Instance {
	return &Instance{
		Network:     network,
		Trips:       trips,
		WaitPenalty: DefaultWaitPenalty,
		SpeedKmh:    DefaultSpeedKmh,
	}
}

// MinutesPerKm converts the cruise speed into a per-kilometer duration.
func (inst *Instance) MinutesPerKm() float64 {
	return 60.0 / inst.SpeedKmh
}

// Validate checks caller-contract violations. Infeasibility (unreachable
// destinations, disconnected networks) is not an error; it surfaces later
// as a nil solution.
func (inst *Instance) Validate() error {
	if inst.Network == nil {
		return ErrNilNetwork
	}
	if inst.Network.NumNodes < 1 {
		return ErrNoNodes
	}
	if inst.WaitPenalty <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadWaitPenalty, inst.WaitPenalty)
	}
	if inst.SpeedKmh <= 0 {
		return fmt.Errorf("%w: got %v", ErrBadSpeed, inst.SpeedKmh)
	}
	// Walk the adjacency map itself rather than Edges(): Edges() assumes a
	// well-formed network and would hide arcs hanging off an out-of-range
	// endpoint.
	for a, arcs := range inst.Network.adj {
		if !inst.Network.HasNode(a) {
			return fmt.Errorf("%w: edge endpoint %d", ErrNodeOutOfRange, a)
		}
		for _, arc := range arcs {
			if !inst.Network.HasNode(arc.To) {
				return fmt.Errorf("%w: edge %d-%d", ErrNodeOutOfRange, a, arc.To)
			}
			if arc.Km <= 0 {
				return fmt.Errorf("%w: edge %d-%d length %v", ErrBadDistance, a, arc.To, arc.Km)
			}
		}
	}
	for i, trip := range inst.Trips {
		if !inst.Network.HasNode(trip.Origin) || !inst.Network.HasNode(trip.Dest) {
			return fmt.Errorf("%w: trip %d (%d -> %d)", ErrNodeOutOfRange, i, trip.Origin, trip.Dest)
		}
	}
	return nil
}
