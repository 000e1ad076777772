package strategy

import (
	"fmt"
	"strings"
)

// Strategy is an ordered collection of option legs. Legs are evaluated and
// rendered in insertion order.
type Strategy struct {
	Name string
	legs []Leg
}

// New creates an empty strategy with the given name.
func New(name string) *Strategy {
	return &Strategy{Name: name}
}

// AddLeg appends a leg to the strategy. Any combination of legs is accepted;
// no economic-sanity validation is performed.
func (s *Strategy) AddLeg(leg Leg) {
	s.legs = append(s.legs, leg)
}

// Legs returns the legs in insertion order.
func (s *Strategy) Legs() []Leg {
	return s.legs
}

// NetPremium returns the signed total premium: positive is a net debit paid,
// negative a net credit received.
func (s *Strategy) NetPremium() float64 {
	var total float64
	for _, leg := range s.legs {
		total += leg.Direction() * leg.Premium * float64(leg.Quantity)
	}
	return total
}

// String renders the strategy for human-facing reports.
func (s *Strategy) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Strategy: %s\n", s.Name)
	for i, leg := range s.legs {
		fmt.Fprintf(&sb, "  Leg %d: %s %dx %s @ %.2f (premium: %.2f)\n",
			i+1,
			strings.ToUpper(string(leg.Position)),
			leg.Quantity,
			strings.ToUpper(string(leg.OptionType)),
			leg.Strike,
			leg.Premium,
		)
	}
	fmt.Fprintf(&sb, "  Net Premium: %.2f", s.NetPremium())
	return sb.String()
}
