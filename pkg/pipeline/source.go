package pipeline

// VideoSource is the contract a synthetic video source exposes to the host
// pipeline, which calls these operations in a fixed order: Fixate then
// SetCaps during negotiation, DecideAllocation once caps are accepted, then
// Fill and Stamp for every pulled buffer. Negotiation and allocation are
// never invoked concurrently with a pull in flight.
type VideoSource interface {
	DecideAllocation(q *AllocationQuery) error
	Fill(b *Buffer) error
	Fixate(c *Caps) *Caps
	SetCaps(c *Caps) error
	Stamp(b *Buffer) error
}
