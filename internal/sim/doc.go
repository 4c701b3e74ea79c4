// Package sim runs the fixed-step arcade simulation.
//
// A [Context] owns every body and advances them through five phases per
// tick, strictly in this order:
//
//	c.TickPositionChanges()
//	c.TickAccelerationChanges()
//	c.TickContactChanges()
//	c.TickFrictionChanges()
//	c.TickVelocityChanges()
//
// [Context.Tick] runs all five. Every body finishes a phase before any body
// starts the next one.
//
// # Thread Safety
//
// A Context is NOT thread-safe and must be driven from one goroutine.
// Renderers read [Snapshot] values taken between ticks. [Ensemble] runs
// several independent contexts in parallel.
package sim
