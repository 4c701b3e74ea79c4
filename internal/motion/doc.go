// Package motion holds the kinematic state of a simulated body.
//
// A [Motion] owns a position (x, y, heading), a velocity, an acceleration,
// a bounded [Trail] of past positions and the contact events recorded during
// the current tick.
//
// Integration is semi-implicit Euler with a unit time step:
//
//	m.IntegratePosition() // position += velocity, maybe sample trail
//	m.IntegrateVelocity() // velocity += acceleration
//
// Acceleration is written in two steps each tick: [Motion.Seed] overwrites
// it with the gravity result, then [Motion.Accelerate] adds contact and
// friction deltas on top.
package motion
