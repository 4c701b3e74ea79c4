// Package physics implements the force laws of the arcade simulation:
//
//   - [GravitationalForce]: pairwise inverse-square attraction, capped
//   - [ContactNormalForce]: overlap response with restitution and sink depth
//   - [FrictionAcceleration]: kinetic friction from a recorded contact
//
// All functions are pure: they read two bodies and return a force or an
// acceleration delta. Applying results, staging and phase ordering belong to
// the simulation context in package sim.
//
// Bearings use the atan2(dy, dx) convention on a y-up plane.
package physics
