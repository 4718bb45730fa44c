// Package domain contains the pure data types of the kinetic engine:
// timing traits, easing curves, resolved animations, lifecycle events and
// sentinel errors.
//
// The package has no dependencies on the rest of the module. Everything in it
// is an immutable value type (or treated as one): the engine communicates in
// these types across package boundaries without sharing mutable state.
package domain
