// Package ports declares the interfaces the kinetic engine consumes from
// swappable adapters, plus a reusable contract test each adapter must pass.
package ports
