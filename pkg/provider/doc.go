// Package provider defines the pluggable action-provider strategy: given a
// property mutation and the ambient timing the resolver settled on, a
// provider either materializes an animation or vetoes it.
//
// Providers come in three variants (None, Basic, Func) instead of a type
// hierarchy. All built-in providers are stateless, so a single instance can
// be attached to any number of nodes.
package provider
