// Package dag builds the validated target graph from the pipeline model
// and resolves invocations over it. Validation happens once at load
// time: target names must be unique, every depends_on reference must
// name a declared target, and the dependency relation must be acyclic.
//
// Resolution is a stateless traversal: Resolve flattens a target's
// dependency closure into a deterministic, declaration-ordered sequence
// with each target appearing at most once.
package dag
