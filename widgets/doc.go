// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (stacks, centering, buttons, field chrome)
//
// Not allowed here:
// - key handling, input state, navigation or scope logic
package widgets
