// Package screens contains the concrete steps of the sign-in flow.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (phone, code, success)
// - field wiring between input.Field definitions and bubbles text inputs
//
// Not allowed here:
// - route tables, navigation validation and key registry ownership
// - low-level widget/layout primitives
package screens
