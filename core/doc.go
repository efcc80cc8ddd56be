// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - route table and navigator, message contracts, key registry
// - the root tea.Model hosting the active screen
// - palette, styles and status/footer chrome
//
// Not allowed here:
// - concrete screen implementations (see the screens package)
// - low-level widget rendering primitives
package core
