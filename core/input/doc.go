// Package input holds host-independent text field rules.
//
// Allowed here:
// - character-class sanitizing and length predicates shared by screens
// - field definitions describing what a text input accepts and how it submits
//
// Not allowed here:
// - terminal rendering or key handling (see the screens package)
package input
