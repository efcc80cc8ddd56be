package core

import (
	"errors"
	"fmt"
	"slices"
)

type Route string

const (
	RoutePhoneNumber Route = "phoneNumber"
	RouteCode        Route = "verificationCode"
	RouteSuccess     Route = "successScreen"
)

var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrUnknownRoute      = errors.New("unknown route")
)

// transitions is the whole flow. Each route has at most one successor.
var transitions = map[Route]Route{
	RoutePhoneNumber: RouteCode,
	RouteCode:        RouteSuccess,
}

func Routes() []Route {
	return []Route{RoutePhoneNumber, RouteCode, RouteSuccess}
}

func ParseRoute(name string) (Route, error) {
	r := Route(name)
	if !slices.Contains(Routes(), r) {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	return r, nil
}

// Next returns the route that follows r, if any.
func (r Route) Next() (Route, bool) {
	next, ok := transitions[r]
	return next, ok
}

func (r Route) Terminal() bool {
	_, ok := transitions[r]
	return !ok
}

// Navigator tracks the current route and the routes visited to reach it.
type Navigator struct {
	items []Route
}

func NewNavigator() *Navigator {
	n := &Navigator{}
	n.Start()
	return n
}

// Start resets the flow to the phone number route.
func (n *Navigator) Start() {
	n.items = append(n.items[:0], RoutePhoneNumber)
}

func (n *Navigator) Current() Route {
	if len(n.items) == 0 {
		return RoutePhoneNumber
	}
	return n.items[len(n.items)-1]
}

// GoTo moves to route when it is the legal next step from the current route.
// The navigator is left untouched on error.
func (n *Navigator) GoTo(route Route) error {
	if _, err := ParseRoute(string(route)); err != nil {
		return err
	}
	from := n.Current()
	next, ok := from.Next()
	if !ok || next != route {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, route)
	}
	if len(n.items) == 0 {
		n.items = append(n.items, from)
	}
	n.items = append(n.items, route)
	return nil
}

func (n *Navigator) History() []Route {
	return slices.Clone(n.items)
}

// Label is the short name shown in the header.
func (r Route) Label() string {
	switch r {
	case RoutePhoneNumber:
		return "Phone"
	case RouteCode:
		return "Code"
	case RouteSuccess:
		return "Done"
	default:
		return string(r)
	}
}
