// Package nav defines the application's destinations and the back stack
// that moves between them.
package nav

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrUnknownRoute is returned by Parse for paths that name no destination.
	ErrUnknownRoute = errors.New("unknown route")
	// ErrMissingID is returned by Parse for a details path without an id.
	ErrMissingID = errors.New("details route requires an id")
)

// Kind identifies a destination.
type Kind int

const (
	KindHome Kind = iota
	KindDetails
	KindSearch
	KindSettings
)

func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindDetails:
		return "details"
	case KindSearch:
		return "search"
	case KindSettings:
		return "settings"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Route is a navigable destination. ID is set only for KindDetails.
type Route struct {
	Kind Kind
	ID   string
}

// Route patterns as registered in the navigation graph.
const (
	PatternHome     = "home"
	PatternDetails  = "details/{id}"
	PatternSearch   = "search"
	PatternSettings = "settings"
)

func Home() Route     { return Route{Kind: KindHome} }
func Search() Route   { return Route{Kind: KindSearch} }
func Settings() Route { return Route{Kind: KindSettings} }

// Details returns the details route for a record id.
func Details(id string) Route { return Route{Kind: KindDetails, ID: id} }

// String renders the route's canonical path. Details ids are path-escaped so
// any id survives a round trip through Parse.
func (r Route) String() string {
	if r.Kind == KindDetails {
		return "details/" + url.PathEscape(r.ID)
	}
	return r.Kind.String()
}

// Parse is the inverse of Route.String.
func Parse(path string) (Route, error) {
	switch path {
	case PatternHome:
		return Home(), nil
	case PatternSearch:
		return Search(), nil
	case PatternSettings:
		return Settings(), nil
	}

	rest, ok := strings.CutPrefix(path, "details/")
	if !ok {
		if path == "details" {
			return Route{}, ErrMissingID
		}
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}
	if rest == "" {
		return Route{}, ErrMissingID
	}
	// A single escaped segment: a raw slash means the path has extra segments.
	if strings.Contains(rest, "/") {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}
	id, err := url.PathUnescape(rest)
	if err != nil {
		return Route{}, fmt.Errorf("parse details id %q: %w", rest, err)
	}
	return Details(id), nil
}
