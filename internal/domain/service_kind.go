package domain

import "errors"

// ErrUnknownServiceKind is returned for a service kind or collection name outside the catalog
var ErrUnknownServiceKind = errors.New("unknown service kind")

// ServiceKind identifies one of the bookable services
type ServiceKind string

const (
	KindLavage    ServiceKind = "lavage"
	KindTolerie   ServiceKind = "tolerie"
	KindPolissage ServiceKind = "polissage"
	KindDetailing ServiceKind = "detailing"
)

// AllKinds lists the services in display order
var AllKinds = []ServiceKind{
	KindLavage,
	KindTolerie,
	KindPolissage,
	KindDetailing,
}

// REST collection names; lavage is the only plural one
var collections = map[ServiceKind]string{
	KindLavage:    "lavages",
	KindTolerie:   "tolerie",
	KindPolissage: "polissage",
	KindDetailing: "detailing",
}

// Collection returns the REST collection name for the kind
func (k ServiceKind) Collection() string {
	return collections[k]
}

// IsValid reports whether the kind belongs to the catalog
func (k ServiceKind) IsValid() bool {
	_, ok := collections[k]
	return ok
}

// ParseCollection maps a REST collection name back to its kind
func ParseCollection(collection string) (ServiceKind, error) {
	for kind, name := range collections {
		if name == collection {
			return kind, nil
		}
	}
	return "", ErrUnknownServiceKind
}

// ParseServiceKind validates a raw kind value
func ParseServiceKind(s string) (ServiceKind, error) {
	kind := ServiceKind(s)
	if !kind.IsValid() {
		return "", ErrUnknownServiceKind
	}
	return kind, nil
}
