package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a zero-value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is the delivery destination of an order: a city and the number of a
// postoffice in it. Location is an immutable value object; its zero value is invalid.
//
// Example:
//
//	loc, err := kernel.NewLocation("Lviv", 2)
//	if err != nil {
//	    // negative postoffice
//	}
//	fmt.Println(loc) // Lviv, postoffice 2
type Location struct { //nolint:recvcheck //using for validation
	city       string
	postoffice int
	guard      guard.ConstructorGuard
}

// NewLocation creates a Location. The postoffice number must not be negative.
// The city is taken as entered; an empty city is accepted.
func NewLocation(city string, postoffice int) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setCity(city), loc.setPostoffice(postoffice)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate returns ErrLocationIsNotConstructed for a zero-value Location.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// City returns the destination city.
func (l Location) City() string {
	return l.city
}

// Postoffice returns the postoffice number in the city.
func (l Location) Postoffice() int {
	return l.postoffice
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("%s, postoffice %d", l.city, l.postoffice)
}

// IsEqual compares two locations field by field. Both must be constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.city == other.city && l.postoffice == other.postoffice, nil
}

func (l *Location) setCity(city string) error {
	l.city = city
	return nil
}

func (l *Location) setPostoffice(postoffice int) error {
	if postoffice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("postoffice", fmt.Errorf("%d is negative", postoffice))
	}

	l.postoffice = postoffice
	return nil
}
