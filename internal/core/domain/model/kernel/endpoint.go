package kernel

import (
	"errors"
	"strings"

	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

// ErrEndpointIsNotConstructed is returned when an Endpoint was not built by NewEndpoint.
var ErrEndpointIsNotConstructed = errors.New("Endpoint must be created via NewEndpoint constructor")

// Endpoint is one end of a transport: where to pick up or deliver, who to ask
// for and how to reach them.
type Endpoint struct {
	address string
	contact string
	phone   string

	guard guard.ConstructorGuard
}

// NewEndpoint validates and builds an Endpoint. All three fields are required;
// surrounding whitespace is trimmed.
func NewEndpoint(address, contact, phone string) (Endpoint, error) {
	address = strings.TrimSpace(address)
	contact = strings.TrimSpace(contact)
	phone = strings.TrimSpace(phone)

	var problems []error
	if address == "" {
		problems = append(problems, errs.NewValueIsRequiredError("address"))
	}
	if contact == "" {
		problems = append(problems, errs.NewValueIsRequiredError("contact"))
	}
	if phone == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}
	if err := errors.Join(problems...); err != nil {
		return Endpoint{}, err
	}

	return Endpoint{
		address: address,
		contact: contact,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Address returns the street address.
func (e Endpoint) Address() string { return e.address }

// Contact returns the name of the person at the address.
func (e Endpoint) Contact() string { return e.contact }

// Phone returns the contact phone number.
func (e Endpoint) Phone() string { return e.phone }

// IsEqual compares endpoints by value.
func (e Endpoint) IsEqual(other Endpoint) bool {
	return e.address == other.address && e.contact == other.contact && e.phone == other.phone
}

// Validate rejects endpoints not created through NewEndpoint.
func (e Endpoint) Validate() error {
	return e.guard.Validate(ErrEndpointIsNotConstructed)
}
