package request

import (
	"fmt"
	"strings"

	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
)

// ImageType classifies a stored evidence reference.
type ImageType string

const (
	ImagePickup   ImageType = "pickup"
	ImageDelivery ImageType = "delivery"
	ImageDamage   ImageType = "damage"
	ImageOther    ImageType = "other"
)

// Validate rejects unknown image types.
func (t ImageType) Validate() error {
	switch t {
	case ImagePickup, ImageDelivery, ImageDamage, ImageOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("image type", fmt.Errorf("%q is not a known image type", string(t)))
	}
}

// Image is an opaque reference to an uploaded file attached to a request.
// The file itself lives outside this service.
type Image struct {
	ref  string
	kind ImageType
}

// NewImage validates ref and kind.
func NewImage(ref string, kind ImageType) (Image, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Image{}, errs.NewValueIsRequiredError("evidence reference")
	}
	if err := kind.Validate(); err != nil {
		return Image{}, err
	}
	return Image{ref: ref, kind: kind}, nil
}

func (i Image) Ref() string     { return i.ref }
func (i Image) Kind() ImageType { return i.kind }
