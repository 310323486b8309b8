package request

import (
	"errors"
	"strings"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/errs"
	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request was not built by
	// NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

	// ErrIllegalDelete is returned when deleting a request that is no longer pending.
	ErrIllegalDelete = errors.New("request can only be deleted while pending")

	// ErrNotRequestOwner is returned when the actor deleting a request is
	// neither its requester nor privileged.
	ErrNotRequestOwner = errs.NewPermissionDeniedError("actor is not the requester")
)

// Details are the descriptive fields a requester supplies. They can be
// replaced as a whole while the request is pending.
type Details struct {
	CategoryID  *kernel.UUID
	OriginID    *kernel.UUID
	Description string
	Pickup      kernel.Endpoint
	Delivery    kernel.Endpoint
}

func (d Details) validate() error {
	var problems []error
	if strings.TrimSpace(d.Description) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("description"))
	}
	if err := d.Pickup.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("pickup", err))
	}
	if err := d.Delivery.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("delivery", err))
	}
	for _, id := range []*kernel.UUID{d.CategoryID, d.OriginID} {
		if id != nil {
			problems = append(problems, id.Validate())
		}
	}
	return errors.Join(problems...)
}

// Request is the aggregate root of a transport task.
//
// Its status only moves along the transition table of Status. The transporter
// currently holding the request is not stored here; it is derived from the
// assignment history.
type Request struct {
	id          kernel.UUID
	requesterID kernel.UUID
	details     Details

	status          Status
	persistedStatus Status

	rescheduledDate    *time.Time
	rescheduleComments string
	evidenceImage      string
	newImages          []Image

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewRequest creates a pending request.
func NewRequest(id, requesterID kernel.UUID, details Details, now time.Time) (*Request, error) {
	if err := errors.Join(id.Validate(), requesterID.Validate(), details.validate()); err != nil {
		return nil, err
	}

	details.Description = strings.TrimSpace(details.Description)
	return &Request{
		id:          id,
		requesterID: requesterID,
		details:     details,
		status:      Pending,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Snapshot carries the persisted state used by RestoreRequest.
type Snapshot struct {
	ID                 kernel.UUID
	RequesterID        kernel.UUID
	Details            Details
	Status             Status
	RescheduledDate    *time.Time
	RescheduleComments string
	EvidenceImage      string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RestoreRequest rebuilds a request loaded from storage. The restored status
// is remembered as the persisted status used for compare-and-set updates.
func RestoreRequest(s Snapshot) (*Request, error) {
	if err := errors.Join(s.ID.Validate(), s.RequesterID.Validate(), s.Status.Validate()); err != nil {
		return nil, err
	}

	return &Request{
		id:                 s.ID,
		requesterID:        s.RequesterID,
		details:            s.Details,
		status:             s.Status,
		persistedStatus:    s.Status,
		rescheduledDate:    s.RescheduledDate,
		rescheduleComments: s.RescheduleComments,
		evidenceImage:      s.EvidenceImage,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate rejects requests not built by a constructor.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r *Request) ID() kernel.UUID          { return r.id }
func (r *Request) RequesterID() kernel.UUID { return r.requesterID }
func (r *Request) Details() Details         { return r.details }
func (r *Request) Status() Status           { return r.status }

// PersistedStatus is the status as last read from storage. It is Unknown for
// a request that has never been stored.
func (r *Request) PersistedStatus() Status { return r.persistedStatus }

func (r *Request) RescheduledDate() *time.Time { return r.rescheduledDate }
func (r *Request) RescheduleComments() string  { return r.rescheduleComments }
func (r *Request) EvidenceImage() string       { return r.evidenceImage }
func (r *Request) CreatedAt() time.Time        { return r.createdAt }
func (r *Request) UpdatedAt() time.Time        { return r.updatedAt }

// NewImages returns images attached since the request was loaded.
func (r *Request) NewImages() []Image { return r.newImages }

// Transition moves the request to target if the table allows it.
func (r *Request) Transition(target Status, now time.Time) error {
	next, err := r.status.Transition(target)
	if err != nil {
		return err
	}
	r.status = next
	r.updatedAt = now
	return nil
}

// Edit replaces the descriptive fields. Editing keeps the status unchanged,
// which is only allowed while pending.
func (r *Request) Edit(details Details, now time.Time) error {
	if r.status != Pending {
		return errs.NewInvalidTransitionErrorWithCause(r.status.String(), r.status.String(),
			errors.New("request can only be edited while pending"))
	}
	if err := details.validate(); err != nil {
		return err
	}
	details.Description = strings.TrimSpace(details.Description)
	r.details = details
	r.updatedAt = now
	return nil
}

// Reschedule moves the request to rescheduled and records the new date.
func (r *Request) Reschedule(date time.Time, comments string, now time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("rescheduled date")
	}
	if err := r.Transition(Rescheduled, now); err != nil {
		return err
	}
	r.rescheduledDate = &date
	r.rescheduleComments = strings.TrimSpace(comments)
	return nil
}

// AttachEvidence stores ref as the request's evidence image and queues an
// image row of the given type.
func (r *Request) AttachEvidence(ref string, kind ImageType) error {
	img, err := NewImage(ref, kind)
	if err != nil {
		return err
	}
	r.evidenceImage = img.Ref()
	r.newImages = append(r.newImages, img)
	return nil
}

// CanDelete returns ErrIllegalDelete unless the request is pending.
func (r *Request) CanDelete() error {
	if r.status != Pending {
		return ErrIllegalDelete
	}
	return nil
}

// AuthorizeDelete checks ownership and status. Privileged actors may delete
// any pending request.
func (r *Request) AuthorizeDelete(actorID kernel.UUID, privileged bool) error {
	if !privileged && !actorID.IsEqual(r.requesterID) {
		return ErrNotRequestOwner
	}
	return r.CanDelete()
}

// MarkPersisted records that the current state has been stored.
func (r *Request) MarkPersisted() {
	r.persistedStatus = r.status
	r.newImages = nil
}
