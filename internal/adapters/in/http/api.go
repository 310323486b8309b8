package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire types of the API. Field names and JSON tags follow openapi.yaml.

type RequestStatus string

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Endpoint struct {
	Address string `json:"address"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
}

type RequestDetails struct {
	CategoryId  *openapi_types.UUID `json:"category_id,omitempty"`
	OriginId    *openapi_types.UUID `json:"origin_id,omitempty"`
	Description string              `json:"description"`
	Pickup      Endpoint            `json:"pickup"`
	Delivery    Endpoint            `json:"delivery"`
}

type Request struct {
	Id                 openapi_types.UUID `json:"id"`
	RequesterId        openapi_types.UUID `json:"requester_id"`
	Description        string             `json:"description"`
	Pickup             Endpoint           `json:"pickup"`
	Delivery           Endpoint           `json:"delivery"`
	Status             RequestStatus      `json:"status"`
	RescheduledDate    *time.Time         `json:"rescheduled_date,omitempty"`
	RescheduleComments string             `json:"reschedule_comments,omitempty"`
	EvidenceImage      string             `json:"evidence_image,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type StatusHistoryItem struct {
	UserId    openapi_types.UUID `json:"user_id"`
	Status    string             `json:"status"`
	Comment   string             `json:"comment,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

type Assignment struct {
	Id             openapi_types.UUID `json:"id"`
	RequestId      openapi_types.UUID `json:"request_id"`
	TransporterId  openapi_types.UUID `json:"transporter_id"`
	Status         string             `json:"status"`
	AssignmentDate time.Time          `json:"assignment_date"`
	ResponseDate   *time.Time         `json:"response_date,omitempty"`
	Comments       string             `json:"comments,omitempty"`
}

type RequestDetail struct {
	Request
	CurrentTransporterId *openapi_types.UUID `json:"current_transporter_id,omitempty"`
	History              []StatusHistoryItem `json:"history"`
	Assignments          []Assignment        `json:"assignments"`
}

type WorkLog struct {
	Id        openapi_types.UUID `json:"id"`
	WorkDate  openapi_types.Date `json:"work_date"`
	StartedAt time.Time          `json:"started_at"`
	EndedAt   time.Time          `json:"ended_at"`
}

type WorkdayClosure struct {
	Created bool    `json:"created"`
	Log     WorkLog `json:"log"`
}

type RescheduleRequestJSONBody struct {
	NewDate  time.Time `json:"new_date"`
	Comments string    `json:"comments,omitempty"`
}

type FailRequestJSONBody struct {
	Reason   string `json:"reason"`
	Evidence string `json:"evidence"`
}

// ListRequestsParams defines parameters for ListRequests.
type ListRequestsParams struct {
	Status *RequestStatus `form:"status,omitempty" json:"status,omitempty"`
}

// ActorParams carries the caller identity header of actor-scoped operations.
type ActorParams struct {
	XActorId openapi_types.UUID `json:"X-Actor-Id"`
}

// DeleteRequestParams defines parameters for DeleteRequest.
type DeleteRequestParams struct {
	XActorId         openapi_types.UUID `json:"X-Actor-Id"`
	XActorPrivileged *bool              `json:"X-Actor-Privileged,omitempty"`
}
