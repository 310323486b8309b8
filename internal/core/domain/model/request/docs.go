// Package request holds the Request aggregate: a single transport task from
// pickup to delivery, and the Status state machine that guards every change of
// its current status.
//
// Allowed transitions:
//
//	pending ──┬──> accepted ──┬──> completed
//	          │       ^       └──> failed
//	          v       │
//	      rescheduled ┘
//
// completed and failed are terminal. Descriptive fields may only be edited
// while the request is pending, and only a pending request may be deleted.
package request
