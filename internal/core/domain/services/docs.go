// Package services provides domain services that coordinate aggregates of the
// transport domain where no single aggregate owns the rule.
//
// The package includes:
//   - AssignmentManager: accept, reschedule, complete and fail a request while
//     keeping the assignment history consistent with the request status
//   - WorkdayService: computes the single work log a transporter closes per day
package services
