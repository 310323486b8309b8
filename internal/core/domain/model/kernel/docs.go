// Package kernel provides the shared value objects of the transport domain.
//
// The package includes:
//   - UUID: identifier for requests, assignments, work logs and the people
//     (requesters, transporters, administrators) that act on them
//   - Endpoint: one end of a transport, an address with the contact person and
//     phone number to reach there
//
// Values are immutable and validated on construction; zero values fail Validate.
package kernel
