package commands_test

import (
	"testing"
	"time"

	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/assignment"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/kernel"
	"github.com/ArmandoCH85/sistemtransporte/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

func testDetails(t *testing.T) request.Details {
	t.Helper()
	pickup, err := kernel.NewEndpoint("Av. Arequipa 100", "Rosa", "987654321")
	require.NoError(t, err)
	delivery, err := kernel.NewEndpoint("Jr. Cusco 200", "Mario", "912345678")
	require.NoError(t, err)
	return request.Details{Description: "lab samples", Pickup: pickup, Delivery: delivery}
}

const time24h = 24 * time.Hour

// storedRequest returns a request as a repository would load it.
func storedRequest(t *testing.T, status request.Status) *request.Request {
	t.Helper()
	r, err := request.RestoreRequest(request.Snapshot{
		ID:          kernel.NewUUID(),
		RequesterID: kernel.NewUUID(),
		Details:     testDetails(t),
		Status:      status,
		CreatedAt:   fixedNow.Add(-time24h),
		UpdatedAt:   fixedNow.Add(-time24h),
	})
	require.NoError(t, err)
	return r
}

func acceptedBy(t *testing.T, requestID, transporterID kernel.UUID) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAccepted(requestID, transporterID, fixedNow.Add(-time24h/2))
	require.NoError(t, err)
	return a
}
