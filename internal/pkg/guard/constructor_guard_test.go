package guard_test

import (
	"errors"
	"testing"

	"github.com/ArmandoCH85/sistemtransporte/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("guard_survives_copy_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		cp := g

		require.NoError(t, cp.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errNotConstructed := errors.New("closeDay must be created via newCloseDay")

	type closeDay struct {
		transporter string
		guard       guard.ConstructorGuard
	}

	newCloseDay := func(transporter string) (closeDay, error) {
		if transporter == "" {
			return closeDay{}, errors.New("transporter is required")
		}
		return closeDay{transporter: transporter, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		cmd, err := newCloseDay("t-1")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
		assert.Equal(t, "t-1", cmd.transporter)
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		cmd := closeDay{transporter: "t-1"}

		require.ErrorIs(t, cmd.guard.Validate(errNotConstructed), errNotConstructed)
	})
}
