package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/worklock-chain/worklock/x/escrow/types"
)

func TestDefaultParamsValid(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
}

func TestParamsValidate(t *testing.T) {
	mutate := func(fn func(p *types.Params)) types.Params {
		p := types.DefaultParams()
		fn(&p)
		return p
	}

	tests := []struct {
		name   string
		params types.Params
	}{
		{"max fee above hard cap", mutate(func(p *types.Params) { p.MaxFeeBps = 5001 })},
		{"default coverage above max", mutate(func(p *types.Params) { p.DefaultCoverageBps = p.MaxFeeBps + 1 })},
		{"default claim above max", mutate(func(p *types.Params) { p.DefaultClaimBps = p.MaxFeeBps + 1 })},
		{"zero milestone batch", mutate(func(p *types.Params) { p.MaxMilestonesPerTx = 0 })},
		{"zero min recovery period", mutate(func(p *types.Params) { p.MinRecoveryPeriodSeconds = 0 })},
		{"max recovery below min", mutate(func(p *types.Params) { p.MaxRecoveryPeriodSeconds = p.MinRecoveryPeriodSeconds - 1 })},
		{"zero authorization ttl", mutate(func(p *types.Params) { p.MaxAuthorizationTTLSeconds = 0 })},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.params.Validate())
		})
	}
}

func TestClampRecoveryPeriod(t *testing.T) {
	p := types.DefaultParams()
	require.Equal(t, p.RecoveryPeriodSeconds, p.ClampRecoveryPeriod())

	p.RecoveryPeriodSeconds = 1
	require.Equal(t, p.MinRecoveryPeriodSeconds, p.ClampRecoveryPeriod())

	p.RecoveryPeriodSeconds = p.MaxRecoveryPeriodSeconds + 1
	require.Equal(t, p.MaxRecoveryPeriodSeconds, p.ClampRecoveryPeriod())
}

func TestDenomAllowed(t *testing.T) {
	p := types.DefaultParams()
	require.True(t, p.DenomAllowed("uwork"))
	require.False(t, p.DenomAllowed("uatom"))

	// an empty allow-list admits nothing
	p.AllowedDenoms = nil
	require.False(t, p.DenomAllowed("uwork"))
}
