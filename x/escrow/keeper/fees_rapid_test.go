package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"pgregory.net/rapid"

	"github.com/worklock-chain/worklock/x/escrow/keeper"
	"github.com/worklock-chain/worklock/x/escrow/types"
)

func drawRates(t *rapid.T) types.FeeRates {
	return types.FeeRates{
		CoverageBps: rapid.Uint32Range(0, 5000).Draw(t, "coverageBps"),
		ClaimBps:    rapid.Uint32Range(0, 5000).Draw(t, "claimBps"),
		Set:         true,
	}
}

// TestDepositFeeProperties checks the deposit-side fee engine over arbitrary
// rates and amounts: the fee never exceeds the principal at sane rates, the
// total always equals principal plus fee, and the computation is
// deterministic.
func TestDepositFeeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rates := drawRates(t)
		amount := math.NewInt(rapid.Int64Range(0, 1_000_000_000_000).Draw(t, "amount"))
		feeConfig := rapid.SampledFrom([]types.FeeConfig{
			types.FEE_CONFIG_CLIENT_COVERS_ALL,
			types.FEE_CONFIG_CLIENT_COVERS_ONLY,
			types.FEE_CONFIG_NO_FEES,
		}).Draw(t, "feeConfig")

		total, fee, err := keeper.ComputeDepositAmountAndFee(rates, amount, feeConfig)
		if err != nil {
			t.Fatalf("deposit fee failed: %v", err)
		}
		if fee.IsNegative() {
			t.Fatalf("negative fee %s", fee)
		}
		if !total.Equal(amount.Add(fee)) {
			t.Fatalf("total %s != amount %s + fee %s", total, amount, fee)
		}
		// both bps capped at 5000 each, so the fee tops out at 100% of principal
		if fee.GT(amount) {
			t.Fatalf("fee %s exceeds principal %s", fee, amount)
		}

		total2, fee2, err := keeper.ComputeDepositAmountAndFee(rates, amount, feeConfig)
		if err != nil || !total2.Equal(total) || !fee2.Equal(fee) {
			t.Fatal("deposit fee computation is not deterministic")
		}
	})
}

// TestClaimFeeProperties checks the claim-side split: the contractor's net plus
// the contractor-side fee always reconstructs the claimed amount, and no
// component goes negative.
func TestClaimFeeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rates := drawRates(t)
		claimed := math.NewInt(rapid.Int64Range(0, 1_000_000_000_000).Draw(t, "claimed"))
		feeConfig := rapid.SampledFrom([]types.FeeConfig{
			types.FEE_CONFIG_CLIENT_COVERS_ALL,
			types.FEE_CONFIG_CLIENT_COVERS_ONLY,
			types.FEE_CONFIG_CONTRACTOR_COVERS_CLAIM,
			types.FEE_CONFIG_NO_FEES,
		}).Draw(t, "feeConfig")

		net, contractorFee, clientFee, err := keeper.ComputeClaimableAmountAndFee(rates, claimed, feeConfig)
		if err != nil {
			t.Fatalf("claim fee failed: %v", err)
		}
		if net.IsNegative() || contractorFee.IsNegative() || clientFee.IsNegative() {
			t.Fatalf("negative component: net=%s contractorFee=%s clientFee=%s", net, contractorFee, clientFee)
		}
		if !net.Add(contractorFee).Equal(claimed) {
			t.Fatalf("net %s + contractor fee %s != claimed %s", net, contractorFee, claimed)
		}
		if clientFee.GT(claimed) {
			t.Fatalf("client fee %s exceeds claimed %s", clientFee, claimed)
		}
	})
}
