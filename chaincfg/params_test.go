// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func allNetworks() []*Params {
	return []*Params{MainNetParams(), TestNetParams(), RegTestParams()}
}

// TestGenesisBlocks ensures the genesis blocks built from their components
// hash to the hard-coded values.
func TestGenesisBlocks(t *testing.T) {
	require.Equal(t, "BitcoinZ2beeec1ef52fd18475953563ebdb287f056453f4522"+
		"00581f958711118e980b2", string(genesisTimestamp()))

	for _, params := range allNetworks() {
		block := params.GenesisBlock
		require.Len(t, block.Transactions, 1)

		merkleRoot := block.Header.MerkleRoot.String()
		require.Equal(t, "f40283d893eb46b35379a404cf06bd58c22ce05b32a4a6"+
			"41adec56e0792789ad", merkleRoot)

		hash := block.BlockHash()
		if !hash.IsEqual(params.GenesisHash) {
			t.Fatalf("%s: genesis hash mismatch - got %v, want %v\n%s",
				params.Name, hash, params.GenesisHash,
				spew.Sdump(block.Header))
		}

		latest := params.Checkpoints.LatestCheckpoint()
		require.NotNil(t, latest)
		first, ok := params.Checkpoints.CheckpointHash(0)
		require.True(t, ok)
		require.True(t, first.IsEqual(params.GenesisHash))
	}
}

func TestGenesisHeaderRoundTrip(t *testing.T) {
	header := TestNetParams().GenesisBlock.Header
	var buf bytes.Buffer
	require.NoError(t, header.Serialize(&buf))

	decoded := header
	decoded.Solution = nil
	require.NoError(t, decoded.Deserialize(&buf))
	require.Equal(t, header.BlockHash(), decoded.BlockHash())
	require.Len(t, decoded.Solution, Equihash200_9.SolutionSize)
}

func TestPowLimits(t *testing.T) {
	for _, params := range allNetworks() {
		require.Equalf(t, params.PowLimitBits,
			blockchain.BigToCompact(params.PowLimit), params.Name)
		require.Equal(t, params.PowLimitBits,
			params.GenesisBlock.Header.Bits)
	}
}

func TestNetworkConstants(t *testing.T) {
	mainNet := MainNetParams()
	require.Equal(t, "main", mainNet.Name)
	require.Equal(t, "BTCZ", mainNet.CurrencyUnits)
	require.Equal(t, uint32(177), mainNet.BIP44CoinType)
	require.Equal(t, "1989", mainNet.DefaultPort)
	require.Equal(t, [4]byte{0x24, 0xe9, 0x27, 0x64}, mainNet.MessageStart)
	require.Len(t, mainNet.DNSSeeds, 3)
	require.Equal(t, "seed.btcz.app", mainNet.DNSSeeds[2].String())
	require.Equal(t, int64(0xa064014966b5), mainNet.MinimumChainWork.Int64())

	testNet := TestNetParams()
	require.Equal(t, "TZB", testNet.CurrencyUnits)
	require.True(t, testNet.PowAllowMinDifficultyBlocks)
	require.Equal(t, int32(299187), testNet.PowAllowMinDifficultyBlocksAfterHeight)

	regTest := RegTestParams()
	require.Equal(t, "REG", regTest.CurrencyUnits)
	require.Empty(t, regTest.DNSSeeds)
	require.Zero(t, regTest.MinimumChainWork.Sign())
	require.False(t, regTest.CoinbaseMustBeShielded)
	require.Equal(t, int32(3), regTest.FundingPeriodLength)
}

func TestTimespans(t *testing.T) {
	mainNet := MainNetParams()
	require.Equal(t, int64(150), mainNet.PowTargetSpacing(0))
	require.Equal(t, int64(1950), mainNet.AveragingWindowTimespan(0))
	require.Equal(t, int64(1287), mainNet.MinActualTimespan(0))
	require.Equal(t, int64(2613), mainNet.MaxActualTimespan(0))

	regTest := RegTestParams()
	require.Equal(t, regTest.AveragingWindowTimespan(0),
		regTest.MinActualTimespan(0))
	require.Equal(t, regTest.AveragingWindowTimespan(0),
		regTest.MaxActualTimespan(0))

	blossom, err := NewRegTestParams(
		WithNetworkUpgrade(UpgradeBlossom, ActiveAt(200)))
	require.NoError(t, err)
	require.Equal(t, int64(2), blossom.BlossomPowTargetSpacingRatio())
	require.Equal(t, int64(150), blossom.PowTargetSpacing(199))
	require.Equal(t, int64(75), blossom.PowTargetSpacing(200))
	require.Equal(t, int64(975), blossom.AveragingWindowTimespan(200))
}

func TestHalving(t *testing.T) {
	mainNet := MainNetParams()
	tests := []struct {
		height int32
		want   int32
	}{
		{0, 0},
		{839999, 0},
		{840000, 1},
		{1400000, 1},
		{1679999, 1},
		{1680000, 2},
		{64 * 840000, 64},
	}
	for _, test := range tests {
		require.Equalf(t, test.want, mainNet.Halving(test.height),
			"height %d", test.height)
	}

	require.Equal(t, int32(840000), mainNet.HalvingHeight(0, 1))
	require.Equal(t, int32(1680000), mainNet.HalvingHeight(0, 2))
	require.Panics(t, func() { mainNet.HalvingHeight(0, 0) })

	// Blossom at 200 halves the spacing.  200 pre-Blossom blocks count
	// as 400 post-Blossom blocks of the 300 block interval.
	blossom, err := NewRegTestParams(
		WithNetworkUpgrade(UpgradeBlossom, ActiveAt(200)))
	require.NoError(t, err)
	require.Equal(t, int32(1), blossom.Halving(199))
	require.Equal(t, int32(1), blossom.Halving(200))
	require.Equal(t, int32(1), blossom.Halving(399))
	require.Equal(t, int32(2), blossom.Halving(400))
	require.Equal(t, int32(2), blossom.Halving(699))
	require.Equal(t, int32(3), blossom.Halving(700))
	require.Equal(t, int32(400), blossom.HalvingHeight(400, 2))
	require.Equal(t, int32(700), blossom.HalvingHeight(400, 3))

	// The slow start shifts the schedule by half its interval.
	slow, err := NewRegTestParams(WithSubsidySlowStart(20))
	require.NoError(t, err)
	require.Equal(t, int32(10), slow.SubsidySlowStartShift())
	require.Equal(t, int32(0), slow.Halving(159))
	require.Equal(t, int32(1), slow.Halving(160))
	require.Equal(t, int32(160), slow.HalvingHeight(0, 1))
}

func TestEquihashParameters(t *testing.T) {
	require.Equal(t, 1344, Equihash200_9.SolutionSize)
	require.Equal(t, 100, Equihash144_5.SolutionSize)
	require.Equal(t, 68, Equihash96_5.SolutionSize)
	require.Equal(t, 36, Equihash48_5.SolutionSize)
	require.Equal(t, "200_9", Equihash200_9.String())

	mainNet := MainNetParams()
	tests := []struct {
		height int32
		want   []EquihashParams
	}{
		{1, []EquihashParams{Equihash200_9}},
		{159999, []EquihashParams{Equihash200_9}},
		{160000, []EquihashParams{Equihash144_5, Equihash200_9}},
		{160010, []EquihashParams{Equihash144_5, Equihash200_9}},
		{160011, []EquihashParams{Equihash144_5}},
	}
	for _, test := range tests {
		require.Equalf(t, test.want,
			mainNet.ValidEquihashParameterList(test.height),
			"height %d", test.height)
	}

	require.True(t, mainNet.CheckEquihashSolutionSize(0, 0))
	require.True(t, mainNet.CheckEquihashSolutionSize(1344, 159999))
	require.False(t, mainNet.CheckEquihashSolutionSize(100, 159999))
	require.True(t, mainNet.CheckEquihashSolutionSize(100, 160005))
	require.True(t, mainNet.CheckEquihashSolutionSize(1344, 160005))
	require.False(t, mainNet.CheckEquihashSolutionSize(1344, 160011))
	require.False(t, mainNet.CheckEquihashSolutionSize(0, 1))

	regTest := RegTestParams()
	require.Equal(t, []EquihashParams{Equihash48_5},
		regTest.ValidEquihashParameterList(0))
	require.Equal(t, []EquihashParams{Equihash48_5, Equihash48_5},
		regTest.ValidEquihashParameterList(1))
	require.Equal(t, []EquihashParams{Equihash48_5},
		regTest.ValidEquihashParameterList(2))
}

func TestFutureBlockTimeWindow(t *testing.T) {
	mainNet := MainNetParams()
	require.Equal(t, 2*time.Hour, mainNet.FutureBlockTimeWindow(0))
	require.Equal(t, 2*time.Hour, mainNet.FutureBlockTimeWindow(159299))
	require.Equal(t, 30*time.Minute, mainNet.FutureBlockTimeWindow(159300))
	require.Equal(t, 5*time.Minute, mainNet.FutureBlockTimeWindow(364400))
	require.Equal(t, 5*time.Minute, mainNet.FutureBlockTimeWindow(2000000))

	testNet := TestNetParams()
	require.Equal(t, 30*time.Minute, testNet.FutureBlockTimeWindow(13999))
	require.Equal(t, 5*time.Minute, testNet.FutureBlockTimeWindow(14000))

	mainNet.FutureBlockTimeWindows = nil
	require.Equal(t, MaxFutureBlockTime, mainNet.FutureBlockTimeWindow(5))
}

func TestCheckpoints(t *testing.T) {
	checkpoints := &MainNetParams().Checkpoints
	require.Len(t, checkpoints.Checkpoints, 27)
	require.Equal(t, int32(1400000), checkpoints.LatestCheckpoint().Height)
	require.Equal(t, int64(1722854257), checkpoints.TimeLastCheckpoint)

	for i := 1; i < len(checkpoints.Checkpoints); i++ {
		require.Greater(t, checkpoints.Checkpoints[i].Height,
			checkpoints.Checkpoints[i-1].Height)
	}

	hash, ok := checkpoints.CheckpointHash(160011)
	require.True(t, ok)
	require.Equal(t, "0003a9fbed918bdd83fb5d38016189d5b8fe77495d4a7bd240"+
		"5d3e8a04a62201", hash.String())

	_, ok = checkpoints.CheckpointHash(160012)
	require.False(t, ok)

	var empty CheckpointData
	require.Nil(t, empty.LatestCheckpoint())
}

func TestValidate(t *testing.T) {
	for _, params := range allNetworks() {
		require.NoError(t, params.Validate())
	}

	_, err := NewRegTestParams(
		WithNetworkUpgrade(UpgradeOverwinter, ActiveAt(400)))
	require.True(t, errors.Is(err, ErrUpgradeOrder), err)

	_, err = NewRegTestParams(WithCommunityFee(0, 1, []string{
		"t2FpKCWt95LAPVRed61YbBny9yz5nqexLGN",
		"t2RqJNenxiDjC5NiVo84xgfHcYuwsPcpCie",
	}))
	require.True(t, errors.Is(err, ErrTooManyCommunityFeeAddresses), err)

	p2pkh, err := RegTestParams().EncodePubKeyHashAddress(make([]byte, 20))
	require.NoError(t, err)
	_, err = NewRegTestParams(WithCommunityFee(0, 10, []string{p2pkh}))
	require.True(t, errors.Is(err, ErrNotScriptHash), err)

	_, err = NewRegTestParams(WithPow(0, 0, maxUint256))
	require.True(t, errors.Is(err, ErrInvalidPowLimit), err)

	_, err = NewRegTestParams(WithPow(-1, 0, nil))
	require.Error(t, err)
}

// TestRegTestIsolation ensures building modified regtest parameters never
// affects other parameter values.
func TestRegTestIsolation(t *testing.T) {
	modified, err := NewRegTestParams(
		WithNetworkUpgrade(UpgradeCanopy, NeverActive()),
		WithPow(10, 20, testNetPowLimit),
		WithCoinbaseMustBeShielded(),
		WithZIP209Enabled(),
	)
	require.NoError(t, err)
	require.True(t, modified.Upgrades[UpgradeCanopy].Activation.IsNever())
	require.Equal(t, int64(10), modified.PowMaxAdjustDown)
	require.Equal(t, uint32(0x2007ffff), modified.PowLimitBits)
	require.True(t, modified.CoinbaseMustBeShielded)
	require.True(t, modified.ZIP209Enabled)

	fresh := RegTestParams()
	h, ok := fresh.Upgrades[UpgradeCanopy].Activation.Height()
	require.True(t, ok)
	require.Equal(t, int32(300), h)
	require.Equal(t, int64(0), fresh.PowMaxAdjustDown)
	require.Equal(t, uint32(0x200f0f0f), fresh.PowLimitBits)
	require.False(t, fresh.CoinbaseMustBeShielded)

	// Mutating one value leaves the package defaults alone.
	fresh.PowLimit.SetInt64(1)
	require.Equal(t, uint32(0x200f0f0f),
		blockchain.BigToCompact(RegTestParams().PowLimit))
}
