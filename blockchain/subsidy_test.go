// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcz/btczd/chaincfg"
	"github.com/stretchr/testify/require"
)

const coin = btcutil.SatoshiPerBitcoin

// TestTotalEmission sums the subsidy of every halving interval of the main
// network, checking the subsidy is constant within each interval.
func TestTotalEmission(t *testing.T) {
	params := chaincfg.MainNetParams()
	interval := params.PreBlossomSubsidyHalvingInterval

	var total btcutil.Amount
	last := InitialSubsidy
	for halving := int32(0); halving <= 64; halving++ {
		start := halving * interval
		subsidy := CalcBlockSubsidy(start, params)
		require.Equal(t, subsidy, CalcBlockSubsidy(start+interval/2, params))
		require.Equal(t, subsidy, CalcBlockSubsidy(start+interval-1, params))
		require.LessOrEqual(t, subsidy, last)
		require.True(t, MoneyRange(subsidy))

		total += subsidy * btcutil.Amount(interval)
		last = subsidy
	}

	require.Equal(t, btcutil.Amount(2099999999988240000), total)
	require.True(t, MoneyRange(total))
}

func TestBlockSubsidy(t *testing.T) {
	mainNet := chaincfg.MainNetParams()
	tests := []struct {
		height int32
		want   btcutil.Amount
	}{
		{0, 12500 * coin},
		{1, 12500 * coin},
		{839999, 12500 * coin},
		{840000, 6250 * coin},
		{1680000, 3125 * coin},
		{2520000, 1562.5 * coin},
		{63 * 840000, 0},
		{64 * 840000, 0},
		{100 * 840000, 0},
	}
	for _, test := range tests {
		require.Equalf(t, test.want, CalcBlockSubsidy(test.height, mainNet),
			"height %d", test.height)
	}
	require.Panics(t, func() { CalcBlockSubsidy(-1, mainNet) })
}

func TestBlockSubsidySlowStart(t *testing.T) {
	params, err := chaincfg.NewRegTestParams(chaincfg.WithSubsidySlowStart(20))
	require.NoError(t, err)

	step := InitialSubsidy / 20
	tests := []struct {
		height int32
		want   btcutil.Amount
	}{
		{0, 0},
		{1, step},
		{9, step * 9},
		{10, step * 11},
		{19, step * 20},
		{20, InitialSubsidy},
		{159, InitialSubsidy},
		{160, InitialSubsidy / 2},
	}
	for _, test := range tests {
		require.Equalf(t, test.want, CalcBlockSubsidy(test.height, params),
			"height %d", test.height)
	}
}

func TestBlockSubsidyBlossom(t *testing.T) {
	params, err := chaincfg.NewRegTestParams(
		chaincfg.WithNetworkUpgrade(chaincfg.UpgradeBlossom,
			chaincfg.ActiveAt(200)))
	require.NoError(t, err)

	require.Equal(t, InitialSubsidy, CalcBlockSubsidy(149, params))
	require.Equal(t, InitialSubsidy/2, CalcBlockSubsidy(199, params))

	// Blocks come twice as fast, so each pays half.
	require.Equal(t, InitialSubsidy/4, CalcBlockSubsidy(200, params))
	require.Equal(t, InitialSubsidy/4, CalcBlockSubsidy(399, params))
	require.Equal(t, InitialSubsidy/8, CalcBlockSubsidy(400, params))
	require.Equal(t, InitialSubsidy/16, CalcBlockSubsidy(700, params))
}

func TestCommunityFee(t *testing.T) {
	mainNet := chaincfg.MainNetParams()
	require.Zero(t, CalcCommunityFee(328500, mainNet))
	require.Equal(t, btcutil.Amount(625*coin), CalcCommunityFee(328501, mainNet))
	require.Equal(t, btcutil.Amount(312.5*coin), CalcCommunityFee(840000, mainNet))
	require.Equal(t, btcutil.Amount(312.5*coin), CalcCommunityFee(1400000, mainNet))
	require.Zero(t, CalcCommunityFee(1400001, mainNet))

	var total btcutil.Amount
	for h := int32(1); h <= 1500000; h++ {
		total += CalcCommunityFee(h, mainNet)
	}
	require.Equal(t, btcutil.Amount(49468718750000000), total)

	regTest := chaincfg.RegTestParams()
	total = 0
	for h := int32(1); h <= 300; h++ {
		total += CalcCommunityFee(h, regTest)
	}
	require.Equal(t, btcutil.Amount(3093750000000), total)
}

// TestCommunityFeePerAddress checks the total each community fee address
// receives over the whole fee range.
func TestCommunityFeePerAddress(t *testing.T) {
	full := btcutil.Amount(14001 * 625 * coin)
	halved := btcutil.Amount(14001 * 312.5 * coin)

	tests := []struct {
		params *chaincfg.Params
		want   func(i int) btcutil.Amount
	}{
		{
			params: chaincfg.MainNetParams(),
			want: func(i int) btcutil.Amount {
				switch {
				case i < 23:
					return 0
				case i == 23:
					return 7523 * 625 * coin
				case i < 59:
					return full
				case i == 59:
					return 8731875 * coin
				case i < 99:
					return halved
				default:
					return 13902 * 312.5 * coin
				}
			},
		},
		{
			params: chaincfg.TestNetParams(),
			want: func(i int) btcutil.Amount {
				switch {
				case i == 0:
					return 12500 * 625 * coin
				case i < 59:
					return full
				case i == 59:
					return 8731875 * coin
				case i < 99:
					return halved
				default:
					return 13902 * 312.5 * coin
				}
			},
		},
	}

	for _, test := range tests {
		params := test.params
		totals := make(map[string]btcutil.Amount)
		for h := params.CommunityFeeStartHeight + 1; h <= params.CommunityFeeLastHeight; h++ {
			totals[params.CommunityFeeAddressAtHeight(h)] += CalcCommunityFee(h, params)
		}

		for i, addr := range params.CommunityFeeAddresses {
			require.Equalf(t, test.want(i), totals[addr], "%s: address %d",
				params.Name, i)
		}
	}
}

func TestActiveFundingStreams(t *testing.T) {
	mainNet := chaincfg.MainNetParams()
	require.Empty(t, ActiveFundingStreams(1679999, mainNet))
	require.Empty(t, ActiveFundingStreamElements(1679999, InitialSubsidy, mainNet))
	require.Empty(t, ActiveFundingStreams(3360000, mainNet))

	infos := ActiveFundingStreams(1680000, mainNet)
	require.Len(t, infos, 3)
	require.Equal(t, "Electric Coin Company", infos[0].Recipient)
	require.Equal(t, "Zcash Foundation", infos[1].Recipient)
	require.Equal(t, "Major Grants", infos[2].Recipient)

	subsidy := CalcBlockSubsidy(1680000, mainNet)
	elements := ActiveFundingStreamElements(1680000, subsidy, mainNet)
	require.Equal(t, []FundingStreamElement{
		{
			Script: mustDecodeHex(t, "a91427679bc487aed0b706be0430b962158d9f1696c487"),
			Value:  250 * coin,
		},
		{
			Script: mustDecodeHex(t, "a9143adcdfa9fceb9fd984f29790c72b86c76179011187"),
			Value:  218.75 * coin,
		},
		{
			Script: mustDecodeHex(t, "a91452e2a4755e688a59a8b31ebdfb1b4b41c56f408c87"),
			Value:  156.25 * coin,
		},
	}, elements)
}

// TestFundingStreamElementOrder ensures elements paying one script are ordered
// by value and identical elements collapse.
func TestFundingStreamElementOrder(t *testing.T) {
	addr := "t2V1osVDkcwYFL4PF9qG8t9Ez1XRVMAkAb6"
	params, err := chaincfg.NewRegTestParams(
		chaincfg.WithFundingStream(chaincfg.FundingStreamBP, 300, 303,
			[]string{addr}),
		chaincfg.WithFundingStream(chaincfg.FundingStreamZF, 300, 306,
			[]string{addr, addr}),
		chaincfg.WithFundingStream(chaincfg.FundingStreamMG, 303, 306,
			[]string{addr, addr}),
	)
	require.NoError(t, err)

	script, err := params.AddressScript(addr)
	require.NoError(t, err)

	elements := ActiveFundingStreamElements(300, 100, params)
	require.Equal(t, []FundingStreamElement{
		{Script: script, Value: 5},
		{Script: script, Value: 7},
	}, elements)

	elements = ActiveFundingStreamElements(303, 100, params)
	require.Equal(t, []FundingStreamElement{
		{Script: script, Value: 5},
		{Script: script, Value: 8},
	}, elements)

	// Equal values to the same script are a single element.
	elements = ActiveFundingStreamElements(303, 10, params)
	require.Equal(t, []FundingStreamElement{
		{Script: script, Value: 0},
	}, elements)
}

func TestBlockSubsidySplit(t *testing.T) {
	mainNet := chaincfg.MainNetParams()

	split := CalcBlockSubsidySplit(100, mainNet)
	require.Equal(t, &SubsidySplit{
		Subsidy: 12500 * coin,
		Miner:   12500 * coin,
	}, split)

	split = CalcBlockSubsidySplit(500000, mainNet)
	require.Equal(t, btcutil.Amount(625*coin), split.CommunityFee)
	require.Equal(t, btcutil.Amount(11875*coin), split.Miner)
	require.Empty(t, split.FundingStreams)

	split = CalcBlockSubsidySplit(1500000, mainNet)
	require.Zero(t, split.CommunityFee)
	require.Equal(t, split.Subsidy, split.Miner)

	split = CalcBlockSubsidySplit(1680000, mainNet)
	require.Zero(t, split.CommunityFee)
	require.Equal(t, btcutil.Amount(3125*coin), split.Subsidy)
	require.Equal(t, btcutil.Amount(2500*coin), split.Miner)
	require.Len(t, split.FundingStreams, 3)
	require.Equal(t, chaincfg.FundingStreamZF, split.FundingStreams[1].Index)
	require.Equal(t, btcutil.Amount(156.25*coin), split.FundingStreams[1].Value)

	require.Equal(t, split.Miner, CalcMinerSubsidy(1680000, mainNet))
}

func TestMoneyRange(t *testing.T) {
	require.True(t, MoneyRange(0))
	require.True(t, MoneyRange(MaxMoney))
	require.False(t, MoneyRange(MaxMoney+1))
	require.False(t, MoneyRange(-1))
}

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
