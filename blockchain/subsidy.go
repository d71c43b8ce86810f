// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcz/btczd/chaincfg"
)

const (
	// InitialSubsidy is the block subsidy paid before the first halving.
	InitialSubsidy btcutil.Amount = 12500 * btcutil.SatoshiPerBitcoin

	// MaxMoney is the largest amount any single value may hold.  It is a
	// sanity bound, not the emission total.
	MaxMoney btcutil.Amount = 21000000000 * btcutil.SatoshiPerBitcoin

	// communityFeePercent is the share of the block subsidy paid to the
	// community fee address while the fee is enabled.
	communityFeePercent = 5

	// maxHalvings is the number of halvings after which the subsidy is
	// zero.  Shifting an int64 by this much or more is undefined in the
	// reference client and is never performed.
	maxHalvings = 64
)

// MoneyRange returns whether the amount is within [0, MaxMoney].
func MoneyRange(amount btcutil.Amount) bool {
	return amount >= 0 && amount <= MaxMoney
}

// mustMoneyRange panics when a consensus amount leaves the money range.  The
// subsidy schedule can not produce such a value with sane parameters.
func mustMoneyRange(amount btcutil.Amount, height int32) btcutil.Amount {
	if !MoneyRange(amount) {
		panic(fmt.Sprintf("block subsidy %d at height %d out of range",
			int64(amount), height))
	}
	return amount
}

// CalcBlockSubsidy returns the subsidy amount a block at the provided height
// should have.  This is mainly used for determining how much the coinbase for
// newly generated blocks awards as well as validating the coinbase for blocks
// has the expected value.
//
// The subsidy ramps up linearly during the slow start interval, if any, and
// is halved every halving interval afterwards.  Once Blossom activates each
// block pays the subsidy scaled by the shorter target spacing.
func CalcBlockSubsidy(height int32, params *chaincfg.Params) btcutil.Amount {
	if height < 0 {
		panic(fmt.Sprintf("block subsidy requested for negative height %d",
			height))
	}

	subsidy := InitialSubsidy
	slowStart := params.SubsidySlowStartInterval
	switch {
	case height < params.SubsidySlowStartShift():
		subsidy /= btcutil.Amount(slowStart)
		subsidy *= btcutil.Amount(height)
		return mustMoneyRange(subsidy, height)

	case height < slowStart:
		subsidy /= btcutil.Amount(slowStart)
		subsidy *= btcutil.Amount(height + 1)
		return mustMoneyRange(subsidy, height)
	}

	halvings := params.Halving(height)
	if halvings >= maxHalvings {
		return 0
	}

	if params.IsUpgradeActive(height, chaincfg.UpgradeBlossom) {
		subsidy /= btcutil.Amount(params.BlossomPowTargetSpacingRatio())
	}
	subsidy >>= uint(halvings)

	return mustMoneyRange(subsidy, height)
}

// CalcCommunityFee returns the community fee owed by a block at the given
// height.  It is zero outside (CommunityFeeStartHeight,
// CommunityFeeLastHeight].
func CalcCommunityFee(height int32, params *chaincfg.Params) btcutil.Amount {
	if !params.IsCommunityFeeHeight(height) {
		return 0
	}
	return CalcBlockSubsidy(height, params) * communityFeePercent / 100
}

// activeFundingStreams returns the indexes of the funding streams that pay at
// the given height, in index order.  Funding streams are disabled until
// Canopy activates.
func activeFundingStreams(height int32, params *chaincfg.Params) []chaincfg.FundingStreamIndex {
	if !params.IsUpgradeActive(height, chaincfg.UpgradeCanopy) {
		return nil
	}

	var active []chaincfg.FundingStreamIndex
	for idx, fs := range params.FundingStreams {
		if fs != nil && fs.IsActiveAt(height) {
			active = append(active, chaincfg.FundingStreamIndex(idx))
		}
	}
	return active
}

// ActiveFundingStreams returns the descriptions of the funding streams that
// pay at the given height, in stream index order.
func ActiveFundingStreams(height int32, params *chaincfg.Params) []chaincfg.FundingStreamInfo {
	active := activeFundingStreams(height, params)
	infos := make([]chaincfg.FundingStreamInfo, 0, len(active))
	for _, idx := range active {
		infos = append(infos, chaincfg.FundingStreamInfos[idx])
	}
	return infos
}

// FundingStreamElement is an output a coinbase must contain to pay a funding
// stream.
type FundingStreamElement struct {
	Script []byte
	Value  btcutil.Amount
}

// ActiveFundingStreamElements returns the outputs required of a coinbase at
// the given height.  Streams paying the same amount to the same script
// collapse into one element.  Elements are ordered by script, then value.
func ActiveFundingStreamElements(height int32, subsidy btcutil.Amount,
	params *chaincfg.Params) []FundingStreamElement {

	var elements []FundingStreamElement
	for _, idx := range activeFundingStreams(height, params) {
		elem := FundingStreamElement{
			Script: params.FundingStreams[idx].RecipientScript(params, height),
			Value:  chaincfg.FundingStreamInfos[idx].Value(subsidy),
		}

		duplicate := false
		for _, e := range elements {
			if e.Value == elem.Value && bytes.Equal(e.Script, elem.Script) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			elements = append(elements, elem)
		}
	}

	sort.Slice(elements, func(i, j int) bool {
		if c := bytes.Compare(elements[i].Script, elements[j].Script); c != 0 {
			return c < 0
		}
		return elements[i].Value < elements[j].Value
	})
	return elements
}

// FundingStreamValue is the amount a block pays one funding stream.
type FundingStreamValue struct {
	Index         chaincfg.FundingStreamIndex
	Recipient     string
	Specification string
	Value         btcutil.Amount
}

// SubsidySplit describes how the subsidy of a block is divided between the
// miner and the mandatory recipients.
type SubsidySplit struct {
	Subsidy        btcutil.Amount
	Miner          btcutil.Amount
	CommunityFee   btcutil.Amount
	FundingStreams []FundingStreamValue
}

// CalcBlockSubsidySplit divides the subsidy of the block at the given height.
// Once Canopy is active the funding streams replace the community fee.
func CalcBlockSubsidySplit(height int32, params *chaincfg.Params) *SubsidySplit {
	subsidy := CalcBlockSubsidy(height, params)
	split := &SubsidySplit{
		Subsidy: subsidy,
		Miner:   subsidy,
	}

	if params.IsUpgradeActive(height, chaincfg.UpgradeCanopy) {
		for _, idx := range activeFundingStreams(height, params) {
			info := &chaincfg.FundingStreamInfos[idx]
			value := info.Value(subsidy)
			split.Miner -= value
			split.FundingStreams = append(split.FundingStreams,
				FundingStreamValue{
					Index:         idx,
					Recipient:     info.Recipient,
					Specification: info.Specification,
					Value:         value,
				})
		}
		return split
	}

	split.CommunityFee = CalcCommunityFee(height, params)
	split.Miner -= split.CommunityFee
	return split
}

// CalcMinerSubsidy returns the part of the block subsidy that is left to the
// miner.
func CalcMinerSubsidy(height int32, params *chaincfg.Params) btcutil.Amount {
	return CalcBlockSubsidySplit(height, params).Miner
}
