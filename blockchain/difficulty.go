// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math/big"
	"slices"
	"time"

	btcdchain "github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcz/btczd/chaincfg"
)

const (
	// medianTimeBlocks is the number of previous blocks which should be
	// used to calculate the median time used to validate block timestamps.
	medianTimeBlocks = 11

	// minDifficultyDelayFactor is the number of target spacings after
	// which a block may use the minimum difficulty on networks that allow
	// it.
	minDifficultyDelayFactor = 6
)

// CalcPastMedianTime calculates the median time of the previous few blocks
// prior to, and including, the passed block node.  The node must not be nil.
func CalcPastMedianTime(node HeaderCtx) time.Time {
	// Create a slice of the previous few block timestamps used to calculate
	// the median per the number defined by the constant medianTimeBlocks.
	timestamps := make([]int64, 0, medianTimeBlocks)
	for iterNode := node; iterNode != nil && len(timestamps) < medianTimeBlocks; iterNode = iterNode.Parent() {
		timestamps = append(timestamps, iterNode.Timestamp())
	}

	slices.Sort(timestamps)

	// NOTE: With an even number of timestamps the later of the two middle
	// values is used.  This matches the reference client.
	return time.Unix(timestamps[len(timestamps)/2], 0)
}

// adjustedTimespan dampens the measured timespan of the averaging window
// towards the target timespan and limits it to
// [MinActualTimespan, MaxActualTimespan].  Median times are used for the
// measurement to prevent time-warp attacks.
func adjustedTimespan(actualTimespan int64, params *chaincfg.Params,
	nextHeight int32) int64 {

	averagingWindowTimespan := params.AveragingWindowTimespan(nextHeight)
	minActualTimespan := params.MinActualTimespan(nextHeight)
	maxActualTimespan := params.MaxActualTimespan(nextHeight)

	log.Tracef("Window timespan %d before dampening", actualTimespan)
	actualTimespan = averagingWindowTimespan +
		(actualTimespan-averagingWindowTimespan)/4
	if actualTimespan < minActualTimespan {
		actualTimespan = minActualTimespan
	} else if actualTimespan > maxActualTimespan {
		actualTimespan = maxActualTimespan
	}
	return actualTimespan
}

// CalculateNextWorkRequired scales the average target of the averaging window
// by the dampened, clamped duration of the window.  The timestamps are the
// median times past of the last block and of the block preceding the window.
// The result is capped at the network's proof-of-work limit.
func CalculateNextWorkRequired(avgTarget *big.Int, lastBlockTime, firstBlockTime int64,
	params *chaincfg.Params, nextHeight int32) uint32 {

	averagingWindowTimespan := params.AveragingWindowTimespan(nextHeight)
	actualTimespan := adjustedTimespan(lastBlockTime-firstBlockTime,
		params, nextHeight)

	newTarget := new(big.Int).Div(avgTarget, big.NewInt(averagingWindowTimespan))
	newTarget.Mul(newTarget, big.NewInt(actualTimespan))
	if newTarget.Cmp(params.PowLimit) > 0 {
		newTarget.Set(params.PowLimit)
	}
	newTargetBits := btcdchain.BigToCompact(newTarget)

	log.Debugf("Difficulty retarget at block height %d", nextHeight)
	log.Debugf("Average target %064x", avgTarget)
	log.Debugf("Actual timespan %d, adjusted timespan %d, target timespan %d",
		lastBlockTime-firstBlockTime, actualTimespan, averagingWindowTimespan)
	log.Debugf("New target %08x (%064x)", newTargetBits,
		btcdchain.CompactToBig(newTargetBits))

	return newTargetBits
}

// CalcNextRequiredDifficulty calculates the required difficulty for the block
// after the passed last block node.  A nil last node means the next block is
// the genesis block.  The time of the candidate block only matters on
// networks that allow minimum difficulty blocks; pass the zero time when no
// candidate exists.
func CalcNextRequiredDifficulty(lastNode HeaderCtx, newBlockTime time.Time,
	params *chaincfg.Params) uint32 {

	// Genesis block.
	if lastNode == nil {
		return params.PowLimitBits
	}

	// A block may be mined at the minimum difficulty once it is later
	// than six target spacings after the previous block.
	if params.PowAllowMinDifficultyBlocks && !newBlockTime.IsZero() &&
		lastNode.Height() >= params.PowAllowMinDifficultyBlocksAfterHeight {

		spacing := params.PowTargetSpacing(lastNode.Height() + 1)
		allowMinTime := lastNode.Timestamp() + spacing*minDifficultyDelayFactor
		if newBlockTime.Unix() > allowMinTime {
			log.Tracef("Minimum difficulty allowed for block after %d",
				lastNode.Height())
			return params.PowLimitBits
		}
	}

	// Sum the targets of the averaging window.  firstNode ends up at the
	// block before the window.
	total := new(big.Int)
	firstNode := lastNode
	for i := int64(0); firstNode != nil && i < params.PowAveragingWindow; i++ {
		total.Add(total, btcdchain.CompactToBig(firstNode.Bits()))
		firstNode = firstNode.Parent()
	}

	// Not enough history yet.
	if firstNode == nil {
		return params.PowLimitBits
	}

	avgTarget := total.Div(total, big.NewInt(params.PowAveragingWindow))
	return CalculateNextWorkRequired(avgTarget,
		CalcPastMedianTime(lastNode).Unix(),
		CalcPastMedianTime(firstNode).Unix(),
		params, lastNode.Height()+1)
}

// CheckProofOfWork ensures the target difficulty represented by bits is in
// the valid range and the hash is at or below it.
func CheckProofOfWork(hash *chainhash.Hash, bits uint32, params *chaincfg.Params) error {
	// The target difficulty must be larger than zero.
	target := btcdchain.CompactToBig(bits)
	if target.Sign() <= 0 {
		str := fmt.Sprintf("block target difficulty of %064x is too low",
			target)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The target difficulty must be less than the maximum allowed.
	if target.Cmp(params.PowLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is "+
			"higher than max of %064x", target, params.PowLimit)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The block hash must be less than the claimed target.
	hashNum := btcdchain.HashToBig(hash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than "+
			"expected max of %064x", hashNum, target)
		return ruleError(ErrHighHash, str)
	}

	return nil
}

// CalcWork calculates a work value from difficulty bits.
func CalcWork(bits uint32) *big.Int {
	return btcdchain.CalcWork(bits)
}
