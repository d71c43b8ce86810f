// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"errors"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/btcz/btczd/blockchain"
	"github.com/btcz/btczd/chaincfg"
	"github.com/btcz/btczd/wire"
)

// BlockVersion is the version of block headers built by the template
// generator.
const BlockVersion = 4

// ErrNoParent describes an error where a template was requested without the
// block it should extend.
var ErrNoParent = errors.New("block template requires a parent block")

// BlockTemplate houses a block that has yet to be solved along with additional
// details about the fees and the number of signature operations for each
// transaction in the block.
type BlockTemplate struct {
	// Block is a block that is ready to be solved by miners.  Thus, it is
	// completely valid with the exception of satisfying the proof-of-work
	// requirement.
	Block *wire.MsgBlock

	// Height is the height at which the block template connects to the
	// main chain.
	Height int32

	// Fees contains the total fees paid by the transactions in the
	// template, excluding the coinbase.
	Fees btcutil.Amount
}

// minimumBlockTime returns the earliest time a block extending prevNode may
// carry.  It is one second after the median time of the last several blocks
// per the chain consensus rules.
func minimumBlockTime(prevNode blockchain.HeaderCtx) time.Time {
	return blockchain.CalcPastMedianTime(prevNode).Add(time.Second)
}

// blockTime returns the later of the minimum block time and now, truncated to
// whole seconds as headers encode them.
func blockTime(prevNode blockchain.HeaderCtx, now time.Time) time.Time {
	newTimestamp := time.Unix(now.Unix(), 0)
	if minTimestamp := minimumBlockTime(prevNode); newTimestamp.Before(minTimestamp) {
		newTimestamp = minTimestamp
	}
	return newTimestamp
}

// NewBlockTemplate returns a new block template that is ready to be solved
// using the transactions provided.  The coinbase transaction pays the miner
// script and the recipients required at the new height.
//
// The timestamp is the later of the current time and one second after the
// median time past of prevNode.  The difficulty bits are those required for
// a block carrying that timestamp.
func NewBlockTemplate(params *chaincfg.Params, prevNode *blockchain.HeaderNode,
	minerScript []byte, txns []*btcwire.MsgTx, fees btcutil.Amount,
	now time.Time) (*BlockTemplate, error) {

	if prevNode == nil {
		return nil, ErrNoParent
	}

	nextBlockHeight := prevNode.Height() + 1
	coinbaseTx, err := CreateCoinbaseTx(params, nextBlockHeight,
		minerScript, fees)
	if err != nil {
		return nil, err
	}

	blockTxns := make([]*btcwire.MsgTx, 0, len(txns)+1)
	blockTxns = append(blockTxns, coinbaseTx)
	blockTxns = append(blockTxns, txns...)

	ts := blockTime(prevNode, now)
	header := wire.BlockHeader{
		Version:    BlockVersion,
		PrevBlock:  prevNode.Hash(),
		MerkleRoot: blockchain.CalcMerkleRoot(blockTxns),
		Timestamp:  ts,
		Bits:       blockchain.CalcNextRequiredDifficulty(prevNode, ts, params),
	}

	block := wire.NewMsgBlock(&header)
	for _, tx := range blockTxns {
		block.AddTransaction(tx)
	}

	log.Debugf("Created new block template (%d transactions, %v in fees, "+
		"target difficulty %08x) at height %d", len(blockTxns), fees,
		header.Bits, nextBlockHeight)

	return &BlockTemplate{
		Block:  block,
		Height: nextBlockHeight,
		Fees:   fees,
	}, nil
}

// UpdateBlockTime updates the timestamp in the header of the passed block to
// the current time while taking into account the median time of the last
// several blocks to ensure the new time is after that time per the chain
// consensus rules.  Finally, it will update the target difficulty if needed
// based on the new time for the test networks since their target difficulty
// can change based upon time.
func UpdateBlockTime(header *wire.BlockHeader, prevNode blockchain.HeaderCtx,
	now time.Time, params *chaincfg.Params) {

	header.Timestamp = blockTime(prevNode, now)

	// Recalculate the difficulty if running on a network that requires it.
	if params.PowAllowMinDifficultyBlocks {
		header.Bits = blockchain.CalcNextRequiredDifficulty(prevNode,
			header.Timestamp, params)
	}
}
