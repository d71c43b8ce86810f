// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"bytes"
	"fmt"
	"time"

	btcdchain "github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/btcz/btczd/chaincfg"
	"github.com/btcz/btczd/wire"
)

// CheckEquihashSolution ensures the solution of the header has the size of an
// Equihash parameter set that is valid at the given height.  Verifying the
// solution itself is the job of the solver.
func CheckEquihashSolution(header *wire.BlockHeader, height int32, params *chaincfg.Params) error {
	if !params.CheckEquihashSolutionSize(len(header.Solution), height) {
		str := fmt.Sprintf("equihash solution of %d bytes is invalid "+
			"at height %d, valid parameters are %v",
			len(header.Solution), height,
			params.ValidEquihashParameterList(height))
		return ruleError(ErrInvalidSolutionSize, str)
	}
	return nil
}

// CheckBlockTimestamp ensures the header time is not further in the future
// than the window in effect at the given height allows.
func CheckBlockTimestamp(header *wire.BlockHeader, height int32, now time.Time,
	params *chaincfg.Params) error {

	maxTimestamp := now.Add(params.FutureBlockTimeWindow(height))
	if header.Timestamp.After(maxTimestamp) {
		str := fmt.Sprintf("block timestamp of %v is too far in the "+
			"future, max allowed at height %d is %v", header.Timestamp,
			height, maxTimestamp)
		return ruleError(ErrTimeTooNew, str)
	}
	return nil
}

// CheckCheckpoint ensures a block at a checkpoint height has the checkpointed
// hash.  Heights without a checkpoint always pass.
func CheckCheckpoint(height int32, hash *chainhash.Hash, params *chaincfg.Params) error {
	checkpointHash, ok := params.Checkpoints.CheckpointHash(height)
	if !ok {
		return nil
	}
	if !checkpointHash.IsEqual(hash) {
		str := fmt.Sprintf("block at height %d does not match "+
			"checkpoint hash - got %v, expected %v", height, hash,
			checkpointHash)
		return ruleError(ErrBadCheckpoint, str)
	}
	return nil
}

// CheckBlockHeader performs the checks on a header that depend on the chain it
// extends.  A nil prevNode means the header is a genesis header, which is
// accepted only when it is the network's genesis header.
func CheckBlockHeader(header *wire.BlockHeader, prevNode HeaderCtx, now time.Time,
	params *chaincfg.Params) error {

	if prevNode == nil {
		hash := header.BlockHash()
		if !hash.IsEqual(params.GenesisHash) {
			str := fmt.Sprintf("genesis block hash of %v does not "+
				"match expected %v", hash, params.GenesisHash)
			return ruleError(ErrBadCheckpoint, str)
		}
		return nil
	}
	height := prevNode.Height() + 1

	expectedBits := CalcNextRequiredDifficulty(prevNode, header.Timestamp, params)
	if header.Bits != expectedBits {
		str := fmt.Sprintf("block difficulty of %08x is not the "+
			"expected value of %08x", header.Bits, expectedBits)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	medianTime := CalcPastMedianTime(prevNode)
	if !header.Timestamp.After(medianTime) {
		str := fmt.Sprintf("block timestamp of %v is not after "+
			"expected %v", header.Timestamp, medianTime)
		return ruleError(ErrTimeTooOld, str)
	}

	if err := CheckBlockTimestamp(header, height, now, params); err != nil {
		return err
	}
	if err := CheckEquihashSolution(header, height, params); err != nil {
		return err
	}

	hash := header.BlockHash()
	if err := CheckCheckpoint(height, &hash, params); err != nil {
		return err
	}
	return CheckProofOfWork(&hash, header.Bits, params)
}

// hasOutput returns whether the transaction pays exactly value to script.
func hasOutput(tx *btcwire.MsgTx, script []byte, value btcutil.Amount) bool {
	for _, txOut := range tx.TxOut {
		if txOut.Value == int64(value) && bytes.Equal(txOut.PkScript, script) {
			return true
		}
	}
	return false
}

// CheckCoinbaseRewards ensures the coinbase of a block at the given height pays
// the mandatory recipients.  Once Canopy is active every funding stream element
// must be paid, before that the community fee must be paid within its range.
func CheckCoinbaseRewards(tx *btcwire.MsgTx, height int32, params *chaincfg.Params) error {
	subsidy := CalcBlockSubsidy(height, params)

	if params.IsUpgradeActive(height, chaincfg.UpgradeCanopy) {
		for _, elem := range ActiveFundingStreamElements(height, subsidy, params) {
			if !hasOutput(tx, elem.Script, elem.Value) {
				str := fmt.Sprintf("coinbase at height %d does not "+
					"pay %v to funding stream script %x", height,
					elem.Value, elem.Script)
				return ruleError(ErrFundingStreamMissing, str)
			}
		}
		return nil
	}

	if !params.IsCommunityFeeHeight(height) {
		return nil
	}

	script := params.CommunityFeeScriptAtHeight(height)
	fee := CalcCommunityFee(height, params)
	if !hasOutput(tx, script, fee) {
		str := fmt.Sprintf("coinbase at height %d does not pay the "+
			"community fee of %v to %s", height, fee,
			params.CommunityFeeAddressAtHeight(height))
		return ruleError(ErrCommunityFeeMissing, str)
	}
	return nil
}

// CheckCoinbaseValue ensures the coinbase does not claim more than the block
// subsidy plus the fees of the block.
func CheckCoinbaseValue(tx *btcwire.MsgTx, height int32, fees btcutil.Amount,
	params *chaincfg.Params) error {

	var totalOut btcutil.Amount
	for _, txOut := range tx.TxOut {
		value := btcutil.Amount(txOut.Value)
		if !MoneyRange(value) {
			str := fmt.Sprintf("coinbase output value of %d is "+
				"outside the valid range", txOut.Value)
			return ruleError(ErrBadCoinbaseValue, str)
		}
		totalOut += value
		if !MoneyRange(totalOut) {
			str := fmt.Sprintf("total coinbase output value of %v "+
				"exceeds max allowed value", totalOut)
			return ruleError(ErrBadCoinbaseValue, str)
		}
	}

	expected := CalcBlockSubsidy(height, params) + fees
	if totalOut > expected {
		str := fmt.Sprintf("coinbase transaction for block pays %v "+
			"which is more than expected value of %v", totalOut,
			expected)
		return ruleError(ErrBadCoinbaseValue, str)
	}
	return nil
}

// CheckBlockCoinbase validates the coinbase of a block at the given height
// along with the merkle root committing to the block's transactions.
func CheckBlockCoinbase(block *wire.MsgBlock, height int32, fees btcutil.Amount,
	params *chaincfg.Params) error {

	if len(block.Transactions) == 0 ||
		!btcdchain.IsCoinBaseTx(block.Transactions[0]) {

		return ruleError(ErrFirstTxNotCoinbase, "first transaction in "+
			"block is not a coinbase")
	}

	merkleRoot := CalcMerkleRoot(block.Transactions)
	if !block.Header.MerkleRoot.IsEqual(&merkleRoot) {
		str := fmt.Sprintf("block merkle root is invalid - block "+
			"header indicates %v, but calculated value is %v",
			block.Header.MerkleRoot, merkleRoot)
		return ruleError(ErrBadMerkleRoot, str)
	}

	coinbase := block.Transactions[0]
	if err := CheckCoinbaseRewards(coinbase, height, params); err != nil {
		return err
	}
	return CheckCoinbaseValue(coinbase, height, fees, params)
}
