// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/btcz/btczd/blockchain"
	"github.com/btcz/btczd/chaincfg"
)

const (
	// CoinbaseTxVersion is the version of coinbase transactions built by
	// the template generator.
	CoinbaseTxVersion = 1
)

// standardCoinbaseScript returns a standard script suitable for use as the
// signature script of the coinbase transaction of a new block.  It starts
// with the block height that is required by version 2 blocks followed by an
// OP_0.
func standardCoinbaseScript(nextBlockHeight int32) ([]byte, error) {
	return txscript.NewScriptBuilder().AddInt64(int64(nextBlockHeight)).
		AddOp(txscript.OP_0).Script()
}

// CreateCoinbaseTx returns a coinbase transaction paying the block subsidy
// and fees to the miner script, along with the outputs the consensus rules
// require at the given height.  Before Canopy that is the community fee
// output, afterwards one output per funding stream element.
//
// The miner output is always the first output.
func CreateCoinbaseTx(params *chaincfg.Params, nextBlockHeight int32,
	minerScript []byte, fees btcutil.Amount) (*btcwire.MsgTx, error) {

	coinbaseScript, err := standardCoinbaseScript(nextBlockHeight)
	if err != nil {
		return nil, err
	}

	subsidy := blockchain.CalcBlockSubsidy(nextBlockHeight, params)
	minerValue := subsidy
	var extraOutputs []*btcwire.TxOut

	if params.IsUpgradeActive(nextBlockHeight, chaincfg.UpgradeCanopy) {
		elements := blockchain.ActiveFundingStreamElements(
			nextBlockHeight, subsidy, params)
		for _, elem := range elements {
			minerValue -= elem.Value
			extraOutputs = append(extraOutputs,
				btcwire.NewTxOut(int64(elem.Value), elem.Script))
		}
	} else if params.IsCommunityFeeHeight(nextBlockHeight) {
		fee := blockchain.CalcCommunityFee(nextBlockHeight, params)
		minerValue -= fee
		extraOutputs = append(extraOutputs, btcwire.NewTxOut(int64(fee),
			params.CommunityFeeScriptAtHeight(nextBlockHeight)))

		log.Debugf("Paying community fee of %v to %s at height %d", fee,
			params.CommunityFeeAddressAtHeight(nextBlockHeight),
			nextBlockHeight)
	}

	tx := btcwire.NewMsgTx(CoinbaseTxVersion)
	tx.AddTxIn(&btcwire.TxIn{
		// Coinbase transactions have no inputs, so previous outpoint is
		// zero hash and max index.
		PreviousOutPoint: *btcwire.NewOutPoint(&chainhash.Hash{},
			btcwire.MaxPrevOutIndex),
		SignatureScript: coinbaseScript,
		Sequence:        btcwire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(btcwire.NewTxOut(int64(minerValue+fees), minerScript))
	for _, txOut := range extraOutputs {
		tx.AddTxOut(txOut)
	}

	log.Debugf("Created coinbase for height %d paying %v to the miner "+
		"with %d additional outputs", nextBlockHeight, minerValue+fees,
		len(extraOutputs))

	return tx, nil
}
