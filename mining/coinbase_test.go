// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"testing"

	btcdchain "github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcz/btczd/blockchain"
	"github.com/btcz/btczd/chaincfg"
	"github.com/stretchr/testify/require"
)

var minerScript = []byte{txscript.OP_TRUE}

func TestCreateCoinbaseTx(t *testing.T) {
	regTest := chaincfg.RegTestParams()

	tests := []struct {
		name       string
		params     *chaincfg.Params
		height     int32
		fees       btcutil.Amount
		numOutputs int
	}{
		{"no mandatory outputs", chaincfg.MainNetParams(), 1000, 0, 1},
		{"with fees", chaincfg.MainNetParams(), 1000, 12345, 1},
		{"community fee", regTest, 120, 1000, 2},
		{"community fee last height", regTest, 150, 0, 2},
		{"after community fee", regTest, 151, 0, 1},
		{"funding streams", regTest, 300, 1000, 4},
		{"funding streams ended", regTest, 600, 0, 1},
	}

	for _, test := range tests {
		tx, err := CreateCoinbaseTx(test.params, test.height, minerScript,
			test.fees)
		require.NoError(t, err, test.name)
		require.True(t, btcdchain.IsCoinBaseTx(tx), test.name)
		require.Len(t, tx.TxOut, test.numOutputs, test.name)
		require.Equal(t, minerScript, tx.TxOut[0].PkScript, test.name)

		// The coinbase must claim exactly the subsidy and fees.
		var total int64
		for _, txOut := range tx.TxOut {
			total += txOut.Value
		}
		subsidy := blockchain.CalcBlockSubsidy(test.height, test.params)
		require.Equal(t, int64(subsidy+test.fees), total, test.name)

		require.NoError(t, blockchain.CheckCoinbaseRewards(tx, test.height,
			test.params), test.name)
		require.NoError(t, blockchain.CheckCoinbaseValue(tx, test.height,
			test.fees, test.params), test.name)

		miner := blockchain.CalcMinerSubsidy(test.height, test.params)
		if test.params.IsUpgradeActive(test.height, chaincfg.UpgradeCanopy) {
			// Elements are deduplicated, so recompute what was paid.
			miner = subsidy
			elements := blockchain.ActiveFundingStreamElements(test.height,
				subsidy, test.params)
			for _, elem := range elements {
				miner -= elem.Value
			}
		}
		require.Equal(t, int64(miner+test.fees), tx.TxOut[0].Value, test.name)
	}
}

func TestCoinbaseScriptHeight(t *testing.T) {
	params := chaincfg.MainNetParams()
	for _, height := range []int32{1, 16, 17, 1000, 1680000} {
		tx, err := CreateCoinbaseTx(params, height, minerScript, 0)
		require.NoError(t, err)

		want, err := txscript.NewScriptBuilder().
			AddInt64(int64(height)).Script()
		require.NoError(t, err)

		sigScript := tx.TxIn[0].SignatureScript
		require.Equal(t, want, sigScript[:len(want)])
		require.Equal(t, byte(txscript.OP_0), sigScript[len(sigScript)-1])
	}
}
