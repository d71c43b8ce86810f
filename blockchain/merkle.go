// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	btcdchain "github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
)

// CalcMerkleRoot returns the merkle root committing to the transactions.  An
// empty list yields the zero hash.
func CalcMerkleRoot(txns []*btcwire.MsgTx) chainhash.Hash {
	if len(txns) == 0 {
		return chainhash.Hash{}
	}

	utxns := make([]*btcutil.Tx, 0, len(txns))
	for _, tx := range txns {
		utxns = append(utxns, btcutil.NewTx(tx))
	}
	merkles := btcdchain.BuildMerkleTreeStore(utxns, false)
	return *merkles[len(merkles)-1]
}
