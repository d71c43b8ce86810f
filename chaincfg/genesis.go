// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/btcz/btczd/wire"
	"golang.org/x/crypto/blake2s"
)

// genesisPhrase is committed to by the genesis coinbase through its blake2s
// digest.
const genesisPhrase = "BitcoinZ - Your Financial Freedom. Dedicated to The " +
	"Purest Son of Liberty - Thaddeus Kosciuszko. BTC #484410 - " +
	"0000000000000000000c6a5f221ebeb77437cbab649d990facd0e42a24ee6231"

// genesisPubKey is the key the zero-value genesis output pays to.
const genesisPubKey = "04678afdb0fe5548271967f1a67130b7105cd6a828e03909a6" +
	"7962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c" +
	"702b6bf11d5f"

// genesisBlockVersion is the header version of every genesis block.
const genesisBlockVersion = 4

// genesisTimestamp returns "BitcoinZ" followed by the hex blake2s-256 digest
// of the genesis phrase.
func genesisTimestamp() []byte {
	digest := blake2s.Sum256([]byte(genesisPhrase))
	return []byte("BitcoinZ" + hex.EncodeToString(digest[:]))
}

// genesisCoinbaseTx returns the coinbase transaction shared by the genesis
// blocks of all networks.
func genesisCoinbaseTx() *btcwire.MsgTx {
	timestamp := genesisTimestamp()

	// 486604799 and 4 are pushed as data, followed by the timestamp.
	sigScript := make([]byte, 0, 8+len(timestamp))
	sigScript = append(sigScript, 0x04, 0xff, 0xff, 0x00, 0x1d, 0x01, 0x04,
		byte(len(timestamp)))
	sigScript = append(sigScript, timestamp...)

	pubKey, err := hex.DecodeString(genesisPubKey)
	if err != nil {
		panic(err)
	}
	pkScript, err := txscript.NewScriptBuilder().AddData(pubKey).
		AddOp(txscript.OP_CHECKSIG).Script()
	if err != nil {
		panic(err)
	}

	tx := btcwire.NewMsgTx(1)
	prevOut := btcwire.NewOutPoint(&chainhash.Hash{}, btcwire.MaxPrevOutIndex)
	tx.AddTxIn(btcwire.NewTxIn(prevOut, sigScript, nil))
	tx.AddTxOut(btcwire.NewTxOut(0, pkScript))
	return tx
}

// newGenesisBlock builds a genesis block from the network specific header
// fields.  The nonce is a big-endian hex string and the solution plain hex.
func newGenesisBlock(timestamp int64, nonce string, solution string, bits uint32) *wire.MsgBlock {
	sol, err := hex.DecodeString(solution)
	if err != nil {
		panic(err)
	}

	coinbase := genesisCoinbaseTx()
	block := wire.NewMsgBlock(&wire.BlockHeader{
		Version: genesisBlockVersion,

		// A block with a single transaction has that transaction's
		// hash as its merkle root.
		MerkleRoot: coinbase.TxHash(),
		Timestamp:  time.Unix(timestamp, 0),
		Bits:       bits,
		Nonce:      *newHashFromStr(nonce),
		Solution:   sol,
	})
	block.AddTransaction(coinbase)
	return block
}
