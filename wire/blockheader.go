// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
)

// MaxSolutionSize is the largest Equihash solution a header may carry.  It
// matches the (200, 9) parameter set.
const MaxSolutionSize = 1344

// blockHeaderFixedLen is the number of bytes of a header before the solution:
// Version 4 bytes + PrevBlock, MerkleRoot and FinalSaplingRoot 32 bytes each
// + Timestamp 4 bytes + Bits 4 bytes + Nonce 32 bytes.
const blockHeaderFixedLen = 4 + chainhash.HashSize*3 + 4 + 4 + chainhash.HashSize

// BlockHeader defines information about a block and is used in the BitcoinZ
// block (MsgBlock) message.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Root of the Sapling note commitment tree after the block.  It is
	// reserved and zero before Sapling.
	FinalSaplingRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// 256-bit nonce used to generate the block.
	Nonce chainhash.Hash

	// Equihash solution.
	Solution []byte
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, h.SerializeSize()))
	_ = h.Serialize(buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// SerializeSize returns the number of bytes it would take to serialize the
// header.
func (h *BlockHeader) SerializeSize() int {
	return blockHeaderFixedLen +
		btcwire.VarIntSerializeSize(uint64(len(h.Solution))) +
		len(h.Solution)
}

// Serialize encodes the header to w.
func (h *BlockHeader) Serialize(w io.Writer) error {
	var fixed [blockHeaderFixedLen]byte
	binary.LittleEndian.PutUint32(fixed[0:4], uint32(h.Version))
	copy(fixed[4:36], h.PrevBlock[:])
	copy(fixed[36:68], h.MerkleRoot[:])
	copy(fixed[68:100], h.FinalSaplingRoot[:])
	binary.LittleEndian.PutUint32(fixed[100:104], uint32(h.Timestamp.Unix()))
	binary.LittleEndian.PutUint32(fixed[104:108], h.Bits)
	copy(fixed[108:140], h.Nonce[:])

	if _, err := w.Write(fixed[:]); err != nil {
		return err
	}
	return btcwire.WriteVarBytes(w, 0, h.Solution)
}

// Deserialize decodes a header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	var fixed [blockHeaderFixedLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return err
	}

	h.Version = int32(binary.LittleEndian.Uint32(fixed[0:4]))
	copy(h.PrevBlock[:], fixed[4:36])
	copy(h.MerkleRoot[:], fixed[36:68])
	copy(h.FinalSaplingRoot[:], fixed[68:100])
	h.Timestamp = time.Unix(int64(binary.LittleEndian.Uint32(fixed[100:104])), 0)
	h.Bits = binary.LittleEndian.Uint32(fixed[104:108])
	copy(h.Nonce[:], fixed[108:140])

	solution, err := btcwire.ReadVarBytes(r, 0, MaxSolutionSize, "solution")
	if err != nil {
		return err
	}
	h.Solution = solution
	return nil
}
