// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	btcwire "github.com/btcsuite/btcd/wire"
	"github.com/davecgh/go-spew/spew"
)

func TestBlockHeaderSerialize(t *testing.T) {
	tests := []struct {
		header BlockHeader
	}{
		{
			header: BlockHeader{
				Version:   4,
				Timestamp: time.Unix(1478403829, 0),
				Bits:      0x1f07ffff,
				Solution:  []byte{},
			},
		},
		{
			header: BlockHeader{
				Version:          4,
				PrevBlock:        chainhash.HashH([]byte{1}),
				MerkleRoot:       chainhash.HashH([]byte{2}),
				FinalSaplingRoot: chainhash.HashH([]byte{3}),
				Timestamp:        time.Unix(1722854257, 0),
				Bits:             0x1c05a3f4,
				Nonce:            chainhash.HashH([]byte{4}),
				Solution:         bytes.Repeat([]byte{0xab}, 100),
			},
		},
		{
			header: BlockHeader{
				Version:   4,
				Timestamp: time.Unix(1482971059, 0),
				Bits:      0x200f0f0f,
				Solution:  bytes.Repeat([]byte{0x5a}, MaxSolutionSize),
			},
		},
	}

	for i, test := range tests {
		var buf bytes.Buffer
		err := test.header.Serialize(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if buf.Len() != test.header.SerializeSize() {
			t.Fatalf("test %d: expected size %v, got %v", i,
				test.header.SerializeSize(), buf.Len())
		}

		var got BlockHeader
		err = got.Deserialize(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, test.header) {
			t.Fatalf("test %d: expected %v, got %v", i,
				spew.Sdump(test.header), spew.Sdump(got))
		}
		if got.BlockHash() != test.header.BlockHash() {
			t.Fatalf("test %d: block hash mismatch", i)
		}
	}
}

func TestBlockHeaderLayout(t *testing.T) {
	header := BlockHeader{
		Version:   4,
		Timestamp: time.Unix(0x01020304, 0),
		Bits:      0x1f07ffff,
		Solution:  []byte{0xde, 0xad},
	}
	header.Nonce[0] = 0x09

	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		t.Fatal(err)
	}
	raw := buf.Bytes()

	want := map[int]string{
		0:   "04000000",
		100: "04030201",
		104: "ffff071f",
		108: "09",
		140: "02dead",
	}
	for offset, hexStr := range want {
		expected, _ := hex.DecodeString(hexStr)
		got := raw[offset : offset+len(expected)]
		if !bytes.Equal(got, expected) {
			t.Fatalf("offset %d: expected %x, got %x", offset,
				expected, got)
		}
	}
}

func TestBlockHeaderOversizedSolution(t *testing.T) {
	header := BlockHeader{
		Timestamp: time.Unix(0, 0),
		Solution:  make([]byte, MaxSolutionSize+1),
	}

	var buf bytes.Buffer
	if err := header.Serialize(&buf); err != nil {
		t.Fatal(err)
	}

	var got BlockHeader
	if err := got.Deserialize(&buf); err == nil {
		t.Fatal("expected oversized solution to be rejected")
	}
}

func TestMsgBlock(t *testing.T) {
	header := BlockHeader{Version: 4, Timestamp: time.Unix(0, 0)}
	block := NewMsgBlock(&header)
	if len(block.Transactions) != 0 {
		t.Fatalf("expected no transactions, got %d",
			len(block.Transactions))
	}

	block.AddTransaction(btcwire.NewMsgTx(1))
	if len(block.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d",
			len(block.Transactions))
	}
	if block.BlockHash() != header.BlockHash() {
		t.Fatal("block hash must be the header hash")
	}
}
