// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcz/btczd/wire"
)

// HeaderCtx is the view of a chain entry needed by the difficulty and median
// time calculations.  Parent must return a nil interface, not a typed nil,
// for the first entry of a chain.
type HeaderCtx interface {
	// Height returns the height of the entry.
	Height() int32

	// Bits returns the compact difficulty target of the entry.
	Bits() uint32

	// Timestamp returns the header time as seconds since the epoch.
	Timestamp() int64

	// Parent returns the previous entry, or nil.
	Parent() HeaderCtx
}

// HeaderNode is an in-memory block header chain entry.  It implements
// HeaderCtx.
type HeaderNode struct {
	// parent is the parent block for this node.
	parent *HeaderNode

	// hash is the double sha 256 of the block header.
	hash chainhash.Hash

	// height is the position in the block chain.
	height int32

	// Some fields from block headers to aid in best chain selection and
	// reconstructing headers from memory.
	bits      uint32
	timestamp int64
}

// NewHeaderNode returns a chain entry for the header extending parent.  A nil
// parent makes the header the genesis entry at height 0.
func NewHeaderNode(header *wire.BlockHeader, parent *HeaderNode) *HeaderNode {
	node := &HeaderNode{
		parent:    parent,
		hash:      header.BlockHash(),
		bits:      header.Bits,
		timestamp: header.Timestamp.Unix(),
	}
	if parent != nil {
		node.height = parent.height + 1
	}
	return node
}

// Hash returns the block hash of the entry.
func (node *HeaderNode) Hash() chainhash.Hash {
	return node.hash
}

// Height returns the height of the entry.
func (node *HeaderNode) Height() int32 {
	return node.height
}

// Bits returns the compact difficulty target of the entry.
func (node *HeaderNode) Bits() uint32 {
	return node.bits
}

// Timestamp returns the header time of the entry.
func (node *HeaderNode) Timestamp() int64 {
	return node.timestamp
}

// Parent returns the previous entry or nil for the first entry.
func (node *HeaderNode) Parent() HeaderCtx {
	if node.parent == nil {
		return nil
	}
	return node.parent
}

// Ancestor returns the ancestor block node at the provided height by following
// the chain backwards from this node.  The returned block will be nil when a
// height is requested that is after the height of the passed node or is less
// than zero.
func (node *HeaderNode) Ancestor(height int32) *HeaderNode {
	if height < 0 || height > node.height {
		return nil
	}

	n := node
	for ; n != nil && n.height != height; n = n.parent {
		// Intentionally left blank
	}

	return n
}
