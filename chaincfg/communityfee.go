// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// preBlossomHeight expresses a height in pre-Blossom block units so that the
// address rotation keeps the same wall-clock cadence after Blossom halves the
// block spacing.
func (p *Params) preBlossomHeight(height int32) int64 {
	if !p.IsUpgradeActive(height, UpgradeBlossom) {
		return int64(height)
	}
	activation, _ := p.Upgrades[UpgradeBlossom].Activation.Height()
	act := int64(activation)
	return act + (int64(height)-act)/p.BlossomPowTargetSpacingRatio()
}

// CommunityFeeAddressChangeInterval returns the number of (pre-Blossom)
// blocks each community fee address is used for.
func (p *Params) CommunityFeeAddressChangeInterval() int64 {
	n := int64(len(p.CommunityFeeAddresses))
	return (p.preBlossomHeight(p.CommunityFeeLastHeight) + n) / n
}

// CommunityFeeAddressAtHeight returns the address that receives the community
// fee of the block at the given height.  The height must satisfy
// 0 < height <= CommunityFeeLastHeight.
func (p *Params) CommunityFeeAddressAtHeight(height int32) string {
	if height <= 0 || height > p.CommunityFeeLastHeight {
		panic(fmt.Sprintf("community fee address requested for height "+
			"%d outside (0, %d]", height, p.CommunityFeeLastHeight))
	}

	i := p.preBlossomHeight(height) / p.CommunityFeeAddressChangeInterval()
	return p.CommunityFeeAddresses[i]
}

// CommunityFeeScriptAtHeight returns the P2SH output script that receives the
// community fee of the block at the given height.  The same height
// precondition as CommunityFeeAddressAtHeight applies.
func (p *Params) CommunityFeeScriptAtHeight(height int32) []byte {
	addr := p.CommunityFeeAddressAtHeight(height)
	decoded, err := p.DecodeAddress(addr)
	if err != nil {
		panic(fmt.Sprintf("invalid community fee address %s: %v", addr, err))
	}
	if decoded.Type != ScriptHashAddress {
		panic(fmt.Sprintf("community fee address %s is not P2SH", addr))
	}

	script, err := decoded.Script()
	if err != nil {
		panic(err)
	}
	return script
}

// CommunityFeeAddressAtIndex returns the i'th community fee address.
func (p *Params) CommunityFeeAddressAtIndex(i int) string {
	if i < 0 || i >= len(p.CommunityFeeAddresses) {
		panic(fmt.Sprintf("community fee address index %d out of "+
			"range [0, %d)", i, len(p.CommunityFeeAddresses)))
	}
	return p.CommunityFeeAddresses[i]
}
