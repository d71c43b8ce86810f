// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// UpgradeIndex identifies a network upgrade.  The ordering is significant:
// upgrades must activate in the order they are declared.
type UpgradeIndex uint32

// These constants define the known network upgrades in activation order.
const (
	BaseSprout UpgradeIndex = iota
	UpgradeTestDummy
	UpgradeOverwinter
	UpgradeSapling
	UpgradeBlossom
	UpgradeCanopy

	// MaxNetworkUpgrades is the number of known network upgrades.  It is
	// not a valid upgrade index.
	MaxNetworkUpgrades
)

// String returns the name of the upgrade.
func (idx UpgradeIndex) String() string {
	if idx >= MaxNetworkUpgrades {
		return fmt.Sprintf("Unknown UpgradeIndex (%d)", uint32(idx))
	}
	return NetworkUpgradeInfo[idx].Name
}

// UpgradeState describes whether an upgrade applies at a given height.
type UpgradeState uint8

const (
	// UpgradeDisabled means the upgrade has no activation height on this
	// network.
	UpgradeDisabled UpgradeState = iota

	// UpgradePending means the upgrade is scheduled but the height has not
	// been reached yet.
	UpgradePending

	// UpgradeActive means the upgrade rules apply.
	UpgradeActive
)

var upgradeStateStrings = map[UpgradeState]string{
	UpgradeDisabled: "disabled",
	UpgradePending:  "pending",
	UpgradeActive:   "active",
}

// String returns the UpgradeState as a human-readable name.
func (s UpgradeState) String() string {
	if str, ok := upgradeStateStrings[s]; ok {
		return str
	}
	return fmt.Sprintf("Unknown UpgradeState (%d)", uint8(s))
}

type activationKind uint8

const (
	activationNever activationKind = iota
	activationAlways
	activationAtHeight
)

// ActivationHeight is the activation rule of a network upgrade.  It is one of
// AlwaysActive, NeverActive or ActiveAt(height).  The zero value is
// NeverActive.
type ActivationHeight struct {
	kind   activationKind
	height int32
}

// AlwaysActive returns an activation that applies from the genesis block.
func AlwaysActive() ActivationHeight {
	return ActivationHeight{kind: activationAlways}
}

// NeverActive returns an activation that never applies.
func NeverActive() ActivationHeight {
	return ActivationHeight{kind: activationNever}
}

// ActiveAt returns an activation at the given height.  A height of zero is
// equivalent to AlwaysActive.  It panics on a negative height.
func ActiveAt(height int32) ActivationHeight {
	if height < 0 {
		panic(fmt.Sprintf("negative activation height %d", height))
	}
	if height == 0 {
		return AlwaysActive()
	}
	return ActivationHeight{kind: activationAtHeight, height: height}
}

// Height returns the concrete activation height.  Always-active upgrades
// report height zero.  The boolean is false when the upgrade never activates.
func (a ActivationHeight) Height() (int32, bool) {
	switch a.kind {
	case activationAlways:
		return 0, true
	case activationAtHeight:
		return a.height, true
	}
	return 0, false
}

// IsNever returns whether the activation never applies.
func (a ActivationHeight) IsNever() bool {
	return a.kind == activationNever
}

// String returns the activation in the form used by the -nuparams option.
func (a ActivationHeight) String() string {
	switch a.kind {
	case activationAlways:
		return "always"
	case activationAtHeight:
		return fmt.Sprintf("%d", a.height)
	}
	return "never"
}

// NetworkUpgrade holds the per-network parameters of an upgrade.
type NetworkUpgrade struct {
	// ProtocolVersion is the first protocol version that understands the
	// upgrade.
	ProtocolVersion uint32

	// Activation is the height at which the upgrade rules start to
	// apply.
	Activation ActivationHeight

	// HashActivationBlock optionally pins the hash of the activation
	// block.  It is used to reject chains that forked before the upgrade.
	HashActivationBlock *chainhash.Hash
}

// UpgradeInfo is the static, network independent description of an upgrade.
type UpgradeInfo struct {
	BranchID uint32
	Name     string
	Info     string
}

// NetworkUpgradeInfo describes every known upgrade, indexed by UpgradeIndex.
var NetworkUpgradeInfo = [MaxNetworkUpgrades]UpgradeInfo{
	BaseSprout: {
		BranchID: 0,
		Name:     "Sprout",
		Info:     "The BitcoinZ network at launch",
	},
	UpgradeTestDummy: {
		BranchID: 0x74736554,
		Name:     "Test dummy",
		Info:     "Test dummy info",
	},
	UpgradeOverwinter: {
		BranchID: 0x5ba81b19,
		Name:     "Overwinter",
		Info:     "See https://z.cash/upgrade/overwinter/ for details.",
	},
	UpgradeSapling: {
		BranchID: 0x76b809bb,
		Name:     "Sapling",
		Info:     "See https://z.cash/upgrade/sapling/ for details.",
	},
	UpgradeBlossom: {
		BranchID: 0x2bb40e60,
		Name:     "Blossom",
		Info:     "See https://z.cash/upgrade/blossom/ for details.",
	},
	UpgradeCanopy: {
		BranchID: 0xe9ff75a6,
		Name:     "Canopy",
		Info:     "See https://z.cash/upgrade/canopy/ for details.",
	},
}

func checkUpgradeIndex(idx UpgradeIndex) {
	if idx >= MaxNetworkUpgrades {
		panic(fmt.Sprintf("upgrade index %d out of range", idx))
	}
}

func checkHeight(height int32) {
	if height < 0 {
		panic(fmt.Sprintf("negative block height %d", height))
	}
}

// UpgradeState returns the state of the upgrade at the given height.
func (p *Params) UpgradeState(height int32, idx UpgradeIndex) UpgradeState {
	checkHeight(height)
	checkUpgradeIndex(idx)

	activation, ok := p.Upgrades[idx].Activation.Height()
	switch {
	case !ok:
		return UpgradeDisabled
	case height >= activation:
		return UpgradeActive
	default:
		return UpgradePending
	}
}

// IsUpgradeActive returns whether the upgrade rules apply at the given height.
func (p *Params) IsUpgradeActive(height int32, idx UpgradeIndex) bool {
	return p.UpgradeState(height, idx) == UpgradeActive
}

// CurrentEpoch returns the most recent upgrade active at the given height.
// Sprout is always active, so there is always an answer.
func (p *Params) CurrentEpoch(height int32) UpgradeIndex {
	for idx := MaxNetworkUpgrades - 1; idx > BaseSprout; idx-- {
		if p.IsUpgradeActive(height, idx) {
			return idx
		}
	}
	return BaseSprout
}

// CurrentEpochBranchID returns the consensus branch ID in effect at the given
// height.
func (p *Params) CurrentEpochBranchID(height int32) uint32 {
	return NetworkUpgradeInfo[p.CurrentEpoch(height)].BranchID
}

// IsActivationHeight returns whether the given height is the activation
// height of the upgrade.  Sprout has no activation height.
func (p *Params) IsActivationHeight(height int32, idx UpgradeIndex) bool {
	checkUpgradeIndex(idx)
	if idx == BaseSprout || height < 0 {
		return false
	}

	activation, ok := p.Upgrades[idx].Activation.Height()
	return ok && activation == height
}

// IsActivationHeightForAnyUpgrade returns whether any upgrade after Sprout
// activates at the given height.
func (p *Params) IsActivationHeightForAnyUpgrade(height int32) bool {
	if height < 0 {
		return false
	}
	for idx := BaseSprout + 1; idx < MaxNetworkUpgrades; idx++ {
		if p.IsActivationHeight(height, idx) {
			return true
		}
	}
	return false
}

// NextEpoch returns the first upgrade after Sprout that is still pending at
// the given height.
func (p *Params) NextEpoch(height int32) (UpgradeIndex, bool) {
	if height < 0 {
		return 0, false
	}
	for idx := BaseSprout + 1; idx < MaxNetworkUpgrades; idx++ {
		if p.UpgradeState(height, idx) == UpgradePending {
			return idx, true
		}
	}
	return 0, false
}

// NextActivationHeight returns the activation height of the next pending
// upgrade.
func (p *Params) NextActivationHeight(height int32) (int32, bool) {
	idx, ok := p.NextEpoch(height)
	if !ok {
		return 0, false
	}
	return p.Upgrades[idx].Activation.Height()
}

// IsConsensusBranchID returns whether the ID belongs to a known upgrade.
func IsConsensusBranchID(branchID uint32) bool {
	_, ok := UpgradeByBranchID(branchID)
	return ok
}

// UpgradeByBranchID returns the upgrade with the given consensus branch ID.
func UpgradeByBranchID(branchID uint32) (UpgradeIndex, bool) {
	for idx := BaseSprout; idx < MaxNetworkUpgrades; idx++ {
		if NetworkUpgradeInfo[idx].BranchID == branchID {
			return idx, true
		}
	}
	return 0, false
}

// PrevEpochBranchID returns the branch ID of the epoch that preceded the one
// identified by branchID on this network.  Upgrades that never activate here
// are skipped.  Sprout, and unknown IDs, map to the Sprout branch ID.
func (p *Params) PrevEpochBranchID(branchID uint32) uint32 {
	idx, ok := UpgradeByBranchID(branchID)
	if !ok || idx == BaseSprout {
		return NetworkUpgradeInfo[BaseSprout].BranchID
	}
	for prev := idx - 1; prev > BaseSprout; prev-- {
		if !p.Upgrades[prev].Activation.IsNever() {
			return NetworkUpgradeInfo[prev].BranchID
		}
	}
	return NetworkUpgradeInfo[BaseSprout].BranchID
}
