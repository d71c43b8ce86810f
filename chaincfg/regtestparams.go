// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"fmt"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
)

// RegTestParams returns the default network parameters for the regression
// test network.  Use NewRegTestParams to obtain modified parameters.
func RegTestParams() *Params {
	genesisBlock := newGenesisBlock(1482971059,
		"0000000000000000000000000000000000000000000000000000000000000009",
		"05ffd6ad016271ade20cfce093959c3addb2079629f9f123c52ef920caa31653"+
			"1af5af3f", 0x200f0f0f)
	genesisHash := newHashFromStr("7ca88ae305f04699bfa1823ec37ebd6c" +
		"5873a7a9951a77edaa80eeeb6f136ac8")

	p := &Params{
		Name:          "regtest",
		Net:           RegTest,
		CurrencyUnits: "REG",
		BIP44CoinType: 1,
		MessageStart:  [4]byte{0xaa, 0xe8, 0x3f, 0x5f},
		DefaultPort:   "11989",
		DNSSeeds:      nil, // NOTE: There must NOT be any seeds.

		// Chain parameters
		GenesisBlock:                           genesisBlock,
		GenesisHash:                            genesisHash,
		PowLimit:                               new(big.Int).Set(regressionPowLimit),
		PowLimitBits:                           0x200f0f0f,
		PowAveragingWindow:                     13,
		PowMaxAdjustDown:                       0, // Turn off adjustment down
		PowMaxAdjustUp:                         0, // Turn off adjustment up
		PreBlossomPowTargetSpacing:             150,
		PostBlossomPowTargetSpacing:            75,
		PowAllowMinDifficultyBlocks:            true,
		PowAllowMinDifficultyBlocksAfterHeight: 0,
		MinimumChainWork:                       new(big.Int),

		SubsidySlowStartInterval:          0,
		PreBlossomSubsidyHalvingInterval:  150,
		PostBlossomSubsidyHalvingInterval: 300,

		Upgrades: [MaxNetworkUpgrades]NetworkUpgrade{
			BaseSprout:        {ProtocolVersion: 170002, Activation: AlwaysActive()},
			UpgradeTestDummy:  {ProtocolVersion: 170002, Activation: NeverActive()},
			UpgradeOverwinter: {ProtocolVersion: 170003, Activation: ActiveAt(150)},
			UpgradeSapling:    {ProtocolVersion: 170006, Activation: ActiveAt(150)},
			UpgradeBlossom:    {ProtocolVersion: 170008, Activation: NeverActive()},
			UpgradeCanopy:     {ProtocolVersion: 170012, Activation: ActiveAt(300)},
		},

		CommunityFeeStartHeight: 100,
		CommunityFeeLastHeight:  150,
		CommunityFeeAddresses:   []string{"t2V1osVDkcwYFL4PF9qG8t9Ez1XRVMAkAb6"},

		FundingPeriodLength: 150 / fundingPeriodsPerHalving,

		Equihash: EquihashEpochs{
			Epoch1:           Equihash48_5,
			Epoch2:           Equihash48_5,
			Epoch1EndBlock:   1,
			Epoch2StartBlock: 1,
		},

		FutureBlockTimeWindows: map[int32]time.Duration{
			0:      2 * time.Hour,
			159300: 30 * time.Minute,
			364400: 5 * time.Minute,
		},

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, genesisHash},
			},
		},

		CoinbaseMustBeShielded: false,
		ZIP209Enabled:          false,

		MajorityEnforceBlockUpgrade: 750,
		MajorityRejectBlockOutdated: 950,
		MajorityWindow:              1000,
		PruneAfterHeight:            1000,

		MiningRequiresPeers:      false,
		DefaultConsistencyChecks: true,
		RequireStandard:          false,
		MineBlocksOnDemand:       true,

		// Address encoding magics, shared with the test network
		PubKeyHashAddrID: [2]byte{0x1d, 0x25},
		ScriptHashAddrID: [2]byte{0x1c, 0xba},
		PrivateKeyID:     0xef,

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},
	}

	p.mustAddZIP207FundingStream(FundingStreamBP, 600,
		repeatAddress("t2CGbbAAqAfPLexXq6m1a4cTMxmTUqpU9gD", 100))
	p.mustAddZIP207FundingStream(FundingStreamZF, 600,
		repeatAddress("t2VS2yFHe7yGTkdtkPu5aQLM2fiPLz5rAqW", 100))
	p.mustAddZIP207FundingStream(FundingStreamMG, 600,
		repeatAddress("t2FDYrWbNFzmGKQytVy5FfH8w19g4o6jwFo", 100))

	return mustValidate(p)
}

// RegTestOption modifies regression test parameters while they are being
// built by NewRegTestParams.
type RegTestOption func(*Params) error

// WithNetworkUpgrade overrides the activation of an upgrade.  Sprout cannot
// be overridden.
func WithNetworkUpgrade(idx UpgradeIndex, activation ActivationHeight) RegTestOption {
	return func(p *Params) error {
		if idx == BaseSprout || idx >= MaxNetworkUpgrades {
			return fmt.Errorf("invalid network upgrade index %d", uint32(idx))
		}
		p.Upgrades[idx].Activation = activation
		return nil
	}
}

// WithFundingStream replaces a funding stream.  The stream is validated
// against the upgrade schedule as modified by the preceding options.
func WithFundingStream(idx FundingStreamIndex, start, end int32, addresses []string) RegTestOption {
	return func(p *Params) error {
		if idx >= MaxFundingStreams {
			return fmt.Errorf("invalid funding stream index %d", uint32(idx))
		}
		fs, err := p.ParseFundingStream(start, end, addresses)
		if err != nil {
			return err
		}
		p.FundingStreams[idx] = fs
		return nil
	}
}

// WithPow overrides the retarget bounds and the proof-of-work limit.
func WithPow(maxAdjustDown, maxAdjustUp int64, powLimit *big.Int) RegTestOption {
	return func(p *Params) error {
		if maxAdjustDown < 0 || maxAdjustUp < 0 || maxAdjustUp >= 100 {
			return fmt.Errorf("invalid pow adjustment bounds %d/%d",
				maxAdjustDown, maxAdjustUp)
		}
		p.PowMaxAdjustDown = maxAdjustDown
		p.PowMaxAdjustUp = maxAdjustUp
		if powLimit != nil {
			p.PowLimit = new(big.Int).Set(powLimit)
			p.PowLimitBits = blockchain.BigToCompact(p.PowLimit)
		}
		return nil
	}
}

// WithCommunityFee replaces the community fee range and recipients.
func WithCommunityFee(start, last int32, addresses []string) RegTestOption {
	return func(p *Params) error {
		if last < start {
			return fmt.Errorf("invalid community fee range (%d, %d]",
				start, last)
		}
		p.CommunityFeeStartHeight = start
		p.CommunityFeeLastHeight = last
		p.CommunityFeeAddresses = append([]string(nil), addresses...)
		return nil
	}
}

// WithSubsidySlowStart enables a linear subsidy ramp over the given number of
// blocks.
func WithSubsidySlowStart(interval int32) RegTestOption {
	return func(p *Params) error {
		if interval < 0 {
			return fmt.Errorf("invalid slow start interval %d", interval)
		}
		p.SubsidySlowStartInterval = interval
		return nil
	}
}

// WithCoinbaseMustBeShielded enforces the shielded coinbase rule.
func WithCoinbaseMustBeShielded() RegTestOption {
	return func(p *Params) error {
		p.CoinbaseMustBeShielded = true
		return nil
	}
}

// WithZIP209Enabled turns on shielded value pool monitoring.
func WithZIP209Enabled() RegTestOption {
	return func(p *Params) error {
		p.ZIP209Enabled = true
		return nil
	}
}

// NewRegTestParams returns regression test parameters with the options
// applied in order.  Every call starts from fresh defaults, so parameters
// returned by earlier calls are never affected.
func NewRegTestParams(opts ...RegTestOption) (*Params, error) {
	p := RegTestParams()
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
