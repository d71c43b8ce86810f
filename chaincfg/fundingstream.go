// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// FundingStreamIndex identifies a funding stream.
type FundingStreamIndex uint32

// These constants define the ZIP 214 funding streams.
const (
	FundingStreamBP FundingStreamIndex = iota
	FundingStreamZF
	FundingStreamMG

	// MaxFundingStreams is the number of known funding streams.  It is
	// not a valid stream index.
	MaxFundingStreams
)

// String returns the recipient of the funding stream.
func (idx FundingStreamIndex) String() string {
	if idx >= MaxFundingStreams {
		return fmt.Sprintf("Unknown FundingStreamIndex (%d)", uint32(idx))
	}
	return FundingStreamInfos[idx].Recipient
}

// FundingStreamInfo is the static description of a funding stream.
type FundingStreamInfo struct {
	Recipient        string
	Specification    string
	ValueNumerator   int64
	ValueDenominator int64
}

// Value returns the part of the block subsidy paid to the stream.
func (fsi *FundingStreamInfo) Value(blockSubsidy btcutil.Amount) btcutil.Amount {
	return btcutil.Amount(int64(blockSubsidy) * fsi.ValueNumerator /
		fsi.ValueDenominator)
}

// FundingStreamInfos describes every funding stream, indexed by
// FundingStreamIndex.
var FundingStreamInfos = [MaxFundingStreams]FundingStreamInfo{
	FundingStreamBP: {
		Recipient:        "Electric Coin Company",
		Specification:    "https://zips.z.cash/zip-0214",
		ValueNumerator:   7,
		ValueDenominator: 100,
	},
	FundingStreamZF: {
		Recipient:        "Zcash Foundation",
		Specification:    "https://zips.z.cash/zip-0214",
		ValueNumerator:   5,
		ValueDenominator: 100,
	},
	FundingStreamMG: {
		Recipient:        "Major Grants",
		Specification:    "https://zips.z.cash/zip-0214",
		ValueNumerator:   8,
		ValueDenominator: 100,
	},
}

var (
	// ErrCanopyNotActive describes an error where a funding stream starts
	// before Canopy activates.
	ErrCanopyNotActive = errors.New("canopy network upgrade not active " +
		"at funding stream start height")

	// ErrIllegalRange describes an error where a funding stream ends
	// before it starts.
	ErrIllegalRange = errors.New("illegal start/end height combination " +
		"for funding stream")

	// ErrInsufficientAddresses describes an error where a funding stream
	// has fewer addresses than funding periods.
	ErrInsufficientAddresses = errors.New("insufficient payment " +
		"addresses to fully exhaust funding stream")
)

// FundingStream pays a share of the block subsidy to a rotating list of
// recipients for blocks in [StartHeight, EndHeight).
type FundingStream struct {
	startHeight int32
	endHeight   int32
	addresses   []string
	scripts     [][]byte
}

// StartHeight returns the first height that pays the stream.
func (fs *FundingStream) StartHeight() int32 {
	return fs.startHeight
}

// EndHeight returns the first height that no longer pays the stream.
func (fs *FundingStream) EndHeight() int32 {
	return fs.endHeight
}

// IsActiveAt returns whether the height lies in the stream's range.
func (fs *FundingStream) IsActiveAt(height int32) bool {
	return height >= fs.startHeight && height < fs.endHeight
}

// Addresses returns the recipient addresses, one per funding period.
func (fs *FundingStream) Addresses() []string {
	return fs.addresses
}

// RecipientAddress returns the address paid by the stream at the given
// height.
func (fs *FundingStream) RecipientAddress(p *Params, height int32) string {
	return fs.addresses[fs.recipientIndex(p, height)]
}

// RecipientScript returns the output script paid by the stream at the given
// height.
func (fs *FundingStream) RecipientScript(p *Params, height int32) []byte {
	return fs.scripts[fs.recipientIndex(p, height)]
}

func (fs *FundingStream) recipientIndex(p *Params, height int32) int {
	i := p.FundingPeriodIndex(fs.startHeight, height)
	if i < 0 || i >= len(fs.scripts) {
		panic(fmt.Sprintf("funding stream recipient index %d out of "+
			"range [0, %d) at height %d", i, len(fs.scripts), height))
	}
	return i
}

// ValidateFundingStream checks a funding stream against the network's
// upgrade schedule and funding period length.
func (p *Params) ValidateFundingStream(start, end int32, numAddresses int) error {
	if start < 0 || !p.IsUpgradeActive(start, UpgradeCanopy) {
		return ErrCanopyNotActive
	}
	if end < start {
		return ErrIllegalRange
	}
	if p.FundingPeriodIndex(start, end-1) >= numAddresses {
		return ErrInsufficientAddresses
	}
	return nil
}

// ParseFundingStream decodes the recipient addresses and builds a validated
// funding stream.
func (p *Params) ParseFundingStream(start, end int32, addresses []string) (*FundingStream, error) {
	scripts := make([][]byte, 0, len(addresses))
	for _, addr := range addresses {
		script, err := p.AddressScript(addr)
		if err != nil {
			return nil, fmt.Errorf("funding stream address: %w", err)
		}
		scripts = append(scripts, script)
	}

	if err := p.ValidateFundingStream(start, end, len(scripts)); err != nil {
		return nil, err
	}

	return &FundingStream{
		startHeight: start,
		endHeight:   end,
		addresses:   append([]string(nil), addresses...),
		scripts:     scripts,
	}, nil
}

// mustAddZIP207FundingStream installs a hard-coded funding stream.  Streams
// are skipped when Canopy never activates on the network.
func (p *Params) mustAddZIP207FundingStream(idx FundingStreamIndex, end int32, addresses []string) {
	start, ok := p.Upgrades[UpgradeCanopy].Activation.Height()
	if !ok {
		return
	}
	fs, err := p.ParseFundingStream(start, end, addresses)
	if err != nil {
		panic(fmt.Sprintf("invalid %s funding stream %v: %v", p.Name, idx, err))
	}
	p.FundingStreams[idx] = fs
}

func repeatAddress(addr string, n int) []string {
	addrs := make([]string, n)
	for i := range addrs {
		addrs[i] = addr
	}
	return addrs
}
