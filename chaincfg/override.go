// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOverrideNotRegTest describes an error where parameter overrides
	// were requested for a network other than regtest.
	ErrOverrideNotRegTest = errors.New("parameters may only be overridden " +
		"on regtest")

	// ErrMalformedOverride describes an error where an override does not
	// have the expected number of fields.
	ErrMalformedOverride = errors.New("override malformed")
)

// ParseNetworkUpgradeOverride parses an upgrade activation override of the
// form hexBranchId:activationHeight.  The branch ID must be formatted as eight
// lowercase hex digits.  A height of -1 disables the upgrade.
func ParseNetworkUpgradeOverride(s string) (UpgradeIndex, ActivationHeight, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 2 {
		return 0, ActivationHeight{}, fmt.Errorf("%w: network upgrade "+
			"parameters, expecting hexBranchId:activationHeight",
			ErrMalformedOverride)
	}

	height, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil || height < -1 {
		return 0, ActivationHeight{}, fmt.Errorf("invalid "+
			"nActivationHeight (%s)", fields[1])
	}

	for idx := BaseSprout + 1; idx < MaxNetworkUpgrades; idx++ {
		branchID := fmt.Sprintf("%08x", NetworkUpgradeInfo[idx].BranchID)
		if fields[0] != branchID {
			continue
		}
		if height == -1 {
			return idx, NeverActive(), nil
		}
		return idx, ActiveAt(int32(height)), nil
	}

	return 0, ActivationHeight{}, fmt.Errorf("invalid network upgrade (%s)",
		fields[0])
}

// FundingStreamOverride is a parsed -fundingstream option.
type FundingStreamOverride struct {
	Index       FundingStreamIndex
	StartHeight int32
	EndHeight   int32
	Addresses   []string
}

// ParseFundingStreamOverride parses a funding stream override of the form
// streamId:startHeight:endHeight:comma_delimited_addresses.  The addresses are
// not decoded here.
func ParseFundingStreamOverride(s string) (*FundingStreamOverride, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: funding stream parameters, expecting "+
			"streamId:startHeight:endHeight:comma_delimited_addresses",
			ErrMalformedOverride)
	}

	id, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil || id < 0 || id >= int64(MaxFundingStreams) {
		return nil, fmt.Errorf("invalid streamId (%s)", fields[0])
	}
	start, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid funding stream start height (%s)",
			fields[1])
	}
	end, err := strconv.ParseInt(fields[2], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid funding stream end height (%s)",
			fields[2])
	}

	return &FundingStreamOverride{
		Index:       FundingStreamIndex(id),
		StartHeight: int32(start),
		EndHeight:   int32(end),
		Addresses:   strings.Split(fields[3], ","),
	}, nil
}

// ParamsWithOverrides returns the parameters of the network with the given
// -nuparams and -fundingstream style overrides applied.  Upgrade overrides
// are applied before funding streams so streams validate against the final
// upgrade schedule.  Overrides are only accepted on regtest.
func ParamsWithOverrides(net Network, nuParams, fundingStreams []string) (*Params, error) {
	if len(nuParams) == 0 && len(fundingStreams) == 0 {
		return ParamsForNetwork(net)
	}
	if net != RegTest {
		return nil, fmt.Errorf("%w: network is %v", ErrOverrideNotRegTest, net)
	}

	opts := make([]RegTestOption, 0, len(nuParams)+len(fundingStreams))
	for _, s := range nuParams {
		idx, activation, err := ParseNetworkUpgradeOverride(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithNetworkUpgrade(idx, activation))
	}
	for _, s := range fundingStreams {
		fso, err := ParseFundingStreamOverride(s)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFundingStream(fso.Index, fso.StartHeight,
			fso.EndHeight, fso.Addresses))
	}

	return NewRegTestParams(opts...)
}
