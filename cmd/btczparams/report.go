// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcz/btczd/blockchain"
	"github.com/btcz/btczd/chaincfg"
)

// maxHalvings is the number of halvings after which no subsidy is paid.
const maxHalvings = 64

// emission returns the total subsidy of all blocks and the first height that
// pays no subsidy.  The subsidy is constant between halvings once the slow
// start is over, so whole runs of blocks are summed at once.
func emission(params *chaincfg.Params) (btcutil.Amount, int32) {
	blossomHeight, blossom := params.Upgrades[chaincfg.UpgradeBlossom].Activation.Height()

	var total btcutil.Amount
	height := int32(0)
	for {
		if height < params.SubsidySlowStartInterval {
			total += blockchain.CalcBlockSubsidy(height, params)
			height++
			continue
		}

		halvings := params.Halving(height)
		if halvings >= maxHalvings {
			return total, height
		}

		next := params.HalvingHeight(height, halvings+1)
		if blossom && blossomHeight > height && blossomHeight < next {
			next = blossomHeight
		}
		if next <= height {
			next = height + 1
		}

		subsidy := blockchain.CalcBlockSubsidy(height, params)
		total += subsidy * btcutil.Amount(next-height)
		height = next
	}
}

// feeRecipient is a contiguous run of blocks paying the community fee to one
// address.  Index is the position of the address in the fee address list.
type feeRecipient struct {
	Index   int
	Address string
	First   int32
	Last    int32
	Total   btcutil.Amount
}

// feeSchedule returns every run of the community fee, in height order.
func feeSchedule(params *chaincfg.Params) []feeRecipient {
	var schedule []feeRecipient
	for height := params.CommunityFeeStartHeight + 1; height <= params.CommunityFeeLastHeight; height++ {
		addr := params.CommunityFeeAddressAtHeight(height)
		fee := blockchain.CalcCommunityFee(height, params)

		n := len(schedule)
		if n > 0 && schedule[n-1].Address == addr && schedule[n-1].Last == height-1 {
			schedule[n-1].Last = height
			schedule[n-1].Total += fee
			continue
		}

		schedule = append(schedule, feeRecipient{
			Index:   slices.Index(params.CommunityFeeAddresses, addr),
			Address: addr,
			First:   height,
			Last:    height,
			Total:   fee,
		})
	}
	return schedule
}

// writeReport writes the consensus parameters in effect at the configured
// height.
func writeReport(w io.Writer, cfg *config, params *chaincfg.Params) error {
	bw := bufio.NewWriter(w)
	height := cfg.Height

	epoch := params.CurrentEpoch(height)
	fmt.Fprintf(bw, "Network:          %s\n", params.Name)
	fmt.Fprintf(bw, "Height:           %d\n", height)
	fmt.Fprintf(bw, "Epoch:            %v (branch id %08x)\n", epoch,
		params.CurrentEpochBranchID(height))
	if next, ok := params.NextActivationHeight(height); ok {
		fmt.Fprintf(bw, "Next activation:  %d\n", next)
	} else {
		fmt.Fprintf(bw, "Next activation:  none\n")
	}
	fmt.Fprintf(bw, "Target spacing:   %ds\n", params.PowTargetSpacing(height))
	fmt.Fprintf(bw, "Averaging window: %d blocks, %ds (min %ds, max %ds)\n",
		params.PowAveragingWindow, params.AveragingWindowTimespan(height),
		params.MinActualTimespan(height), params.MaxActualTimespan(height))
	fmt.Fprintf(bw, "Halvings:         %d\n", params.Halving(height))
	fmt.Fprintf(bw, "Equihash:         %v\n", params.ValidEquihashParameterList(height))
	fmt.Fprintf(bw, "Future window:    %v\n", params.FutureBlockTimeWindow(height))

	fmt.Fprintf(bw, "\nUpgrades:\n")
	for idx := chaincfg.BaseSprout; idx < chaincfg.MaxNetworkUpgrades; idx++ {
		fmt.Fprintf(bw, "  %-12v %-9v %v\n", idx,
			params.Upgrades[idx].Activation, params.UpgradeState(height, idx))
	}

	split := blockchain.CalcBlockSubsidySplit(height, params)
	fmt.Fprintf(bw, "\nSubsidy:          %v\n", split.Subsidy)
	fmt.Fprintf(bw, "  Miner:          %v\n", split.Miner)
	if params.IsCommunityFeeHeight(height) {
		fmt.Fprintf(bw, "  Community fee:  %v to %s\n", split.CommunityFee,
			params.CommunityFeeAddressAtHeight(height))
	}
	for _, fs := range split.FundingStreams {
		fmt.Fprintf(bw, "  %v: %v to %s\n", fs.Recipient, fs.Value,
			params.FundingStreams[fs.Index].RecipientAddress(params, height))
	}

	if cfg.Emission {
		total, end := emission(params)
		fmt.Fprintf(bw, "\nTotal emission:   %v (%d) through height %d\n",
			total, int64(total), end-1)
	}

	if cfg.FeeSchedule {
		fmt.Fprintf(bw, "\nCommunity fee schedule:\n")
		for _, r := range feeSchedule(params) {
			fmt.Fprintf(bw, "  %3d %s %d-%d %v\n", r.Index, r.Address,
				r.First, r.Last, r.Total)
		}
	}

	return bw.Flush()
}
