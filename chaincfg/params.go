// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sort"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcz/btczd/wire"
	"golang.org/x/exp/maps"
)

// These variables are the chain proof-of-work limit parameters for each default
// network.
var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// maxUint256 is the largest value a 256-bit target can hold.
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)

	// mainPowLimit is the highest proof of work value a BitcoinZ block can
	// have for the main network.  It is the value 2^243 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 243), bigOne)

	// testNetPowLimit is the highest proof of work value a BitcoinZ block
	// can have for the test network.  It is the value 2^251 - 1.
	testNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 251), bigOne)

	// regressionPowLimit is the highest proof of work value a BitcoinZ
	// block can have for the regression test network.  It is the value
	// 0x0f0f...0f.
	regressionPowLimit = hexToBig("0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f" +
		"0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f")
)

const (
	// MaxFutureBlockTime is how far in the future a block timestamp may be
	// when a network does not configure a narrower window.
	MaxFutureBlockTime = 2 * time.Hour

	// fundingPeriodsPerHalving is the number of funding periods in one
	// halving interval.
	fundingPeriodsPerHalving = 48
)

var (
	// ErrUpgradeOrder describes an error where an upgrade activates
	// before an upgrade declared ahead of it.
	ErrUpgradeOrder = errors.New("network upgrades activate out of order")

	// ErrTooManyCommunityFeeAddresses describes an error where a network
	// lists more community fee addresses than there are fee blocks.
	ErrTooManyCommunityFeeAddresses = errors.New("more community fee " +
		"addresses than community fee blocks")

	// ErrInvalidPowLimit describes an error where the averaging window
	// sum of targets could overflow 256 bits.
	ErrInvalidPowLimit = errors.New("pow limit too large for the " +
		"averaging window")

	// ErrInvalidTargetSpacing describes an error where the target spacing
	// or halving interval configuration is inconsistent.
	ErrInvalidTargetSpacing = errors.New("inconsistent target spacing " +
		"configuration")
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData holds the checkpoints of a network together with the
// statistics used to estimate verification progress.
type CheckpointData struct {
	// Checkpoints are ordered from oldest to newest.
	Checkpoints []Checkpoint

	// TimeLastCheckpoint is the unix timestamp of the last checkpoint.
	TimeLastCheckpoint int64

	// TransactionsLastCheckpoint is the total number of transactions
	// between genesis and the last checkpoint.
	TransactionsLastCheckpoint int64

	// TransactionsPerDay is the estimated number of transactions per day
	// after the last checkpoint.
	TransactionsPerDay float64
}

// LatestCheckpoint returns the most recent checkpoint, or nil when the network
// has none.
func (c *CheckpointData) LatestCheckpoint() *Checkpoint {
	if len(c.Checkpoints) == 0 {
		return nil
	}
	return &c.Checkpoints[len(c.Checkpoints)-1]
}

// CheckpointHash returns the checkpointed hash at the given height.
func (c *CheckpointData) CheckpointHash(height int32) (*chainhash.Hash, bool) {
	i := sort.Search(len(c.Checkpoints), func(i int) bool {
		return c.Checkpoints[i].Height >= height
	})
	if i < len(c.Checkpoints) && c.Checkpoints[i].Height == height {
		return c.Checkpoints[i].Hash, true
	}
	return nil, false
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Host defines the hostname of the seed.
	Host string

	// HasFiltering defines whether the seed supports filtering
	// by service flags.
	HasFiltering bool
}

// String returns the hostname of the DNS seed in human-readable form.
func (d DNSSeed) String() string {
	return d.Host
}

// EquihashParams is one Equihash (N, K) parameter set.
type EquihashParams struct {
	N            uint32
	K            uint32
	SolutionSize int
}

// NewEquihashParams returns the parameter set for (n, k) with the solution
// size derived from them.
func NewEquihashParams(n, k uint32) EquihashParams {
	return EquihashParams{
		N:            n,
		K:            k,
		SolutionSize: int((uint64(1) << k) * uint64(n/(k+1)+1) / 8),
	}
}

// String returns the parameter set in the usual n_k form.
func (e EquihashParams) String() string {
	return fmt.Sprintf("%d_%d", e.N, e.K)
}

// The Equihash parameter sets used by the BitcoinZ networks.
var (
	Equihash200_9 = NewEquihashParams(200, 9)
	Equihash144_5 = NewEquihashParams(144, 5)
	Equihash96_5  = NewEquihashParams(96, 5)
	Equihash48_5  = NewEquihashParams(48, 5)
)

// EquihashEpochs configures the switch from one Equihash parameter set to
// another.  Both sets are accepted from Epoch2StartBlock through
// Epoch1EndBlock.
type EquihashEpochs struct {
	Epoch1           EquihashParams
	Epoch2           EquihashParams
	Epoch1EndBlock   int32
	Epoch2StartBlock int32
}

// Params defines a BitcoinZ network by its parameters.  These parameters may be
// used by applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
//
// Params values are constructed by MainNetParams, TestNetParams, RegTestParams
// and NewRegTestParams and must not be modified once in use.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net identifies the network.
	Net Network

	// CurrencyUnits is the ticker of the network's coin.
	CurrencyUnits string

	// BIP44CoinType is the SLIP-0044 registered coin type.
	BIP44CoinType uint32

	// MessageStart is the magic prefix of every network message.
	MessageStart [4]byte

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// PowAveragingWindow is the number of blocks whose targets are
	// averaged by the difficulty retarget.
	PowAveragingWindow int64

	// PowMaxAdjustDown and PowMaxAdjustUp bound, in percent, how far the
	// observed window timespan may stray from the expected one.
	PowMaxAdjustDown int64
	PowMaxAdjustUp   int64

	// PreBlossomPowTargetSpacing and PostBlossomPowTargetSpacing are the
	// desired seconds between blocks before and after Blossom.
	PreBlossomPowTargetSpacing  int64
	PostBlossomPowTargetSpacing int64

	// PowAllowMinDifficultyBlocks enables the minimum difficulty rule for
	// blocks after PowAllowMinDifficultyBlocksAfterHeight.
	PowAllowMinDifficultyBlocks            bool
	PowAllowMinDifficultyBlocksAfterHeight int32

	// MinimumChainWork is the least amount of work the best chain should
	// carry.
	MinimumChainWork *big.Int

	// SubsidySlowStartInterval is the number of blocks over which the
	// subsidy ramps up linearly.  Zero disables the slow start.
	SubsidySlowStartInterval int32

	// PreBlossomSubsidyHalvingInterval and
	// PostBlossomSubsidyHalvingInterval are the number of blocks between
	// subsidy halvings before and after Blossom.
	PreBlossomSubsidyHalvingInterval  int32
	PostBlossomSubsidyHalvingInterval int32

	// Upgrades holds the activation of every known network upgrade.
	Upgrades [MaxNetworkUpgrades]NetworkUpgrade

	// CommunityFeeStartHeight and CommunityFeeLastHeight bound the blocks
	// that pay the community fee: start < height <= last.
	CommunityFeeStartHeight int32
	CommunityFeeLastHeight  int32

	// CommunityFeeAddresses are the P2SH addresses that receive the
	// community fee in turn.
	CommunityFeeAddresses []string

	// FundingPeriodLength is the number of blocks each funding stream
	// address is used for.
	FundingPeriodLength int32

	// FundingStreams holds the configured funding streams.  Nil entries
	// are disabled.
	FundingStreams [MaxFundingStreams]*FundingStream

	// Equihash configures the accepted proof-of-work parameter sets.
	Equihash EquihashEpochs

	// FutureBlockTimeWindows maps a height to how far ahead of the local
	// clock a block timestamp may be from that height on.
	FutureBlockTimeWindows map[int32]time.Duration

	// Checkpoints holds the checkpoints and sync statistics, ordered from
	// oldest to newest.
	Checkpoints CheckpointData

	// CoinbaseMustBeShielded requires coinbase outputs to be spent into
	// the shielded pool.
	CoinbaseMustBeShielded bool

	// ZIP209Enabled turns on shielded value pool monitoring.
	ZIP209Enabled bool

	// Majority window rules for block version upgrades.
	MajorityEnforceBlockUpgrade int
	MajorityRejectBlockOutdated int
	MajorityWindow              int

	// PruneAfterHeight is the minimum height before pruning is allowed.
	PruneAfterHeight uint64

	// Node policy defaults.
	MiningRequiresPeers      bool
	DefaultConsistencyChecks bool
	RequireStandard          bool
	MineBlocksOnDemand       bool

	// Address encoding magics
	PubKeyHashAddrID [2]byte // First bytes of a P2PKH address
	ScriptHashAddrID [2]byte // First bytes of a P2SH address
	PrivateKeyID     byte    // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// PowTargetSpacing returns the desired seconds between blocks at the given
// height.
func (p *Params) PowTargetSpacing(height int32) int64 {
	if p.IsUpgradeActive(height, UpgradeBlossom) {
		return p.PostBlossomPowTargetSpacing
	}
	return p.PreBlossomPowTargetSpacing
}

// AveragingWindowTimespan returns the expected duration, in seconds, of the
// difficulty averaging window at the given height.
func (p *Params) AveragingWindowTimespan(height int32) int64 {
	return p.PowAveragingWindow * p.PowTargetSpacing(height)
}

// MinActualTimespan returns the shortest window timespan the retarget will
// use at the given height.
func (p *Params) MinActualTimespan(height int32) int64 {
	return (p.AveragingWindowTimespan(height) * (100 - p.PowMaxAdjustUp)) / 100
}

// MaxActualTimespan returns the longest window timespan the retarget will use
// at the given height.
func (p *Params) MaxActualTimespan(height int32) int64 {
	return (p.AveragingWindowTimespan(height) * (100 + p.PowMaxAdjustDown)) / 100
}

// BlossomPowTargetSpacingRatio is how many post-Blossom blocks fit in one
// pre-Blossom block interval.
func (p *Params) BlossomPowTargetSpacingRatio() int64 {
	return p.PreBlossomPowTargetSpacing / p.PostBlossomPowTargetSpacing
}

// SubsidySlowStartShift is the height offset of the halving schedule caused by
// the slow start.
func (p *Params) SubsidySlowStartShift() int32 {
	return p.SubsidySlowStartInterval / 2
}

// Halving returns the number of subsidy halvings that happened before the
// given height.
func (p *Params) Halving(height int32) int32 {
	shift := int64(p.SubsidySlowStartShift())
	if p.IsUpgradeActive(height, UpgradeBlossom) {
		activation, _ := p.Upgrades[UpgradeBlossom].Activation.Height()
		scaled := (int64(activation)-shift)*p.BlossomPowTargetSpacingRatio() +
			(int64(height) - int64(activation))
		return int32(scaled / int64(p.PostBlossomSubsidyHalvingInterval))
	}
	return int32((int64(height) - shift) / int64(p.PreBlossomSubsidyHalvingInterval))
}

// HalvingHeight returns the height of the given halving, counted from one.
// The height argument selects between the pre- and post-Blossom schedules.
// It panics when halvingIndex is not positive.
func (p *Params) HalvingHeight(height int32, halvingIndex int32) int32 {
	if halvingIndex <= 0 {
		panic(fmt.Sprintf("invalid halving index %d", halvingIndex))
	}

	shift := int64(p.SubsidySlowStartShift())
	index := int64(halvingIndex)
	if p.IsUpgradeActive(height, UpgradeBlossom) {
		activation, _ := p.Upgrades[UpgradeBlossom].Activation.Height()
		act := int64(activation)
		blossomBlocks := (act - shift) * p.BlossomPowTargetSpacingRatio()
		return int32(index*int64(p.PostBlossomSubsidyHalvingInterval) -
			blossomBlocks + act)
	}
	return int32(index*int64(p.PreBlossomSubsidyHalvingInterval) + shift)
}

// IsCommunityFeeHeight returns whether the block at the given height pays
// the community fee.
func (p *Params) IsCommunityFeeHeight(height int32) bool {
	return height > p.CommunityFeeStartHeight &&
		height <= p.CommunityFeeLastHeight
}

// FundingPeriodIndex returns the index of the funding period that contains
// height for a funding stream starting at streamStart.  Periods are aligned
// to the first halving.
func (p *Params) FundingPeriodIndex(streamStart, height int32) int {
	firstHalving := int64(p.HalvingHeight(streamStart, 1))
	length := int64(p.FundingPeriodLength)

	offset := (int64(streamStart) - firstHalving) % length
	if offset < 0 {
		offset += length
	}
	return int((int64(height) - int64(streamStart) + offset) / length)
}

// ValidEquihashParameterList returns the Equihash parameter sets accepted at
// the given height, preferred set first.
func (p *Params) ValidEquihashParameterList(height int32) []EquihashParams {
	eh := &p.Equihash
	switch {
	case height >= eh.Epoch2StartBlock && height > eh.Epoch1EndBlock:
		return []EquihashParams{eh.Epoch2}
	case height < eh.Epoch2StartBlock:
		return []EquihashParams{eh.Epoch1}
	default:
		return []EquihashParams{eh.Epoch2, eh.Epoch1}
	}
}

// CheckEquihashSolutionSize returns whether a solution of the given size is
// acceptable at the given height.  Templates at height zero carry no
// solution and always pass.
func (p *Params) CheckEquihashSolutionSize(solutionSize int, height int32) bool {
	if height == 0 {
		return true
	}
	for _, eh := range p.ValidEquihashParameterList(height) {
		if eh.SolutionSize == solutionSize {
			return true
		}
	}
	return false
}

// FutureBlockTimeWindow returns how far ahead of the local clock a block
// timestamp may be at the given height.
func (p *Params) FutureBlockTimeWindow(height int32) time.Duration {
	heights := maps.Keys(p.FutureBlockTimeWindows)
	slices.Sort(heights)
	for i := len(heights) - 1; i >= 0; i-- {
		if heights[i] <= height {
			return p.FutureBlockTimeWindows[heights[i]]
		}
	}
	return MaxFutureBlockTime
}

// Validate checks the structural invariants of the parameters.  Funding
// streams are validated when they are built.
func (p *Params) Validate() error {
	var last int32
	for idx := BaseSprout; idx < MaxNetworkUpgrades; idx++ {
		height, ok := p.Upgrades[idx].Activation.Height()
		if !ok {
			continue
		}
		if height < last {
			return fmt.Errorf("%w: %v at %d precedes %d", ErrUpgradeOrder,
				idx, height, last)
		}
		last = height
	}

	if p.PreBlossomPowTargetSpacing <= 0 || p.PostBlossomPowTargetSpacing <= 0 ||
		p.PreBlossomPowTargetSpacing%p.PostBlossomPowTargetSpacing != 0 {

		return fmt.Errorf("%w: spacing %d/%d", ErrInvalidTargetSpacing,
			p.PreBlossomPowTargetSpacing, p.PostBlossomPowTargetSpacing)
	}
	if p.PreBlossomSubsidyHalvingInterval <= 0 ||
		int64(p.PostBlossomSubsidyHalvingInterval) !=
			int64(p.PreBlossomSubsidyHalvingInterval)*p.BlossomPowTargetSpacingRatio() {

		return fmt.Errorf("%w: halving interval %d/%d", ErrInvalidTargetSpacing,
			p.PreBlossomSubsidyHalvingInterval,
			p.PostBlossomSubsidyHalvingInterval)
	}
	if p.FundingPeriodLength <= 0 {
		return fmt.Errorf("%w: funding period length %d",
			ErrInvalidTargetSpacing, p.FundingPeriodLength)
	}

	if p.PowLimit.Sign() <= 0 || p.PowAveragingWindow <= 0 ||
		new(big.Int).Div(maxUint256, p.PowLimit).Cmp(
			big.NewInt(p.PowAveragingWindow)) < 0 {

		return ErrInvalidPowLimit
	}

	if len(p.CommunityFeeAddresses) == 0 ||
		int64(len(p.CommunityFeeAddresses)) > int64(p.CommunityFeeLastHeight) {

		return fmt.Errorf("%w: %d addresses for last height %d",
			ErrTooManyCommunityFeeAddresses, len(p.CommunityFeeAddresses),
			p.CommunityFeeLastHeight)
	}
	for _, addr := range p.CommunityFeeAddresses {
		decoded, err := p.DecodeAddress(addr)
		if err != nil {
			return fmt.Errorf("community fee address %s: %w", addr, err)
		}
		if decoded.Type != ScriptHashAddress {
			return fmt.Errorf("community fee address %s: %w", addr,
				ErrNotScriptHash)
		}
	}

	return nil
}

// mustValidate panics when the hard-coded parameters of a network are
// inconsistent.
func mustValidate(p *Params) *Params {
	if err := p.Validate(); err != nil {
		panic(fmt.Sprintf("invalid %s network parameters: %v", p.Name, err))
	}
	return p
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes.  Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

// hexToBig converts a hard-coded big-endian hex string to a big.Int and
// panics on malformed input.
func hexToBig(hexStr string) *big.Int {
	n, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("invalid hex in source file: " + hexStr)
	}
	return n
}
