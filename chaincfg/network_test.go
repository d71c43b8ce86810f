// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetworks(t *testing.T) {
	for _, net := range []Network{MainNet, TestNet, RegTest} {
		parsed, err := ParseNetwork(net.String())
		require.NoError(t, err)
		require.Equal(t, net, parsed)

		params, err := ParamsForNetwork(net)
		require.NoError(t, err)
		require.Equal(t, net, params.Net)
		require.Equal(t, net.String(), params.Name)
	}

	_, err := ParseNetwork("simnet")
	require.True(t, errors.Is(err, ErrUnknownNetwork))

	_, err = ParamsForNetwork(Network(9))
	require.True(t, errors.Is(err, ErrUnknownNetwork))
	require.Equal(t, "Unknown Network (9)", Network(9).String())
}

// TestParamsAreIndependent ensures every call returns values that share no
// mutable state with earlier results.
func TestParamsAreIndependent(t *testing.T) {
	a := MainNetParams()
	b := MainNetParams()

	a.CommunityFeeAddresses[0] = "changed"
	a.Upgrades[UpgradeCanopy].Activation = NeverActive()
	a.FutureBlockTimeWindows[0] = 0
	a.MinimumChainWork.SetInt64(0)

	require.Equal(t, "t3eC2B44yVkyj7Q7RMkfBhkDisc4ieYtv5d",
		b.CommunityFeeAddresses[0])
	require.True(t, b.IsUpgradeActive(1680000, UpgradeCanopy))
	require.Equal(t, MaxFutureBlockTime, b.FutureBlockTimeWindow(0))
	require.NotZero(t, b.MinimumChainWork.Sign())
}
