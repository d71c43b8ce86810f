// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"
)

// ErrUnknownNetwork describes an error where a network name is not
// recognized.
var ErrUnknownNetwork = errors.New("unknown network")

// Network identifies one of the BitcoinZ networks.
type Network uint8

const (
	// MainNet is the production network.
	MainNet Network = iota

	// TestNet is the public test network.
	TestNet

	// RegTest is the local regression test network.
	RegTest
)

var networkNames = map[Network]string{
	MainNet: "main",
	TestNet: "test",
	RegTest: "regtest",
}

// String returns the network identifier used by the reference client.
func (n Network) String() string {
	if name, ok := networkNames[n]; ok {
		return name
	}
	return fmt.Sprintf("Unknown Network (%d)", uint8(n))
}

// ParseNetwork returns the network with the given identifier.
func ParseNetwork(name string) (Network, error) {
	for n, s := range networkNames {
		if s == name {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
}

// ParamsForNetwork returns freshly built default parameters for the network.
func ParamsForNetwork(n Network) (*Params, error) {
	switch n {
	case MainNet:
		return MainNetParams(), nil
	case TestNet:
		return TestNetParams(), nil
	case RegTest:
		return RegTestParams(), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownNetwork, n)
}
