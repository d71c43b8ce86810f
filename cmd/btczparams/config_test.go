// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	"github.com/btcz/btczd/chaincfg"
	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, params, err := loadConfig(nil)
	require.NoError(t, err)
	require.Equal(t, "main", params.Name)
	require.Equal(t, int32(0), cfg.Height)
	require.Equal(t, defaultLogLevel, cfg.DebugLevel)

	cfg, params, err = loadConfig([]string{"--testnet", "--height=1500"})
	require.NoError(t, err)
	require.Equal(t, "test", params.Name)
	require.Equal(t, int32(1500), cfg.Height)

	cfg, params, err = loadConfig([]string{
		"--regtest",
		"--nuparams=2bb40e60:200",
		"--nuparams=e9ff75a6:250",
		"--fundingstream=0:250:253:t2CGbbAAqAfPLexXq6m1a4cTMxmTUqpU9gD",
		"--emission",
	})
	require.NoError(t, err)
	require.True(t, cfg.Emission)
	require.Equal(t, "regtest", params.Name)

	blossom, ok := params.Upgrades[chaincfg.UpgradeBlossom].Activation.Height()
	require.True(t, ok)
	require.Equal(t, int32(200), blossom)
	require.Equal(t, int32(250), params.FundingStreams[chaincfg.FundingStreamBP].StartHeight())
	require.Equal(t, int32(253), params.FundingStreams[chaincfg.FundingStreamBP].EndHeight())
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{
			name: "both test networks",
			args: []string{"--testnet", "--regtest"},
		},
		{
			name: "negative height",
			args: []string{"--height=-5"},
		},
		{
			name: "overrides on main",
			args: []string{"--nuparams=2bb40e60:200"},
			is:   chaincfg.ErrOverrideNotRegTest,
		},
		{
			name: "malformed override",
			args: []string{"--regtest", "--nuparams=2bb40e60"},
			is:   chaincfg.ErrMalformedOverride,
		},
		{
			name: "invalid debug level",
			args: []string{"--debuglevel=loud"},
		},
		{
			name: "show subsystems",
			args: []string{"--debuglevel=show"},
			is:   errShowSubsystems,
		},
		{
			name: "extra arguments",
			args: []string{"main"},
		},
	}

	for _, test := range tests {
		_, _, err := loadConfig(test.args)
		require.Error(t, err, test.name)
		if test.is != nil {
			require.ErrorIs(t, err, test.is, test.name)
		}
	}

	_, _, err := loadConfig([]string{"--bogus"})
	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	require.Equal(t, flags.ErrUnknownFlag, flagsErr.Type)
}

func TestParseAndSetDebugLevels(t *testing.T) {
	tests := []struct {
		debugLevel string
		valid      bool
	}{
		{"info", true},
		{"trace", true},
		{"CHAN=debug,MINR=trace", true},
		{"BTZP=warn", true},
		{"loud", false},
		{"CHAN", false},
		{"CHAN=debug,MINR", false},
		{"FOO=debug", false},
		{"CHAN=loud", false},
	}

	for _, test := range tests {
		err := parseAndSetDebugLevels(test.debugLevel)
		if test.valid {
			require.NoError(t, err, test.debugLevel)
			continue
		}
		require.Error(t, err, test.debugLevel)
	}

	require.Equal(t, []string{"BTZP", "CHAN", "MINR"}, supportedSubsystems())
	setLogLevels("info")
}
