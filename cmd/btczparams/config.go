// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcz/btczd/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "btczparams.log"
)

// config defines the configuration options for btczparams.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet        bool     `long:"testnet" description:"Use the test network"`
	RegressionTest bool     `long:"regtest" description:"Use the regression test network"`
	NetworkUpgrade []string `long:"nuparams" description:"Override a network upgrade activation on regtest -- hexBranchId:activationHeight (may be repeated)"`
	FundingStream  []string `long:"fundingstream" description:"Override a funding stream on regtest -- streamId:startHeight:endHeight:comma_delimited_addresses (may be repeated)"`
	Height         int32    `long:"height" description:"Block height to report the consensus parameters for"`
	Emission       bool     `long:"emission" description:"Report the total emission of the network"`
	FeeSchedule    bool     `long:"feeschedule" description:"Report the height range and total paid to each community fee address"`
	LogDir         string   `long:"logdir" description:"Directory to log output; logs only to stdout when empty"`
	DebugLevel     string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
}

// errShowSubsystems is returned by loadConfig when the subsystem list was
// requested instead of a report.
var errShowSubsystems = errors.New("subsystem list requested")

// network returns the network selected by the command line.
func (cfg *config) network() chaincfg.Network {
	switch {
	case cfg.TestNet:
		return chaincfg.TestNet
	case cfg.RegressionTest:
		return chaincfg.RegTest
	}
	return chaincfg.MainNet
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse the command line options and validate their combination
//  3. Build the network parameters with any regtest overrides applied
//
// The returned parameters are a fresh value owned by the caller.
func loadConfig(args []string) (*config, *chaincfg.Params, error) {
	cfg := config{
		DebugLevel: defaultLogLevel,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}
	if len(remainingArgs) > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments %v", remainingArgs)
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		return &cfg, nil, errShowSubsystems
	}

	// Multiple networks can't be selected simultaneously.
	if cfg.TestNet && cfg.RegressionTest {
		return nil, nil, errors.New("the testnet and regtest params " +
			"can't be used together -- choose one of the two")
	}

	if cfg.Height < 0 {
		return nil, nil, fmt.Errorf("the height %d is invalid -- it "+
			"must not be negative", cfg.Height)
	}

	// Initialize log rotation.  After log rotation has been initialized,
	// the logger variables may be used.
	if cfg.LogDir != "" {
		logFile := filepath.Join(cleanAndExpandPath(cfg.LogDir),
			defaultLogFilename)
		if err := initLogRotator(logFile); err != nil {
			return nil, nil, err
		}
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return nil, nil, err
	}

	params, err := chaincfg.ParamsWithOverrides(cfg.network(),
		cfg.NetworkUpgrade, cfg.FundingStream)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to build %v parameters: %w",
			cfg.network(), err)
	}

	return &cfg, params, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}
