// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

// btczparamsMain is the real main function for btczparams.  It is necessary
// to work around the fact that deferred functions do not run when os.Exit()
// is called.
func btczparamsMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, params, err := loadConfig(os.Args[1:])
	if errors.Is(err, errShowSubsystems) {
		fmt.Println("Supported subsystems", supportedSubsystems())
		return nil
	}
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			return nil
		}
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	btzpLog.Infof("Reporting %s parameters at height %d", params.Name,
		cfg.Height)
	if len(cfg.NetworkUpgrade) > 0 || len(cfg.FundingStream) > 0 {
		btzpLog.Infof("Applied overrides: nuparams [%s], fundingstream [%s]",
			strings.Join(cfg.NetworkUpgrade, " "),
			strings.Join(cfg.FundingStream, " "))
	}

	if err := writeReport(os.Stdout, cfg, params); err != nil {
		btzpLog.Errorf("Unable to write report: %v", err)
		return err
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := btczparamsMain(); err != nil {
		os.Exit(1)
	}
}
