// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcz/btczd/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

const (
	// keysPerAddress is the number of keys in each multisig redeem script.
	keysPerAddress = 3

	// requiredSigs is the number of signatures the redeem scripts require.
	requiredSigs = 2

	defaultCount = 100
)

var usage string = "Usage: genfeeaddrs --seed=<secret> [--testnet|--regtest] " +
	"[--count=n] [--golang]. Derives the 2-of-3 multisig P2SH addresses " +
	"of a community fee address list from a secret seed of 16 to 64 bytes."

type config struct {
	TestNet        bool   `long:"testnet" description:"Encode addresses for the test network"`
	RegressionTest bool   `long:"regtest" description:"Encode addresses for the regression test network"`
	Seed           string `long:"seed" description:"Secret seed the keys are derived from" required:"true"`
	Count          int    `long:"count" description:"Number of addresses to derive"`
	Golang         bool   `long:"golang" description:"Print the addresses as a Go string slice"`
}

// loadConfig parses the command line and returns the config along with the
// parameters of the selected network.
func loadConfig(args []string) (*config, *chaincfg.Params, error) {
	cfg := config{Count: defaultCount}
	if _, err := flags.ParseArgs(&cfg, args); err != nil {
		return nil, nil, err
	}

	if cfg.Count <= 0 {
		return nil, nil, fmt.Errorf("the address count must be "+
			"positive, got %d", cfg.Count)
	}

	net := chaincfg.MainNet
	switch {
	case cfg.TestNet && cfg.RegressionTest:
		return nil, nil, errors.New("the testnet and regtest params " +
			"can't be used together")
	case cfg.TestNet:
		net = chaincfg.TestNet
	case cfg.RegressionTest:
		net = chaincfg.RegTest
	}
	params, err := chaincfg.ParamsForNetwork(net)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, params, nil
}

// feeAddress is a derived community fee address with its redeem script and
// the extended public key of the account its keys belong to.
type feeAddress struct {
	Address      string
	AccountKey   string
	RedeemScript []byte
}

// hdNetParams returns btcd network parameters carrying the extended key
// versions of params.  The version pair is registered so that neutered keys
// serialize with the network's public key version.
func hdNetParams(params *chaincfg.Params) (*btcdchaincfg.Params, error) {
	err := btcdchaincfg.RegisterHDKeyID(params.HDPublicKeyID[:],
		params.HDPrivateKeyID[:])
	if err != nil {
		return nil, err
	}
	return &btcdchaincfg.Params{
		Name:           params.Name,
		HDPrivateKeyID: params.HDPrivateKeyID,
		HDPublicKeyID:  params.HDPublicKeyID,
	}, nil
}

// accountPubKeys returns the neutered account key m/i' and the keysPerAddress
// public keys m/i'/j derived from it.
func accountPubKeys(master *hdkeychain.ExtendedKey, i uint32) (*hdkeychain.ExtendedKey, [][]byte, error) {
	account, err := master.Derive(hdkeychain.HardenedKeyStart + i)
	if err != nil {
		return nil, nil, err
	}
	accountPub, err := account.Neuter()
	if err != nil {
		return nil, nil, err
	}

	pubKeys := make([][]byte, 0, keysPerAddress)
	for j := uint32(0); j < keysPerAddress; j++ {
		child, err := accountPub.Derive(j)
		if err != nil {
			return nil, nil, err
		}
		pubKey, err := child.ECPubKey()
		if err != nil {
			return nil, nil, err
		}
		pubKeys = append(pubKeys, pubKey.SerializeCompressed())
	}
	return accountPub, pubKeys, nil
}

// multiSigScript returns a requiredSigs-of-len(pubKeys) redeem script.
func multiSigScript(pubKeys [][]byte) ([]byte, error) {
	builder := txscript.NewScriptBuilder().AddInt64(requiredSigs)
	for _, pubKey := range pubKeys {
		builder.AddData(pubKey)
	}
	builder.AddInt64(int64(len(pubKeys)))
	builder.AddOp(txscript.OP_CHECKMULTISIG)
	return builder.Script()
}

// deriveFeeAddresses deterministically derives count P2SH multisig addresses
// for the network from seed.  Address i is built from the first
// keysPerAddress non-hardened children of the hardened account m/i'.
func deriveFeeAddresses(params *chaincfg.Params, seed []byte, count int) ([]feeAddress, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid address count %d", count)
	}
	net, err := hdNetParams(params)
	if err != nil {
		return nil, err
	}
	master, err := hdkeychain.NewMaster(seed, net)
	if err != nil {
		return nil, err
	}

	addrs := make([]feeAddress, 0, count)
	for i := 0; i < count; i++ {
		accountPub, pubKeys, err := accountPubKeys(master, uint32(i))
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", i, err)
		}

		script, err := multiSigScript(pubKeys)
		if err != nil {
			return nil, err
		}
		addr, err := params.EncodeScriptHashAddress(btcutil.Hash160(script))
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, feeAddress{
			Address:      addr,
			AccountKey:   accountPub.String(),
			RedeemScript: script,
		})
	}
	return addrs, nil
}

// writeAddresses prints the addresses one per line, or as the body of a Go
// string slice.
func writeAddresses(w io.Writer, addrs []feeAddress, golang bool) error {
	for _, addr := range addrs {
		var err error
		if golang {
			_, err = fmt.Fprintf(w, "\t%q,\n", addr.Address)
		} else {
			_, err = fmt.Fprintf(w, "%s %s %x\n", addr.Address,
				addr.AccountKey, addr.RedeemScript)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg, params, err := loadConfig(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatalf("%v\n%v", err, usage)
	}

	addrs, err := deriveFeeAddresses(params, []byte(cfg.Seed), cfg.Count)
	if err != nil {
		log.Fatalf("Failed to derive addresses: %v\n%v", err, usage)
	}
	if err := writeAddresses(os.Stdout, addrs, cfg.Golang); err != nil {
		log.Fatalf("Failed to write addresses: %v", err)
	}
}
