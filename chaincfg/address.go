// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/txscript"
)

// hash160Size is the length of a RIPEMD160(SHA256(x)) digest.
const hash160Size = 20

var (
	// ErrUnknownAddressType describes an error where an address does not
	// carry one of the network's transparent address prefixes.
	ErrUnknownAddressType = errors.New("unknown address type")

	// ErrMalformedAddress describes an error where an address decodes to
	// an unexpected length.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrNotScriptHash describes an error where a P2SH address was
	// required.
	ErrNotScriptHash = errors.New("address is not pay-to-script-hash")
)

// AddressType distinguishes the transparent address kinds.
type AddressType uint8

const (
	// PubKeyHashAddress pays to the hash of a public key.
	PubKeyHashAddress AddressType = iota

	// ScriptHashAddress pays to the hash of a redeem script.
	ScriptHashAddress
)

// Address is a decoded transparent address.
type Address struct {
	Type AddressType
	Hash [hash160Size]byte
}

// Script returns the output script paying to the address.
func (a *Address) Script() ([]byte, error) {
	builder := txscript.NewScriptBuilder()
	switch a.Type {
	case PubKeyHashAddress:
		builder.AddOp(txscript.OP_DUP).AddOp(txscript.OP_HASH160).
			AddData(a.Hash[:]).AddOp(txscript.OP_EQUALVERIFY).
			AddOp(txscript.OP_CHECKSIG)
	case ScriptHashAddress:
		builder.AddOp(txscript.OP_HASH160).AddData(a.Hash[:]).
			AddOp(txscript.OP_EQUAL)
	default:
		return nil, ErrUnknownAddressType
	}
	return builder.Script()
}

// DecodeAddress decodes a base58check transparent address for this network.
// Transparent addresses carry a two byte prefix; the first byte travels as
// the base58check version.
func (p *Params) DecodeAddress(addr string) (*Address, error) {
	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", addr, err)
	}
	if len(payload) != 1+hash160Size {
		return nil, fmt.Errorf("decode %q: %w", addr, ErrMalformedAddress)
	}

	prefix := [2]byte{version, payload[0]}
	var decoded Address
	switch prefix {
	case p.PubKeyHashAddrID:
		decoded.Type = PubKeyHashAddress
	case p.ScriptHashAddrID:
		decoded.Type = ScriptHashAddress
	default:
		return nil, fmt.Errorf("decode %q: %w", addr, ErrUnknownAddressType)
	}
	copy(decoded.Hash[:], payload[1:])

	return &decoded, nil
}

// AddressScript decodes the address and returns its output script.
func (p *Params) AddressScript(addr string) ([]byte, error) {
	decoded, err := p.DecodeAddress(addr)
	if err != nil {
		return nil, err
	}
	return decoded.Script()
}

func encodeAddress(prefix [2]byte, hash []byte) (string, error) {
	if len(hash) != hash160Size {
		return "", ErrMalformedAddress
	}
	payload := make([]byte, 0, 1+hash160Size)
	payload = append(payload, prefix[1])
	payload = append(payload, hash...)
	return base58.CheckEncode(payload, prefix[0]), nil
}

// EncodeScriptHashAddress returns the P2SH address of a redeem script hash.
func (p *Params) EncodeScriptHashAddress(scriptHash []byte) (string, error) {
	return encodeAddress(p.ScriptHashAddrID, scriptHash)
}

// EncodePubKeyHashAddress returns the P2PKH address of a public key hash.
func (p *Params) EncodePubKeyHashAddress(pubKeyHash []byte) (string, error) {
	return encodeAddress(p.PubKeyHashAddrID, pubKeyHash)
}
