// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/require"
)

func TestDecodeAddress(t *testing.T) {
	tests := []struct {
		params *Params
		addr   string
		hash   string
	}{
		{MainNetParams(), "t3PvriaT5d67LnjPzSZF8VCeRCV1UViANJL",
			"3adcdfa9fceb9fd984f29790c72b86c761790111"},
		{MainNetParams(), "t3S7sqzwNMe6Hc4pYVFnUrYEkUNeWqZuZaG",
			"52e2a4755e688a59a8b31ebdfb1b4b41c56f408c"},
		{TestNetParams(), "t2CGbbAAqAfPLexXq6m1a4cTMxmTUqpU9gD",
			"3ebfc289f9dbc0e8902ff564035e869f47d54683"},
		{RegTestParams(), "t2V1osVDkcwYFL4PF9qG8t9Ez1XRVMAkAb6",
			"f66de931cbb5de20b7b046cf00a0d448e71d3d11"},
	}

	for _, test := range tests {
		decoded, err := test.params.DecodeAddress(test.addr)
		require.NoError(t, err)
		require.Equal(t, ScriptHashAddress, decoded.Type)
		require.Equal(t, test.hash, hex.EncodeToString(decoded.Hash[:]))

		script, err := test.params.AddressScript(test.addr)
		require.NoError(t, err)
		require.Equal(t, "a914"+test.hash+"87", hex.EncodeToString(script))

		encoded, err := test.params.EncodeScriptHashAddress(decoded.Hash[:])
		require.NoError(t, err)
		require.Equal(t, test.addr, encoded)
	}
}

func TestPubKeyHashAddress(t *testing.T) {
	regTest := RegTestParams()
	hash := make([]byte, 20)
	hash[19] = 0x01

	addr, err := regTest.EncodePubKeyHashAddress(hash)
	require.NoError(t, err)

	decoded, err := regTest.DecodeAddress(addr)
	require.NoError(t, err)
	require.Equal(t, PubKeyHashAddress, decoded.Type)

	script, err := decoded.Script()
	require.NoError(t, err)
	require.Equal(t, "76a914"+hex.EncodeToString(hash)+"88ac",
		hex.EncodeToString(script))

	_, err = regTest.EncodePubKeyHashAddress(hash[:19])
	require.True(t, errors.Is(err, ErrMalformedAddress))
}

func TestDecodeAddressErrors(t *testing.T) {
	mainNet := MainNetParams()

	// Test network addresses are foreign to the main network.
	_, err := mainNet.DecodeAddress("t2CGbbAAqAfPLexXq6m1a4cTMxmTUqpU9gD")
	require.True(t, errors.Is(err, ErrUnknownAddressType), err)

	_, err = mainNet.DecodeAddress("t3PvriaT5d67LnjPzSZF8VCeRCV1UViANJM")
	require.True(t, errors.Is(err, base58.ErrChecksum), err)

	short := base58.CheckEncode([]byte{0xbd, 0x01, 0x02}, 0x1c)
	_, err = mainNet.DecodeAddress(short)
	require.True(t, errors.Is(err, ErrMalformedAddress), err)

	bad := Address{Type: AddressType(7)}
	_, err = bad.Script()
	require.True(t, errors.Is(err, ErrUnknownAddressType))
}
