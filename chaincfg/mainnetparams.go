// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// mainNetCommunityFeeAddresses are the 2-of-3 multisig addresses that receive
// the main network community fee in turn.
var mainNetCommunityFeeAddresses = []string{
	"t3eC2B44yVkyj7Q7RMkfBhkDisc4ieYtv5d", "t3cwTuGvHTkQc5ym8K39HkQRqgUeovcVXTy", "t3TxoqRtAytbfkBP7FrUPbSsLVLJAYXzLT7",
	"t3dghVnkqR8fqKhBipV2ggb4hoHnuWsHA6J", "t3LdFm55TvejDv823296TCMaxP1bDDSKQCQ", "t3UfK69A7EJCxpDoGFon3LJ5snLP3n1vDKC",
	"t3beERSviug8ardPTZnA2kPSmTQcaJNfL8y", "t3QRFq83FBJBJMg6HDgazjUWeStnsT9222x", "t3eJppdTuMLyYAKFXR1PEz1caonFW2RmJBB",
	"t3fWX6Tb6oxozvXwikCUV3s6E5uRHom7tEx", "t3ZKRdZPBFk3YNPR6ZfDWj82giBqkUqF2hX", "t3MkQ4ccb4q1Mz7Jzi8XKuQSxuae7PZzTLh",
	"t3ZyAJzpM8FKiQZZnqzGRB6LyQUYMQyvHMc", "t3Ur38PYZer2qHh9S9s5jiqkf7oe5bbtDVg", "t3f34ZKtaLZKMeRrPkjMVoGyZRBQGLxXL3t",
	"t3JpszYL1aLDVdhzVGPwSR3DZLGLKrxRLsU", "t3XSxsjYsRQG3SqyhURzthbK8KeTAAJdAMc", "t3euzVctNvQbqeEpn2xNR82PtgYwQ6qYRjf",
	"t3RG4E22bZfxKc5898VLbaXNHf6ThSJRFib", "t3SgMvNMhc8KhHFWN6YYG4de52PnG98HbnY", "t3NPGwdKqnixFQKrm9gUi6EezaCmscw1FcQ",
	"t3RzJ8w7pm8N5TiXBwmRu2nhkKfcqrEGCTy", "t3ajEu7N81EDAneDBucYNtg6Nc8U1kh9krT", "t3fKRecuPaUCJqUa5YbFxN6swETy1wTVqrH",
	"t3cLpLDoAts2Q7s3NsgRBnA2tARDyU6jo32", "t3UPnVmdHZjk3ASSzTCihZyvMy9PXGyd6q7", "t3KLY8t3HEKx3eKbbMSzKToKBZgVAyCiFhs",
	"t3QsMwSJEkQCgo3sXej5UjQCL3jHmpBHJip", "t3ZLJ81cBfUnqJ4s4yG9Ki4TTCq7Bd9eVut", "t3UDeoqzJUg9Fr5zwsqGwqhYHKgr36L4RJc",
	"t3SQTn4JtTXu8GurZsCzQx5xxH8MqJQ7iii", "t3Rh7iw8Pw4SJZrRwTnoTBv8eV3GwSF2hy9", "t3N9p9vVZTpc8reeuAZ9zGx1zoBjH4SjanH",
	"t3gqTdfwB1TiwN2ZCRcf9uEyrZKyXL5ccza", "t3gnsKHic8ne96pjx8nrFSJ643whhzcoyeE", "t3gsHcGLN3r35yEB59iNhCJw2iHuQKMZRie",
	"t3XxfcJQiy18Ex6jjuUX5k48K94EkqDagQN", "t3ZDGsmra5Cqk3bTvXWfsV4vYXXXSNKB9AE", "t3Y1YmUwa5LWQ1rTpzePN7EaNJsjb3pqK7J",
	"t3UzzHe2jeZua46RWL9bGuqkKs5STcoqPBJ", "t3MUQ1wGzC1977gSGzcoys4wt8d4JCdcuLv", "t3TA5fhiZn5AUQwyvL8WMdvySdoeq9wXvCT",
	"t3QKJnR4mrsGN4FyrdCHwoGC5LsEiYzRxKi", "t3Zw9p7MymABQDCUAkGbJKbw36Q3yZziwoe", "t3e73KWV7uY6rr2WoB1s2MCkkPjRxwGeCpt",
	"t3No3teH29dUJDcvQjLMPMZGoWN7vxU21LN", "t3VqnNUwzfrNkyDQoV3eBhcxQAQD3AXFFEZ", "t3KwL1ai4HvNaCcvnSYMkow9ywrXpvfz6Rr",
	"t3c72hsWG8SSMmMEwgS4BhVLEbaxS3PuHY4", "t3e7m74PF6yzW3zF5zAFYPCK7uVriykHoLu", "t3SausNGUC2vU6WkAN63khGL8axYFNYCQDg",
	"t3YPPSp668pSCQRrACgzTPoLuVaRTFFoeus", "t3cESR3q2Hh6mJbyC6ZBu4Jz8Dp1t7mbHLY", "t3WdLNKb194Ta3JRHxiip5ov83bFdLEwT91",
	"t3RixV5JL3Dr8B3sLZNWKokTWtVgnVMZZqM", "t3QKuKTub5vSRmWY6ExZqnUB3q5xLU1Lhp4", "t3U2X6AvUMWGWqFc1JxzsmeqDQq7G4Bcw3P",
	"t3Muezje93XcbjcWXKAeiPkACvADqZ4sed5", "t3S2fQysABXFxQJHGiE5tonFGRsuJkCYeRh", "t3PjeLxNmvbeSra4fURNKJazJDFwYdwSoA4",
	"t3VRFH5L43EbfTdnPwXRPvv3enRiAuvCJyG", "t3Tf22bky4tgR1wWKXKaKrtvZuLnuuh1dqM", "t3NKkGpiaUAX424KcPmX5UQ5xDx5scmKszz",
	"t3RFL3GARoko4vcPz1kvMpTBBrCUdwUiTM6", "t3eWEXExkTwNS4rFAMPKVA4CGVYQcJgbmdR", "t3VgtNUJLg1XDva3uMzVs8ZWsfmcneCwBoL",
	"t3Szm7fpJGzHnjxp1oSLciWHvVBNH3JBRg2", "t3USbLxCgLD5PzyDEy3bukoMZikiURRSL3S", "t3dZSEiB5p6y5WRZtCvz9CXRxnJSGoF9xp7",
	"t3YUjNigA9iD9gcJijy2X7qLvodMQaPwXYv", "t3MMfDtoysWMuhSa9wNTyjCvT3PtZ12UbeH", "t3KkanhBkRgJWTPckBHJazjasfnNi9DDCKe",
	"t3V3xqLmyjcSi1s6cJshCqP1Cf27x9DE2AB", "t3LgvwqUzsBGe9cPLqz2E2SXMxfPqSj6vh8", "t3VWw4ZRHHYZPgFMkEjBxdVCrUjJQtEHqah",
	"t3VWzRA9uP7c9zNiuBeB1V45c41ntDYdUQ6", "t3UHQzHwBXtb2SL823eVBVVeJiLhS1iL6Jm", "t3LhjLqqKKs4yvq1umm9MxpXj7FYuuiiYtm",
	"t3bnF3z7Z2DXc4p2tm5v5wtPQZQh7KFKjAK", "t3aLaR9GNpCoFF1HAKUCGzaR1wEEEK8G4vF", "t3YvmLwEBtYxLbRNQcMcqmHuSF7MAgRo1Dg",
	"t3ZCuv9FAYFzJBHVXWiGRmdXmE75WfPvi1J", "t3gn9cFxcnhuLpbBRX83Vt85EsWWh7t53co", "t3UdNuyX5u1ZSp38rsxyWtSYwHkrSd5xcut",
	"t3cotrT3GSzEqyKreNJmmS6kdzpCg6DafWW", "t3KBUuKs9LbfaNZRXWVAYcKynXiYR3Ega93", "t3duamHU9FHanjbhr2C5PUSUctRP2bujdut",
	"t3KxdJqVTTTVBcjCfcvbHipb4uLRM8WYo8H", "t3RzdWNacywKryT31xRvSpv79Viag87cCYG", "t3XdEptUkTXQLkiigBzCzzEsNSqHbgo37WT",
	"t3gqDqSuEWbYHxNcsagn44jRySjMHC2z5T2", "t3XCxm4jLmqwc4wLBrPhRkoHvp3nCJCqioX", "t3b1e9rURGhwAbpKfs9wHJD5qVxZsf44ZTR",
	"t3KP9rhDrCH8V8LzGRx9up281rsPg4tdv1Y", "t3XXxYXXnx2PiZSGbzmr9rmEXDvY9yYBvTb", "t3LHTCBkpq3b22wjuHT1usGsGSBJ3CdJhSJ",
	"t3PycyM8zzm9zptQ14QV7TT45uGsf3dsEPP", "t3fUhKH2G5TYbmuZrkq4a6GJon51D6Qiyss", "t3gGLesWeA25QKbb1QFNMw6NN33T6hcQAAE",
	"t3bi7pnM4mQ6RbQZwufGDt9m2uNnxHNBk37",
}

// MainNetParams returns the network parameters for the main BitcoinZ network.
func MainNetParams() *Params {
	genesisBlock := newGenesisBlock(1478403829,
		"000000000000000000000000000000000000000000000000000000000000021d",
		"", 0x1f07ffff)

	p := &Params{
		Name:          "main",
		Net:           MainNet,
		CurrencyUnits: "BTCZ",
		BIP44CoinType: 177,
		MessageStart:  [4]byte{0x24, 0xe9, 0x27, 0x64},
		DefaultPort:   "1989",
		DNSSeeds: []DNSSeed{
			{"btzseed2.blockhub.info", false},
			{"btzseed.blockhub.info", false},
			{"seed.btcz.app", false},
		},

		// Chain parameters
		GenesisBlock: genesisBlock,
		GenesisHash: newHashFromStr("f499ee3d498b4298ac6a64205b8addb7" +
			"c43197e2a660229be65db8a4534d75c1"),
		PowLimit:                    new(big.Int).Set(mainPowLimit),
		PowLimitBits:                0x1f07ffff,
		PowAveragingWindow:          13,
		PowMaxAdjustDown:            34,
		PowMaxAdjustUp:              34,
		PreBlossomPowTargetSpacing:  150,
		PostBlossomPowTargetSpacing: 75,
		PowAllowMinDifficultyBlocks: false,
		MinimumChainWork:            hexToBig("a064014966b5"),

		SubsidySlowStartInterval:          0,
		PreBlossomSubsidyHalvingInterval:  840000,
		PostBlossomSubsidyHalvingInterval: 1680000,

		Upgrades: [MaxNetworkUpgrades]NetworkUpgrade{
			BaseSprout:        {ProtocolVersion: 170002, Activation: AlwaysActive()},
			UpgradeTestDummy:  {ProtocolVersion: 170002, Activation: NeverActive()},
			UpgradeOverwinter: {ProtocolVersion: 770006, Activation: ActiveAt(328500)},
			UpgradeSapling:    {ProtocolVersion: 770006, Activation: ActiveAt(328500)},
			UpgradeBlossom:    {ProtocolVersion: 770006, Activation: NeverActive()},
			UpgradeCanopy:     {ProtocolVersion: 770012, Activation: ActiveAt(1680000)},
		},

		CommunityFeeStartHeight: 328500,
		CommunityFeeLastHeight:  1400000,
		CommunityFeeAddresses:   append([]string(nil), mainNetCommunityFeeAddresses...),

		FundingPeriodLength: 840000 / fundingPeriodsPerHalving,

		Equihash: EquihashEpochs{
			Epoch1:           Equihash200_9,
			Epoch2:           Equihash144_5,
			Epoch1EndBlock:   160010,
			Epoch2StartBlock: 160000,
		},

		FutureBlockTimeWindows: map[int32]time.Duration{
			0:      2 * time.Hour,
			159300: 30 * time.Minute,
			364400: 5 * time.Minute,
		},

		// Checkpoints ordered from oldest to newest.
		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, newHashFromStr("f499ee3d498b4298ac6a64205b8addb7c43197e2a660229be65db8a4534d75c1")},
				{2007, newHashFromStr("000000215111f83669484439371ced6e3bc48cd7e7d6be8afa18952206304a1b")},
				{10000, newHashFromStr("00000002ccb858ec2c35fb79ce2079333461efa50f2b59814558b9ae3ce62a40")},
				{20675, newHashFromStr("00000004804df1618f984fef70c1a210988ade5093b6947c691422fc93013a63")},
				{40000, newHashFromStr("00000005a2d9a94e2e16f9c1e578a2eb46cc267ab7a51539d22ff8aa0096140b")},
				{56000, newHashFromStr("000000026a063927c6746acec6c0957d1f69fa2ab1a59c06ce30d60bbbcea92a")},
				{84208, newHashFromStr("0000000328e5d0346a78aea2d586154ab3145d51ba3936998253593b0ab2980c")},
				{105841, newHashFromStr("000000010305387fd72bc70ce5cc5b512fe513016e7208b9ee61d601fe212991")},
				{140000, newHashFromStr("0000000155f89d1ededf519c6445d41c9240ee4daa721c91c19eea0faa2f02c8")},
				{153955, newHashFromStr("00000006913d3122f32e60c9d64e87edd8e9a05444447df49713c15fbae6484d")},
				{160011, newHashFromStr("0003a9fbed918bdd83fb5d38016189d5b8fe77495d4a7bd2405d3e8a04a62201")},
				{166500, newHashFromStr("0000002b640d62dd0c2ab68774b05297d2aa72bd63997d3a73ad959963b148d8")},
				{352440, newHashFromStr("000000188d7e36ac236d2a1b549f14fe6fff287b80b4c68a832b6c80b8810fa2")},
				{352540, newHashFromStr("00000006838b961606dad5a3da08b595a69cb8fc78684d9a4d3d3727bc96eb2b")},
				{352640, newHashFromStr("000000c4a4a131d358a4b5419171c627cfb219367a810ca1780ef3119f634b6b")},
				{352740, newHashFromStr("0000006bcc7d38424a1cf996b3b4ee61c44f941523af16c26c22c2708151a977")},
				{357600, newHashFromStr("0000003b302a1ecfa6555b64981b1950853f49e022c923e98f94535225c6c54a")},
				{500000, newHashFromStr("0000002bf33f0c63ce3d9a9ff15c154b27dc80de1bd8ac891eb24acf13cdad40")},
				{600000, newHashFromStr("000000ed96988f1b3bd63e65dc933f226ae2e0e722f8bdcf43937f58929a9e3d")},
				{700000, newHashFromStr("00000295a14a32e2d0ca939b22295ea093bc73ee73664c6900ff1278a2e4067b")},
				{800000, newHashFromStr("0000003c5772dfbeb950307478a53a5392c2e7b3e58fc9cfea79c83583284618")},
				{900000, newHashFromStr("0000014ab739fe933f697b9a32e8aae19a3629937bd6e3f419626c49e880880f")},
				{1000000, newHashFromStr("0000007de5a17a38a4f43e44947acf084949080715e9dd6a235af9c704246cf0")},
				{1100000, newHashFromStr("000000211ead28f86240b83fff913a04caddb3a2f9e19d42a898526f30002429")},
				{1200000, newHashFromStr("00000093b2415c696284232f27a9c3a363115b197068e6788e3435d09fc77a40")},
				{1300000, newHashFromStr("000000c525dea4be1246e9b5b1a0db728d7f8ac2fa28dfe0de0d9c82ba79c934")},
				{1400000, newHashFromStr("000000d6ec96846f53f6c17b1d6c450be50ad54a25ed047deb3076cd31c0f5fd")},
			},
			TimeLastCheckpoint:         1722854257,
			TransactionsLastCheckpoint: 3896307,
			TransactionsPerDay:         2244.272832,
		},

		CoinbaseMustBeShielded: true,
		ZIP209Enabled:          true,

		MajorityEnforceBlockUpgrade: 750,
		MajorityRejectBlockOutdated: 950,
		MajorityWindow:              4000,
		PruneAfterHeight:            100000,

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		MineBlocksOnDemand:       false,

		// Address encoding magics
		PubKeyHashAddrID: [2]byte{0x1c, 0xb8}, // starts with t1
		ScriptHashAddrID: [2]byte{0x1c, 0xbd}, // starts with t3
		PrivateKeyID:     0x80,                 // starts with 5 (uncompressed) or K (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub
	}

	// BP, ZF and MG each use a single address repeated once for every
	// funding period.
	p.mustAddZIP207FundingStream(FundingStreamBP, 3360000,
		repeatAddress("t3PvriaT5d67LnjPzSZF8VCeRCV1UViANJL", 96))
	p.mustAddZIP207FundingStream(FundingStreamZF, 3360000,
		repeatAddress("t3S7sqzwNMe6Hc4pYVFnUrYEkUNeWqZuZaG", 96))
	p.mustAddZIP207FundingStream(FundingStreamMG, 3360000,
		repeatAddress("t3N9yQChEYNR3Vx5u5YWmMRPBUJ5d7FjQkV", 96))

	return mustValidate(p)
}
