// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The btczd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// testNetGenesisSolution is the Equihash (200, 9) solution of the test network
// genesis block.
const testNetGenesisSolution = "" +
	"002b24e10a5d2ab32b053a20ca6ebed779be1d935b1500eeea5c87aec684c6f9" +
	"34196fdfca6539de0cf1141544bffc5c0d1d4bab815fb5d8c2b195ccdf075559" +
	"9ee492b9d98e3b79a178949f45485ad80dba38ec0461102adaa369b757ebb2bf" +
	"8d75b5f67a341d666406d862a102c69800f20a7075be360a7eb2d315d78e4ce3" +
	"2c741f3baf7bf3e1e651976f734f367b1f126f62503b34d06d6e99b3659b2a47" +
	"f5cfcf71c87e24e5023151d4af87454e7638a19b846350dd5fbc53e4ce1cce25" +
	"97992b36cbcae0c24717e412c8df9ddca3e90c7629bd8c157c66d8906486943c" +
	"f78e24d55dd4152f45eff49acf9fb9fddef81f2ee55892b38db940c404eaacf8" +
	"19588b83f0f761f1ba5b31a0ea1f8f4c5210638bbb59a2d8ddff9535f546b42a" +
	"7eac5f3ee87616a075bddc3118b7f2c041f4b1e8dbcd11eea95835403066b5bb" +
	"50cd23122dcb12166d75aafcfc1ca8f30580b4d48a5aa305657a06b4b650ed46" +
	"33f2fa496235082feff65f70e19871f41b70632b53e57ddf38c207d631e5a56f" +
	"a50bb71150f99427f73d82a439a5f70dfc7d8bbfc39d330ca7924527a5deb895" +
	"0b9fa7020cfde5e07b84546e96764519ef6dd3fdc3a974abd342bdc7e4ee76bc" +
	"11d5519541015afba1a0517fd347196aa326b0905a5916b83515c16f8f131054" +
	"79c29f1eff3bc024ddbb07dcc672247cedc0d4ba32332ead0f13c58f50170642" +
	"e16e076c34f5e75e3e8f5ac7f5238d67564fd385efecf972b0abf939a99bc7ef" +
	"8f3a21cac21d2168706bbad3f4af66bb01cf61cfbc352a23797b62dcb5480bf2" +
	"b7b277af233f5ce42a144d47119a89e1d114fa0bec2f13475b6b1df907bc3a42" +
	"9f1771afa3857bf16bfca3f76a5df14da62dc157fff4225bda73c3cfefa989ed" +
	"c24673bf932a024593da4c38b1a4628dd77ad919f4f7b7fb76976e696db69c89" +
	"016ab30d9aa2d509f78d913d00ca9ac881aa759fc019b8c5e3eac6fddb4e0f04" +
	"4595e10d4997e29c79800f77cf1d97583d534db0f2726cba3739e7371eeffa2a" +
	"ca12b0d290ac45f44973f32f7675a5b49c94c4b608da2926555d16b7eb3670e1" +
	"2345a63f88797e5a5e21252c2c9463d7896001031a81bac0354336b35c5a10c9" +
	"3d9ae3054f6f6e4492f7c1f09a9d75034d5d0b220a9bb231e583659d5b6923a4" +
	"e879326194de5c9805a02cb648508a8f9b6cd26dc17d322a478c1c599e1ec3ad" +
	"f2da6ce7a7e3a073b55cf30cf6b124f7700409abe14af8c60ab178579623916f" +
	"165dbfd26f37056bf33c34f3af30939e1277376e4c5cba339f36381a05ef6481" +
	"db033fb4c07a19e8655f8b12f9ab3c602e127b4ab1ee48e1c6a91382b54ed36e" +
	"f9bb21b3bfa80a9107864dcb594dcad250e402b312607e648639631a3d1aeb17" +
	"cfe3370202720ca8a46db15af92e8b46062b5bd035b24c35a592e5620d632faf" +
	"1bf19a86df179fe52dd4cdbecd3cb7a336ca7489e4d1dc9433f1163c89d88c5e" +
	"ac36fc562496dc7583fe67c559c9a71cf89e9a0a59d5a14764926852d44a88d2" +
	"ddb361d612ec06f9de874473eaf1d36b3a41911ac072b7826e6acea3d8425dc2" +
	"71833dba2ec17d1a270e49becbf21330ba2f0edc4b05f4df01623f3c82246ae2" +
	"3ea2c022434ef09611aa19ba35c3ecbad965af3ad9bc6c9b0d3b059c239ffbf9" +
	"272d0150c151b4510d659cbd0e4a9c32945c612681b70ee4dcbeefeacde630b1" +
	"27115fd9af16cef4afefe611c9dfcc63e6833bf4dab79a7e1ae3f70321429557" +
	"ab9da48bf93647830b5eb5780f23476d3d4d06a39ae532da5b2f30f151587eb5" +
	"df19ec1acf099e1ac506e071eb52c3c3cc88ccf6622b2913acf07f1b772b5012" +
	"e39173211e51773f3eb42d667fff1d902c5c87bd507837b3fd993e70ac9706a0"

// testNetCommunityFeeAddresses are the 2-of-3 multisig addresses that receive
// the test network community fee in turn.
var testNetCommunityFeeAddresses = []string{
	"t2FpKCWt95LAPVRed61YbBny9yz5nqexLGN", "t2RqJNenxiDjC5NiVo84xgfHcYuwsPcpCie", "t2MsHkAug2oEiqj4L5ZGZH1vHmdogTSb9km",
	"t2EwBFfC96DCiCAcJuEqGUbUes8rTNmaD6Q", "t2JqYXRoTsKb9r1rTLLwDs5jMXzsRBV317k", "t2RocidGU4ReKPK2uTPYfNFgeZEWDCd3jsj",
	"t2Mu8ToNiVow92PfETBk5Z6HWuAEG7RVXVD", "t2MSLT1n4eQ87QC2FAxMvuTZ84zDzEj7FhQ", "t2JZNFrWv1c4RqkCmDN9iRkPsG8xAZFdyGS",
	"t2AyjEVUCf5jthGHZjwfbztDBHQbztkJB5v", "t2Gs6dTYCzaFdHSeT91zaFLKmYzyqYY3NnP", "t2FXfNK7iQhTdMFcGUyrizqXQE5qbmPK6zc",
	"t2UqLwQ85pR1fdFMoUzXadXRB97JxP6vTWY", "t2BocGBq7iBXQP8UQiousNVwU8M6AqUtaRx", "t2VGGdXhspjF3iQvbWZW2zPNSDRSYauBcM3",
	"t2HTNHicoeEXxsX1wVhsqsX3LgzRq2pYgWH", "t2UiVSyM1vuvs6xP3157ytuYMKN6MuqmgJE", "t2UmPyNoWSVUgyPzEXzFGN5GS96jMH2kreW",
	"t2MQWZJHxZF5zSw6LbZ3S7jqoLX1y6SWLHQ", "t2VUR1c1aFaTUo93uhi7rfFVRRZaT1aQYbv", "t2NgLU6QCJhCKgBsR5uX6R4ds82jymzMoMJ",
	"t2RorFwMUEb7NamvXFi3jCXitAdRoQtU1Hs", "t2FFtmwePBnYaRVRVg1wsoBPxDzGMLrz3Jv", "t2GH3734fKEhPo3NvvAZQazsFf3V51oR4c2",
	"t2Ev3twAmUmono3gM2Q6RsfhRiryy7TnX5E", "t2EmhhAjh6cLpyw6Yc9QEXvsjm7qdKpgFQP", "t2Gy5N7DYbEZmiHqm3m8Re25a8Bxu7e36ju",
	"t2LVSaxizciFWfc5gr1xccHXT115RSnQ13r", "t28zy3Qiq3FtMeB2PCEysF7R5TgW5UfZN1N", "t2FcN7o26gRCc8ZuSZcc7X7APPRqWQ5a3W2",
	"t27QTHP9qoi5HkiTqx4JV86MGG37aikK51s", "t2CwQ6H9GPT77nqRwkHCuVcyGvtbhxWHfAk", "t2HLUDaoimaaSpQhHnvbqpKg6Fi37rAo6cx",
	"t2Ebuq1FX7Qzi3ur1FnwsDMvfNBFjqVqDGX", "t2Bca3HbSbwgQp1ZhzheNvGfpwBoU6Syt8G", "t2EurfAqyJMsCyx6ujYecQSxrPPY7xxTqcB",
	"t2R1kJGeNhLpKx1dKNCnBUq1BkxBVJjQdcp", "t2M3x9koBJWJS1F9bGtWXTsVfr5pesWSTbR", "t2La4mEMruVTtBqhndS7zRvmi2WsqWUjPQz",
	"t29GwTHLXxYgF5k7SSj7XFaHB7JsocM9bDU", "t2Awpdv7yG2QFeHeq17J1qCSXRw1AM3mfmz", "t2BfotpLdNhhewRp9nXpBBYViBaq4y1Lnj5",
	"t2F4CH89prySyGZHUiPYJUjnZk9UPXgLBbf", "t2DNx1KzP8a2S3kZgAPngso9ptva5gE7Jbn", "t2Eb7orwhjGcu4wYwHBzN5BoXzroPGq3CoM",
	"t2BXYmM21WCdHiC1KiwQVHxaTvLQJpqXTvH", "t27Y6774dwAcCFvYrhDKTXgaxtUewAdZdtz", "t2JvmRjZnViBZXJJBekDygdvGTCRNWgFEK2",
	"t2PL5W7qy1DKNRPWECbaZ6gV9GEzMn8h97Z", "t2S1JaefdSNwaUexdr6ZtNJhqZS8uDGSNFg", "t2BTunj4VB44Q22crWpT1ykoBvNGFKMnD7N",
	"t2G7DkSoEUJGaEBH6erKsXemoHFqqTRaSiZ", "t2Ldg8Bc6AWDuESqPgUoumWfCYw3zqKF8s9", "t2Ft4QMMiJfKXVbhyGBrkwjnfn5ua73VuLo",
	"t26xLxd4Fabbotkc9gfFwpCVHoZG1W9rmN7", "t2DyghJMpK6rRKPEAL3DBKmCntUcj8bUiHg", "t2RSYhCsgw2AdBiUUyXBCkFf2xE9ddwyESD",
	"t26fv5NLiFYXMmfQnvqcJXcYnt5NY41eqrv", "t2Ppht55eXKC1BX7pfusJxZqbHnkp9oWbBW", "t2P4AWJ5C4ySU3KzfehAeppH2BV4Y87w34z",
	"t28zjDUH2Gkvt8Ytb8UrW7L6G5U1QMwJFM3", "t2JXDd9pumryTAXqDD98vDLS2ZLSQCNQrYZ", "t2BNuNGnGq49MZzr7SH8WtEE7sSwZ9n3bsz",
	"t2QumKdHZhkFD6ntrzJ9zJAga2QemEgqc9r", "t2UKz2L7V3C6GTeBPDXmQnwMyqKEbgMpuXg", "t2CyVugoafiDYpeSNd9DGZEng6Bpr4tqa3d",
	"t2GR9eEen8KUDjhQG1opC1aFt27zxdtufnF", "t2JKYuSRNupdHdTR91tqR4xsaU6friVJJgv", "t2D2yMZEM3K8ap6iLo3FX2g1Ch9coPSVq2R",
	"t2SeFu34eiE2rCPFpxrN8im6ZvcwMpdKnit", "t2KH46EXQy5wnZHDGVDA7Q13FdRkdQ3LUou", "t2UsTpuVqP6ZubtN8tQGPnh7Cqjjf1hoefd",
	"t2Dd119xiqDbF9QzWwYfnYWUPfqgnL1CNFu", "t29PjecMhv6EygD8W6smcMHAB8MSHQY3YnQ", "t2BDZpxgcMRzqgKbDBiXRXrvL3VwD7G8cLc",
	"t2MwiKqfCMdy7o96bXvbZ5aGCrRmVfVWVfA", "t2Vhkny4jNjy6ZD53jeQzsdgZiZyejwRsgY", "t2K3ouBrLAbYwZv6beoHjzfsE1AbYVa6PuE",
	"t2DskMSpWs8i9vK2PhNpi9Mu2qJSvEDi8UZ", "t2JB2Uz3eVWrxFhas1B1cSXLP22JHbRNYtL", "t2ArYKW1L8hRoCDK9odNmD4piRwFheErWL1",
	"t2K1zKGHrkibiFoYJ5GtfHe5xJecJPEvFwQ", "t2VnABknMprtMk8y5AdDCBr2R9QZnMhfqSm", "t2FbjEsP9eeQr5PmP7yC3fopPTuYS9E9VgN",
	"t2Sn2XUPZEnFcggB77jvxBqX6LcjdCzcJUs", "t2SEK3Tw5FYYUaeZcF5QemfeG3tiorrxNKp", "t2D78THpHVodnhiREjF22A3KRznor5pPnR1",
	"t2GyqFdkf6FoQTShEhLGsNrTxAWqmeq4pui", "t2HnNgFLznEqaokYq8PBV44uzRwAmJXQeKd", "t2PpHVStdHvWkzXsyuyPYQQq96ZRQu7ALpE",
	"t2FHbHM9rKKHZe74HRBNozwNdRsExug8tCw", "t29tM6DkMPSVp9R3g7UjZjvsobKhsbsRqFL", "t2K2KixLVJo19phPJMv9ApSiFmxQCSQUvc9",
	"t2AWJcGVUMWFC8A9KC3PL7qoCb1vxSzxbJP", "t26p8FyjHmhqZ6duzhRFLCQcExh1TuCD1sC", "t27x5n41uRNF3tJkb3Lg1CMomUjTNZwtUfm",
	"t2VhRQJ9xeVkVVk7ic21CtDePKmHnrDyF8Z", "t27hL1iAsTHBPWrdc1qYGSSTc3pTyBqohd4", "t2RqLYWG8Eo4hopDsn1m8GUoAWtjZQEPE9s",
	"t2V1osVDkcwYFL4PF9qG8t9Ez1XRVMAkAb6",
}

// TestNetParams returns the network parameters for the BitcoinZ test network.
func TestNetParams() *Params {
	genesisBlock := newGenesisBlock(1479443947,
		"0000000000000000000000000000000000000000000000000000000000000013",
		testNetGenesisSolution, 0x2007ffff)
	genesisHash := newHashFromStr("198659d06394e6d6b822495cd03dfe15" +
		"4987b48bfb83c137b18a2c62914b55f4")

	p := &Params{
		Name:          "test",
		Net:           TestNet,
		CurrencyUnits: "TZB",
		BIP44CoinType: 1,
		MessageStart:  [4]byte{0xfa, 0x1a, 0xf9, 0xbf},
		DefaultPort:   "11989",
		DNSSeeds: []DNSSeed{
			{"test.seed.btcz.app", false},
		},

		// Chain parameters
		GenesisBlock:                           genesisBlock,
		GenesisHash:                            genesisHash,
		PowLimit:                               new(big.Int).Set(testNetPowLimit),
		PowLimitBits:                           0x2007ffff,
		PowAveragingWindow:                     13,
		PowMaxAdjustDown:                       34,
		PowMaxAdjustUp:                         34,
		PreBlossomPowTargetSpacing:             150,
		PostBlossomPowTargetSpacing:            75,
		PowAllowMinDifficultyBlocks:            true,
		PowAllowMinDifficultyBlocksAfterHeight: 299187,
		MinimumChainWork:                       hexToBig("5000"),

		SubsidySlowStartInterval:          0,
		PreBlossomSubsidyHalvingInterval:  840000,
		PostBlossomSubsidyHalvingInterval: 1680000,

		Upgrades: [MaxNetworkUpgrades]NetworkUpgrade{
			BaseSprout:        {ProtocolVersion: 170002, Activation: AlwaysActive()},
			UpgradeTestDummy:  {ProtocolVersion: 170002, Activation: NeverActive()},
			UpgradeOverwinter: {ProtocolVersion: 770006, Activation: ActiveAt(1500)},
			UpgradeSapling:    {ProtocolVersion: 770006, Activation: ActiveAt(1500)},
			UpgradeBlossom:    {ProtocolVersion: 770006, Activation: NeverActive()},
			UpgradeCanopy:     {ProtocolVersion: 770012, Activation: ActiveAt(840000)},
		},

		CommunityFeeStartHeight: 1500,
		CommunityFeeLastHeight:  1400000,
		CommunityFeeAddresses:   append([]string(nil), testNetCommunityFeeAddresses...),

		FundingPeriodLength: 840000 / fundingPeriodsPerHalving,

		Equihash: EquihashEpochs{
			Epoch1:           Equihash200_9,
			Epoch2:           Equihash144_5,
			Epoch1EndBlock:   1210,
			Epoch2StartBlock: 1200,
		},

		FutureBlockTimeWindows: map[int32]time.Duration{
			0:     2 * time.Hour,
			13999: 30 * time.Minute,
			14000: 5 * time.Minute,
		},

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{0, genesisHash},
			},
			TimeLastCheckpoint: 1479443947,
		},

		CoinbaseMustBeShielded: true,
		ZIP209Enabled:          true,

		MajorityEnforceBlockUpgrade: 51,
		MajorityRejectBlockOutdated: 75,
		MajorityWindow:              400,
		PruneAfterHeight:            1000,

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		MineBlocksOnDemand:       false,

		// Address encoding magics
		PubKeyHashAddrID: [2]byte{0x1d, 0x25}, // starts with tm
		ScriptHashAddrID: [2]byte{0x1c, 0xba}, // starts with t2
		PrivateKeyID:     0xef,                 // starts with 9 (uncompressed) or c (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
	}

	p.mustAddZIP207FundingStream(FundingStreamBP, 1680000,
		repeatAddress("t2CGbbAAqAfPLexXq6m1a4cTMxmTUqpU9gD", 48))
	p.mustAddZIP207FundingStream(FundingStreamZF, 1680000,
		repeatAddress("t2VS2yFHe7yGTkdtkPu5aQLM2fiPLz5rAqW", 48))
	p.mustAddZIP207FundingStream(FundingStreamMG, 1680000,
		repeatAddress("t2FDYrWbNFzmGKQytVy5FfH8w19g4o6jwFo", 48))

	return mustValidate(p)
}
