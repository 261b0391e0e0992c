// Package engines implements cryptographic cipher engines.
package engines

// blowfishVector is one (key, plaintext, ciphertext) triple used by SelfTest.
type blowfishVector struct {
	key        string
	plaintext  string
	ciphertext string
}

// selfTestVectors are 34 key/plaintext/ciphertext triples taken from the
// classic Eric Young Blowfish test set; a few triples appear twice.
// SelfTest also checks that each ciphertext decrypts back to its plaintext.
var selfTestVectors = []blowfishVector{
	{key: "0000000000000000", plaintext: "0000000000000000", ciphertext: "4ef997456198dd78"},
	{key: "ffffffffffffffff", plaintext: "ffffffffffffffff", ciphertext: "51866fd5b85ecb8a"},
	{key: "3000000000000000", plaintext: "1000000000000001", ciphertext: "7d856f9a613063f2"},
	{key: "1111111111111111", plaintext: "1111111111111111", ciphertext: "2466dd878b963c9d"},
	{key: "0123456789abcdef", plaintext: "1111111111111111", ciphertext: "61f9c3802281b096"},
	{key: "1111111111111111", plaintext: "0123456789abcdef", ciphertext: "7d0cc630afda1ec7"},
	{key: "0123456789abcdef", plaintext: "0000000000000000", ciphertext: "245946885754369a"},
	{key: "fedcba9876543210", plaintext: "0123456789abcdef", ciphertext: "0aceab0fc6a0a28d"},
	{key: "7ca110454a1a6e57", plaintext: "01a1d6d039776742", ciphertext: "59c68245eb05282b"},
	{key: "0131d9619dc1376e", plaintext: "5cd54ca83def57da", ciphertext: "b1b8cc0b250f09a0"},
	{key: "07a1133e4a0b2686", plaintext: "0248d43806f67172", ciphertext: "1730e5778bea1da4"},
	{key: "3849674c2602319e", plaintext: "51454b582ddf440a", ciphertext: "a25e7856cf2651eb"},
	{key: "04b915ba43feb5b6", plaintext: "42fd443059577fa2", ciphertext: "353882b109ce8f1a"},
	{key: "0113b970fd34f2ce", plaintext: "059b5e0851cf143a", ciphertext: "48f4d0884c379918"},
	{key: "0170f175468fb5e6", plaintext: "0756d8e0774761d2", ciphertext: "432193b78951fc98"},
	{key: "43297fad38e373fe", plaintext: "762514b829bf486a", ciphertext: "13f04154d69d1ae5"},
	{key: "07a7137045da2a16", plaintext: "3bdd119049372802", ciphertext: "2eedda93ffd39c79"},
	{key: "04689104c2fd3b2f", plaintext: "26955f6835af609a", ciphertext: "d887e0393c2da6e3"},
	{key: "37d06bb516cb7546", plaintext: "164d5e404f275232", ciphertext: "5f99d04f5b163969"},
	{key: "1f08260d1ac2465e", plaintext: "6b056e18759f5cca", ciphertext: "4a057a3b24d3977b"},
	{key: "584023641aba6176", plaintext: "004bd6ef09176062", ciphertext: "452031c1e4fada8e"},
	{key: "025816164629b007", plaintext: "480d39006ee762f2", ciphertext: "7555ae39f59b87bd"},
	{key: "49793ebc79b3258f", plaintext: "437540c8698f3cfa", ciphertext: "53c55f9cb49fc019"},
	{key: "4fb05e1515ab73a7", plaintext: "072d43a077075292", ciphertext: "7a8e7bfa937e89a3"},
	{key: "49e95d6d4ca229bf", plaintext: "02fe55778117f12a", ciphertext: "cf9c5d7a4986adb5"},
	{key: "018310dc409b26d6", plaintext: "1d9d5c5018f728c2", ciphertext: "d1abb290658bc778"},
	{key: "1c587f1c13924fef", plaintext: "305532286d6f295a", ciphertext: "55cb3774d13ef201"},
	{key: "0101010101010101", plaintext: "0123456789abcdef", ciphertext: "fa34ec4847b268b2"},
	{key: "1f1f1f1f0e0e0e0e", plaintext: "0123456789abcdef", ciphertext: "a790795108ea3cae"},
	{key: "e0fee0fef1fef1fe", plaintext: "0123456789abcdef", ciphertext: "c39e072d9fac631d"},
	{key: "0000000000000000", plaintext: "0000000000000000", ciphertext: "4ef997456198dd78"},
	{key: "ffffffffffffffff", plaintext: "ffffffffffffffff", ciphertext: "51866fd5b85ecb8a"},
	{key: "0123456789abcdef", plaintext: "0000000000000000", ciphertext: "245946885754369a"},
	{key: "fedcba9876543210", plaintext: "ffffffffffffffff", ciphertext: "6b5c5a9c5d9e0a5a"},
}
