package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const KEY_BITS = 2048

func TestSignatureAndVerify(t *testing.T) {
	sk, pk := GenerateKeyPair(KEY_BITS)

	message := []byte("Hello World!")
	sig, err := Sign(message, sk)
	assert.Nil(t, err)
	valid := Verify(message, pk, sig)
	assert.True(t, valid)
}

func TestAddressRoundTrip(t *testing.T) {
	_, pk := GenerateKeyPair(KEY_BITS)

	address := PublicKeyToAddress(pk)
	recovered, err := AddressToPublicKey(address)
	assert.Nil(t, err)
	assert.Equal(t, pk, recovered)
}

func TestVerifyAddressSignature(t *testing.T) {
	sk, pk := GenerateKeyPair(KEY_BITS)
	address := PublicKeyToAddress(pk)

	message := BuildChallenge(address, 1600000000)
	signature, err := SignMessage(message, sk)
	assert.Nil(t, err)

	assert.True(t, VerifyAddressSignature(message, address, signature))
	// A different message must not verify.
	assert.False(t, VerifyAddressSignature(message+"x", address, signature))
	// Neither must a signature from another key.
	otherSk, _ := GenerateKeyPair(KEY_BITS)
	otherSig, err := SignMessage(message, otherSk)
	assert.Nil(t, err)
	assert.False(t, VerifyAddressSignature(message, address, otherSig))
	// Malformed inputs verify false instead of erroring.
	assert.False(t, VerifyAddressSignature(message, "not-hex", signature))
	assert.False(t, VerifyAddressSignature(message, address, "not-hex"))
}
