package wallet

import (
	"path/filepath"
	"testing"

	"github.com/Luismorlan/star_notary/utils"
	"github.com/stretchr/testify/assert"
)

func TestWalletKeyPersistence(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "starkey.pem")

	w := NewWallet(keyPath, nil)
	address := w.GetAddress()
	assert.NotEmpty(t, address)

	// A second wallet on the same key file derives the same address.
	again := NewWallet(keyPath, nil)
	assert.Equal(t, address, again.GetAddress())
}

func TestWalletSignsVerifiableChallenges(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "starkey.pem")
	w := NewWallet(keyPath, nil)
	address := w.GetAddress()

	message := utils.BuildChallenge(address, 1600000000)
	signature, err := utils.SignMessage(message, w.keys)
	assert.Nil(t, err)
	assert.True(t, utils.VerifyAddressSignature(message, address, signature))
}

func TestWalletRequiresConnection(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "starkey.pem")
	w := NewWallet(keyPath, nil)

	_, err := w.ClaimStar("16h", "-26d", "story")
	assert.NotNil(t, err)
	_, err = w.GetStars("")
	assert.NotNil(t, err)
	_, _, err = w.GetBlockByHeight(0)
	assert.NotNil(t, err)
	_, err = w.Audit()
	assert.NotNil(t, err)
}
