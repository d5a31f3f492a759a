package notary

import (
	"errors"
	"testing"
	"time"

	"github.com/Luismorlan/star_notary/config"
	"github.com/Luismorlan/star_notary/model"
	"github.com/Luismorlan/star_notary/utils"
	"github.com/stretchr/testify/assert"
)

func testConfig() config.AppConfig {
	return config.AppConfig{
		CHALLENGE_WINDOW: 300,
		MAX_STORY_BYTES:  500,
	}
}

func acceptAll(message string, address string, signature string) bool {
	return true
}

func rejectAll(message string, address string, signature string) bool {
	return false
}

func testStar() model.Star {
	return model.Star{Ra: "16h 29m 1.0s", Dec: "-26d 29m 24.9s", Story: "testing the registry"}
}

func TestBootstrapGenesis(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), acceptAll)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), n.Height())

	genesis, err := n.GetBlockByHeight(0)
	assert.Nil(t, err)
	assert.Equal(t, "", genesis.PrevHash)
	assert.Equal(t, "", genesis.Owner)

	var data string
	assert.Nil(t, utils.DecodePayload(genesis, &data))
	assert.Equal(t, utils.GenesisData, data)

	assert.Empty(t, n.Validate())

	// A second bootstrap must not mint another genesis block.
	assert.Nil(t, n.bootstrap())
	assert.Equal(t, int64(0), n.Height())
}

func TestAppendBlocks(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), acceptAll)
	assert.Nil(t, err)

	_, err = n.Append("Block data 1", "")
	assert.Nil(t, err)
	second, err := n.Append("Block data 2", "")
	assert.Nil(t, err)
	assert.Equal(t, int64(2), n.Height())

	first, err := n.GetBlockByHeight(1)
	assert.Nil(t, err)
	var data string
	assert.Nil(t, utils.DecodePayload(first, &data))
	assert.Equal(t, "Block data 1", data)

	byHash, err := n.GetBlockByHash(second.Hash)
	assert.Nil(t, err)
	assert.Equal(t, second, byHash)

	// Fresh chain, fresh linkage.
	blocks := n.ChainSnapshot()
	for i := 1; i < len(blocks); i++ {
		assert.Equal(t, blocks[i-1].Hash, blocks[i].PrevHash)
	}
	assert.Empty(t, n.Validate())
}

func TestLookupMisses(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), acceptAll)
	assert.Nil(t, err)

	_, err = n.GetBlockByHeight(99)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	_, err = n.GetBlockByHeight(-5)
	assert.True(t, errors.Is(err, model.ErrNotFound))
	_, err = n.GetBlockByHash("deadbeef")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestWithinWindowBoundary(t *testing.T) {
	// The window is inclusive, exactly 300 elapsed seconds still passes.
	assert.True(t, withinWindow(0, 300, 300))
	assert.True(t, withinWindow(0, 299, 300))
	assert.False(t, withinWindow(0, 301, 300))
}

func TestSubmitStarExpiredChallenge(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), acceptAll)
	assert.Nil(t, err)

	// Challenge issued 301 seconds ago, one past the window. The verifier
	// accepts everything, so only the window check can reject this.
	message := utils.BuildChallenge("addr1", time.Now().Unix()-301)
	_, err = n.SubmitStar("addr1", message, "sig", testStar())
	assert.True(t, errors.Is(err, model.ErrChallengeExpired))
	assert.Equal(t, int64(0), n.Height())
}

func TestSubmitStarInvalidSignature(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), rejectAll)
	assert.Nil(t, err)

	message := utils.BuildChallenge("addr1", time.Now().Unix()-100)
	_, err = n.SubmitStar("addr1", message, "sig", testStar())
	assert.True(t, errors.Is(err, model.ErrInvalidSignature))
	assert.Equal(t, int64(0), n.Height())
}

func TestSubmitStarMalformedChallenge(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), acceptAll)
	assert.Nil(t, err)

	_, err = n.SubmitStar("addr1", "not a challenge", "sig", testStar())
	assert.True(t, errors.Is(err, model.ErrBadChallenge))
	assert.Equal(t, int64(0), n.Height())
}

func TestSubmitStarStoryTooLong(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), acceptAll)
	assert.Nil(t, err)

	star := testStar()
	for len(star.Story) <= n.config.MAX_STORY_BYTES {
		star.Story += star.Story
	}
	message := utils.BuildChallenge("addr1", time.Now().Unix()-100)
	_, err = n.SubmitStar("addr1", message, "sig", star)
	assert.True(t, errors.Is(err, model.ErrStoryTooLong))
	assert.Equal(t, int64(0), n.Height())
}

func TestSubmitStarSuccess(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), acceptAll)
	assert.Nil(t, err)

	message := utils.BuildChallenge("addr1", time.Now().Unix()-100)
	block, err := n.SubmitStar("addr1", message, "sig", testStar())
	assert.Nil(t, err)
	assert.Equal(t, "addr1", block.Owner)
	assert.Equal(t, int64(1), n.Height())
	assert.Empty(t, n.Validate())

	stars, err := n.GetStarsByOwner("addr1")
	assert.Nil(t, err)
	assert.Equal(t, []model.OwnedStar{{Owner: "addr1", Star: testStar()}}, stars)

	// An address that claimed nothing gets an empty result, not an error.
	stars, err = n.GetStarsByOwner("addr2")
	assert.Nil(t, err)
	assert.Empty(t, stars)
}

func TestSubmitStarRealSignature(t *testing.T) {
	n, err := NewNotary(testConfig())
	assert.Nil(t, err)

	sk, pk := utils.GenerateKeyPair(2048)
	address := utils.PublicKeyToAddress(pk)

	message := n.RequestChallenge(address)
	signature, err := utils.SignMessage(message, sk)
	assert.Nil(t, err)

	block, err := n.SubmitStar(address, message, signature, testStar())
	assert.Nil(t, err)
	assert.Equal(t, address, block.Owner)

	// A signature from a different key must not pass for this address.
	otherSk, _ := utils.GenerateKeyPair(2048)
	otherSig, err := utils.SignMessage(message, otherSk)
	assert.Nil(t, err)
	_, err = n.SubmitStar(address, message, otherSig, testStar())
	assert.True(t, errors.Is(err, model.ErrInvalidSignature))
}

func TestValidateReportsTampering(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), acceptAll)
	assert.Nil(t, err)
	_, err = n.Append("Block data 1", "")
	assert.Nil(t, err)
	_, err = n.Append("Block data 2", "")
	assert.Nil(t, err)

	evilBody, err := utils.EncodePayload("evil data")
	assert.Nil(t, err)
	n.blockchain.Blocks[1].Body = evilBody

	findings := n.Validate()
	assert.Equal(t, []model.ValidationError{{Height: 1, Kind: model.BlockInvalid}}, findings)
}

func TestChainSnapshotIsIsolated(t *testing.T) {
	n, err := NewNotaryWithVerifier(testConfig(), acceptAll)
	assert.Nil(t, err)
	_, err = n.Append("Block data 1", "")
	assert.Nil(t, err)

	snapshot := n.ChainSnapshot()
	evilBody, err := utils.EncodePayload("evil data")
	assert.Nil(t, err)
	snapshot[1].Body = evilBody

	// Mutating the snapshot must not damage the chain itself.
	assert.Empty(t, n.Validate())
}
