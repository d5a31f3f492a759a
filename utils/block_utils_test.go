package utils

import (
	"errors"
	"testing"

	"github.com/Luismorlan/star_notary/model"
	"github.com/stretchr/testify/assert"
)

// Build a freshly linked chain from the given payloads, genesis first.
func createTestChain(t *testing.T, payloads ...interface{}) []*model.Block {
	var blocks []*model.Block
	var prev *model.Block
	for _, p := range payloads {
		body, err := EncodePayload(p)
		assert.Nil(t, err)
		block, err := NextBlock(prev, body, "")
		assert.Nil(t, err)
		blocks = append(blocks, block)
		prev = block
	}
	return blocks
}

func TestPayloadRoundTrip(t *testing.T) {
	body, err := EncodePayload("Block data 1")
	assert.Nil(t, err)

	block := &model.Block{Body: body}
	var decoded string
	assert.Nil(t, DecodePayload(block, &decoded))
	assert.Equal(t, "Block data 1", decoded)

	record := model.StarRecord{Star: model.Star{Ra: "16h", Dec: "-26d", Story: "first light"}}
	body, err = EncodePayload(record)
	assert.Nil(t, err)
	var gotRecord model.StarRecord
	assert.Nil(t, DecodePayload(&model.Block{Body: body}, &gotRecord))
	assert.Equal(t, record, gotRecord)
}

func TestDecodePayloadBadBody(t *testing.T) {
	var out string

	// Not hex at all.
	err := DecodePayload(&model.Block{Body: "zz"}, &out)
	assert.True(t, errors.Is(err, model.ErrPayloadDecode))

	// Valid hex but not JSON underneath.
	err = DecodePayload(&model.Block{Body: "00"}, &out)
	assert.True(t, errors.Is(err, model.ErrPayloadDecode))
}

func TestGetBlockBytesExcludesHash(t *testing.T) {
	blocks := createTestChain(t, GenesisData, "Block data 1")
	block := blocks[1]

	before, err := GetBlockBytes(block)
	assert.Nil(t, err)

	tampered := *block
	tampered.Hash = "ffff"
	after, err := GetBlockBytes(&tampered)
	assert.Nil(t, err)

	assert.Equal(t, before, after)
}

func TestComputeBlockHashIsReproducible(t *testing.T) {
	blocks := createTestChain(t, GenesisData)
	digest, err := ComputeBlockHash(blocks[0])
	assert.Nil(t, err)
	assert.Equal(t, blocks[0].Hash, digest)
}

func TestSelfValidateDetectsTampering(t *testing.T) {
	blocks := createTestChain(t, GenesisData, "Block data 1")
	block := blocks[1]
	assert.True(t, SelfValidate(block))

	evilBody, err := EncodePayload("evil data")
	assert.Nil(t, err)

	body := block.Body
	block.Body = evilBody
	assert.False(t, SelfValidate(block))
	block.Body = body

	owner := block.Owner
	block.Owner = "mallory"
	assert.False(t, SelfValidate(block))
	block.Owner = owner

	block.Timestamp++
	assert.False(t, SelfValidate(block))
	block.Timestamp--

	assert.True(t, SelfValidate(block))
}

func TestNextBlockLinksToPrev(t *testing.T) {
	blocks := createTestChain(t, GenesisData, "Block data 1", "Block data 2")

	assert.Equal(t, int64(0), blocks[0].Height)
	assert.Equal(t, "", blocks[0].PrevHash)
	for i := 1; i < len(blocks); i++ {
		assert.Equal(t, int64(i), blocks[i].Height)
		assert.Equal(t, blocks[i-1].Hash, blocks[i].PrevHash)
	}
}

func TestValidateChainFreshChainIsClean(t *testing.T) {
	blocks := createTestChain(t, GenesisData, "Block data 1", "Block data 2")
	assert.Empty(t, ValidateChain(blocks))
}

func TestValidateChainCollectsAllFindings(t *testing.T) {
	blocks := createTestChain(t, GenesisData, "Block data 1", "Block data 2", "Block data 3")

	// Tamper the content of block 1 in place. Its stored hash no longer
	// matches, but block 2 still points at that stored hash, so only the
	// self validation finding fires at height 1.
	evilBody, err := EncodePayload("evil data")
	assert.Nil(t, err)
	blocks[1].Body = evilBody

	// Replace block 3 with a self-consistent block that links elsewhere.
	stray, err := NextBlock(blocks[0], blocks[3].Body, "")
	assert.Nil(t, err)
	stray.Height = 3
	stray.Hash, err = ComputeBlockHash(stray)
	assert.Nil(t, err)
	blocks[3] = stray

	findings := ValidateChain(blocks)
	assert.Equal(t, []model.ValidationError{
		{Height: 1, Kind: model.BlockInvalid},
		{Height: 3, Kind: model.LinkageBroken},
	}, findings)
}
