package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Luismorlan/star_notary/model"
)

// GenesisData is the sentinel payload carried by the genesis block.
const GenesisData = "Genesis Block"

// EncodePayload serializes an arbitrary structured value into the stored
// block body: hex over the UTF-8 JSON bytes. The stored form is bit-stable
// and DecodePayload is its exact left inverse.
func EncodePayload(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return BytesToHex(data), nil
}

// DecodePayload restores the structured value stored in a block body into
// out. Bodies that are not valid hex or not valid JSON fail with
// model.ErrPayloadDecode.
func DecodePayload(block *model.Block, out interface{}) error {
	data, err := HexToBytes(block.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrPayloadDecode, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", model.ErrPayloadDecode, err)
	}
	return nil
}

// GetBlockBytes builds the canonical byte serialization of a block: height,
// timestamp, previous hash, body and owner in that fixed order. The hash
// field is deliberately excluded, this is the exact byte sequence the block
// hash is computed over.
func GetBlockBytes(block *model.Block) ([]byte, error) {
	var rawBlock []byte

	rawBlock = append(rawBlock, Int64ToBytes(block.Height)...)
	rawBlock = append(rawBlock, Int64ToBytes(block.Timestamp)...)

	prevHashBytes, err := HexToBytes(block.PrevHash)
	if err != nil {
		return nil, err
	}
	rawBlock = append(rawBlock, prevHashBytes...)

	bodyBytes, err := HexToBytes(block.Body)
	if err != nil {
		return nil, err
	}
	rawBlock = append(rawBlock, bodyBytes...)

	rawBlock = append(rawBlock, []byte(block.Owner)...)

	return rawBlock, nil
}

// ComputeBlockHash runs the canonical block bytes through SHA256 and returns
// the hex digest.
func ComputeBlockHash(block *model.Block) (string, error) {
	rawBlock, err := GetBlockBytes(block)
	if err != nil {
		return "", err
	}
	return BytesToHex(SHA256(rawBlock)), nil
}

// SelfValidate recomputes the digest over the block's current field values
// and compares it with the stored hash. Any in-place mutation of body, owner
// or timestamp after append makes this return false.
func SelfValidate(block *model.Block) bool {
	digest, err := ComputeBlockHash(block)
	if err != nil {
		return false
	}
	return digest == block.Hash
}

// NextBlock builds the block that extends prev with the given encoded body.
// prev is nil only when bootstrapping the genesis block. The hash is
// computed last, over every other field as they stand.
func NextBlock(prev *model.Block, body string, owner string) (*model.Block, error) {
	block := &model.Block{
		Timestamp: time.Now().Unix(),
		Body:      body,
		Owner:     owner,
	}
	if prev != nil {
		block.Height = prev.Height + 1
		block.PrevHash = prev.Hash
	}

	hash, err := ComputeBlockHash(block)
	if err != nil {
		return nil, err
	}
	block.Hash = hash
	return block, nil
}

// ValidateChain walks the blocks in ascending height order and collects
// every integrity violation: blocks whose content no longer matches their
// stored hash, and blocks whose PrevHash disagrees with the predecessor's
// actual hash. The walk never stops at the first finding, the caller gets
// the complete damage report ordered by height.
func ValidateChain(blocks []*model.Block) []model.ValidationError {
	var errs []model.ValidationError
	for i := 0; i < len(blocks); i++ {
		block := blocks[i]
		if !SelfValidate(block) {
			errs = append(errs, model.ValidationError{Height: block.Height, Kind: model.BlockInvalid})
			continue
		}
		if i > 0 && block.PrevHash != blocks[i-1].Hash {
			errs = append(errs, model.ValidationError{Height: block.Height, Kind: model.LinkageBroken})
		}
	}
	return errs
}
