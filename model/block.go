package model

type Block struct {
	// Position of this block in the chain. The genesis block sits at height 0.
	Height int64
	// Unix seconds at the moment the block was appended.
	Timestamp int64
	// Hash of the previous block in the hex string format. Empty only for genesis.
	PrevHash string
	// Hex encoding of the UTF-8 JSON serialization of the caller payload.
	Body string
	// Wallet address that claimed this block. Empty for non-star blocks.
	Owner string
	// Hash of this entire block in the hex string format. Computed over every
	// other field at append time and never updated afterwards.
	Hash string
}
