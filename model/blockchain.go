package model

// EmptyHeight is the height of a chain that has no genesis block yet.
const EmptyHeight int64 = -1

type Blockchain struct {
	// Blocks in chain order. The block at index i has height i.
	Blocks []*Block
	// Height of the tail block. EmptyHeight until the genesis block lands.
	Height int64
}

// Create a new, empty blockchain. The caller is expected to bootstrap a
// genesis block before accepting any submission.
func NewBlockchain() *Blockchain {
	return &Blockchain{
		Height: EmptyHeight,
	}
}

// Tail returns the newest block, or nil for an empty chain.
func (bc *Blockchain) Tail() *Block {
	if len(bc.Blocks) == 0 {
		return nil
	}
	return bc.Blocks[len(bc.Blocks)-1]
}

// Push appends a fully built block to the tail and bumps the height. The
// chain is strictly append-only, blocks are never removed or reordered.
func (bc *Blockchain) Push(b *Block) {
	bc.Blocks = append(bc.Blocks, b)
	bc.Height++
}
