package notary

import (
	"sync"
	"time"

	"github.com/Luismorlan/star_notary/config"
	"github.com/Luismorlan/star_notary/model"
	"github.com/Luismorlan/star_notary/utils"
	"github.com/jinzhu/copier"
	uuid "github.com/satori/go.uuid"
)

// SignatureVerifier decides whether a signature over a challenge message was
// produced by the key behind a wallet address. It is injectable so tests can
// force rejections without building real signatures.
type SignatureVerifier func(message string, address string, signature string) bool

// A notary maintains the append-only star chain and gates star submission on
// a verified, time-bounded ownership challenge.
type Notary struct {
	// The blockchain it needs to maintain.
	blockchain *model.Blockchain
	// Blockchain config.
	config config.AppConfig
	// Pluggable signature verification primitive.
	verify SignatureVerifier
	// A single mutex for changing internal state. Appends take the write
	// lock, lookups the read lock, so no reader can observe a half-updated
	// tail.
	m sync.RWMutex
	// A unique identifier of this notary, only used for logging and
	// visualization output.
	uuid string
}

// Create a brand new notary, which contains a genesis block in the chain.
func NewNotary(c config.AppConfig) (*Notary, error) {
	return NewNotaryWithVerifier(c, utils.VerifyAddressSignature)
}

// Same as NewNotary but with a custom signature verification primitive.
func NewNotaryWithVerifier(c config.AppConfig, v SignatureVerifier) (*Notary, error) {
	myuuid := uuid.NewV4()
	n := &Notary{
		blockchain: model.NewBlockchain(),
		config:     c,
		verify:     v,
		uuid:       myuuid.String(),
	}
	if err := n.bootstrap(); err != nil {
		return nil, err
	}
	return n, nil
}

// bootstrap appends the genesis block to a fresh chain. No-op when the chain
// already has one, so a double call cannot mint a second genesis.
func (n *Notary) bootstrap() error {
	n.m.Lock()
	defer n.m.Unlock()
	if n.blockchain.Height != model.EmptyHeight {
		return nil
	}
	_, err := n.appendLocked(utils.GenesisData, "")
	return err
}

// appendLocked encodes the payload, builds the successor of the current tail
// and pushes it. Callers must hold the write lock. Nothing is mutated when
// any step fails.
func (n *Notary) appendLocked(payload interface{}, owner string) (*model.Block, error) {
	body, err := utils.EncodePayload(payload)
	if err != nil {
		return nil, err
	}
	block, err := utils.NextBlock(n.blockchain.Tail(), body, owner)
	if err != nil {
		return nil, err
	}
	n.blockchain.Push(block)
	return block, nil
}

// Append records an arbitrary payload as a new block and returns it.
func (n *Notary) Append(payload interface{}, owner string) (*model.Block, error) {
	n.m.Lock()
	defer n.m.Unlock()
	return n.appendLocked(payload, owner)
}

// Height of the tail block.
func (n *Notary) Height() int64 {
	n.m.RLock()
	defer n.m.RUnlock()
	return n.blockchain.Height
}

func (n *Notary) UUID() string {
	return n.uuid
}

// GetBlockByHeight returns the block at the given height, or
// model.ErrNotFound when the height is outside the chain. Out of range input
// is an absence, not a fault.
func (n *Notary) GetBlockByHeight(height int64) (*model.Block, error) {
	n.m.RLock()
	defer n.m.RUnlock()
	for _, block := range n.blockchain.Blocks {
		if block.Height == height {
			return block, nil
		}
	}
	return nil, model.ErrNotFound
}

// GetBlockByHash returns the first block in chain order whose hash matches,
// or model.ErrNotFound. Hashes are unique in a valid chain but the scan does
// not rely on that.
func (n *Notary) GetBlockByHash(hash string) (*model.Block, error) {
	n.m.RLock()
	defer n.m.RUnlock()
	for _, block := range n.blockchain.Blocks {
		if block.Hash == hash {
			return block, nil
		}
	}
	return nil, model.ErrNotFound
}

// GetStarsByOwner decodes every star claim block recorded under address, in
// chain order. An address that claimed nothing gets an empty slice, never an
// error.
func (n *Notary) GetStarsByOwner(address string) ([]model.OwnedStar, error) {
	n.m.RLock()
	defer n.m.RUnlock()
	var stars []model.OwnedStar
	for _, block := range n.blockchain.Blocks {
		if block.Owner != address || block.Owner == "" {
			continue
		}
		var record model.StarRecord
		if err := utils.DecodePayload(block, &record); err != nil {
			return nil, err
		}
		stars = append(stars, model.OwnedStar{Owner: block.Owner, Star: record.Star})
	}
	return stars, nil
}

// ChainSnapshot returns a deep copy of the block sequence so slow read paths
// can leave the lock before doing their work.
func (n *Notary) ChainSnapshot() []*model.Block {
	n.m.RLock()
	defer n.m.RUnlock()
	var blocks []*model.Block
	copier.Copy(&blocks, &n.blockchain.Blocks)
	return blocks
}

// Validate audits the whole chain and returns every finding, ordered by
// height. An empty result means the chain is intact.
func (n *Notary) Validate() []model.ValidationError {
	return utils.ValidateChain(n.ChainSnapshot())
}

// RequestChallenge issues the message a wallet must sign before it may claim
// a star. Stateless, the embedded timestamp is the whole record.
func (n *Notary) RequestChallenge(address string) string {
	return utils.BuildChallenge(address, time.Now().Unix())
}

// SubmitStar appends a star claim block for address, provided the challenge
// message is still inside the time window and the signature verifies. The
// window check runs first and the verifier is never consulted for a stale
// challenge. On any failure the chain is left untouched.
func (n *Notary) SubmitStar(address string, message string, signature string, star model.Star) (*model.Block, error) {
	issued, err := utils.ParseChallengeTime(message)
	if err != nil {
		return nil, err
	}
	if !withinWindow(issued, time.Now().Unix(), n.config.CHALLENGE_WINDOW) {
		return nil, model.ErrChallengeExpired
	}
	if !n.verify(message, address, signature) {
		return nil, model.ErrInvalidSignature
	}
	if n.config.MAX_STORY_BYTES > 0 && len(star.Story) > n.config.MAX_STORY_BYTES {
		return nil, model.ErrStoryTooLong
	}

	n.m.Lock()
	defer n.m.Unlock()
	return n.appendLocked(model.StarRecord{Star: star}, address)
}

// withinWindow reports whether a challenge issued at issued is still usable
// at now. The bound is inclusive, elapsed == window is valid.
func withinWindow(issued int64, now int64, window int64) bool {
	return now-issued <= window
}
