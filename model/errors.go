package model

import "errors"

var (
	// ErrNotFound is returned by block lookups that matched nothing. Both the
	// height and the hash lookup use it, absence is never a hard failure.
	ErrNotFound = errors.New("block not found")
	// ErrBadChallenge means an ownership challenge message is not in the
	// <address>:<unixSeconds>:starRegistry layout.
	ErrBadChallenge = errors.New("malformed ownership challenge")
	// ErrChallengeExpired means the challenge was presented outside the
	// configured time window. The signature is never inspected in that case.
	ErrChallengeExpired = errors.New("ownership challenge expired")
	// ErrInvalidSignature means the verifier rejected the signature. No block
	// is created.
	ErrInvalidSignature = errors.New("signature verification failed")
	// ErrPayloadDecode means a stored block body does not decode back to a
	// structured value.
	ErrPayloadDecode = errors.New("cannot decode block payload")
	// ErrStoryTooLong means the star story exceeds the configured size cap.
	ErrStoryTooLong = errors.New("star story too long")
)
