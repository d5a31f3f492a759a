package model

import "fmt"

type ValidationKind int

const (
	// The block content no longer matches its stored hash.
	BlockInvalid ValidationKind = iota
	// The block's PrevHash does not match its predecessor's hash.
	LinkageBroken
)

func (k ValidationKind) String() string {
	switch k {
	case BlockInvalid:
		return "BLOCK_INVALID"
	case LinkageBroken:
		return "LINKAGE_BROKEN"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// ValidationError is a single finding from a full chain audit. Findings are
// collected and returned as data, an audit never stops at the first defect.
type ValidationError struct {
	// Height of the offending block.
	Height int64
	Kind   ValidationKind
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s at height %d", v.Kind, v.Height)
}
