package model

// Star is the astronomical record a wallet can claim ownership of.
type Star struct {
	// Right ascension, e.g. "16h 29m 1.0s".
	Ra string `json:"ra"`
	// Declination, e.g. "-26° 29' 24.9\"".
	Dec string `json:"dec"`
	// Free-form story attached by the owner.
	Story string `json:"story"`
}

// StarRecord is the structured payload stored in a star claim block.
type StarRecord struct {
	Star Star `json:"star"`
}

// OwnedStar pairs a decoded star with the address that claimed it.
type OwnedStar struct {
	Owner string `json:"owner"`
	Star  Star   `json:"star"`
}
