package config

// This is the global app config for the star notary node.
type AppConfig struct {
	// How many seconds a signed ownership challenge stays valid. The bound is
	// inclusive, a claim presented exactly at the window edge still passes.
	CHALLENGE_WINDOW int64
	// Upper bound on the star story size in bytes. Zero disables the cap.
	MAX_STORY_BYTES int
}
