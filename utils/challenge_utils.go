package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Luismorlan/star_notary/model"
)

// ChallengeSuffix tags a message as a star registry ownership challenge.
const ChallengeSuffix = "starRegistry"

// BuildChallenge formats the message a wallet must sign to prove it controls
// address. The embedded timestamp is the only record of when the challenge
// was issued, there is no server side pending-challenge store.
func BuildChallenge(address string, now int64) string {
	return fmt.Sprintf("%s:%d:%s", address, now, ChallengeSuffix)
}

// ParseChallengeTime extracts the issuance time embedded in a challenge
// message of the form <address>:<unixSeconds>:starRegistry. Anything that
// does not carry a numeric second field fails with model.ErrBadChallenge.
func ParseChallengeTime(message string) (int64, error) {
	parts := strings.Split(message, ":")
	if len(parts) < 3 {
		return 0, model.ErrBadChallenge
	}
	issued, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, model.ErrBadChallenge
	}
	return issued, nil
}
