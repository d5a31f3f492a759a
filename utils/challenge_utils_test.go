package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Luismorlan/star_notary/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildChallengeFormat(t *testing.T) {
	message := BuildChallenge("addr1", 1600000000)
	assert.Equal(t, "addr1:1600000000:starRegistry", message)
}

func TestParseChallengeTimeRoundTrip(t *testing.T) {
	message := BuildChallenge("addr1", 1600000000)
	issued, err := ParseChallengeTime(message)
	assert.Nil(t, err)
	assert.Equal(t, int64(1600000000), issued)
}

func TestParseChallengeTimeMalformed(t *testing.T) {
	for _, message := range []string{
		"",
		"addr1",
		"addr1:1600000000",
		fmt.Sprintf("addr1:not-a-number:%s", ChallengeSuffix),
	} {
		_, err := ParseChallengeTime(message)
		assert.True(t, errors.Is(err, model.ErrBadChallenge), "message: %q", message)
	}
}
