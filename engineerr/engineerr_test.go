package engineerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aram/geneticengine/engineerr"
)

func TestNewAndError(t *testing.T) {
	err := engineerr.New(engineerr.InvalidConfiguration, "bad config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "bad config")
}

func TestNewfFormatsMessage(t *testing.T) {
	err := engineerr.Newf(engineerr.InvariantViolation, "population size %d != %d", 10, 12)
	assert.Contains(t, err.Error(), "population size 10 != 12")
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := engineerr.Wrap(engineerr.EvaluationLost, "worker failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, engineerr.Is(err, engineerr.EvaluationLost))
	assert.False(t, engineerr.Is(err, engineerr.InvalidScore))
}

func TestIsThroughFmtErrorfWrapping(t *testing.T) {
	base := engineerr.New(engineerr.InvalidScore, "nan component")
	wrapped := fmt.Errorf("decoding genotype: %w", base)

	assert.True(t, engineerr.Is(wrapped, engineerr.InvalidScore))
}

func TestIsOnPlainErrorIsFalse(t *testing.T) {
	assert.False(t, engineerr.Is(errors.New("plain"), engineerr.InvalidConfiguration))
	assert.False(t, engineerr.Is(nil, engineerr.InvalidConfiguration))
}
