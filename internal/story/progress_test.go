package story

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithProgressPassesThrough(t *testing.T) {
	var got []StageReport
	double := func(_ context.Context, n int) (int, error) { return n * 2, nil }

	wrapped := WithProgress(double, "Double", 2, 3, func(r StageReport) { got = append(got, r) })
	out, err := wrapped(context.Background(), 21)

	assert.NoError(t, err)
	assert.Equal(t, 42, out)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Double", got[0].Label)
		assert.Equal(t, 2, got[0].Index)
		assert.Equal(t, 3, got[0].Total)
		assert.NoError(t, got[0].Err)
	}
}

func TestWithProgressReportsError(t *testing.T) {
	boom := errors.New("boom")
	var got StageReport
	failing := func(_ context.Context, s string) (string, error) { return "", boom }

	_, err := WithProgress(failing, "Fail", 1, 1, func(r StageReport) { got = r })(context.Background(), "in")

	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, got.Err, boom)
}
