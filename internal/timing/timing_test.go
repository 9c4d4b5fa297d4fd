package timing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimedReturnsResultUnchanged(t *testing.T) {
	want := []int{1, 2, 3}
	sample, err := Timed(func() ([]int, error) {
		return want, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, want, sample.Result)
	assert.GreaterOrEqual(t, sample.Elapsed, time.Duration(0))
	assert.GreaterOrEqual(t, sample.Seconds(), 0.0)
}

func TestTimedPropagatesErrorUnchanged(t *testing.T) {
	wantErr := errors.New("query failed")
	sample, err := Timed(func() (int, error) {
		return 0, wantErr
	})
	assert.Same(t, wantErr, err)
	assert.Zero(t, sample.Result)
}

func TestTimedRunsExactlyOnce(t *testing.T) {
	calls := 0
	_, err := Timed(func() (int, error) {
		calls++
		return calls, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)

	calls = 0
	_, err = Timed(func() (int, error) {
		calls++
		return 0, errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "a failing computation must not be retried")
}

func TestTimedMeasuresDuration(t *testing.T) {
	sample, err := Timed(func() (struct{}, error) {
		time.Sleep(20 * time.Millisecond)
		return struct{}{}, nil
	})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, sample.Elapsed, 20*time.Millisecond)
}
