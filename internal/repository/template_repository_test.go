package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendSalonOnce(t *testing.T) {
	ids, changed := appendSalonOnce([]int64{1, 2}, 3)
	assert.True(t, changed)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	// A second onboarding of the same salon leaves the set unchanged.
	ids, changed = appendSalonOnce(ids, 3)
	assert.False(t, changed)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	ids, changed = appendSalonOnce(nil, 9)
	assert.True(t, changed)
	assert.Equal(t, []int64{9}, ids)
}
