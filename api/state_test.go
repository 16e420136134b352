package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	got := FilterState{
		Search:            " Account ",
		Purpose:           "  ",
		Retention:         "7 years\t",
		StorageTechnology: "",
		StorageType:       " ephemeral",
		Depth:             0,
		View:              " ",
	}.Normalize()

	assert.Equal(t, FilterState{
		Search:            "Account",
		Purpose:           All,
		Retention:         "7 years",
		StorageTechnology: All,
		StorageType:       "ephemeral",
		Depth:             MaxDepth,
		View:              DefaultView,
	}, got)
}

func TestNormalize_SearchAll(t *testing.T) {
	assert.Empty(t, FilterState{Search: " all "}.Normalize().Search)
	assert.Equal(t, DefaultFilterState(), DefaultFilterState().Normalize())
}

func TestClampDepth(t *testing.T) {
	assert.Equal(t, MaxDepth, ClampDepth(0))
	assert.Equal(t, MinDepth, ClampDepth(1))
	assert.Equal(t, 5, ClampDepth(5))
	assert.Equal(t, MaxDepth, ClampDepth(99))
}
