package bookdeal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pollex.nl/bookdeal"
)

type shelf struct {
	ID int
}

type volume struct {
	Name    string
	ShelfID int
}

func TestHasMany(t *testing.T) {
	volumes := []volume{
		{Name: "Life of Jeff", ShelfID: 1},
		{Name: "Sing baby sing", ShelfID: 2},
		{Name: "Cooking like Jeff", ShelfID: 1},
	}
	belong := func(s shelf, v volume) bool { return v.ShelfID == s.ID }

	t.Run("keeps children in collection order", func(t *testing.T) {
		got := bookdeal.HasMany(shelf{ID: 1}, volumes, belong)

		require.Len(t, got, 2)
		assert.Equal(t, "Life of Jeff", got[0].Name)
		assert.Equal(t, "Cooking like Jeff", got[1].Name)
	})

	t.Run("no children", func(t *testing.T) {
		got := bookdeal.HasMany(shelf{ID: 3}, volumes, belong)
		assert.Empty(t, got)
	})

	t.Run("has any", func(t *testing.T) {
		assert.True(t, bookdeal.HasAny(shelf{ID: 2}, volumes, belong))
		assert.False(t, bookdeal.HasAny(shelf{ID: 3}, volumes, belong))
	})
}

func TestThrough(t *testing.T) {
	volumes := []volume{{Name: "a", ShelfID: 2}, {Name: "b", ShelfID: 2}}

	got := bookdeal.Through(volumes, func(v volume) int { return v.ShelfID })
	assert.Equal(t, []int{2, 2}, got)
}
