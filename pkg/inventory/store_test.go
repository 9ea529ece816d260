package inventory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestStore_Add(t *testing.T) {
	t.Run("inserts new item", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Add(Item{ID: "A1", Name: "Widget", Quantity: 3, Price: 2.5}))

		got, ok := s.Get("A1")
		require.True(t, ok)
		assert.Equal(t, Item{ID: "A1", Name: "Widget", Quantity: 3, Price: 2.5}, got)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("duplicate id leaves store unchanged", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Add(Item{ID: "A1", Name: "Widget", Quantity: 3, Price: 2.5}))

		err := s.Add(Item{ID: "A1", Name: "Gadget", Quantity: 99, Price: 10})
		require.ErrorIs(t, err, ErrDuplicateKey)

		got, _ := s.Get("A1")
		assert.Equal(t, "Widget", got.Name)
		assert.Equal(t, 3, got.Quantity)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("strips surrounding whitespace from id and name", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Add(Item{ID: " A1 ", Name: "\tWidget ", Quantity: 1}))

		got, ok := s.Get("A1")
		require.True(t, ok)
		assert.Equal(t, "Widget", got.Name)
		require.ErrorIs(t, s.Add(Item{ID: "A1 ", Name: "Other"}), ErrDuplicateKey)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("rejects invalid items", func(t *testing.T) {
		tests := []struct {
			name string
			item Item
		}{
			{"empty id", Item{Name: "x"}},
			{"blank id", Item{ID: "   ", Name: "x"}},
			{"negative quantity", Item{ID: "a", Quantity: -1}},
			{"negative price", Item{ID: "a", Price: -0.01}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s := NewStore()
				err := s.Add(tt.item)
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Zero(t, s.Len())
			})
		}
	})
}

func TestStore_Remove(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(Item{ID: "A1", Name: "Widget"}))

	assert.True(t, s.Remove("A1"))
	_, ok := s.Get("A1")
	assert.False(t, ok)
	assert.False(t, s.Remove("A1"), "second remove reports absence")
}

func TestStore_Update(t *testing.T) {
	t.Run("quantity only keeps price", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Add(Item{ID: "A1", Name: "Widget", Quantity: 1, Price: 4.75}))

		updated, err := s.Update("A1", Patch{Quantity: intPtr(5)})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Quantity)

		got, _ := s.Get("A1")
		assert.Equal(t, 5, got.Quantity)
		assert.Equal(t, 4.75, got.Price)
	})

	t.Run("both fields", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Add(Item{ID: "A1", Name: "Widget", Quantity: 1, Price: 4.75}))

		_, err := s.Update("A1", Patch{Quantity: intPtr(7), Price: floatPtr(1.2)})
		require.NoError(t, err)

		got, _ := s.Get("A1")
		assert.Equal(t, Item{ID: "A1", Name: "Widget", Quantity: 7, Price: 1.2}, got)
	})

	t.Run("empty patch is a no-op", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Add(Item{ID: "A1", Name: "Widget", Quantity: 1, Price: 4.75}))

		got, err := s.Update("A1", Patch{})
		require.NoError(t, err)
		assert.Equal(t, Item{ID: "A1", Name: "Widget", Quantity: 1, Price: 4.75}, got)
	})

	t.Run("missing id", func(t *testing.T) {
		s := NewStore()
		_, err := s.Update("nope", Patch{Quantity: intPtr(1)})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("negative value is rejected without mutation", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Add(Item{ID: "A1", Name: "Widget", Quantity: 1, Price: 4.75}))

		_, err := s.Update("A1", Patch{Quantity: intPtr(8), Price: floatPtr(-1)})
		require.Error(t, err)
		assert.True(t, IsValidation(err))

		got, _ := s.Get("A1")
		assert.Equal(t, 1, got.Quantity)
	})
}

func TestStore_ListReturnsCopies(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(Item{ID: "b", Name: "Bolt", Quantity: 2}))
	require.NoError(t, s.Add(Item{ID: "a", Name: "Anchor", Quantity: 1}))

	items := s.List()
	want := []Item{
		{ID: "a", Name: "Anchor", Quantity: 1},
		{ID: "b", Name: "Bolt", Quantity: 2},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	items[0].Quantity = 100
	got, _ := s.Get("a")
	assert.Equal(t, 1, got.Quantity)
}

func TestStore_Replace(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(Item{ID: "old", Name: "Old"}))

	skipped := s.Replace([]Item{
		{ID: "x", Name: "First", Quantity: 1},
		{ID: "y", Name: "Bad", Quantity: -4},
		{ID: "x", Name: "Second", Quantity: 2},
	})

	assert.Equal(t, 1, skipped)
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get("old")
	assert.False(t, ok)
	got, _ := s.Get("x")
	assert.Equal(t, "Second", got.Name)
}

func TestItem_String(t *testing.T) {
	item := Item{ID: "A1", Name: "Widget", Quantity: 3, Price: 2.5}
	assert.Equal(t, "ID: A1, Name: Widget, Quantity: 3, Price: 2.50", item.String())
}
