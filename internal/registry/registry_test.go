package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	tests := []struct {
		name    string
		actions func(r *Registry, t *testing.T)
	}{
		{
			name: "create and get",
			actions: func(r *Registry, t *testing.T) {
				require.NoError(t, r.Create(entities.Order{ID: "A", Number: 1, Details: "a"}))
				got, ok := r.Get("A")
				require.True(t, ok)
				assert.Equal(t, "a", got.Details)
				assert.Equal(t, 1, r.Len())
			},
		},
		{
			name: "duplicate create keeps first record",
			actions: func(r *Registry, t *testing.T) {
				require.NoError(t, r.Create(entities.Order{ID: "A", Details: "first"}))
				err := r.Create(entities.Order{ID: "A", Details: "second"})
				assert.ErrorIs(t, err, entities.ErrOrderExists)

				got, _ := r.Get("A")
				assert.Equal(t, "first", got.Details)
			},
		},
		{
			name: "remove is idempotent",
			actions: func(r *Registry, t *testing.T) {
				require.NoError(t, r.Create(entities.Order{ID: "A"}))
				r.Remove("A")
				r.Remove("A")
				_, ok := r.Get("A")
				assert.False(t, ok)
			},
		},
		{
			name: "location annotation appended once",
			actions: func(r *Registry, t *testing.T) {
				require.NoError(t, r.Create(entities.Order{ID: "A", Details: "order"}))
				require.NoError(t, r.AttachLocation("A", entities.Location{Latitude: 1, Longitude: 2}, "+loc"))
				require.NoError(t, r.AttachLocation("A", entities.Location{Latitude: 3, Longitude: 4}, "+loc"))

				got, _ := r.Get("A")
				assert.Equal(t, "order+loc", got.Details)
				assert.Equal(t, &entities.Location{Latitude: 3, Longitude: 4}, got.Location)
			},
		},
		{
			name: "attach location to missing order",
			actions: func(r *Registry, t *testing.T) {
				err := r.AttachLocation("X", entities.Location{}, "+loc")
				assert.ErrorIs(t, err, entities.ErrOrderNotFound)
			},
		},
		{
			name: "find by number prefers most recent",
			actions: func(r *Registry, t *testing.T) {
				require.NoError(t, r.Create(entities.Order{ID: "old", Number: 7}))
				require.NoError(t, r.Create(entities.Order{ID: "other", Number: 8}))
				require.NoError(t, r.Create(entities.Order{ID: "new", Number: 7}))

				id, ok := r.FindByNumber(7)
				require.True(t, ok)
				assert.Equal(t, "new", id)

				_, ok = r.FindByNumber(9)
				assert.False(t, ok)
			},
		},
		{
			name: "latest follows insertion order not id order",
			actions: func(r *Registry, t *testing.T) {
				_, ok := r.Latest()
				assert.False(t, ok)

				require.NoError(t, r.Create(entities.Order{ID: "Z"}))
				require.NoError(t, r.Create(entities.Order{ID: "A"}))
				id, ok := r.Latest()
				require.True(t, ok)
				assert.Equal(t, "A", id)

				r.Remove("A")
				id, _ = r.Latest()
				assert.Equal(t, "Z", id)
			},
		},
		{
			name: "get returns a copy",
			actions: func(r *Registry, t *testing.T) {
				require.NoError(t, r.Create(entities.Order{ID: "A", Location: &entities.Location{Latitude: 1}}))
				got, _ := r.Get("A")
				got.Location.Latitude = 99
				got.Details = "changed"

				again, _ := r.Get("A")
				assert.Equal(t, float64(1), again.Location.Latitude)
				assert.Empty(t, again.Details)
			},
		},
		{
			name: "setters",
			actions: func(r *Registry, t *testing.T) {
				require.NoError(t, r.Create(entities.Order{ID: "A"}))
				require.NoError(t, r.SetStaffMessage("A", 10))
				require.NoError(t, r.SetState("A", entities.StateAwaitingRejectConfirm))
				got, _ := r.Get("A")
				assert.Equal(t, 10, got.StaffMessageID)
				assert.Equal(t, entities.StateAwaitingRejectConfirm, got.State)

				require.NoError(t, r.SetPrepTime("A", "15"))
				got, _ = r.Get("A")
				assert.Equal(t, entities.PrepTime("15"), got.PrepTime)
				assert.Equal(t, entities.StateTimeSelected, got.State)

				assert.ErrorIs(t, r.SetState("X", entities.StateDispatched), entities.ErrOrderNotFound)
			},
		},
		{
			name: "list ordered by creation",
			actions: func(r *Registry, t *testing.T) {
				for _, id := range []string{"c", "a", "b"} {
					require.NoError(t, r.Create(entities.Order{ID: id}))
				}
				list := r.List()
				require.Len(t, list, 3)
				assert.Equal(t, "c", list[0].ID)
				assert.Equal(t, "a", list[1].ID)
				assert.Equal(t, "b", list[2].ID)
			},
		},
		{
			name: "concurrent creates",
			actions: func(r *Registry, t *testing.T) {
				var wg sync.WaitGroup
				for i := range 50 {
					wg.Add(1)
					go func() {
						defer wg.Done()
						_ = r.Create(entities.Order{ID: fmt.Sprintf("id%d", i%10)})
					}()
				}
				wg.Wait()
				assert.Equal(t, 10, r.Len())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.actions(New(), t)
		})
	}
}
