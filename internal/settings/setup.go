package settings

import (
	"context"
	"fmt"
)

// Default is a row written by the seeder.
type Default struct {
	Key   string
	Value string
}

// InitialDefaults are the rows every fresh installation gets.
var InitialDefaults = []Default{
	{Key: InstagramGalleryEnabledKey, Value: "true"},
	{Key: InstagramPostCountKey, Value: "5"},
}

// MenuDefaults are written additionally by `seed -all`.
var MenuDefaults = []Default{
	{Key: MenuPopupEnabledKey, Value: "true"},
	{Key: MenuShowPriceKey, Value: "true"},
}

// Seed upserts defaults in order. Running it again overwrites the same rows,
// so the store ends with exactly one row per key.
func Seed(ctx context.Context, store Store, defaults []Default) error {
	for _, d := range defaults {
		if err := store.Upsert(ctx, d.Key, d.Value); err != nil {
			return fmt.Errorf("failed to seed %s: %w", d.Key, err)
		}
	}
	return nil
}
