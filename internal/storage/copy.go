package storage

import (
	"context"
	"fmt"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

// Copy writes every record of the given collections from src into dst and
// returns the number copied. Existing records in dst are replaced.
func Copy(ctx context.Context, src core.RecordStore, dst core.RecordWriter, collections ...string) (int, error) {
	copied := 0
	for _, collection := range collections {
		ids, err := src.List(ctx, collection)
		if err != nil {
			return copied, fmt.Errorf("failed to list %s: %w", collection, err)
		}

		for _, id := range ids {
			rec, err := src.Read(ctx, collection, id)
			if err != nil {
				return copied, fmt.Errorf("failed to read %s/%s: %w", collection, id, err)
			}
			if err := dst.Put(ctx, collection, id, rec); err != nil {
				return copied, fmt.Errorf("failed to write %s/%s: %w", collection, id, err)
			}
			copied++
		}
	}
	return copied, nil
}
