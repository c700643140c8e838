// Package lookup retrieves places from the redis cells surrounding a point.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"

	"geohash-service/cache"
	"geohash-service/geohash"
	"geohash-service/models"
)

// FindNearbyPlaces returns the places cached in the cell containing p and
// its eight neighbors, own cell first.
func FindNearbyPlaces(ctx context.Context, p geohash.Point, precision int) ([]models.Place, error) {
	hash := geohash.Encode(p, precision)
	neighbors, err := geohash.GetNeighbors(hash)
	if err != nil {
		return nil, err
	}
	cells := append([]string{hash}, neighbors.Strings()...)

	var places []models.Place
	for _, cell := range cells {
		members, err := cache.RedisClient.SMembers(ctx, fmt.Sprintf("places:%s", cell)).Result()
		if err != nil {
			continue
		}
		for _, m := range members {
			var place models.Place
			if err := json.Unmarshal([]byte(m), &place); err != nil {
				continue
			}
			places = append(places, place)
		}
	}

	if len(places) == 0 {
		return nil, fmt.Errorf("no places found nearby")
	}
	return places, nil
}
