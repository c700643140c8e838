package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"geohash-service/cache"
	"geohash-service/config"
	"geohash-service/database"
	"geohash-service/geohash"
	"geohash-service/lookup"
	"geohash-service/models"
)

// maxHashLength keeps the integer form of a hash within 64 bits.
const maxHashLength = 12

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeGeohashError(w http.ResponseWriter, err error) {
	if errors.Is(err, geohash.ErrInvalidSymbol) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "Internal error", http.StatusInternalServerError)
}

// EncodeLocation handles encoding a coordinate into a geohash
func EncodeLocation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Longitude float64 `json:"longitude"`
		Latitude  float64 `json:"latitude"`
		Length    int     `json:"length"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Length <= 0 || req.Length > maxHashLength {
		http.Error(w, fmt.Sprintf("Length must be between 1 and %d", maxHashLength), http.StatusBadRequest)
		return
	}
	if req.Longitude < -180 || req.Longitude > 180 || req.Latitude < -90 || req.Latitude > 90 {
		http.Error(w, "Coordinate out of range", http.StatusBadRequest)
		return
	}

	p := geohash.Point{Longitude: req.Longitude, Latitude: req.Latitude}
	response := map[string]interface{}{
		"geohash": geohash.Encode(p, req.Length),
		"bits":    geohash.EncodeIntWithBits(p, uint(5*req.Length)),
	}
	writeJSON(w, response)
}

// DecodeHash handles decoding a geohash into its center and half-errors
func DecodeHash(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]

	center, lonErr, latErr, err := geohash.Decode(hash)
	if err != nil {
		writeGeohashError(w, err)
		return
	}

	response := map[string]interface{}{
		"center":          center,
		"longitude_error": lonErr,
		"latitude_error":  latErr,
	}
	writeJSON(w, response)
}

// GetBoundingBox handles decoding a geohash into its exact bounds
func GetBoundingBox(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]

	box, err := geohash.DecodeBoundingBox(hash)
	if err != nil {
		writeGeohashError(w, err)
		return
	}
	writeJSON(w, box)
}

// GetNeighbors handles fetching all eight neighbors of a geohash
func GetNeighbors(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]

	neighbors, err := geohash.GetNeighbors(hash)
	if err != nil {
		writeGeohashError(w, err)
		return
	}
	writeJSON(w, neighbors)
}

// GetNeighbor handles fetching a single neighbor of a geohash
func GetNeighbor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	dir, err := geohash.ParseDirection(vars["direction"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	neighbor, err := geohash.Neighbor(vars["hash"], dir)
	if err != nil {
		writeGeohashError(w, err)
		return
	}

	response := map[string]string{"geohash": neighbor}
	writeJSON(w, response)
}

// CreatePlace handles registering a new place
func CreatePlace(w http.ResponseWriter, r *http.Request) {
	var place models.Place
	if err := json.NewDecoder(r.Body).Decode(&place); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if place.Longitude < -180 || place.Longitude > 180 || place.Latitude < -90 || place.Latitude > 90 {
		http.Error(w, "Coordinate out of range", http.StatusBadRequest)
		return
	}

	p := geohash.Point{Longitude: place.Longitude, Latitude: place.Latitude}
	place.Geohash = geohash.Encode(p, config.Cfg.Geohash.PlacePrecision)

	err := database.DB.QueryRow(
		`INSERT INTO places (name, longitude, latitude, geohash) VALUES ($1, $2, $3, $4) RETURNING id`,
		place.Name, place.Longitude, place.Latitude, place.Geohash,
	).Scan(&place.ID)
	if err != nil {
		http.Error(w, "Failed to create place", http.StatusInternalServerError)
		return
	}

	// Index the place under its cell for nearby lookups.
	ctx := context.Background()
	placeJSON, _ := json.Marshal(place)
	cache.RedisClient.SAdd(ctx, fmt.Sprintf("places:%s", place.Geohash), placeJSON)

	writeJSON(w, place)
}

// GetPlace handles fetching place details by ID
func GetPlace(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	placeID, err := strconv.ParseInt(vars["place_id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid place ID", http.StatusBadRequest)
		return
	}

	var place models.Place
	err = database.DB.QueryRow(
		`SELECT id, name, longitude, latitude, geohash FROM places WHERE id=$1`,
		placeID,
	).Scan(
		&place.ID,
		&place.Name,
		&place.Longitude,
		&place.Latitude,
		&place.Geohash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			http.Error(w, "Place not found", http.StatusNotFound)
		} else {
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, place)
}

// NearbyPlaces handles finding places around a query point
func NearbyPlaces(w http.ResponseWriter, r *http.Request) {
	lon, err := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if err != nil {
		http.Error(w, "Invalid longitude", http.StatusBadRequest)
		return
	}
	lat, err := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	if err != nil {
		http.Error(w, "Invalid latitude", http.StatusBadRequest)
		return
	}

	p := geohash.Point{Longitude: lon, Latitude: lat}
	places, err := lookup.FindNearbyPlaces(r.Context(), p, config.Cfg.Geohash.PlacePrecision)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	writeJSON(w, places)
}
