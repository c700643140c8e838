package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geohash-service/geohash"
)

func doRequest(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	RegisterRoutes().ServeHTTP(rec, req)
	return rec
}

func TestEncodeLocation(t *testing.T) {
	rec := doRequest(t, "POST", "/encode",
		`{"longitude": -120.6623, "latitude": 35.3003, "length": 5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Geohash string `json:"geohash"`
		Bits    uint64 `json:"bits"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "9q60y", resp.Geohash)
	assert.Equal(t, geohash.EncodeIntWithBits(
		geohash.Point{Longitude: -120.6623, Latitude: 35.3003}, 25), resp.Bits)
}

func TestEncodeLocationValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad payload", `{`},
		{"zero length", `{"longitude": 1, "latitude": 1, "length": 0}`},
		{"length too long", `{"longitude": 1, "latitude": 1, "length": 13}`},
		{"longitude out of range", `{"longitude": 181, "latitude": 1, "length": 5}`},
		{"latitude out of range", `{"longitude": 1, "latitude": -91, "length": 5}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := doRequest(t, "POST", "/encode", c.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDecodeHash(t *testing.T) {
	rec := doRequest(t, "GET", "/decode/9g3q", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Center         geohash.Point `json:"center"`
		LongitudeError float64       `json:"longitude_error"`
		LatitudeError  float64       `json:"latitude_error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, -99.31640625, resp.Center.Longitude, 1e-9)
	assert.InDelta(t, 19.423828125, resp.Center.Latitude, 1e-9)
	assert.InDelta(t, 0.17578125, resp.LongitudeError, 1e-9)
	assert.InDelta(t, 0.087890625, resp.LatitudeError, 1e-9)
}

func TestDecodeHashInvalidSymbol(t *testing.T) {
	rec := doRequest(t, "GET", "/decode/9a3q", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid geohash symbol")
}

func TestGetBoundingBox(t *testing.T) {
	rec := doRequest(t, "GET", "/bbox/9g3q", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var box geohash.BoundingBox
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &box))
	assert.True(t, box.Min.Longitude < box.Max.Longitude)
	assert.True(t, box.Min.Latitude < box.Max.Latitude)
	assert.True(t, box.Contains(geohash.Point{Longitude: -99.31640625, Latitude: 19.423828125}))
}

func TestGetNeighbors(t *testing.T) {
	rec := doRequest(t, "GET", "/neighbors/ww8p1r4t8", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var neighbors geohash.Neighbors
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &neighbors))
	assert.Equal(t, geohash.Neighbors{
		North:     "ww8p1r4tb",
		NorthEast: "ww8p1r4tc",
		East:      "ww8p1r4t9",
		SouthEast: "ww8p1r4t3",
		South:     "ww8p1r4t2",
		SouthWest: "ww8p1r4mr",
		West:      "ww8p1r4mx",
		NorthWest: "ww8p1r4mz",
	}, neighbors)
}

func TestGetNeighbor(t *testing.T) {
	rec := doRequest(t, "GET", "/neighbors/9g3m/n", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "9g3q", resp["geohash"])
}

func TestGetNeighborBadDirection(t *testing.T) {
	rec := doRequest(t, "GET", "/neighbors/9g3m/north", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNeighborsInvalidSymbol(t *testing.T) {
	rec := doRequest(t, "GET", "/neighbors/9a3m", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
