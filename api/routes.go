package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func RegisterRoutes() http.Handler {
	router := mux.NewRouter()

	// Codec endpoints
	router.HandleFunc("/encode", EncodeLocation).Methods("POST")
	router.HandleFunc("/decode/{hash}", DecodeHash).Methods("GET")
	router.HandleFunc("/bbox/{hash}", GetBoundingBox).Methods("GET")
	router.HandleFunc("/neighbors/{hash}", GetNeighbors).Methods("GET")
	router.HandleFunc("/neighbors/{hash}/{direction}", GetNeighbor).Methods("GET")

	// Place endpoints
	router.HandleFunc("/places", CreatePlace).Methods("POST")
	router.HandleFunc("/places/nearby", NearbyPlaces).Methods("GET")
	router.HandleFunc("/places/{place_id}", GetPlace).Methods("GET")

	// Add CORS support
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return cors(router)
}
