package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pesikj/political-pulse-mapper/internal/compass"
)

// The JSON endpoints never surface a store failure to the caller: a failed
// lookup logs server-side and degrades to an empty array, so the client's
// "no data" rendering is the universal failure UI.

func (s *Server) handleAPICountries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	countries, err := s.store.ListCountries(r.Context())
	if err != nil {
		log.Printf("listing countries: %v", err)
		countries = []compass.Country{}
	}
	writeJSON(w, countries)
}

func (s *Server) handleAPIParties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	country := r.URL.Query().Get("country")
	if country == "" {
		http.Error(w, "missing required query parameter: country", http.StatusBadRequest)
		return
	}

	parties, err := s.store.ListParties(r.Context(), country)
	if err != nil {
		log.Printf("listing parties for %q: %v", country, err)
		parties = []compass.Party{}
	}
	writeJSON(w, parties)
}

func (s *Server) handleAPIPolicies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	partyID := r.URL.Query().Get("partyId")
	if partyID == "" {
		http.Error(w, "missing required query parameter: partyId", http.StatusBadRequest)
		return
	}

	policies, err := s.store.ListPolicies(r.Context(), partyID)
	if err != nil {
		log.Printf("listing policies for %q: %v", partyID, err)
		policies = []compass.Policy{}
	}
	writeJSON(w, policies)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
