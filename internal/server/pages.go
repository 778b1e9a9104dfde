package server

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/pesikj/political-pulse-mapper/internal/compass"
)

// The HTML pages share the JSON endpoints' degrade policy: a store failure
// renders the page's empty state.

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	countries, err := s.store.ListCountries(r.Context())
	if err != nil {
		log.Printf("listing countries: %v", err)
		countries = []compass.Country{}
	}

	s.render(w, "index.html", map[string]any{
		"Countries": countries,
	})
}

func (s *Server) handleCountry(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/country/")
	name, _ = url.PathUnescape(name)
	if name == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	parties, err := s.store.ListParties(r.Context(), name)
	if err != nil {
		log.Printf("listing parties for %q: %v", name, err)
		parties = []compass.Party{}
	}

	s.render(w, "country.html", map[string]any{
		"Country": name,
		"Flag":    compass.Flag(name),
		"Parties": parties,
	})
}

func (s *Server) handleParty(w http.ResponseWriter, r *http.Request) {
	partyID := strings.TrimPrefix(r.URL.Path, "/party/")
	partyID, _ = url.PathUnescape(partyID)
	if partyID == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	policies, err := s.store.ListPolicies(r.Context(), partyID)
	if err != nil {
		log.Printf("listing policies for %q: %v", partyID, err)
		policies = []compass.Policy{}
	}

	s.render(w, "party.html", map[string]any{
		"PartyID":   partyID,
		"PartyName": r.URL.Query().Get("name"),
		"Policies":  policies,
	})
}
