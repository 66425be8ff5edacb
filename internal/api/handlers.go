/*
Package api
File: handlers.go
Description:
    Contains the HTTP handlers for the REST API.
    These functions process incoming JSON requests, validate them,
    forward the input to the game session, and return JSON responses.

    Key Responsibilities:
    - Input Validation (Is the JSON valid? Does the upgrade exist?)
    - State Access (Snapshots and catalog reads for the frontend)
    - Real-time fan-out (Pushing floating text and fever events to the hub)
*/

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Squallever/clicker/internal/game"
)

// Server bundles the game session with the real-time hub. All handlers
// hang off it so tests can build one around a headless session.
type Server struct {
	Session *game.Session
	Hub     *Hub
}

// NewServer wires the handler set to a session and hub.
func NewServer(sess *game.Session, hub *Hub) *Server {
	return &Server{Session: sess, Hub: hub}
}

// Request DTOs (Data Transfer Objects)
// These structs define exactly what we expect the client to send us.

type PointerRequest struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Touch bool    `json:"touch"`
}

type BuyRequest struct {
	UpgradeID string `json:"upgrade_id"`
}

type OracleRequest struct {
	Mode string `json:"mode"`
}

type OracleResponse struct {
	Mode string `json:"mode"`
	Text string `json:"text"`
}

// HandleGetState returns the full session snapshot.
func (s *Server) HandleGetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Session.Snapshot())
}

// HandleGetUpgrades returns the catalog with current costs and counts.
// The frontend disables a buy button by comparing current_cost to the
// balance from the state endpoint.
func (s *Server) HandleGetUpgrades(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Session.Upgrades())
}

// HandleGetHistory returns the balance samples for the stats chart.
func (s *Server) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Session.History())
}

// HandleClick processes one tap on the cat and fans the floating text out
// to every viewer.
func (s *Server) HandleClick(w http.ResponseWriter, r *http.Request) {
	var req PointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	res := s.Session.Click(req.X, req.Y)

	if s.Hub != nil {
		s.Hub.Emit("floating_text", res.Annotation)
		if res.FeverEntered {
			s.Hub.Emit("fever", map[string]any{
				"active":     true,
				"multiplier": res.FeverMultiplier,
			})
		}
	}

	writeJSON(w, res)
}

// HandleStroke processes a pointer-move while petting. Unregistered moves
// still return 200 with registered=false; they are the common case.
func (s *Server) HandleStroke(w http.ResponseWriter, r *http.Request) {
	var req PointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	res := s.Session.Stroke(req.X, req.Y)
	writeJSON(w, res)
}

// HandleStrokeEnd clears the petting anchor when the pointer lifts.
func (s *Server) HandleStrokeEnd(w http.ResponseWriter, r *http.Request) {
	s.Session.EndStroke()
	w.WriteHeader(http.StatusNoContent)
}

// HandleBuy purchases one unit of an upgrade.
func (s *Server) HandleBuy(w http.ResponseWriter, r *http.Request) {
	var req BuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	res, err := s.Session.Buy(req.UpgradeID)
	switch {
	case errors.Is(err, game.ErrUnknownUpgrade):
		http.Error(w, "Upgrade not found", http.StatusNotFound)
		return
	case errors.Is(err, game.ErrInsufficientFunds):
		http.Error(w, "Insufficient Clover", http.StatusPaymentRequired)
		return
	case err != nil:
		http.Error(w, "Purchase failed", http.StatusInternalServerError)
		return
	}

	if s.Hub != nil {
		s.Hub.Emit("purchase", res)
	}

	writeJSON(w, res)
}

// HandleOracle asks the forest spirit cat for text. The spend-check is
// the session's; collaborator failures already surface as a fallback
// string, so past the gate this always answers 200.
func (s *Server) HandleOracle(w http.ResponseWriter, r *http.Request) {
	var req OracleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	mode := game.OracleMode(req.Mode)
	text, err := s.Session.AskOracle(r.Context(), mode)
	switch {
	case errors.Is(err, game.ErrUnknownMode):
		http.Error(w, "Unknown oracle mode", http.StatusBadRequest)
		return
	case errors.Is(err, game.ErrInsufficientFunds):
		http.Error(w, "Insufficient Clover", http.StatusPaymentRequired)
		return
	case err != nil:
		http.Error(w, "Oracle failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, OracleResponse{Mode: string(mode), Text: text})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// CORSMiddleware lets the browser frontend talk to the API across origins.
func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
