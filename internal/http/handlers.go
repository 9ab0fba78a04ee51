package http

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/flameunter/fanclub/internal/club"
	"github.com/flameunter/fanclub/internal/genai"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		s.Store.Clear()
		if r.URL.Query().Get("reseed") == "true" {
			if err := s.Store.Seed(); err != nil {
				log.Error("Failed to reseed store", "error", err)
				respondError(w, err)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

func (s *Server) PlayerLoginHandler() http.HandlerFunc {
	type request struct {
		ID       string `json:"id"`
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}

		player, err := s.Store.AuthenticatePlayer(req.ID, req.Password)
		s.Metrics.IncPlayerLogins(err == nil)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) PlayerDashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "Missing 'playerID' query parameter", http.StatusBadRequest)
			return
		}

		dashboard, err := s.Store.GetPlayerDashboard(playerID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dashboard)
	}
}

func (s *Server) ModeratorLoginHandler() http.HandlerFunc {
	type request struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}

		err := s.Store.AuthenticateModerator(req.Username, req.Password)
		s.Metrics.IncModeratorLogins(err == nil)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// PlayersHandler lists the roster on GET and registers a new player on POST.
func (s *Server) PlayersHandler() http.HandlerFunc {
	type addRequest struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			players, err := s.Store.ListPlayers()
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, players)
		case http.MethodPost:
			var req addRequest
			if err := decodeBody(r, &req); err != nil {
				http.Error(w, "Failed to decode request body", http.StatusBadRequest)
				return
			}
			if err := s.Store.AddPlayer(req.ID, req.Name, req.Password); err != nil {
				respondError(w, err)
				return
			}
			s.Announcer.AnnouncePlayerJoined(club.Player{ID: req.ID, Name: req.Name}, isDryRunFromContext(r))
			respondJSON(w, http.StatusCreated, club.Player{ID: req.ID, Name: req.Name})
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// PlayerStatsHandler returns a player's editable stat sheet on GET and
// replaces it wholesale on PUT.
func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.URL.Query().Get("playerID")
		if playerID == "" {
			http.Error(w, "Missing 'playerID' query parameter", http.StatusBadRequest)
			return
		}

		switch r.Method {
		case http.MethodGet:
			sheet, err := s.Store.GetStatsForEditing(playerID)
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, sheet)
		case http.MethodPut, http.MethodPost:
			var sheet club.StatSheet
			if err := decodeBody(r, &sheet); err != nil {
				http.Error(w, "Failed to decode request body", http.StatusBadRequest)
				return
			}
			if err := s.Store.UpdateStats(playerID, sheet); err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// TeamNewsHandler lists the bulletin on GET and publishes a new item on POST.
func (s *Server) TeamNewsHandler() http.HandlerFunc {
	type publishRequest struct {
		Title string `json:"title"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			news, err := s.Store.ListTeamNews()
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, news)
		case http.MethodPost:
			var req publishRequest
			if err := decodeBody(r, &req); err != nil {
				http.Error(w, "Failed to decode request body", http.StatusBadRequest)
				return
			}
			item, err := s.Store.PublishNews(req.Title)
			if err != nil {
				respondError(w, err)
				return
			}
			s.Announcer.AnnounceNews(item, isDryRunFromContext(r))
			respondJSON(w, http.StatusCreated, item)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// ScheduleHandler returns the schedule on GET and replaces it wholesale on PUT.
func (s *Server) ScheduleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			matches, err := s.Store.GetSchedule()
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, matches)
		case http.MethodPut, http.MethodPost:
			var matches []club.MatchInfo
			if err := decodeBody(r, &matches); err != nil {
				http.Error(w, "Failed to decode request body", http.StatusBadRequest)
				return
			}
			if err := s.Store.UpdateSchedule(matches); err != nil {
				respondError(w, err)
				return
			}
			s.Announcer.AnnounceSchedule(matches, isDryRunFromContext(r))
			respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) ClubLeadersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leaders, err := s.Store.GetClubLeaders()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, leaders)
	}
}

func (s *Server) AINewsHandler() http.HandlerFunc {
	type request struct {
		Prompt string `json:"prompt"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}

		s.Metrics.IncGenAICalls("news")
		result, err := s.AI.SearchNews(r.Context(), req.Prompt)
		if err != nil {
			s.Metrics.IncGenAIFailures("news")
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func (s *Server) AIPlacesHandler() http.HandlerFunc {
	type request struct {
		Prompt    string  `json:"prompt"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}

		s.Metrics.IncGenAICalls("places")
		result, err := s.AI.FindPlaces(r.Context(), req.Prompt, req.Latitude, req.Longitude)
		if err != nil {
			s.Metrics.IncGenAIFailures("places")
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func (s *Server) AIFanArtHandler() http.HandlerFunc {
	type request struct {
		Prompt      string            `json:"prompt"`
		AspectRatio genai.AspectRatio `json:"aspect_ratio"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}
		if !req.AspectRatio.Valid() {
			http.Error(w, fmt.Sprintf("Unsupported aspect ratio %q", req.AspectRatio), http.StatusBadRequest)
			return
		}

		s.Metrics.IncGenAICalls("art")
		result, err := s.AI.GenerateFanArt(r.Context(), req.Prompt, req.AspectRatio)
		if err != nil {
			s.Metrics.IncGenAIFailures("art")
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func (s *Server) AIAnalyzeHandler() http.HandlerFunc {
	type request struct {
		Prompt   string `json:"prompt"`
		Image    []byte `json:"image"` // base64 in JSON
		MIMEType string `json:"mime_type"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := decodeBody(r, &req); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}
		if len(req.Image) == 0 {
			http.Error(w, "Missing image payload", http.StatusBadRequest)
			return
		}

		s.Metrics.IncGenAICalls("analyze")
		result, err := s.AI.AnalyzePhoto(r.Context(), req.Prompt, req.Image, req.MIMEType)
		if err != nil {
			s.Metrics.IncGenAIFailures("analyze")
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}
