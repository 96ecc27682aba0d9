package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"stonehenge/game"
	"stonehenge/gamemaster"
	"stonehenge/searcher"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Options struct {
	SideLength int    // used when a new game does not name one
	Opponent   string // strategy used when an AI move does not name one
}

type Server struct {
	master  *gamemaster.GameMaster
	hub     *Hub
	options Options
}

func New(master *gamemaster.GameMaster, hub *Hub, options Options) *Server {
	return &Server{master: master, hub: hub, options: options}
}

type newGameRequest struct {
	SideLength *int  `json:"side_length"`
	P1Starts   *bool `json:"p1_starts"`
}

type moveRequest struct {
	Move string `json:"move"`
}

type aiRequest struct {
	Strategy string `json:"strategy"`
}

type moveResponse struct {
	Step int                 `json:"step"`
	Move game.Move           `json:"move"`
	Game gamemaster.Snapshot `json:"game"`
}

type updatePayload struct {
	Step int                 `json:"step,omitempty"`
	Move game.Move           `json:"move,omitempty"`
	Game gamemaster.Snapshot `json:"game"`
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", s.createGame)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getGame)
			r.Post("/moves", s.playMove)
			r.Post("/ai", s.aiMove)
		})
	})

	r.Get("/ws/games/{id}", s.watchGame)
	return r
}

func (s *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var payload newGameRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	side := s.options.SideLength
	if payload.SideLength != nil {
		side = *payload.SideLength
	}
	p1Starts := true
	if payload.P1Starts != nil {
		p1Starts = *payload.P1Starts
	}

	session, err := s.master.Create(p1Starts, side)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	session.Subscribe(func(u gamemaster.Update) {
		s.hub.Publish(session.ID(), wsMessage{
			Type:    "update",
			Payload: mustMarshal(updatePayload{Step: u.Step, Move: u.Move, Game: u.Snapshot}),
		})
	})
	writeJSON(w, http.StatusCreated, session.Snapshot())
}

func (s *Server) getGame(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (s *Server) playMove(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	var payload moveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	u, err := session.Play(payload.Move)
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, moveResponse{Step: u.Step, Move: u.Move, Game: u.Snapshot})
}

func (s *Server) aiMove(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	var payload aiRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	name := payload.Strategy
	if name == "" {
		name = s.options.Opponent
	}

	strategy, err := searcher.New(name, session.Rules(), searcher.WithSeed(uint64(time.Now().UnixNano())))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := session.AIMove(strategy)
	if err != nil {
		writeError(w, statusOf(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, moveResponse{Step: u.Step, Move: u.Move, Game: u.Snapshot})
}

func (s *Server) watchGame(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	first := wsMessage{Type: "state", Payload: mustMarshal(updatePayload{Game: session.Snapshot()})}
	serveWS(s.hub, session.ID(), first, w, r)
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*gamemaster.Session, bool) {
	session, err := s.master.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return session, true
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, gamemaster.ErrGameOver), errors.Is(err, gamemaster.ErrStaleSearch):
		return http.StatusConflict
	case errors.Is(err, gamemaster.ErrIllegalMove):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	})
}
