package web

import (
	"net/http"

	"notesite/internal/config"
	"notesite/internal/notes"
)

type Server struct {
	cfg   config.Config
	src   notes.Source
	mux   *http.ServeMux
	views *Templates
}

func NewServer(cfg config.Config, src notes.Source) *Server {
	s := &Server{
		cfg:   cfg,
		src:   src,
		mux:   http.NewServeMux(),
		views: MustParseTemplates(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return requestLog(s.mux)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/", s.handleHome)
	s.mux.HandleFunc("/all-notes", s.handleAllNotes)
	s.mux.HandleFunc("/notes/", s.handleNote)
	s.mux.HandleFunc("/debug", s.handleDebug)
	s.mux.HandleFunc("/api/debug", s.handleDebugAPI)
}
