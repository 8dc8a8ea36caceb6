package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"notesite/internal/notes"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderNotFound(w)
		return
	}
	public := notes.PublicOnly(s.src.ListNotes(r.Context()))
	data := ViewData{
		Title:           "Home",
		ContentTemplate: "home",
		Notes:           s.noteCards(public),
	}
	s.views.RenderPage(w, s.withSite(data))
}

func (s *Server) handleAllNotes(w http.ResponseWriter, r *http.Request) {
	all := s.src.ListNotes(r.Context())
	data := ViewData{
		Title:           "All notes",
		ContentTemplate: "all_notes",
		Notes:           s.noteCards(all),
		NoteCount:       len(all),
	}
	s.views.RenderPage(w, s.withSite(data))
}

func (s *Server) handleNote(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/notes/"), "/")
	if slug == "" || strings.Contains(slug, "/") {
		s.renderNotFound(w)
		return
	}
	if !s.src.NoteExists(r.Context(), slug) {
		s.renderNotFound(w)
		return
	}
	note, ok := s.src.FetchNote(r.Context(), slug)
	if !ok {
		s.renderNotFound(w)
		return
	}

	view := &NoteView{
		NoteCard: s.noteCard(note.Metadata),
		BodyHTML: renderMarkdown(s.src, note.Content),
	}
	data := ViewData{
		Title:           note.Metadata.Title,
		ContentTemplate: "note",
		Note:            view,
	}
	s.views.RenderPage(w, s.withSite(data))
}

func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	report := notes.BuildDebugReport(r.Context(), s.cfg)
	pretty, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data := ViewData{
		Title:           "Debug",
		ContentTemplate: "debug",
		Debug:           &report,
		DebugJSON:       string(pretty),
	}
	s.views.RenderPage(w, s.withSite(data))
}

func (s *Server) handleDebugAPI(w http.ResponseWriter, r *http.Request) {
	report := notes.BuildDebugReport(r.Context(), s.cfg)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) renderNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	s.views.RenderPage(w, s.withSite(ViewData{
		Title:           "Note not found",
		ContentTemplate: "not_found",
	}))
}

func (s *Server) withSite(data ViewData) ViewData {
	data.SiteTitle = s.cfg.SiteTitle
	return data
}

func (s *Server) noteCards(metas []notes.NoteMetadata) []NoteCard {
	cards := make([]NoteCard, 0, len(metas))
	for _, meta := range metas {
		cards = append(cards, s.noteCard(meta))
	}
	return cards
}

func (s *Server) noteCard(meta notes.NoteMetadata) NoteCard {
	card := NoteCard{
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		Tags:        meta.Tags,
		Slug:        meta.Slug,
		IsPublic:    meta.IsPublic,
	}
	if meta.CoverImage != "" {
		card.CoverURL = s.src.ResolveAssetURL(meta.CoverImage)
	}
	return card
}
