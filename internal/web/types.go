package web

import (
	"html/template"

	"notesite/internal/notes"
)

type ViewData struct {
	Title           string
	SiteTitle       string
	ContentTemplate string
	ContentHTML     template.HTML
	Notes           []NoteCard
	NoteCount       int
	Note            *NoteView
	Debug           *notes.DebugReport
	DebugJSON       string
}

type NoteCard struct {
	Title       string
	Description string
	Date        string
	Tags        []string
	Slug        string
	IsPublic    bool
	CoverURL    string
}

type NoteView struct {
	NoteCard
	BodyHTML template.HTML
}
