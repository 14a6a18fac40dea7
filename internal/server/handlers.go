package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ukaji3/jha-go/pkg/jha/lookup"
	"github.com/ukaji3/jha-go/pkg/jha/models"
	"github.com/ukaji3/jha-go/pkg/jha/output"
	"github.com/ukaji3/jha-go/pkg/jha/session"
	"github.com/ukaji3/jha-go/pkg/jha/views"
)

var errUnknownField = errors.New("unknown field")

// FieldUpdate is the body of a field edit.
type FieldUpdate struct {
	Text string `json:"text"`
}

// SessionState is the edit state of one session.
type SessionState struct {
	models.EditRecord
	Edited map[session.Field]bool `json:"edited"`
}

func stateOf(ed *session.Editor) SessionState {
	st := SessionState{EditRecord: ed.Record(), Edited: make(map[session.Field]bool)}
	for _, f := range session.Fields {
		st.Edited[f] = ed.Edited(f)
	}
	return st
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	wb, err := s.workbook()
	if err != nil {
		writeError(w, r, err)
		return
	}
	v, err := views.Overview(wb)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, v)
}

func (s *Server) handleSheets(w http.ResponseWriter, r *http.Request) {
	wb, err := s.workbook()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"book_name": wb.BookName,
		"sheets":    views.Sheets(wb),
	})
}

func (s *Server) handleDivisions(w http.ResponseWriter, r *http.Request) {
	wb, err := s.workbook()
	if err != nil {
		writeError(w, r, err)
		return
	}
	divisions, err := views.Divisions(wb)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, divisions)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	wb, err := s.workbook()
	if err != nil {
		writeError(w, r, err)
		return
	}
	division := r.URL.Query().Get("division")
	id, known := requestSession(r)

	var v *views.SearchView
	search := func(ed *session.Editor) error {
		var err error
		v, err = views.Search(wb, division, ed)
		return err
	}

	// Only a real selection starts a session
	if lookup.IsNoSelection(division) {
		err = s.sessions.Lookup(id, search)
	} else {
		if !known {
			id = session.NewID()
		}
		err = s.sessions.Do(id, search)
		if err == nil && !known {
			setSessionCookie(w, id)
		}
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, v)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	wb, err := s.workbook()
	if err != nil {
		writeError(w, r, err)
		return
	}
	v, err := views.Analytics(wb)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, v)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	id, _ := requestSession(r)
	var st SessionState
	_ = s.sessions.Lookup(id, func(ed *session.Editor) error {
		st = stateOf(ed)
		return nil
	})
	writeJSON(w, st)
}

func (s *Server) handleSetField(w http.ResponseWriter, r *http.Request) {
	field, err := session.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", errUnknownField, err))
		return
	}
	var body FieldUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", errInvalidBody, err))
		return
	}

	id, _ := requestSession(r)
	var st SessionState
	err = s.sessions.Lookup(id, func(ed *session.Editor) error {
		if ed.Division() == "" {
			return errNoDivision
		}
		if err := ed.Set(field, body.Text); err != nil {
			return err
		}
		st = stateOf(ed)
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, st)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if id, ok := requestSession(r); ok {
		s.sessions.Drop(id)
	}
	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDownloadCombined(w http.ResponseWriter, r *http.Request) {
	format, err := output.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, _ := requestSession(r)
	var rec models.EditRecord
	err = s.sessions.Lookup(id, func(ed *session.Editor) error {
		if ed.Division() == "" {
			return errNoDivision
		}
		rec = ed.Record()
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := output.Combined(rec, format)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeDownload(w, res)
}

func (s *Server) handleDownloadSheet(w http.ResponseWriter, r *http.Request) {
	wb, err := s.workbook()
	if err != nil {
		writeError(w, r, err)
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %s", errInvalidSheet, chi.URLParam(r, "index")))
		return
	}
	name, ok := wb.SheetAt(index)
	if !ok {
		writeError(w, r, fmt.Errorf("%w: %d", errInvalidSheet, index))
		return
	}

	res, err := output.SheetCSV(name, wb.TableAt(index))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeDownload(w, res)
}

func (s *Server) handleDownloadWorkbook(w http.ResponseWriter, r *http.Request) {
	wb, err := s.workbook()
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := output.WorkbookXLSX(wb)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeDownload(w, res)
}
