package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rcliao/string-analyzer/internal/errors"
	"github.com/rcliao/string-analyzer/internal/model"
)

const maxBodyBytes = 1 << 20

type createRequest struct {
	Value json.RawMessage `json:"value"`
}

// decodeCreate validates a create body before any analysis runs: the body
// must be a JSON object with a "value" key holding a string.
func decodeCreate(w http.ResponseWriter, r *http.Request) (string, int, error) {
	var req createRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return "", http.StatusBadRequest, errors.Wrap(err, "invalid request body")
	}
	if req.Value == nil {
		return "", http.StatusBadRequest, errors.New("missing 'value' field")
	}

	var value string
	if bytes.Equal(bytes.TrimSpace(req.Value), []byte("null")) || json.Unmarshal(req.Value, &value) != nil {
		return "", http.StatusUnprocessableEntity, errors.New("invalid data type for 'value', must be a string")
	}
	return value, 0, nil
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	value, status, err := decodeCreate(w, r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	rec, err := s.store.Insert(r.Context(), value)
	if err != nil {
		s.writeStoreError(w, r, "create", err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.GetByValue(r.Context(), r.PathValue("value"))
	if err != nil {
		s.writeStoreError(w, r, "get", err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteByValue(r.Context(), r.PathValue("value")); err != nil {
		s.writeStoreError(w, r, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilters(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.store.List(r.Context(), f)
	if err != nil {
		s.writeStoreError(w, r, "list", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing 'query' parameter")
		return
	}

	res, err := s.store.ListByNaturalLanguage(r.Context(), query)
	if err != nil {
		s.writeStoreError(w, r, "filter", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseFilters reads the optional list filters from query parameters.
// Absent parameters leave the filter unset.
func parseFilters(q url.Values) (model.Filters, error) {
	var f model.Filters

	if q.Has("is_palindrome") {
		b, err := strconv.ParseBool(q.Get("is_palindrome"))
		if err != nil {
			return f, errors.NewInvalidArgumentError("is_palindrome must be true or false")
		}
		f.IsPalindrome = &b
	}

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"min_length", &f.MinLength},
		{"max_length", &f.MaxLength},
		{"word_count", &f.WordCount},
	} {
		if !q.Has(p.name) {
			continue
		}
		n, err := strconv.Atoi(q.Get(p.name))
		if err != nil {
			return f, errors.NewInvalidArgumentError("%s must be an integer", p.name)
		}
		*p.dst = &n
	}

	if q.Has("contains_character") {
		c := q.Get("contains_character")
		f.ContainsCharacter = &c
	}

	return f, nil
}
