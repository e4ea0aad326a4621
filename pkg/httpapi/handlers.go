package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/inputguard/pkg/logger"
	"github.com/dmitrymomot/inputguard/pkg/validator"
)

func (a *API) listFields(w http.ResponseWriter, _ *http.Request) {
	writeData(w, FieldList{Fields: a.Names()})
}

func (a *API) getField(w http.ResponseWriter, r *http.Request) {
	f, ok := a.lookup(w, r)
	if !ok {
		return
	}
	writeData(w, f.info)
}

func (a *API) evaluate(w http.ResponseWriter, r *http.Request) {
	f, ok := a.lookup(w, r)
	if !ok {
		return
	}

	text, err := decodeText(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	res, err := f.process(text)
	if err != nil {
		a.log.ErrorContext(r.Context(), "evaluation failed",
			logger.Field(f.info.Name),
			logger.Text(text),
			logger.Error(err),
		)
		msg := "evaluation failed"
		if errors.Is(err, validator.ErrExternalPredicate) {
			msg = "external predicate failed"
		}
		writeError(w, http.StatusInternalServerError, CodeEvaluation, msg)
		return
	}

	a.log.DebugContext(r.Context(), "text evaluated",
		logger.Field(f.info.Name),
		logger.Verdict(res.Valid),
		logger.Text(res.Text),
	)
	writeData(w, EvaluateResponse{
		Field:       f.info.Name,
		Valid:       res.Valid,
		Text:        res.Text,
		Reformatted: res.Reformatted,
	})
}

func (a *API) lookup(w http.ResponseWriter, r *http.Request) (*field, bool) {
	name := chi.URLParam(r, "name")
	f, ok := a.fields[name]
	if !ok {
		writeError(w, http.StatusNotFound, CodeUnknownField, fmt.Sprintf("unknown field %q", name))
		return nil, false
	}
	return f, true
}

func decodeText(w http.ResponseWriter, r *http.Request) (string, error) {
	var req EvaluateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: empty body", ErrBadRequest)
		}
		return "", fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if req.Text == nil {
		return "", fmt.Errorf("%w: missing \"text\"", ErrBadRequest)
	}
	return *req.Text, nil
}
