package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	greekutils "github.com/mkarajohn/greek-text-utils"
	"github.com/mkarajohn/greek-text-utils/internal/metrics"
	"github.com/mkarajohn/greek-text-utils/internal/transliteration"
)

const (
	// MaxTextBytes caps the text field of a convert request.
	MaxTextBytes = 1 << 20
	// JSON escapes can inflate the body well past the text itself.
	maxBodyBytes = 8 * MaxTextBytes
)

type ConvertHandler struct {
	log *slog.Logger
}

func NewConvertHandler(log *slog.Logger) *ConvertHandler {
	return &ConvertHandler{log: log}
}

type convertRequest struct {
	Scheme             string `json:"scheme"`
	Text               string `json:"text"`
	Ignore             string `json:"ignore"`
	CollapseWhitespace bool   `json:"collapse_whitespace"`
}

type convertResponse struct {
	Scheme string `json:"scheme"`
	Input  string `json:"input"`
	Output string `json:"output"`
	Script string `json:"script"`
}

func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			metrics.ConversionsTotal.WithLabelValues("unknown", "too_large").Inc()
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	scheme, err := greekutils.ParseScheme(req.Scheme)
	if err != nil {
		metrics.ConversionsTotal.WithLabelValues("unknown", "bad_scheme").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Text) > MaxTextBytes {
		metrics.ConversionsTotal.WithLabelValues(string(scheme), "too_large").Inc()
		writeError(w, http.StatusRequestEntityTooLarge, "text exceeds 1 MiB")
		return
	}

	out, err := greekutils.Convert(scheme, req.Text, greekutils.ConvertOptions{
		Ignore:             req.Ignore,
		CollapseWhitespace: req.CollapseWhitespace,
	})
	if err != nil {
		h.log.Error("failed to convert", "scheme", scheme, "error", err)
		metrics.ConversionsTotal.WithLabelValues(string(scheme), "error").Inc()
		writeError(w, http.StatusInternalServerError, "conversion failed")
		return
	}

	metrics.ConversionsTotal.WithLabelValues(string(scheme), "ok").Inc()
	metrics.ConversionInputBytes.WithLabelValues(string(scheme)).Observe(float64(len(req.Text)))

	writeJSON(w, http.StatusOK, convertResponse{
		Scheme: string(scheme),
		Input:  req.Text,
		Output: out,
		Script: string(transliteration.DetectScript(out)),
	})
}
