package service

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/export"
)

// ExportPath is where the financial report download is mounted.
const ExportPath = "/export/financial"

// ExportHandler serves the financial report as a CSV or XLSX download:
//
//	GET /export/financial?start_date=2024-01-01&end_date=2024-01-31&format=xlsx
type ExportHandler struct {
	bo *backoffice.Service
}

// NewExportHandler creates an ExportHandler backed by bo.
func NewExportHandler(bo *backoffice.Service) *ExportHandler {
	return &ExportHandler{bo: bo}
}

func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	format, err := export.ParseFormat(q.Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	start, end := q.Get("start_date"), q.Get("end_date")
	if start == "" || end == "" {
		http.Error(w, "start_date and end_date are required", http.StatusBadRequest)
		return
	}
	rng, err := backoffice.ParseRange(start, end)
	if err != nil {
		writeError(w, err)
		return
	}

	rep, err := h.bo.FinancialReport(r.Context(), rng)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, export.FinancialSections(rep)); err != nil {
		slog.Error("Failed to render export", "format", format, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	filename := export.Filename(rep.Period, format)
	size := buf.Len()
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(size))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("Export download interrupted", "filename", filename, "error", err)
		return
	}
	slog.Info("Financial report exported", "filename", filename, "bytes", size)
}

// writeError answers with the status and message of a backoffice error.
func writeError(w http.ResponseWriter, err error) {
	kind := backoffice.KindOf(err)
	msg := "internal error"
	var berr *backoffice.Error
	if errors.As(err, &berr) {
		msg = berr.Message
	}
	if kind == backoffice.KindInternal {
		slog.Error("Export failed", "error", err)
	}
	w.Header().Set(ErrorKindHeader, string(kind))
	http.Error(w, msg, kind.HTTPStatus())
}
