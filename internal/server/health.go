package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
)

// DocumentReader reads both directory documents in full.
type DocumentReader interface {
	GetEmployees() ([]models.Employee, error)
	GetContacts() ([]models.ContactInformation, error)
}

type HealthChecker struct {
	reader DocumentReader
	log    *slog.Logger
}

func NewHealthChecker(reader DocumentReader, log *slog.Logger) *HealthChecker {
	return &HealthChecker{
		reader: reader,
		log:    log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	var err error
	status := make(map[string]string)
	overallStatus := http.StatusOK

	checks := []struct {
		label string
		read  func() error
	}{
		{label: "employees", read: func() error { _, readErr := h.reader.GetEmployees(); return readErr }},
		{label: "contacts", read: func() error { _, readErr := h.reader.GetContacts(); return readErr }},
	}

	for _, check := range checks {
		err = check.read()
		switch {
		case err == nil:
			status[check.label] = "ok"
		case errors.Is(err, repository.ErrParse):
			status[check.label] = "degraded"
			overallStatus = http.StatusServiceUnavailable
			h.log.WarnContext(req.Context(), "Health check failed: document is malformed",
				"document", check.label, "error", err)
		default:
			status[check.label] = "unavailable"
			overallStatus = http.StatusServiceUnavailable
			h.log.WarnContext(req.Context(), "Health check failed: document unreadable",
				"document", check.label, "error", err)
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err = json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
