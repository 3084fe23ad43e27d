package repository

import (
	"errors"
	"time"

	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/UnknownOlympus/mnemosyne/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrRead marks failures of the underlying Source: missing, unreadable or I/O error.
	ErrRead = errors.New("failed to read document")
	// ErrParse marks documents that are not a valid JSON array of the expected records.
	ErrParse = errors.New("failed to parse document")
	// ErrInvalidRecord is wrapped by ErrParse when a decoded record fails validation.
	ErrInvalidRecord = errors.New("invalid record")
)

const (
	DefaultEmployeesFile = "employees.json"
	DefaultContactsFile  = "contactinfo.json"
)

// Documents names the files, relative to the Source, that back the directory.
type Documents struct {
	Employees string
	Contacts  string
}

// DefaultDocuments returns the conventional document names.
func DefaultDocuments() Documents {
	return Documents{Employees: DefaultEmployeesFile, Contacts: DefaultContactsFile}
}

// EmployeeReader lists employees in document order.
type EmployeeReader interface {
	GetEmployees() ([]models.Employee, error)
}

// ContactReader finds contact information by employee identifier.
type ContactReader interface {
	GetEmployeeContactInfo(employeeID string) (models.ContactInformation, bool, error)
}

// Repository reads employees and contact information from a Source.
// Every call reads and decodes its document again, nothing is cached.
type Repository struct {
	source   Source
	docs     Documents
	validate *validator.Validate
	metrics  *metrics.Metrics
}

// New creates a Repository. Empty document names fall back to the defaults,
// and metrics may be nil.
func New(source Source, docs Documents, metrics *metrics.Metrics) *Repository {
	if docs.Employees == "" {
		docs.Employees = DefaultEmployeesFile
	}
	if docs.Contacts == "" {
		docs.Contacts = DefaultContactsFile
	}

	return &Repository{
		source:   source,
		docs:     docs,
		validate: validator.New(),
		metrics:  metrics,
	}
}

func (r *Repository) observe(document string, start time.Time, records int, err error) {
	if r.metrics == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failure"
	}

	r.metrics.Reads.WithLabelValues(document, status).Inc()
	r.metrics.ReadDuration.WithLabelValues(document).Observe(time.Since(start).Seconds())
	if records > 0 {
		r.metrics.RecordsDecoded.WithLabelValues(document).Add(float64(records))
	}
}
