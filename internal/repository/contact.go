package repository

import (
	"time"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
)

// GetContacts reads the contacts document and returns its records in file order.
func (r *Repository) GetContacts() ([]models.ContactInformation, error) {
	startTime := time.Now()

	contacts, err := load[models.ContactInformation](r, r.docs.Contacts)
	r.observe("contacts", startTime, len(contacts), err)
	if err != nil {
		return nil, err
	}

	return contacts, nil
}

// GetEmployeeContactInfo reads the contacts document and returns the first record
// whose EmployeeID equals employeeID exactly. The boolean is false when no record
// matches, which is not an error.
func (r *Repository) GetEmployeeContactInfo(employeeID string) (models.ContactInformation, bool, error) {
	contacts, err := r.GetContacts()
	if err != nil {
		r.countLookup("error")
		return models.ContactInformation{}, false, err
	}

	for _, contact := range contacts {
		if contact.EmployeeID == employeeID {
			r.countLookup("found")
			return contact, true, nil
		}
	}

	r.countLookup("absent")
	return models.ContactInformation{}, false, nil
}

func (r *Repository) countLookup(result string) {
	if r.metrics != nil {
		r.metrics.ContactLookups.WithLabelValues(result).Inc()
	}
}
