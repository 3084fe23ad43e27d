package repository

import (
	"time"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
)

// GetEmployees reads the employees document and returns its records in file order.
func (r *Repository) GetEmployees() ([]models.Employee, error) {
	startTime := time.Now()

	employees, err := load[models.Employee](r, r.docs.Employees)
	r.observe("employees", startTime, len(employees), err)
	if err != nil {
		return nil, err
	}

	return employees, nil
}
