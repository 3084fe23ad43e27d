package models

// Employee represents an employee entity.
type Employee struct {
	ID        string `json:"id"        validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	JobTitle  string `json:"jobTitle"`
}
