package models

// ContactInformation holds the contact details of a single employee.
// EmployeeID references Employee.ID.
type ContactInformation struct {
	ID         string `json:"id"         validate:"required"`
	EmployeeID string `json:"employeeId" validate:"required"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Address    string `json:"address"`
}
