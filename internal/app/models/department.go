package models

// Department defines the department model based on the 'departments' table.
// Name is unique at the schema level.
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
