package models

// Employee defines the structure for employee records.
// Column order matches the employee table: emp_id, first_name, last_name,
// primary_skill, location.
type Employee struct {
	EmpID        string `json:"emp_id" gorm:"column:emp_id;primaryKey;size:255"`
	FirstName    string `json:"first_name" gorm:"column:first_name"`
	LastName     string `json:"last_name" gorm:"column:last_name"`
	PrimarySkill string `json:"primary_skill" gorm:"column:primary_skill"`
	Location     string `json:"location" gorm:"column:location"`
}

// TableName pins the table to "employee" instead of gorm's plural default.
func (Employee) TableName() string {
	return "employee"
}

// FullName is the display name shown after a successful insert.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
