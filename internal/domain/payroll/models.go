package payroll

import "time"

type Record struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	Gross       float64   `json:"gross"`
	Deductions  float64   `json:"deductions"`
	Net         float64   `json:"net"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RecordInput struct {
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Gross       float64
	Deductions  float64
	Currency    string
}
