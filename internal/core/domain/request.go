package domain

// RequestStatus is the workflow state of a submitted request.
// Only Pending is ever produced; there is no review flow that moves a request
// forward, so the other states exist for display compatibility only.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestApproved RequestStatus = "Approved"
	RequestRejected RequestStatus = "Rejected"
)

// RequestItem is one line of a request.
type RequestItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Request is a self-service submission by an employee, keyed to the submitter
// by account e-mail rather than id.
type Request struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        RequestStatus `json:"status"`
	Date          string        `json:"date"` // YYYY-MM-DD, set at submission
	EmployeeEmail string        `json:"employeeEmail"`
}
