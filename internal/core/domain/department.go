package domain

// Department groups employees. It may only be deleted while no employee
// references it; the guard is enforced at delete time, not by constraint.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
