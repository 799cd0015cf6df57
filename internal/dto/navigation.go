package dto

// NavigationResponse is the outcome of resolving a navigation token: either
// the page to show, or a redirect with an optional notice explaining why.
type NavigationResponse struct {
	Page     string        `json:"page,omitempty"`
	Redirect string        `json:"redirect,omitempty"`
	Notice   *Notification `json:"notice,omitempty"`
}
