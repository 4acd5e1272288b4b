package dto

// PageRequest pagination for list endpoints.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage applies defaults when Limit/Offset are unset.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Shortfall detail, present on INSUFFICIENT_STOCK responses so the client
	// can tell the user which product ran short and by how much.
	LiquorID         string `json:"liquorId,omitempty"`
	ShortfallMl      int    `json:"shortfallMl,omitempty"`
	ShortfallBottles int    `json:"shortfallBottles,omitempty"`
}
