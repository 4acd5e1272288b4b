package entity

import (
	"time"

	"github.com/sandunudayakanthaproducts/chandima-cafe/internal/domain"
)

// Transfer records a movement of whole sealed bottles between the two
// locations. Open volume never moves. Immutable once created.
type Transfer struct {
	ID        string
	LiquorID  string
	From      domain.Location
	To        domain.Location
	Bottles   int
	Timestamp time.Time
	Actor     string
}
