package party

// CreatePartyRequest carries the free-text fields of a new party. Empty
// strings are stored as-is.
type CreatePartyRequest struct {
	Name    string
	Phone   string
	Email   string
	Address string
}
