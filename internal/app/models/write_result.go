package models

// WriteResult tells a caller whether a replace or delete by id touched a
// record. A miss is not an error.
type WriteResult int

const (
	WriteNotFound WriteResult = iota
	WriteApplied
)

func (r WriteResult) Applied() bool {
	return r == WriteApplied
}

func (r WriteResult) String() string {
	if r == WriteApplied {
		return "applied"
	}
	return "not_found"
}
