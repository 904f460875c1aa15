package types

import "strconv"

// ID types give each integer a domain meaning so a task id can never be
// passed where a company record id is expected.

// TaskID identifies a task on the remote store
type TaskID int

// CompanyID identifies a company or member record on the remote store.
// Company root accounts and their members share the same id space.
type CompanyID int

func (id TaskID) ToInt() int {
	return int(id)
}

func (id CompanyID) ToInt() int {
	return int(id)
}

// String renders the id the way it appears in request paths
func (id TaskID) String() string {
	return strconv.Itoa(int(id))
}

// String renders the id the way it appears in request paths and query strings
func (id CompanyID) String() string {
	return strconv.Itoa(int(id))
}

// Valid reports whether the id can refer to a stored record
func (id TaskID) Valid() bool {
	return id > 0
}

// Valid reports whether the id can refer to a stored record
func (id CompanyID) Valid() bool {
	return id > 0
}
