package domain

// Dataset is a complete set of records produced outside the normal create path,
// such as generated demo data. Ids are already assigned.
type Dataset struct {
	Loans       []Loan
	Obligations []Obligation
	Evidence    []Evidence
}
