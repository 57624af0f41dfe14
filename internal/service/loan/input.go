package loan

// CreateLoanInput holds the parameters for creating a loan.
type CreateLoanInput struct {
	Title string
}

// ImportTextInput holds agreement text submitted against a loan.
type ImportTextInput struct {
	LoanID int64
	Text   string
}
