package seed

// ExtractInput holds the parameters of Extract. A nil Text behaves like the sentinel.
type ExtractInput struct {
	LoanID int64
	Text   *string
}

// SeedResult counts what GenerateSeed wrote.
type SeedResult struct {
	Loans       int `json:"loans"`
	Obligations int `json:"obligations"`
	Evidence    int `json:"evidence"`
}
