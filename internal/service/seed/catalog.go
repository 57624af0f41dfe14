package seed

import "github.com/heartmarshall/covenantops-backend/internal/domain"

// SentinelText is the extract text that asks for generated obligations instead
// of extraction.
const SentinelText = "Demo data generation"

// ExtractCount is the number of obligations generated for an empty loan by Extract.
const ExtractCount = 6

type template struct {
	name        string
	kind        domain.ObligationType
	description string
	party       string
	frequency   domain.Frequency
	dueRule     string
}

var loanTitles = []string{
	"DemoCo Facility Agreement",
	"TechStart Revolving Credit",
}

var templates = []template{
	{
		name:        "Quarterly Financial Statements",
		kind:        domain.ObligationTypeReporting,
		description: "Deliver quarterly unaudited consolidated financial statements within 45 days after quarter-end.",
		party:       "Borrower",
		frequency:   domain.FrequencyQuarterly,
		dueRule:     "Within 45 days after quarter-end",
	},
	{
		name:        "Annual Audited Financial Statements",
		kind:        domain.ObligationTypeReporting,
		description: "Deliver annual audited consolidated financial statements within 90 days after year-end.",
		party:       "Borrower",
		frequency:   domain.FrequencyAnnual,
		dueRule:     "Within 90 days after year-end",
	},
	{
		name:        "Debt Service Coverage Ratio",
		kind:        domain.ObligationTypeCovenant,
		description: "Maintain a minimum debt service coverage ratio of 1.25x.",
		party:       "Borrower",
		frequency:   domain.FrequencyQuarterly,
		dueRule:     "Tested quarterly",
	},
	{
		name:        "Maximum Leverage Ratio",
		kind:        domain.ObligationTypeCovenant,
		description: "Maintain total debt to EBITDA ratio not exceeding 3.0x.",
		party:       "Borrower",
		frequency:   domain.FrequencyQuarterly,
		dueRule:     "Tested quarterly",
	},
	{
		name:        "Insurance Certificate",
		kind:        domain.ObligationTypeInformation,
		description: "Provide evidence of property and casualty insurance coverage.",
		party:       "Borrower",
		frequency:   domain.FrequencyAnnual,
		dueRule:     "Before policy expiration",
	},
	{
		name:        "Material Adverse Change Notice",
		kind:        domain.ObligationTypeNotice,
		description: "Notify lender of any material adverse changes within 5 business days.",
		party:       "Borrower",
		frequency:   domain.FrequencyAdHoc,
		dueRule:     "Within 5 business days of occurrence",
	},
	{
		name:        "Compliance Certificate",
		kind:        domain.ObligationTypeReporting,
		description: "Submit quarterly compliance certificate with covenant calculations.",
		party:       "Borrower",
		frequency:   domain.FrequencyQuarterly,
		dueRule:     "With quarterly financial statements",
	},
	{
		name:        "Board Resolutions",
		kind:        domain.ObligationTypeInformation,
		description: "Provide certified copies of board resolutions authorizing the loan.",
		party:       "Borrower",
		frequency:   domain.FrequencyOnce,
		dueRule:     "At closing",
	},
	{
		name:        "Environmental Compliance Report",
		kind:        domain.ObligationTypeReporting,
		description: "Submit annual environmental compliance report.",
		party:       "Borrower",
		frequency:   domain.FrequencyAnnual,
		dueRule:     "Within 120 days after year-end",
	},
	{
		name:        "Key Person Insurance",
		kind:        domain.ObligationTypeCovenant,
		description: "Maintain key person life insurance of at least $1M on CEO.",
		party:       "Borrower",
		frequency:   domain.FrequencyAnnual,
		dueRule:     "Maintain continuously",
	},
	{
		name:        "Monthly Cash Flow Report",
		kind:        domain.ObligationTypeReporting,
		description: "Provide monthly cash flow statements within 15 days of month-end.",
		party:       "Borrower",
		frequency:   domain.FrequencyMonthly,
		dueRule:     "Within 15 days of month-end",
	},
	{
		name:        "Litigation Notice",
		kind:        domain.ObligationTypeNotice,
		description: "Notify lender of any litigation exceeding $100K within 10 days.",
		party:       "Borrower",
		frequency:   domain.FrequencyAdHoc,
		dueRule:     "Within 10 days of service",
	},
}

var evidenceFilenames = []string{
	"Q3_2024_Financial_Statements.pdf",
	"Insurance_Certificate_2024.pdf",
	"Compliance_Certificate_Q3.pdf",
	"Board_Resolution_Loan_Authorization.pdf",
	"Environmental_Report_2024.pdf",
	"Cash_Flow_Statement_October.xlsx",
	"Audit_Report_2023.pdf",
	"Key_Person_Insurance_Policy.pdf",
}

var evidenceNotes = []string{
	"Submitted as required by loan agreement",
	"Updated version with latest figures",
	"Certified by external auditor",
	"Includes all required schedules",
	"Reviewed and approved by board",
	"Meets all covenant requirements",
	"Filed with regulatory authorities",
}
