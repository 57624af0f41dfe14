package domain

// ObligationStatus is the lifecycle state of an obligation.
type ObligationStatus string

const (
	StatusOnTrack   ObligationStatus = "ON_TRACK"
	StatusDueSoon   ObligationStatus = "DUE_SOON"
	StatusOverdue   ObligationStatus = "OVERDUE"
	StatusCompleted ObligationStatus = "COMPLETED"
)

// AllStatuses lists the known statuses in a stable order.
var AllStatuses = []ObligationStatus{StatusOnTrack, StatusDueSoon, StatusOverdue, StatusCompleted}

func (s ObligationStatus) String() string { return string(s) }

func (s ObligationStatus) IsValid() bool {
	switch s {
	case StatusOnTrack, StatusDueSoon, StatusOverdue, StatusCompleted:
		return true
	}
	return false
}

// ObligationType classifies what kind of duty an obligation is.
type ObligationType string

const (
	ObligationTypeReporting   ObligationType = "REPORTING"
	ObligationTypeCovenant    ObligationType = "COVENANT"
	ObligationTypeNotice      ObligationType = "NOTICE"
	ObligationTypeInformation ObligationType = "INFORMATION"
	ObligationTypeEvent       ObligationType = "EVENT"
)

func (t ObligationType) String() string { return string(t) }

func (t ObligationType) IsValid() bool {
	switch t {
	case ObligationTypeReporting, ObligationTypeCovenant, ObligationTypeNotice,
		ObligationTypeInformation, ObligationTypeEvent:
		return true
	}
	return false
}

// Frequency is how often an obligation recurs.
type Frequency string

const (
	FrequencyOnce       Frequency = "ONCE"
	FrequencyDaily      Frequency = "DAILY"
	FrequencyWeekly     Frequency = "WEEKLY"
	FrequencyMonthly    Frequency = "MONTHLY"
	FrequencyQuarterly  Frequency = "QUARTERLY"
	FrequencySemiAnnual Frequency = "SEMI_ANNUAL"
	FrequencyAnnual     Frequency = "ANNUAL"
	FrequencyAdHoc      Frequency = "AD_HOC"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencySemiAnnual, FrequencyAnnual, FrequencyAdHoc:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeLoan       EntityType = "loan"
	EntityTypeObligation EntityType = "obligation"
	EntityTypeEvidence   EntityType = "evidence"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeLoan, EntityTypeObligation, EntityTypeEvidence:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreated      AuditAction = "created"
	AuditActionUpdated      AuditAction = "updated"
	AuditActionCompleted    AuditAction = "completed"
	AuditActionReopened     AuditAction = "reopened"
	AuditActionDeleted      AuditAction = "deleted"
	AuditActionUploaded     AuditAction = "uploaded"
	AuditActionTextImported AuditAction = "text_imported"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreated, AuditActionUpdated, AuditActionCompleted, AuditActionReopened,
		AuditActionDeleted, AuditActionUploaded, AuditActionTextImported:
		return true
	}
	return false
}
