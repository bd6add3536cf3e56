package domain

// Gender is the recorded gender of an alumnus.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// CommunicationType is the channel used to reach an alumnus.
type CommunicationType string

const (
	CommunicationCall     CommunicationType = "call"
	CommunicationSMS      CommunicationType = "sms"
	CommunicationEmail    CommunicationType = "email"
	CommunicationWhatsApp CommunicationType = "whatsapp"
	CommunicationVisit    CommunicationType = "visit"
	CommunicationOther    CommunicationType = "other"
)

func (c CommunicationType) String() string { return string(c) }

func (c CommunicationType) IsValid() bool {
	switch c {
	case CommunicationCall, CommunicationSMS, CommunicationEmail,
		CommunicationWhatsApp, CommunicationVisit, CommunicationOther:
		return true
	}
	return false
}

// CommunicationOutcome records how an outreach attempt ended.
type CommunicationOutcome string

const (
	OutcomeSuccessful        CommunicationOutcome = "successful"
	OutcomeUnsuccessful      CommunicationOutcome = "unsuccessful"
	OutcomeNoAnswer          CommunicationOutcome = "no_answer"
	OutcomeBusy              CommunicationOutcome = "busy"
	OutcomeWrongNumber       CommunicationOutcome = "wrong_number"
	OutcomeVoicemail         CommunicationOutcome = "voicemail"
	OutcomeScheduledCallback CommunicationOutcome = "scheduled_callback"
)

func (o CommunicationOutcome) String() string { return string(o) }

func (o CommunicationOutcome) IsValid() bool {
	switch o {
	case OutcomeSuccessful, OutcomeUnsuccessful, OutcomeNoAnswer, OutcomeBusy,
		OutcomeWrongNumber, OutcomeVoicemail, OutcomeScheduledCallback:
		return true
	}
	return false
}

// MatchReason is the signal that made the finder pair two records.
type MatchReason string

const (
	MatchEmail MatchReason = "email"
	MatchName  MatchReason = "name"
	MatchPhone MatchReason = "phone"
)

func (m MatchReason) String() string { return string(m) }

// EntityType identifies the kind of record an audit entry refers to.
type EntityType string

const (
	EntityTypeAlumnus    EntityType = "alumnus"
	EntityTypeDepartment EntityType = "department"
	EntityTypeTenure     EntityType = "tenure"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeAlumnus, EntityTypeDepartment, EntityTypeTenure:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionDelete  AuditAction = "delete"
	AuditActionMerge   AuditAction = "merge"
	AuditActionDismiss AuditAction = "dismiss"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionMerge, AuditActionDismiss:
		return true
	}
	return false
}

// UserRole represents the authorization level of a staff user.
type UserRole string

const (
	UserRoleStaff UserRole = "staff"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleStaff, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// BirthdayPeriod is the window covered by a birthday digest.
type BirthdayPeriod string

const (
	BirthdayPeriodDaily   BirthdayPeriod = "daily"
	BirthdayPeriodWeekly  BirthdayPeriod = "weekly"
	BirthdayPeriodMonthly BirthdayPeriod = "monthly"
)

func (p BirthdayPeriod) String() string { return string(p) }

func (p BirthdayPeriod) IsValid() bool {
	switch p {
	case BirthdayPeriodDaily, BirthdayPeriodWeekly, BirthdayPeriodMonthly:
		return true
	}
	return false
}
