package models

// CaseStatus is the lifecycle state of a case file. Values are stored exactly as
// displayed so persisted collections stay readable.
type CaseStatus string

const (
	// StatusPending marks a case that is still open.
	StatusPending CaseStatus = "लंबित"
	// StatusClosed marks a disposed case.
	StatusClosed CaseStatus = "बंद"
	// StatusUnderInvestigation marks a case whose investigation is ongoing.
	StatusUnderInvestigation CaseStatus = "अनुसंधान में"
)

// CaseStatuses returns every valid status in display order
func CaseStatuses() []CaseStatus {
	return []CaseStatus{StatusPending, StatusClosed, StatusUnderInvestigation}
}

// Valid reports whether s is one of the known statuses
func (s CaseStatus) Valid() bool {
	switch s {
	case StatusPending, StatusClosed, StatusUnderInvestigation:
		return true
	}
	return false
}

// EnglishName returns the English name of the status, used in logs
func (s CaseStatus) EnglishName() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusClosed:
		return "Closed"
	case StatusUnderInvestigation:
		return "Under Investigation"
	}
	return ""
}

// CaseRecord holds the structure for one case file in the persisted collection
type CaseRecord struct {
	ID string `json:"id"`
	CaseDetails
}

// CaseDetails holds every field of a case file except its identifier.
// Dates are ISO strings (YYYY-MM-DD) as entered in the form.
type CaseDetails struct {
	CaseNumber             string     `json:"caseNumber"`
	FilingDate             string     `json:"filingDate"`
	Section                string     `json:"section"`
	CaseStatus             CaseStatus `json:"caseStatus"`
	IncidentPlace          string     `json:"incidentPlace"`
	ComplainantNameAddress string     `json:"complainantNameAddress"`
	CaseSummary            string     `json:"caseSummary"`
	InvestigatingOfficer   string     `json:"investigatingOfficer"`
	PoliceResult           string     `json:"policeResult"`
	AccusedNameAddress     string     `json:"accusedNameAddress"`
	Seizure                string     `json:"seizure"`
	CasePropertyDetails    string     `json:"casePropertyDetails"`
	StolenProperty         string     `json:"stolenProperty"`
	SeizedPropertyAgain    string     `json:"seizedPropertyAgain"`
	CourtSubmissionDate    string     `json:"courtSubmissionDate"`
	FslDetails             string     `json:"fslDetails"`
}

// NewCaseDetails returns the blank template used by the create form.
// The status select always carries a value, so it starts as pending.
func NewCaseDetails() CaseDetails {
	return CaseDetails{CaseStatus: StatusPending}
}

// Value returns the textual value of the given field, or "" for an unknown field
func (d CaseDetails) Value(id FieldID) string {
	switch id {
	case FieldCaseNumber:
		return d.CaseNumber
	case FieldFilingDate:
		return d.FilingDate
	case FieldSection:
		return d.Section
	case FieldCaseStatus:
		return string(d.CaseStatus)
	case FieldIncidentPlace:
		return d.IncidentPlace
	case FieldComplainantNameAddress:
		return d.ComplainantNameAddress
	case FieldCaseSummary:
		return d.CaseSummary
	case FieldInvestigatingOfficer:
		return d.InvestigatingOfficer
	case FieldPoliceResult:
		return d.PoliceResult
	case FieldAccusedNameAddress:
		return d.AccusedNameAddress
	case FieldSeizure:
		return d.Seizure
	case FieldCasePropertyDetails:
		return d.CasePropertyDetails
	case FieldStolenProperty:
		return d.StolenProperty
	case FieldSeizedPropertyAgain:
		return d.SeizedPropertyAgain
	case FieldCourtSubmissionDate:
		return d.CourtSubmissionDate
	case FieldFslDetails:
		return d.FslDetails
	}
	return ""
}

// Set assigns value to the given field. It returns false for an unknown field.
func (d *CaseDetails) Set(id FieldID, value string) bool {
	switch id {
	case FieldCaseNumber:
		d.CaseNumber = value
	case FieldFilingDate:
		d.FilingDate = value
	case FieldSection:
		d.Section = value
	case FieldCaseStatus:
		d.CaseStatus = CaseStatus(value)
	case FieldIncidentPlace:
		d.IncidentPlace = value
	case FieldComplainantNameAddress:
		d.ComplainantNameAddress = value
	case FieldCaseSummary:
		d.CaseSummary = value
	case FieldInvestigatingOfficer:
		d.InvestigatingOfficer = value
	case FieldPoliceResult:
		d.PoliceResult = value
	case FieldAccusedNameAddress:
		d.AccusedNameAddress = value
	case FieldSeizure:
		d.Seizure = value
	case FieldCasePropertyDetails:
		d.CasePropertyDetails = value
	case FieldStolenProperty:
		d.StolenProperty = value
	case FieldSeizedPropertyAgain:
		d.SeizedPropertyAgain = value
	case FieldCourtSubmissionDate:
		d.CourtSubmissionDate = value
	case FieldFslDetails:
		d.FslDetails = value
	default:
		return false
	}
	return true
}
