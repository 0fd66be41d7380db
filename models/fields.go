package models

// FieldID identifies one field of a case record. Values match the JSON keys of
// CaseDetails and the form input names.
type FieldID string

// Field identifiers
const (
	FieldCaseNumber             FieldID = "caseNumber"
	FieldFilingDate             FieldID = "filingDate"
	FieldSection                FieldID = "section"
	FieldCaseStatus             FieldID = "caseStatus"
	FieldIncidentPlace          FieldID = "incidentPlace"
	FieldComplainantNameAddress FieldID = "complainantNameAddress"
	FieldCaseSummary            FieldID = "caseSummary"
	FieldInvestigatingOfficer   FieldID = "investigatingOfficer"
	FieldPoliceResult           FieldID = "policeResult"
	FieldAccusedNameAddress     FieldID = "accusedNameAddress"
	FieldSeizure                FieldID = "seizure"
	FieldCasePropertyDetails    FieldID = "casePropertyDetails"
	FieldStolenProperty         FieldID = "stolenProperty"
	FieldSeizedPropertyAgain    FieldID = "seizedPropertyAgain"
	FieldCourtSubmissionDate    FieldID = "courtSubmissionDate"
	FieldFslDetails             FieldID = "fslDetails"
)

// InputKind is the form control used to edit a field
type InputKind string

// Input kinds
const (
	InputText     InputKind = "text"
	InputDate     InputKind = "date"
	InputSelect   InputKind = "select"
	InputTextarea InputKind = "textarea"
)

// Form group titles
const (
	GroupBasic    = "मूलभूत जानकारी"
	GroupPersonal = "व्यक्तिगत विवरण"
	GroupCase     = "प्रकरण का विवरण"
	GroupOfficial = "आधिकारिक कार्यवाही"
)

// FieldDescriptor carries the metadata of one field. The same table drives form
// rendering, validation and the spreadsheet export.
type FieldDescriptor struct {
	ID       FieldID
	Label    string
	Kind     InputKind
	Required bool
	ColSpan  int // 1 or 2 grid columns
	Rows     int // textarea height, 0 for other kinds
	Group    string
}

// FieldGroup is a titled set of fields rendered as one fieldset
type FieldGroup struct {
	Title  string
	Fields []FieldDescriptor
}

// Fields lists every case field in form order
var Fields = []FieldDescriptor{
	{ID: FieldCaseNumber, Label: "प्रकरण संख्या", Kind: InputText, Required: true, ColSpan: 1, Group: GroupBasic},
	{ID: FieldFilingDate, Label: "दर्ज दिनांक", Kind: InputDate, Required: true, ColSpan: 1, Group: GroupBasic},
	{ID: FieldSection, Label: "धारा", Kind: InputText, Required: true, ColSpan: 1, Group: GroupBasic},
	{ID: FieldCaseStatus, Label: "प्रकरण स्थिति", Kind: InputSelect, Required: true, ColSpan: 1, Group: GroupBasic},
	{ID: FieldIncidentPlace, Label: "घटना स्थल", Kind: InputText, ColSpan: 2, Group: GroupBasic},

	{ID: FieldComplainantNameAddress, Label: "परिवादी का नाम व पता", Kind: InputTextarea, ColSpan: 2, Rows: 3, Group: GroupPersonal},
	{ID: FieldAccusedNameAddress, Label: "अपराधी का नाम व पता", Kind: InputTextarea, ColSpan: 2, Rows: 3, Group: GroupPersonal},
	{ID: FieldInvestigatingOfficer, Label: "अनुसंधान अधिकारी का नाम", Kind: InputText, ColSpan: 2, Group: GroupPersonal},

	{ID: FieldCaseSummary, Label: "प्रकरण का संक्षिप्त विवरण", Kind: InputTextarea, ColSpan: 2, Rows: 4, Group: GroupCase},
	{ID: FieldCasePropertyDetails, Label: "प्रकरण से संबंधित माल का विवरण", Kind: InputTextarea, ColSpan: 2, Rows: 3, Group: GroupCase},
	{ID: FieldSeizure, Label: "जब्ती", Kind: InputTextarea, ColSpan: 1, Rows: 3, Group: GroupCase},
	{ID: FieldStolenProperty, Label: "मालमसरूखा", Kind: InputTextarea, ColSpan: 1, Rows: 3, Group: GroupCase},
	{ID: FieldSeizedPropertyAgain, Label: "माल व्याजाप्ता", Kind: InputTextarea, ColSpan: 2, Rows: 3, Group: GroupCase},

	{ID: FieldPoliceResult, Label: "पुलिस नतिजा चालान/एफआर नम्बर व दिनांक", Kind: InputText, ColSpan: 1, Group: GroupOfficial},
	{ID: FieldCourtSubmissionDate, Label: "कोर्ट में चालान व एफआर पेश करने की दिनांक", Kind: InputDate, ColSpan: 1, Group: GroupOfficial},
	{ID: FieldFslDetails, Label: "एफएसएल का विवरण", Kind: InputTextarea, ColSpan: 2, Rows: 3, Group: GroupOfficial},
}

// ExportColumns is the fixed column order of the spreadsheet export
var ExportColumns = []FieldID{
	FieldCaseNumber,
	FieldCaseStatus,
	FieldFilingDate,
	FieldSection,
	FieldIncidentPlace,
	FieldComplainantNameAddress,
	FieldCaseSummary,
	FieldInvestigatingOfficer,
	FieldPoliceResult,
	FieldAccusedNameAddress,
	FieldSeizure,
	FieldCasePropertyDetails,
	FieldStolenProperty,
	FieldSeizedPropertyAgain,
	FieldCourtSubmissionDate,
	FieldFslDetails,
}

// Descriptor returns the descriptor for id
func Descriptor(id FieldID) (FieldDescriptor, bool) {
	for _, f := range Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// FieldGroups returns the form groups in display order
func FieldGroups() []FieldGroup {
	var groups []FieldGroup
	for _, f := range Fields {
		if n := len(groups); n > 0 && groups[n-1].Title == f.Group {
			groups[n-1].Fields = append(groups[n-1].Fields, f)
			continue
		}
		groups = append(groups, FieldGroup{Title: f.Group, Fields: []FieldDescriptor{f}})
	}
	return groups
}
