package form

// Felling form field identifiers, grouped by section as on the frontend form.
const (
	// Section 1: location details
	FellingInAreaType       FieldID = "in_area_type"
	FellingDistrict         FieldID = "district"
	FellingTaluk            FieldID = "taluk"
	FellingVillage          FieldID = "village"
	FellingKhataNumber      FieldID = "khata_number"
	FellingSurveyNumber     FieldID = "survey_number"
	FellingTotalExtentAcres FieldID = "total_extent_acres"
	FellingGuntas           FieldID = "guntas"
	FellingAnna             FieldID = "anna"

	// Section 2: applicant details
	FellingApplicantType     FieldID = "applicant_type"
	FellingApplicantName     FieldID = "applicant_name"
	FellingFatherName        FieldID = "father_name"
	FellingAddress           FieldID = "address"
	FellingApplicantDistrict FieldID = "applicant_district"
	FellingApplicantTaluk    FieldID = "applicant_taluk"
	FellingPincode           FieldID = "pincode"
	FellingMobileNumber      FieldID = "mobile_number"
	FellingEmailID           FieldID = "email_id"

	// Section 3: tree details
	FellingTreeSpecies FieldID = "tree_species"
	FellingTreeAge     FieldID = "tree_age"
	FellingTreeGirth   FieldID = "tree_girth"

	// Section 4: site boundary details
	FellingEast  FieldID = "east"
	FellingWest  FieldID = "west"
	FellingNorth FieldID = "north"
	FellingSouth FieldID = "south"

	// Section 5: other details
	FellingPurposeOfFelling     FieldID = "purpose_of_felling"
	FellingBoundaryDemarcated   FieldID = "boundary_demarcated"
	FellingTreeReservedToGov    FieldID = "tree_reserved_to_gov"
	FellingUnconditionalConsent FieldID = "unconditional_consent"
	FellingLicenseEnclosed      FieldID = "license_enclosed"

	// Terms acceptance, asked last.
	FellingAgreeTerms FieldID = "agree_terms"
)

// fellingFields lists the felling form fields in collection order. The
// external keys match the frontend's TreeFellingFormData interface
// (camelCase). The final dropdown answers of section 5 are captured but not
// required for completeness; agree_terms is the single required flag.
var fellingFields = []Field{
	{ID: FellingInAreaType, External: "inAreaType", Required: true},
	{ID: FellingDistrict, External: "district", Required: true},
	{ID: FellingTaluk, External: "taluk", Required: true},
	{ID: FellingVillage, External: "village", Required: true},
	{ID: FellingKhataNumber, External: "khataNumber", Required: true},
	{ID: FellingSurveyNumber, External: "surveyNumber", Required: true},
	{ID: FellingTotalExtentAcres, External: "totalExtentAcres", Required: true},
	{ID: FellingGuntas, External: "guntas", Required: true},
	{ID: FellingAnna, External: "anna", Required: true},
	{ID: FellingApplicantType, External: "applicantType", Required: true},
	{ID: FellingApplicantName, External: "applicantName", Required: true},
	{ID: FellingFatherName, External: "fatherName", Required: true},
	{ID: FellingAddress, External: "address", Required: true},
	{ID: FellingApplicantDistrict, External: "applicantDistrict", Required: true},
	{ID: FellingApplicantTaluk, External: "applicantTaluk", Required: true},
	{ID: FellingPincode, External: "pincode", Required: true},
	{ID: FellingMobileNumber, External: "mobileNumber", Required: true},
	{ID: FellingEmailID, External: "emailId"},
	{ID: FellingTreeSpecies, External: "treeSpecies", Required: true},
	{ID: FellingTreeAge, External: "treeAge", Required: true},
	{ID: FellingTreeGirth, External: "treeGirth", Required: true},
	{ID: FellingEast, External: "east", Required: true},
	{ID: FellingWest, External: "west", Required: true},
	{ID: FellingNorth, External: "north", Required: true},
	{ID: FellingSouth, External: "south", Required: true},
	{ID: FellingPurposeOfFelling, External: "purposeOfFelling", Required: true},
	{ID: FellingBoundaryDemarcated, External: "boundaryDemarcated"},
	{ID: FellingTreeReservedToGov, External: "treeReservedToGov"},
	{ID: FellingUnconditionalConsent, External: "unconditionalConsent"},
	{ID: FellingLicenseEnclosed, External: "licenseEnclosed"},
	{ID: FellingAgreeTerms, External: "agreeTerms", Required: true, Flag: true},
}

// NewFellingRecord creates an empty tree felling permission form record.
func NewFellingRecord() *Record {
	return newRecord(KindFelling, fellingFields)
}
