package locale

import "github.com/theaftaab/govassist/form"

// prompt is one bilingual question asked while collecting a field.
type prompt struct {
	en string
	kn string
}

// fellingPrompts maps each felling form field to the question that collects
// it. The wording matches the forest department's counter script.
var fellingPrompts = map[form.FieldID]prompt{
	form.FellingInAreaType: {
		en: "Is the land in an urban area or a rural area?",
		kn: "ಭೂಮಿ ನಗರ ಪ್ರದೇಶದಲ್ಲಿದೆಯೇ ಅಥವಾ ಗ್ರಾಮೀಣ ಪ್ರದೇಶದಲ್ಲಿದೆಯೇ?",
	},
	form.FellingDistrict: {
		en: "Which district is the land located in?",
		kn: "ನಿಮ್ಮ ಜಿಲ್ಲೆ ಯಾವುದು?",
	},
	form.FellingTaluk: {
		en: "Which taluk?",
		kn: "ನಿಮ್ಮ ತಾಲೂಕು ಯಾವುದು?",
	},
	form.FellingVillage: {
		en: "What is the village name?",
		kn: "ನಿಮ್ಮ ಗ್ರಾಮದ ಹೆಸರು ಏನು?",
	},
	form.FellingKhataNumber: {
		en: "What is the Khata number?",
		kn: "ಖಾತೆ ಸಂಖ್ಯೆ ಏನು?",
	},
	form.FellingSurveyNumber: {
		en: "What is the survey number?",
		kn: "ಸರ್ವೇ ಸಂಖ್ಯೆ ಏನು?",
	},
	form.FellingTotalExtentAcres: {
		en: "What is the total extent in acres?",
		kn: "ಒಟ್ಟು ಎಕರೆ ಎಷ್ಟು?",
	},
	form.FellingGuntas: {
		en: "How many guntas?",
		kn: "ಗುಂಟೆ ಎಷ್ಟು?",
	},
	form.FellingAnna: {
		en: "How many annas?",
		kn: "ಅಣ್ಣಾ ಎಷ್ಟು?",
	},
	form.FellingApplicantType: {
		en: "What is the applicant type (individual, entity or GPA holder)?",
		kn: "ಅರ್ಜಿದಾರರ ಪ್ರಕಾರ ಏನು?",
	},
	form.FellingApplicantName: {
		en: "What is your full name?",
		kn: "ನಿಮ್ಮ ಪೂರ್ಣ ಹೆಸರು ಏನು?",
	},
	form.FellingFatherName: {
		en: "What is your father's name?",
		kn: "ನಿಮ್ಮ ತಂದೆಯ ಹೆಸರು ಏನು?",
	},
	form.FellingAddress: {
		en: "What is your address?",
		kn: "ನಿಮ್ಮ ವಿಳಾಸ ಏನು?",
	},
	form.FellingApplicantDistrict: {
		en: "Which is your applicant district?",
		kn: "ಅರ್ಜಿದಾರರ ಜಿಲ್ಲೆ ಯಾವುದು?",
	},
	form.FellingApplicantTaluk: {
		en: "Which is your applicant taluk?",
		kn: "ಅರ್ಜಿದಾರರ ತಾಲೂಕು ಯಾವುದು?",
	},
	form.FellingPincode: {
		en: "What is your pincode?",
		kn: "ಪಿನ್‌ ಕೋಡ್ ಏನು?",
	},
	form.FellingMobileNumber: {
		en: "What is your mobile number?",
		kn: "ನಿಮ್ಮ ಮೊಬೈಲ್ ಸಂಖ್ಯೆ ಏನು?",
	},
	form.FellingEmailID: {
		en: "What is your email ID?",
		kn: "ನಿಮ್ಮ ಇಮೇಲ್ ಐಡಿ ಏನು?",
	},
	form.FellingTreeSpecies: {
		en: "What tree species do you want to fell?",
		kn: "ಯಾವ ಮರವನ್ನು ಕಡಿಯಲು ಬಯಸುತ್ತೀರಿ?",
	},
	form.FellingTreeAge: {
		en: "What is the age of the tree?",
		kn: "ಮರದ ವಯಸ್ಸು ಎಷ್ಟು?",
	},
	form.FellingTreeGirth: {
		en: "What is the girth of the tree in cm?",
		kn: "ಮರದ ಸುತ್ತಳತೆ ಎಷ್ಟು ಸೆಂ.ಮೀ.?",
	},
	form.FellingEast: {
		en: "What is on the east boundary?",
		kn: "ಭೂಮಿಯ ಪೂರ್ವ ಗಡಿ ಏನು?",
	},
	form.FellingWest: {
		en: "What is on the west boundary?",
		kn: "ಪಶ್ಚಿಮ ಗಡಿ ಏನು?",
	},
	form.FellingNorth: {
		en: "What is on the north boundary?",
		kn: "ಉತ್ತರ ಗಡಿ ಏನು?",
	},
	form.FellingSouth: {
		en: "What is on the south boundary?",
		kn: "ದಕ್ಷಿಣ ಗಡಿ ಏನು?",
	},
	form.FellingPurposeOfFelling: {
		en: "What is the purpose of felling?",
		kn: "ಮರವನ್ನು ಕಡಿಯುವ ಉದ್ದೇಶ ಏನು?",
	},
	form.FellingBoundaryDemarcated: {
		en: "Is the boundary demarcated?",
		kn: "ಭೂಮಿಯ ಗಡಿ ಗುರುತು ಮಾಡಿದ್ದೀರಾ?",
	},
	form.FellingTreeReservedToGov: {
		en: "Is the tree reserved to government?",
		kn: "ಮರ ಸರ್ಕಾರಕ್ಕೆ ಮೀಸಲಾಗಿದೆಯೇ?",
	},
	form.FellingUnconditionalConsent: {
		en: "Is unconditional consent given?",
		kn: "ನಿರ್ವಿಘ್ನ ಅನುಮತಿ ಇದೆಯೇ?",
	},
	form.FellingLicenseEnclosed: {
		en: "Is license enclosed?",
		kn: "ಪರವಾನಗಿ ಲಗತ್ತಿಸಿದ್ದೀರಾ?",
	},
	form.FellingAgreeTerms: {
		en: "Do you agree to the terms and conditions?",
		kn: "ನೀವು ನಿಯಮ ಮತ್ತು ಷರತ್ತುಗಳನ್ನು ಒಪ್ಪುತ್ತೀರಾ?",
	},
}

// contactPrompts maps each contact form field to its collecting question.
var contactPrompts = map[form.FieldID]prompt{
	form.ContactCompany: {
		en: "What's your organization or department name?",
		kn: "ನಿಮ್ಮ ಸಂಸ್ಥೆ ಅಥವಾ ಇಲಾಖೆಯ ಹೆಸರು ಏನು?",
	},
	form.ContactSubject: {
		en: "What's the subject of your inquiry?",
		kn: "ವಿಷಯ ಏನು?",
	},
	form.ContactPhone: {
		en: "What's your phone number?",
		kn: "ನಿಮ್ಮ ಫೋನ್ ಸಂಖ್ಯೆ ಏನು?",
	},
	form.ContactMessage: {
		en: "Please tell me your message or inquiry details.",
		kn: "ದಯವಿಟ್ಟು ನಿಮ್ಮ ಸಂದೇಶವನ್ನು ಹೇಳಿ.",
	},
}

// FieldPrompt returns the question for a field of the given form kind in the
// given language. Unknown fields return an empty string.
func FieldPrompt(kind form.Kind, id form.FieldID, lang Language) string {
	var table map[form.FieldID]prompt
	switch kind {
	case form.KindContact:
		table = contactPrompts
	case form.KindFelling:
		table = fellingPrompts
	default:
		return ""
	}
	p, ok := table[id]
	if !ok {
		return ""
	}
	if lang == Kannada {
		return p.kn
	}
	return p.en
}

// FieldLabel returns a short human-readable name for a field, used when
// listing missing information. Labels are derived from the field ID.
func FieldLabel(id form.FieldID) string {
	out := make([]byte, 0, len(id))
	for i := 0; i < len(id); i++ {
		if id[i] == '_' {
			out = append(out, ' ')
			continue
		}
		out = append(out, id[i])
	}
	return string(out)
}
