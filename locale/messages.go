package locale

import (
	"fmt"
	"strings"

	"github.com/theaftaab/govassist/form"
)

// MessageID names a fixed bilingual message.
type MessageID string

const (
	MsgWelcome            MessageID = "welcome"
	MsgServiceIntent      MessageID = "service_intent"
	MsgContactIntro       MessageID = "contact_intro"
	MsgFellingIntro       MessageID = "felling_intro"
	MsgConfirmSubmit      MessageID = "confirm_submit"
	MsgContactSubmitted   MessageID = "contact_submitted"
	MsgFellingSubmitted   MessageID = "felling_submitted"
	MsgProvideInfoFirst   MessageID = "provide_info_first"
	MsgTransferToContact  MessageID = "transfer_contact"
	MsgTransferToFelling  MessageID = "transfer_felling"
	MsgTransferToGreeter  MessageID = "transfer_greeter"
	MsgLanguageConfirmed  MessageID = "language_confirmed"
	MsgDidNotUnderstand   MessageID = "did_not_understand"
	MsgInvalidFieldValue  MessageID = "invalid_field_value"
	MsgSomethingWentWrong MessageID = "something_went_wrong"
)

var messages = map[MessageID]prompt{
	MsgWelcome: {
		en: "Hello! Welcome to Karnataka Government services. Please select your preferred language - English or Kannada?",
		kn: "ನಮಸ್ಕಾರ! ಕರ್ನಾಟಕ ಸರ್ಕಾರದ ಸೇವೆಗಳಿಗೆ ಸ್ವಾಗತ. ದಯವಿಟ್ಟು ನಿಮ್ಮ ಭಾಷೆಯನ್ನು ಆಯ್ಕೆಮಾಡಿ - ಇಂಗ್ಲಿಷ್ ಅಥವಾ ಕನ್ನಡ?",
	},
	MsgServiceIntent: {
		en: "How can I help you today? I can assist you with: " +
			"- Contact Form for general inquiries " +
			"- Felling Transit Permission for tree cutting permits " +
			"What would you like to do?",
		kn: "ನಾನು ಇಂದು ನಿಮಗೆ ಹೇಗೆ ಸಹಾಯ ಮಾಡಬಹುದು? ನಾನು ನಿಮಗೆ ಸಹಾಯ ಮಾಡಬಲ್ಲೆ: " +
			"- ಸಾಮಾನ್ಯ ವಿಚಾರಣೆಗಳಿಗಾಗಿ ಸಂಪರ್ಕ ಫಾರ್ಮ್ " +
			"- ಮರ ಕತ್ತರಿಸುವ ಪರವಾನಗಿಗಾಗಿ ಫೆಲ್ಲಿಂಗ್ ಟ್ರಾನ್ಸಿಟ್ ಪರ್ಮಿಷನ್ " +
			"ನೀವು ಏನು ಮಾಡಲು ಬಯಸುತ್ತೀರಿ?",
	},
	MsgContactIntro: {
		en: "Hello! I'll help you fill out the contact form. What's your organization or department name?",
		kn: "ನಮಸ್ಕಾರ! ಸಂಪರ್ಕ ಫಾರ್ಮ್ ಭರ್ತಿ ಮಾಡಲು ನಾನು ಸಹಾಯ ಮಾಡುತ್ತೇನೆ. ನಿಮ್ಮ ಸಂಸ್ಥೆ ಅಥವಾ ಇಲಾಖೆಯ ಹೆಸರು ಏನು?",
	},
	MsgFellingIntro: {
		en: "Hello! I'll help you with the Tree Felling Permission form. Is the land in an urban area or a rural area?",
		kn: "ನಮಸ್ಕಾರ! ವೃಕ್ಷ ಕಡಿಯುವ ಅನುಮತಿ ಫಾರ್ಮ್‌ಗಾಗಿ ನಿಮಗೆ ಸಹಾಯ ಮಾಡುತ್ತೇನೆ. ಭೂಮಿ ನಗರ ಪ್ರದೇಶದಲ್ಲಿದೆಯೇ ಅಥವಾ ಗ್ರಾಮೀಣ ಪ್ರದೇಶದಲ್ಲಿದೆಯೇ?",
	},
	MsgConfirmSubmit: {
		en: "Thank you. Would you like to submit the form now?",
		kn: "ಧನ್ಯವಾದಗಳು. ನೀವು ಫಾರ್ಮ್ ಸಲ್ಲಿಸಲು ಬಯಸುವಿರಾ?",
	},
	MsgContactSubmitted: {
		en: "Thank you! Your message has been submitted successfully.",
		kn: "ಧನ್ಯವಾದಗಳು! ನಿಮ್ಮ ಸಂದೇಶ ಯಶಸ್ವಿಯಾಗಿ ಸಲ್ಲಿಸಲಾಗಿದೆ.",
	},
	MsgFellingSubmitted: {
		en: "Thank you! Your tree felling permission form has been submitted successfully.",
		kn: "ಧನ್ಯವಾದಗಳು! ನಿಮ್ಮ ವೃಕ್ಷ ಕಡಿಯುವ ಅನುಮತಿ ಫಾರ್ಮ್ ಯಶಸ್ವಿಯಾಗಿ ಸಲ್ಲಿಸಲಾಗಿದೆ.",
	},
	MsgProvideInfoFirst: {
		en: "Please provide all required information first.",
		kn: "ದಯವಿಟ್ಟು ಮೊದಲು ಅಗತ್ಯವಿರುವ ಎಲ್ಲಾ ಮಾಹಿತಿಯನ್ನು ಒದಗಿಸಿ.",
	},
	MsgTransferToContact: {
		en: "Transferring you to the contact form assistant.",
		kn: "ಸಂಪರ್ಕ ಫಾರ್ಮ್ ಸಹಾಯಕರಿಗೆ ವರ್ಗಾಯಿಸಲಾಗುತ್ತಿದೆ.",
	},
	MsgTransferToFelling: {
		en: "Transferring you to the felling permission assistant.",
		kn: "ಮರ ಕಡಿಯುವ ಅನುಮತಿ ಸಹಾಯಕರಿಗೆ ವರ್ಗಾಯಿಸಲಾಗುತ್ತಿದೆ.",
	},
	MsgTransferToGreeter: {
		en: "Taking you back to the main menu.",
		kn: "ಮುಖ್ಯ ಮೆನುಗೆ ಹಿಂತಿರುಗಿಸಲಾಗುತ್ತಿದೆ.",
	},
	MsgLanguageConfirmed: {
		en: "Great, we'll continue in English.",
		kn: "ಸರಿ, ನಾವು ಕನ್ನಡದಲ್ಲಿ ಮುಂದುವರಿಯೋಣ.",
	},
	MsgDidNotUnderstand: {
		en: "Sorry, I didn't understand that. Could you repeat?",
		kn: "ಕ್ಷಮಿಸಿ, ನನಗೆ ಅರ್ಥವಾಗಲಿಲ್ಲ. ದಯವಿಟ್ಟು ಪುನಃ ಹೇಳಿ.",
	},
	MsgInvalidFieldValue: {
		en: "That doesn't look right.",
		kn: "ಅದು ಸರಿ ಕಾಣುತ್ತಿಲ್ಲ.",
	},
	MsgSomethingWentWrong: {
		en: "Sorry, something went wrong. Please try again.",
		kn: "ಕ್ಷಮಿಸಿ, ಏನೋ ತಪ್ಪಾಗಿದೆ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
	},
}

// Message returns the fixed message for an ID in the given language. The
// English text is the fallback for unknown languages.
func Message(id MessageID, lang Language) string {
	p, ok := messages[id]
	if !ok {
		return ""
	}
	if lang == Kannada {
		return p.kn
	}
	return p.en
}

// Submitted returns the form-specific submission acknowledgement.
func Submitted(kind form.Kind, lang Language) string {
	if kind == form.KindFelling {
		return Message(MsgFellingSubmitted, lang)
	}
	return Message(MsgContactSubmitted, lang)
}

// Intro returns the form-specific opening line spoken when a form agent
// becomes active with a language already selected.
func Intro(kind form.Kind, lang Language) string {
	if kind == form.KindFelling {
		return Message(MsgFellingIntro, lang)
	}
	return Message(MsgContactIntro, lang)
}

// MissingInfo builds the localized listing of missing fields returned when a
// submit attempt finds the form incomplete.
func MissingInfo(missing []form.FieldID, lang Language) string {
	labels := make([]string, len(missing))
	for i, id := range missing {
		labels[i] = FieldLabel(id)
	}
	joined := strings.Join(labels, ", ")
	if lang == Kannada {
		return fmt.Sprintf("ದಯವಿಟ್ಟು ಈ ಮಾಹಿತಿಯನ್ನು ಒದಗಿಸಿ: %s", joined)
	}
	return fmt.Sprintf("Please provide the following missing information: %s", joined)
}

// InvalidValue builds the localized rejection line for a failed validation,
// followed by the field's question again.
func InvalidValue(kind form.Kind, id form.FieldID, lang Language) string {
	return Message(MsgInvalidFieldValue, lang) + " " + FieldPrompt(kind, id, lang)
}
