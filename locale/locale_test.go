package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theaftaab/govassist/form"
)

func TestParseLanguage(t *testing.T) {
	for in, want := range map[string]Language{
		"english": English,
		"English": English,
		"  EN ":   English,
		"kannada": Kannada,
		"ಕನ್ನಡ":    Kannada,
		"kn":      Kannada,
	} {
		got, err := ParseLanguage(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseLanguage("hindi")
	assert.ErrorIs(t, err, ErrInvalidLanguage)

	_, err = ParseLanguage("")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestFieldPrompt_BothLanguagesCoverAllFields(t *testing.T) {
	for _, rec := range []*form.Record{form.NewContactRecord(), form.NewFellingRecord()} {
		for _, f := range rec.Fields() {
			en := FieldPrompt(rec.Kind(), f.ID, English)
			kn := FieldPrompt(rec.Kind(), f.ID, Kannada)
			assert.NotEmpty(t, en, "%s/%s english", rec.Kind(), f.ID)
			assert.NotEmpty(t, kn, "%s/%s kannada", rec.Kind(), f.ID)
			assert.NotEqual(t, en, kn, "%s/%s", rec.Kind(), f.ID)
		}
	}
}

func TestFieldPrompt_UnknownField(t *testing.T) {
	assert.Empty(t, FieldPrompt(form.KindContact, "district", English))
	assert.Empty(t, FieldPrompt("other", form.ContactPhone, English))
}

func TestMessage(t *testing.T) {
	assert.Contains(t, Message(MsgWelcome, English), "English or Kannada")
	assert.Contains(t, Message(MsgConfirmSubmit, Kannada), "ಧನ್ಯವಾದಗಳು")
	assert.NotEmpty(t, Message(MsgServiceIntent, Kannada))
	assert.Empty(t, Message("nope", English))
}

func TestMissingInfo(t *testing.T) {
	missing := []form.FieldID{form.FellingKhataNumber, form.FellingAgreeTerms}
	en := MissingInfo(missing, English)
	assert.Equal(t, "Please provide the following missing information: khata number, agree terms", en)

	kn := MissingInfo(missing, Kannada)
	assert.Contains(t, kn, "khata number, agree terms")
	assert.Contains(t, kn, "ದಯವಿಟ್ಟು")
}

func TestSubmittedAndIntro(t *testing.T) {
	assert.Contains(t, Submitted(form.KindContact, English), "message has been submitted")
	assert.Contains(t, Submitted(form.KindFelling, English), "tree felling permission")
	assert.Contains(t, Intro(form.KindContact, English), "contact form")
	assert.Contains(t, Intro(form.KindFelling, Kannada), "ನಮಸ್ಕಾರ")
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a \n b\t\tc  "))
	assert.Equal(t, "", CleanText("   "))
}

func TestNormalizeText(t *testing.T) {
	// English drops non-ASCII runes entirely.
	assert.Equal(t, "Aftaab Hussain", NormalizeText("Aftaab Hussain", English))
	assert.Equal(t, "", NormalizeText("ಅಫ್ತಾಬ್", English))
	assert.Equal(t, "Ravi", NormalizeText("Ravi ಕುಮಾರ್", English))

	// Kannada keeps Kannada script and ASCII identifiers.
	assert.Equal(t, "ಮೈಸೂರು", NormalizeText("ಮೈಸೂರು", Kannada))
	assert.Equal(t, "ravi@example.com", NormalizeText("ravi@example.com", Kannada))
	// Arabic script input is dropped either way.
	assert.Equal(t, "", NormalizeText("آفتاب", Kannada))
}
