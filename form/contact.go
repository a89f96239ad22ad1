package form

// Contact form field identifiers.
const (
	ContactCompany FieldID = "company"
	ContactSubject FieldID = "subject"
	ContactPhone   FieldID = "phone"
	ContactMessage FieldID = "message"
)

// contactFields lists the contact form fields in collection order. Every
// field is required; the frontend uses the internal names unchanged.
var contactFields = []Field{
	{ID: ContactCompany, External: "company", Required: true},
	{ID: ContactSubject, External: "subject", Required: true},
	{ID: ContactPhone, External: "phone", Required: true},
	{ID: ContactMessage, External: "message", Required: true},
}

// NewContactRecord creates an empty contact form record.
func NewContactRecord() *Record {
	return newRecord(KindContact, contactFields)
}
