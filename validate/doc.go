// Package validate checks user-supplied answers before they are written to a
// form record. Dropdown fields are validated against the option lists the
// frontend renders; free-text fields with a known shape (phone numbers,
// pincodes, email addresses) get format checks. District names additionally
// resolve against a bilingual lookup table so spoken Kannada input maps to
// the canonical English option.
package validate
