// Package locale holds every user-facing string in English and Kannada plus
// the text normalization helpers for speech transcripts. Agents never embed
// literals; they look prompts up here so both languages stay in sync.
package locale
