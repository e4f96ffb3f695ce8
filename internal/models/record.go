package models

import (
	"fmt"
	"strings"
)

const (
	// FieldSeparator joins the record fields on disk. It is never escaped.
	FieldSeparator = ";"

	// FieldCount is the number of fields a well-formed line carries.
	FieldCount = 5

	// DateLayout renders dates of birth as ISO local dates.
	DateLayout = "2006-01-02"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Genders lists the choices offered by the gender radio group.
var Genders = []string{GenderMale, GenderFemale}

// Provinces lists the choices offered by the province selector.
var Provinces = []string{
	"Punjab",
	"Sindh",
	"Khyber Pakhtunkhwa",
	"Balochistan",
	"Islamabad",
	"Azad Kashmir",
	"Gilgit-Baltistan",
}

// Record is a single person entry. ID is the store key; every other field
// may be empty.
type Record struct {
	FullName    string
	ID          string
	Gender      string
	Province    string
	DateOfBirth string
}

// Line serializes the record in fullName;id;gender;province;dateOfBirth order.
// A field containing the separator or a newline corrupts the line.
func (r Record) Line() string {
	return strings.Join(r.fields(), FieldSeparator)
}

// Summary renders the record the way a successful lookup presents it.
func (r Record) Summary() string {
	return fmt.Sprintf("Full Name: %s\nID: %s\nGender: %s\nProvince: %s\nDate of Birth: %s",
		r.FullName, r.ID, r.Gender, r.Province, r.DateOfBirth)
}

func (r Record) fields() []string {
	return []string{r.FullName, r.ID, r.Gender, r.Province, r.DateOfBirth}
}

// ParseLine decodes a persisted line. It reports false unless the line splits
// into exactly FieldCount parts; empty parts are kept.
func ParseLine(line string) (Record, bool) {
	parts := strings.Split(line, FieldSeparator)
	if len(parts) != FieldCount {
		return Record{}, false
	}
	return fromParts(parts), true
}

// FromLine decodes a line positionally without checking the field count.
// Missing trailing fields come back empty and surplus parts are ignored.
func FromLine(line string) Record {
	return fromParts(strings.Split(line, FieldSeparator))
}

func fromParts(parts []string) Record {
	at := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}
	return Record{
		FullName:    at(0),
		ID:          at(1),
		Gender:      at(2),
		Province:    at(3),
		DateOfBirth: at(4),
	}
}
