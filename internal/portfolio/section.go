package portfolio

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section identifies one of the page sections reachable from the nav bar
type Section string

const (
	SectionAbout    Section = "about"
	SectionProjects Section = "projects"
	SectionContact  Section = "contact"
)

// ErrUnknownSection is returned by ParseSection for ids outside the fixed set.
var ErrUnknownSection = errors.New("unknown section")

// Sections returns the nav sections in display order
func Sections() []Section {
	return []Section{SectionAbout, SectionProjects, SectionContact}
}

// ParseSection validates a section id coming from a request
func ParseSection(id string) (Section, error) {
	for _, s := range Sections() {
		if string(s) == id {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, id)
}

// Label is the capitalized nav label
func (s Section) Label() string {
	// Casers are stateful; one per call.
	return cases.Title(language.English).String(string(s))
}

// ID is the element id of the section's anchor
func (s Section) ID() string {
	return string(s)
}
