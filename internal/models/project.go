package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Project represents a portfolio project as served by the projects API
type Project struct {
	ID          ProjectID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tech        []string  `json:"tech,omitempty"`
	GitHub      string    `json:"github"`
	Demo        string    `json:"demo"`
}

// ProjectID is an opaque identifier. The API may send it as a number or a
// string, and it is written back in the same form.
type ProjectID struct {
	value   string
	numeric bool
}

// NewProjectID returns a string id
func NewProjectID(s string) ProjectID {
	return ProjectID{value: s}
}

// NumericProjectID returns an id that encodes as a JSON number
func NumericProjectID(n int64) ProjectID {
	return ProjectID{value: strconv.FormatInt(n, 10), numeric: true}
}

func (id ProjectID) String() string {
	return id.value
}

// Numeric reports whether the id was a JSON number
func (id ProjectID) Numeric() bool {
	return id.numeric
}

// UnmarshalJSON accepts JSON strings and numbers
func (id *ProjectID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ProjectID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = NewProjectID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("project id: %w", err)
	}
	*id = ProjectID{value: n.String(), numeric: true}
	return nil
}

// MarshalJSON writes the id in the form it was decoded from
func (id ProjectID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// ProjectList is an ordered, never-absent list of projects.
// The zero value is the empty list.
type ProjectList struct {
	items []Project
}

// NewProjectList copies the given projects into a list
func NewProjectList(projects ...Project) ProjectList {
	if len(projects) == 0 {
		return ProjectList{}
	}
	items := make([]Project, len(projects))
	copy(items, projects)
	return ProjectList{items: items}
}

// Len returns the number of projects
func (l ProjectList) Len() int {
	return len(l.items)
}

// Empty reports whether the list holds no projects
func (l ProjectList) Empty() bool {
	return len(l.items) == 0
}

// All returns a copy of the projects in order. Never nil.
func (l ProjectList) All() []Project {
	out := make([]Project, len(l.items))
	copy(out, l.items)
	return out
}

// UnmarshalJSON decodes a JSON array; null decodes to the empty list
func (l *ProjectList) UnmarshalJSON(data []byte) error {
	var items []Project
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = NewProjectList(items...)
	return nil
}

// MarshalJSON always writes an array, never null
func (l ProjectList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.All())
}

// Envelope is the response body of GET /api/projects
type Envelope struct {
	Success bool        `json:"success"`
	Data    ProjectList `json:"data"`
}
