package repository

import (
	"context"

	"github.com/phunguyenpt/admitpredict/pkg/student"
)

// record pairs a stored profile with its owning user, mirroring the
// "identity (studentId, userId|null)" lookup key (spec §4.9 step 1).
type record struct {
	profile *student.Profile
	userID  string
}

// InMemory is a fixed-data Repository, analogous to the teacher's blank
// test generator: a dependency stand-in with no network or disk I/O,
// letting the CLI and tests exercise the engine without a real student
// data store.
type InMemory struct {
	students map[string]record
	files    map[string][]student.TranscriptFile
}

// NewInMemory builds an empty in-memory repository.
func NewInMemory() *InMemory {
	return &InMemory{
		students: make(map[string]record),
		files:    make(map[string][]student.TranscriptFile),
	}
}

// Seed registers a profile under studentID, owned by userID (empty for
// unowned). Test and demo callers use this to populate the store.
func (m *InMemory) Seed(studentID, userID string, profile *student.Profile) {
	m.students[studentID] = record{profile: profile, userID: userID}
}

// SeedFiles registers studentID's active transcript files.
func (m *InMemory) SeedFiles(studentID string, files []student.TranscriptFile) {
	m.files[studentID] = files
}

func (m *InMemory) FindStudent(_ context.Context, studentID, userID string) (*student.Profile, error) {
	rec, ok := m.students[studentID]
	if !ok {
		return nil, nil
	}
	if userID != "" && rec.userID != "" && rec.userID != userID {
		return nil, nil
	}
	return rec.profile, nil
}

func (m *InMemory) FindActiveFiles(_ context.Context, studentID string) ([]student.TranscriptFile, error) {
	return m.files[studentID], nil
}
