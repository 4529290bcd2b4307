// Package repository defines the read-only profile lookup the engine
// depends on (spec §6 "Data repository interface (consumed)"). The
// engine never persists; this is purely an inbound dependency the
// pipeline orchestrator calls once per invocation.
package repository

import (
	"context"

	"github.com/phunguyenpt/admitpredict/pkg/student"
)

// Repository resolves a student profile and its active transcript
// files by identity. Implementations own no mutable engine state.
type Repository interface {
	// FindStudent resolves (studentID, userID) to a profile. userID may
	// be empty, meaning "no ownership scoping." Absence is reported via
	// a (nil, nil) return — callers turn that into perr.NotFound.
	FindStudent(ctx context.Context, studentID, userID string) (*student.Profile, error)

	// FindActiveFiles returns the active transcript files uploaded for
	// studentID, OCR results included where available.
	FindActiveFiles(ctx context.Context, studentID string) ([]student.TranscriptFile, error)
}
