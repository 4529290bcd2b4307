package repository

import (
	"context"
	"testing"

	"github.com/phunguyenpt/admitpredict/pkg/student"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_FindStudentUnknownIDReturnsNilNil(t *testing.T) {
	repo := NewInMemory()
	profile, err := repo.FindStudent(context.Background(), "missing", "")
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestInMemory_FindStudentRespectsOwnership(t *testing.T) {
	repo := NewInMemory()
	repo.Seed("s1", "u1", &student.Profile{ID: "s1"})

	profile, err := repo.FindStudent(context.Background(), "s1", "u2")
	require.NoError(t, err)
	assert.Nil(t, profile)

	profile, err = repo.FindStudent(context.Background(), "s1", "u1")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "s1", profile.ID)
}

func TestInMemory_FindStudentUnownedAllowsAnyCaller(t *testing.T) {
	repo := NewInMemory()
	repo.Seed("s1", "", &student.Profile{ID: "s1"})

	profile, err := repo.FindStudent(context.Background(), "s1", "anyone")
	require.NoError(t, err)
	require.NotNil(t, profile)
}

func TestInMemory_FindActiveFiles(t *testing.T) {
	repo := NewInMemory()
	files := []student.TranscriptFile{{FileName: "grade10.pdf"}}
	repo.SeedFiles("s1", files)

	got, err := repo.FindActiveFiles(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, files, got)
}
