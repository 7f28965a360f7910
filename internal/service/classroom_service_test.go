package service

import (
	"context"
	"errors"
	"testing"

	"classroom-service/internal/models"
)

func newClassroomFixture(t *testing.T) (*ClassroomService, *models.Classroom) {
	t.Helper()
	store := newFakeClassroomStore()
	svc := NewClassroomService(store, testBaseURL)

	classroom, err := svc.Create(context.Background(), "instructor-1", models.ClassroomInfo{
		Code: "SC310006",
		Name: "Systems",
		Room: "IT-301",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return svc, classroom
}

func TestGetOwnedRejectsNonOwner(t *testing.T) {
	svc, classroom := newClassroomFixture(t)
	ctx := context.Background()

	got, err := svc.GetOwned(ctx, classroom.ID, "instructor-1")
	if err != nil {
		t.Fatalf("owner GetOwned: %v", err)
	}
	if got.ID != classroom.ID {
		t.Errorf("owner got %q, want %q", got.ID, classroom.ID)
	}

	if _, err := svc.GetOwned(ctx, classroom.ID, "instructor-2"); !errors.Is(err, ErrNotOwner) {
		t.Errorf("non-owner GetOwned error = %v, want ErrNotOwner", err)
	}
}

func TestGetOwnedUnknownClassroom(t *testing.T) {
	svc, _ := newClassroomFixture(t)
	if _, err := svc.GetOwned(context.Background(), "missing", "instructor-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetOwned error = %v, want ErrNotFound", err)
	}
}

func TestUpdateInfoOwnerOnly(t *testing.T) {
	svc, classroom := newClassroomFixture(t)
	info := models.ClassroomInfo{Code: "SC310006", Name: "Systems II"}
	if _, err := svc.UpdateInfo(context.Background(), classroom.ID, "instructor-2", info); !errors.Is(err, ErrNotOwner) {
		t.Errorf("UpdateInfo error = %v, want ErrNotOwner", err)
	}
}
