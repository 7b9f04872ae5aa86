package candidates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoListActiveByTenant(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "full_name", "profile", "active", "created_at", "updated_at"}).
		AddRow("cand-1", "tenant-1", "Ana Benitez", []byte(`{"formationScore":90}`), true, now, now).
		AddRow("cand-2", "tenant-1", "Bruno Diaz", []byte(`{}`), true, now, now)

	mock.ExpectQuery("SELECT (.+) FROM candidates").
		WithArgs("tenant-1").
		WillReturnRows(rows)

	list, err := repo.ListActiveByTenant(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("ListActiveByTenant: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].FullName != "Ana Benitez" {
		t.Fatalf("first candidate = %+v", list[0])
	}
	if string(list[0].Profile) != `{"formationScore":90}` {
		t.Fatalf("profile = %s", list[0].Profile)
	}
}

func TestPGRepoUpdateProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	profile := []byte(`{"skillsMatch":90}`)

	rows := sqlmock.NewRows([]string{"id", "tenant_id", "full_name", "profile", "active", "created_at", "updated_at"}).
		AddRow("cand-1", "tenant-1", "Ana Benitez", profile, true, now, now)

	mock.ExpectQuery("UPDATE candidates").
		WithArgs("tenant-1", "cand-1", profile).
		WillReturnRows(rows)

	candidate, err := repo.UpdateProfile(context.Background(), "tenant-1", "cand-1", profile)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if string(candidate.Profile) != string(profile) {
		t.Fatalf("profile = %s", candidate.Profile)
	}
}

func TestPGRepoUpdateProfileNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("UPDATE candidates").
		WithArgs("tenant-1", "cand-gone", []byte(`{}`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "full_name", "profile", "active", "created_at", "updated_at"}))

	_, err = repo.UpdateProfile(context.Background(), "tenant-1", "cand-gone", []byte(`{}`))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoGetActiveByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM candidates").
		WithArgs("tenant-1", "cand-missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "full_name", "profile", "active", "created_at", "updated_at"}))

	_, err = repo.GetActiveByID(context.Background(), "tenant-1", "cand-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
