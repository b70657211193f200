package books

import (
	"context"
	"errors"
	"testing"

	"github.com/obradorhq/obrador/internal/domain/models"
	"github.com/obradorhq/obrador/internal/repository/mongodb"
)

type fakeRepo struct {
	books    map[string]*models.Book
	patches  []models.Patch
	patchErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{books: make(map[string]*models.Book)}
}

func (f *fakeRepo) Load(_ context.Context, userID string) (*models.Book, error) {
	book, ok := f.books[userID]
	if !ok {
		return nil, mongodb.ErrBookNotFound
	}
	return book.Clone(), nil
}

func (f *fakeRepo) Create(_ context.Context, book *models.Book) error {
	f.books[book.UserID] = book.Clone()
	return nil
}

func (f *fakeRepo) Patch(_ context.Context, _ string, patch models.Patch) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	f.patches = append(f.patches, patch)
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]models.Book, error) {
	out := make([]models.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, *b.Clone())
	}
	return out, nil
}

func TestBookBootstrapsOnFirstAccess(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	book, err := svc.Book(context.Background(), "ana")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if book.UserID != "ana" {
		t.Fatalf("unexpected book %+v", book)
	}
	if _, ok := repo.books["ana"]; !ok {
		t.Fatal("expected full-document create on first access")
	}
}

func TestApplyCommitsPatchThenSwapsSnapshot(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	_, err := svc.Apply(context.Background(), "ana", func(book *models.Book) (models.Patch, error) {
		book.Suppliers = append(book.Suppliers, "Molinos SA")
		return book.PatchOf(models.FieldSuppliers), nil
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if len(repo.patches) != 1 {
		t.Fatalf("expected one patch write, got %d", len(repo.patches))
	}

	book, err := svc.Book(context.Background(), "ana")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if len(book.Suppliers) != 1 {
		t.Fatalf("expected cached snapshot updated, got %+v", book.Suppliers)
	}
}

func TestApplyRejectedWriteKeepsSnapshot(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	if _, err := svc.Book(context.Background(), "ana"); err != nil {
		t.Fatalf("book: %v", err)
	}

	repo.patchErr = errors.New("write rejected")
	_, err := svc.Apply(context.Background(), "ana", func(book *models.Book) (models.Patch, error) {
		book.Suppliers = append(book.Suppliers, "Molinos SA")
		return book.PatchOf(models.FieldSuppliers), nil
	})
	if err == nil {
		t.Fatal("expected error from rejected write")
	}

	book, err := svc.Book(context.Background(), "ana")
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if len(book.Suppliers) != 0 {
		t.Fatal("cached snapshot must not move ahead of the store")
	}
}

func TestApplyOperationErrorLeavesEverythingUntouched(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	opErr := errors.New("validation failed")
	if _, err := svc.Apply(context.Background(), "ana", func(*models.Book) (models.Patch, error) {
		return nil, opErr
	}); !errors.Is(err, opErr) {
		t.Fatalf("expected op error back, got %v", err)
	}
	if len(repo.patches) != 0 {
		t.Fatal("no patch may be written for a failed operation")
	}
}
