package store

import (
	"context"
	"errors"

	"github.com/mergington/school-gobackend/internal/models"
)

var (
	// ErrInvalidID means the identifier is not syntactically valid for
	// the underlying store (for Mongo, not a 24-char ObjectID hex).
	ErrInvalidID = errors.New("invalid document id")
	// ErrNotFound means a well-formed identifier matched no document.
	ErrNotFound = errors.New("document not found")
)

// AnnouncementStore is the persistence capability the announcement
// service depends on. The Mongo implementation backs production; the
// memory implementation substitutes for it in tests.
type AnnouncementStore interface {
	// FindActive returns announcements whose expiration_date is >= now,
	// in the store's natural order. Start-date filtering happens in the
	// service, not here.
	FindActive(ctx context.Context, now string) ([]models.Announcement, error)
	// FindAllByExpiration returns every announcement, expiration_date
	// descending.
	FindAllByExpiration(ctx context.Context) ([]models.Announcement, error)
	FindByID(ctx context.Context, id string) (*models.Announcement, error)
	Insert(ctx context.Context, a *models.Announcement) (string, error)
	Update(ctx context.Context, id string, set models.AnnouncementUpdate) error
	Delete(ctx context.Context, id string) error
}

// TeacherStore looks up staff credential records. Existence of a record
// for a username is the whole authorization check.
type TeacherStore interface {
	FindByUsername(ctx context.Context, username string) (*models.Teacher, error)
	List(ctx context.Context) ([]models.Teacher, error)
}
