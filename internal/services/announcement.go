package services

import (
	"context"
	"errors"

	"github.com/mergington/school-gobackend/internal/models"
	"github.com/mergington/school-gobackend/internal/store"
)

// AnnouncementService implements the announcement operations: a public
// active listing plus staff-only list-all, create, update and delete.
// Staff authorization is an existence check against the teacher store;
// no password or session is involved.
type AnnouncementService struct {
	announcements store.AnnouncementStore
	teachers      store.TeacherStore
}

func NewAnnouncementService(announcements store.AnnouncementStore, teachers store.TeacherStore) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, teachers: teachers}
}

// AnnouncementInput is the client-supplied portion of a create or
// update. StartDate nil means "no start date".
type AnnouncementInput struct {
	Message        string
	ExpirationDate string
	StartDate      *string
}

func (in AnnouncementInput) validateDates() error {
	if _, err := models.ParseDate(in.ExpirationDate); err != nil {
		return ErrBadExpirationDate
	}
	if in.StartDate != nil && *in.StartDate != "" {
		if _, err := models.ParseDate(*in.StartDate); err != nil {
			return ErrBadStartDate
		}
	}
	return nil
}

// authorize resolves teacherUsername against the credential store.
func (s *AnnouncementService) authorize(ctx context.Context, teacherUsername string) error {
	if teacherUsername == "" {
		return ErrAuthRequired
	}
	_, err := s.teachers.FindByUsername(ctx, teacherUsername)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidCredentials
	}
	return err
}

// ListActive returns announcements that have not expired and whose
// start date, if any, has passed. No authorization required.
func (s *AnnouncementService) ListActive(ctx context.Context) ([]models.Announcement, error) {
	now := models.Now()

	candidates, err := s.announcements.FindActive(ctx, now)
	if err != nil {
		return nil, err
	}

	active := make([]models.Announcement, 0, len(candidates))
	for _, a := range candidates {
		if a.StartDate != nil && models.CompareDates(*a.StartDate, now) > 0 {
			continue
		}
		active = append(active, a)
	}
	return active, nil
}

// ListAll returns every announcement, expired and future ones included,
// sorted by expiration date descending.
func (s *AnnouncementService) ListAll(ctx context.Context, teacherUsername string) ([]models.Announcement, error) {
	if err := s.authorize(ctx, teacherUsername); err != nil {
		return nil, err
	}

	all, err := s.announcements.FindAllByExpiration(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []models.Announcement{}
	}
	return all, nil
}

// Create persists a new announcement. Date strings are stored exactly
// as supplied, not normalized.
func (s *AnnouncementService) Create(ctx context.Context, teacherUsername string, in AnnouncementInput) (*models.Announcement, error) {
	if err := s.authorize(ctx, teacherUsername); err != nil {
		return nil, err
	}
	if err := in.validateDates(); err != nil {
		return nil, err
	}

	announcement := &models.Announcement{
		Message:        in.Message,
		ExpirationDate: in.ExpirationDate,
		StartDate:      in.StartDate,
		CreatedBy:      teacherUsername,
		CreatedAt:      models.Now(),
	}
	if _, err := s.announcements.Insert(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// Update overwrites message, expiration_date and start_date of an
// existing announcement and stamps updated_by/updated_at. Full replace,
// no merge: an omitted start date clears the stored one.
func (s *AnnouncementService) Update(ctx context.Context, teacherUsername, id string, in AnnouncementInput) (*models.Announcement, error) {
	if err := s.authorize(ctx, teacherUsername); err != nil {
		return nil, err
	}
	if err := in.validateDates(); err != nil {
		return nil, err
	}

	set := models.AnnouncementUpdate{
		Message:        in.Message,
		ExpirationDate: in.ExpirationDate,
		StartDate:      in.StartDate,
		UpdatedBy:      teacherUsername,
		UpdatedAt:      models.Now(),
	}
	if err := s.announcements.Update(ctx, id, set); err != nil {
		return nil, mapStoreErr(err)
	}

	updated, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return updated, nil
}

// Delete permanently removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, teacherUsername, id string) error {
	if err := s.authorize(ctx, teacherUsername); err != nil {
		return err
	}
	if err := s.announcements.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// mapStoreErr translates storage sentinels into client-facing failures;
// driver-level id errors become the generic "Invalid announcement ID"
// rather than leaking store specifics.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return ErrInvalidID
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	default:
		return err
	}
}
