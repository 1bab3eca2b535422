package store

import (
	"context"
	"sort"
	"sync"

	"github.com/mergington/school-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryAnnouncements is an in-memory AnnouncementStore. It keeps
// insertion order as its natural order and applies the same
// ObjectID-hex rule for identifiers as the Mongo store, so id
// validation behaves identically against either backend.
type MemoryAnnouncements struct {
	mu   sync.RWMutex
	docs []models.Announcement
}

func NewMemoryAnnouncements() *MemoryAnnouncements {
	return &MemoryAnnouncements{}
}

func (s *MemoryAnnouncements) FindActive(ctx context.Context, now string) ([]models.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Announcement
	for _, a := range s.docs {
		if models.CompareDates(a.ExpirationDate, now) >= 0 {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *MemoryAnnouncements) FindAllByExpiration(ctx context.Context) ([]models.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Announcement, len(s.docs))
	copy(out, s.docs)
	sort.SliceStable(out, func(i, j int) bool {
		return models.CompareDates(out[i].ExpirationDate, out[j].ExpirationDate) > 0
	})
	return out, nil
}

func (s *MemoryAnnouncements) FindByID(ctx context.Context, id string) (*models.Announcement, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.docs {
		if a.ID == objID {
			found := a
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryAnnouncements) Insert(ctx context.Context, a *models.Announcement) (string, error) {
	a.ID = primitive.NewObjectID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, *a)
	return a.ID.Hex(), nil
}

func (s *MemoryAnnouncements) Update(ctx context.Context, id string, set models.AnnouncementUpdate) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID == objID {
			s.docs[i].Message = set.Message
			s.docs[i].ExpirationDate = set.ExpirationDate
			s.docs[i].StartDate = set.StartDate
			s.docs[i].UpdatedBy = set.UpdatedBy
			s.docs[i].UpdatedAt = set.UpdatedAt
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryAnnouncements) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID == objID {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// MemoryTeachers is an in-memory TeacherStore keyed by username.
type MemoryTeachers struct {
	mu       sync.RWMutex
	teachers map[string]models.Teacher
}

func NewMemoryTeachers(teachers ...models.Teacher) *MemoryTeachers {
	s := &MemoryTeachers{teachers: make(map[string]models.Teacher)}
	for _, t := range teachers {
		s.teachers[t.Username] = t
	}
	return s
}

func (s *MemoryTeachers) FindByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teachers[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemoryTeachers) List(ctx context.Context) ([]models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		t.HPassword = ""
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}
