package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mergington/school-gobackend/internal/handlers"
	"github.com/mergington/school-gobackend/internal/models"
	"github.com/mergington/school-gobackend/internal/services"
	"github.com/mergington/school-gobackend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	teachers := store.NewMemoryTeachers(
		models.Teacher{Username: "mrodriguez", DisplayName: "Ms. Rodriguez", HPassword: "hash"},
	)
	announcements := store.NewMemoryAnnouncements()
	logger := zap.NewNop()

	announcementHandler := handlers.NewAnnouncementHandler(
		services.NewAnnouncementService(announcements, teachers), logger)
	teacherHandler := handlers.NewTeacherHandler(
		services.NewTeacherService(teachers), logger)
	return handlers.NewRouter(announcementHandler, teacherHandler)
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["detail"]
}

func createAnnouncement(t *testing.T, h http.Handler, message, expiration string) models.Announcement {
	t.Helper()
	payload, err := json.Marshal(map[string]string{
		"message":         message,
		"expiration_date": expiration,
	})
	require.NoError(t, err)

	rec := do(t, h, "POST", "/announcements?teacher_username=mrodriguez", string(payload))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, "GET", "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestListActivePublicAndFiltered(t *testing.T) {
	h := newTestRouter(t)

	createAnnouncement(t, h, "assembly friday", "2099-01-01T00:00:00Z")
	createAnnouncement(t, h, "old news", "2020-01-01T00:00:00")

	rec := do(t, h, "POST", "/announcements?"+url.Values{
		"teacher_username": {"mrodriguez"},
		"message":          {"spring break"},
		"expiration_date":  {"2099-01-01T00:00:00"},
		"start_date":       {"2098-01-01T00:00:00"},
	}.Encode(), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, "GET", "/announcements", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var active []models.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &active))
	require.Len(t, active, 1)
	assert.Equal(t, "assembly friday", active[0].Message)

	// Trailing-slash form serves the same listing.
	rec = do(t, h, "GET", "/announcements/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListActiveEmptyIsJSONArray(t *testing.T) {
	h := newTestRouter(t)
	rec := do(t, h, "GET", "/announcements", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListAllRequiresTeacher(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, "GET", "/announcements/all", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authentication required for this action", decodeDetail(t, rec))

	rec = do(t, h, "GET", "/announcements/all?teacher_username=ghost", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid teacher credentials", decodeDetail(t, rec))
}

func TestListAllIncludesExpired(t *testing.T) {
	h := newTestRouter(t)

	createAnnouncement(t, h, "current", "2099-01-01T00:00:00")
	createAnnouncement(t, h, "expired", "2020-01-01T00:00:00")

	rec := do(t, h, "GET", "/announcements/all?teacher_username=mrodriguez", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var all []models.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 2)
	assert.Equal(t, "current", all[0].Message)
	assert.Equal(t, "expired", all[1].Message)
}

func TestCreateValidatesDates(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, "POST", "/announcements?teacher_username=mrodriguez",
		`{"message":"m","expiration_date":"not-a-date"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid expiration_date format. Use ISO format.", decodeDetail(t, rec))

	rec = do(t, h, "POST", "/announcements?teacher_username=mrodriguez",
		`{"message":"m","expiration_date":"2099-01-01T00:00:00Z","start_date":"later"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid start_date format. Use ISO format.", decodeDetail(t, rec))

	rec = do(t, h, "POST", "/announcements", `{"message":"m","expiration_date":"2099-01-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateReturnsRecord(t *testing.T) {
	h := newTestRouter(t)

	created := createAnnouncement(t, h, "picture day", "2099-01-01T00:00:00Z")
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "mrodriguez", created.CreatedBy)
	assert.Equal(t, "2099-01-01T00:00:00Z", created.ExpirationDate)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestUpdate(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, "PUT", "/announcements/bad-id?teacher_username=mrodriguez",
		`{"message":"m","expiration_date":"2099-01-01T00:00:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid announcement ID", decodeDetail(t, rec))

	rec = do(t, h, "PUT", "/announcements/aaaaaaaaaaaaaaaaaaaaaaaa?teacher_username=mrodriguez",
		`{"message":"m","expiration_date":"2099-01-01T00:00:00"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Announcement not found", decodeDetail(t, rec))

	created := createAnnouncement(t, h, "before", "2099-01-01T00:00:00")
	rec = do(t, h, "PUT", "/announcements/"+created.ID.Hex()+"?teacher_username=mrodriguez",
		`{"message":"after","expiration_date":"2100-01-01T00:00:00","start_date":"2026-01-01T00:00:00"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "after", updated.Message)
	require.NotNil(t, updated.StartDate)
	assert.Equal(t, "2026-01-01T00:00:00", *updated.StartDate)
	assert.Equal(t, "mrodriguez", updated.UpdatedBy)
}

func TestDeleteTwice(t *testing.T) {
	h := newTestRouter(t)

	created := createAnnouncement(t, h, "one shot", "2099-01-01T00:00:00")

	rec := do(t, h, "DELETE", "/announcements/"+created.ID.Hex()+"?teacher_username=mrodriguez", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Announcement deleted successfully", body["message"])

	rec = do(t, h, "DELETE", "/announcements/"+created.ID.Hex()+"?teacher_username=mrodriguez", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "DELETE", "/announcements/bad-id?teacher_username=mrodriguez", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "DELETE", "/announcements/aaaaaaaaaaaaaaaaaaaaaaaa", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateListRoundTrip(t *testing.T) {
	h := newTestRouter(t)

	payload := `{"message":"science fair","expiration_date":"2099-05-01T00:00:00Z","start_date":"2026-04-01T00:00:00"}`
	rec := do(t, h, "POST", "/announcements?teacher_username=mrodriguez", payload)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = do(t, h, "GET", "/announcements/all?teacher_username=mrodriguez", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all []models.Announcement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 1)

	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "science fair", all[0].Message)
	assert.Equal(t, "2099-05-01T00:00:00Z", all[0].ExpirationDate)
	require.NotNil(t, all[0].StartDate)
	assert.Equal(t, "2026-04-01T00:00:00", *all[0].StartDate)
}

func TestTeacherDirectory(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, "GET", "/teachers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "mrodriguez", list[0]["username"])
	assert.NotContains(t, list[0], "password")

	rec = do(t, h, "GET", "/teachers/mrodriguez", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, "GET", "/teachers/ghost", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Teacher not found", decodeDetail(t, rec))
}
