package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-service/internal/delivery/middleware"
	"content-service/internal/infrastructure/db/postgres"
)

func seedNotifications(t *testing.T, app *testApp, userID uuid.UUID, count int) {
	t.Helper()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < count; i++ {
		model := postgres.NotificationModel{
			Id:        uuid.New(),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UserID:    userID,
			Message:   "message",
		}
		require.NoError(t, app.db.Create(&model).Error)
	}
}

func unreadRows(t *testing.T, app *testApp, userID uuid.UUID) int64 {
	t.Helper()

	var count int64
	require.NoError(t, app.db.Model(&postgres.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error)
	return count
}

func TestReadAllWithoutCookieIs401AndMutatesNothing(t *testing.T) {
	app := newTestApp(t)
	userID := uuid.New()
	seedNotifications(t, app, userID, 2)

	rec := app.request(t, http.MethodPatch, "/api/notifications/read-all", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
	assert.Equal(t, int64(2), unreadRows(t, app, userID))
}

func TestReadAllWithInvalidCookieIs401(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPatch, "/api/notifications/read-all", "",
		&http.Cookie{Name: middleware.TokenCookieName, Value: "forged"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReadAllMarksOnlyCallerRows(t *testing.T) {
	app := newTestApp(t)
	alice := uuid.New()
	bob := uuid.New()
	seedNotifications(t, app, alice, 3)
	seedNotifications(t, app, bob, 1)

	rec := app.request(t, http.MethodPatch, "/api/notifications/read-all", "", app.tokenCookie(t, alice))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Zero(t, unreadRows(t, app, alice))
	assert.Equal(t, int64(1), unreadRows(t, app, bob))

	var read []postgres.NotificationModel
	require.NoError(t, app.db.Where("user_id = ?", alice).Find(&read).Error)
	for _, model := range read {
		assert.True(t, model.IsRead)
		assert.NotNil(t, model.ReadAt)
	}
}

func TestListNotificationsRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/notifications", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListNotificationsReturnsCallerRowsNewestFirst(t *testing.T) {
	app := newTestApp(t)
	userID := uuid.New()
	seedNotifications(t, app, userID, 3)
	seedNotifications(t, app, uuid.New(), 2)

	rec := app.request(t, http.MethodGet, "/api/notifications", "", app.tokenCookie(t, userID))
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data []struct {
			CreatedAt time.Time `json:"created_at"`
			IsRead    bool      `json:"is_read"`
		} `json:"data"`
		UnreadCount int64 `json:"unreadCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	require.Len(t, response.Data, 3)
	assert.Equal(t, int64(3), response.UnreadCount)
	for i := 1; i < len(response.Data); i++ {
		assert.False(t, response.Data[i-1].CreatedAt.Before(response.Data[i].CreatedAt))
	}
}

func TestCreateNotification(t *testing.T) {
	app := newTestApp(t)
	caller := uuid.New()
	target := uuid.New()

	body := `{"user_id":"` + target.String() + `","title":"hi","message":"welcome"}`
	rec := app.request(t, http.MethodPost, "/api/notifications", body, app.tokenCookie(t, caller))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), unreadRows(t, app, target))
}

func TestCreateNotificationRejectsMissingRecipient(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{
		`{"title":"hi","message":"welcome"}`,
		`{"user_id":"00000000-0000-0000-0000-000000000000","message":"welcome"}`,
	} {
		rec := app.request(t, http.MethodPost, "/api/notifications", body, app.tokenCookie(t, uuid.New()))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}

	var count int64
	require.NoError(t, app.db.Model(&postgres.NotificationModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateNotificationRejectsEmptyMessage(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/notifications",
		`{"user_id":"`+uuid.NewString()+`","message":""}`, app.tokenCookie(t, uuid.New()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
