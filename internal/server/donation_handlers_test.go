package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"warmshare/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDonationApp(users *fakeUserStore, donations *fakeDonationStore) *fiber.App {
	s := &Server{userRepo: users, donationRepo: donations}
	app := fiber.New()
	app.Post("/donations", s.RecordDonation)
	app.Get("/donations", s.ListDonations)
	return app
}

func TestRecordDonationCreditsUser(t *testing.T) {
	users := newFakeUserStore()
	donations := newFakeDonationStore()
	user := &models.User{Name: "Amina", Email: "amina@example.com", Image: "old.png"}
	users.add(user)

	app := newDonationApp(users, donations)

	first := postJSON(t, app, "/donations", map[string]any{
		"clotheId":    "c-1",
		"clotheTitle": "Wool jacket",
		"userId":      user.ID.Hex(),
		"userImage":   "first.png",
		"price":       10,
	})
	assert.Equal(t, fiber.StatusOK, first.StatusCode)
	_ = decodeBody(t, first)

	second := postJSON(t, app, "/donations", map[string]any{
		"clotheId":    "c-2",
		"clotheTitle": "Scarf",
		"userId":      user.ID.Hex(),
		"userImage":   "second.png",
		"price":       5,
	})
	assert.Equal(t, fiber.StatusOK, second.StatusCode)
	_ = decodeBody(t, second)

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.Donation)
	assert.Equal(t, 15.0, *stored.Donation, "totals accumulate across donations")
	assert.Equal(t, "second.png", stored.Image, "image is overwritten on every donation")
}

func TestRecordDonationLedgerUpsert(t *testing.T) {
	users := newFakeUserStore()
	donations := newFakeDonationStore()
	user := &models.User{Name: "Amina", Email: "amina@example.com"}
	users.add(user)

	app := newDonationApp(users, donations)

	body := map[string]any{
		"clotheId":    "c-1",
		"clotheTitle": "Wool jacket",
		"clotheImage": "jacket.png",
		"userId":      user.ID.Hex(),
		"userImage":   "me.png",
		"price":       10,
	}

	resp := postJSON(t, app, "/donations", body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	_ = decodeBody(t, resp)

	firstRecord, err := donations.GetByClotheID(context.Background(), "c-1")
	require.NoError(t, err)
	require.NotNil(t, firstRecord)
	firstTimestamp := firstRecord.Timestamp

	// donate to the same item again
	resp = postJSON(t, app, "/donations", body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	_ = decodeBody(t, resp)

	record, err := donations.GetByClotheID(context.Background(), "c-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, int64(2), record.Quantity, "second donation increments, does not duplicate")
	assert.Equal(t, "Wool jacket", record.ClotheTitle)
	assert.Equal(t, firstTimestamp, record.Timestamp, "increment leaves the timestamp alone")
	assert.Len(t, donations.records, 1)
}

func TestRecordDonationValidation(t *testing.T) {
	app := newDonationApp(newFakeUserStore(), newFakeDonationStore())

	t.Run("Malformed user id", func(t *testing.T) {
		resp := postJSON(t, app, "/donations", map[string]any{
			"clotheId": "c-1",
			"userId":   "not-an-id",
			"price":    10,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing clotheId", func(t *testing.T) {
		resp := postJSON(t, app, "/donations", map[string]any{
			"userId": primitive.NewObjectID().Hex(),
			"price":  10,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestListDonationsMostRecentFirst(t *testing.T) {
	users := newFakeUserStore()
	donations := newFakeDonationStore()

	now := time.Now()
	for i, clotheID := range []string{"c-old", "c-mid", "c-new"} {
		_, err := donations.Create(context.Background(), &models.Donation{
			ClotheID:  clotheID,
			UserID:    primitive.NewObjectID().Hex(),
			Quantity:  1,
			Timestamp: now.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	app := newDonationApp(users, donations)

	req := httptest.NewRequest(http.MethodGet, "/donations", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 3)

	ids := make([]string, 0, len(data))
	for _, item := range data {
		entry := item.(map[string]any)
		ids = append(ids, entry["clotheId"].(string))
	}
	assert.Equal(t, []string{"c-new", "c-mid", "c-old"}, ids)
}
