package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ministry_backend/internals/features/events/model"
)

// fakeEventRepo is a stateful in-memory stand-in for the event collection.
type fakeEventRepo struct {
	events map[string]model.EventModel
	order  []string
	err    error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]model.EventModel{}}
}

func (f *fakeEventRepo) FindAll(ctx context.Context) ([]model.EventModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.EventModel{}
	for _, id := range f.order {
		out = append(out, f.events[id])
	}
	return out, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, event model.EventModel) (model.EventModel, error) {
	if f.err != nil {
		return model.EventModel{}, f.err
	}
	event.ID = primitive.NewObjectID()
	id := event.ID.Hex()
	f.events[id] = event
	f.order = append(f.order, id)
	return event, nil
}

func (f *fakeEventRepo) ReplaceByID(ctx context.Context, id string, event model.EventModel) (*model.EventModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	existing, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	event.ID = existing.ID
	f.events[id] = event
	return &event, nil
}

func (f *fakeEventRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.events[id]; !ok {
		return false, nil
	}
	delete(f.events, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func newTestApp(repo *fakeEventRepo) *fiber.App {
	app := fiber.New()
	ctrl := NewEventController(repo)
	app.Get("/api/event", ctrl.GetEvents)
	app.Post("/api/event", ctrl.CreateEvent)
	app.Put("/api/event/:id", ctrl.UpdateEvent)
	app.Delete("/api/event/:id", ctrl.DeleteEvent)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestCreateEvent_ThenList(t *testing.T) {
	repo := newFakeEventRepo()
	app := newTestApp(repo)

	status, body := doJSON(t, app, "POST", "/api/event",
		`{"title":"Easter Service","date":"2024-05-01","time":"18:00","description":"Evening service","location":"Main hall"}`)
	assert.Equal(t, fiber.StatusCreated, status)

	var created model.EventModel
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.False(t, created.ID.IsZero(), "created event must carry the assigned id")
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), created.Date)

	status, body = doJSON(t, app, "GET", "/api/event", "")
	assert.Equal(t, fiber.StatusOK, status)

	var listed []model.EventModel
	require.NoError(t, json.Unmarshal([]byte(body), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Easter Service", listed[0].Title)
	assert.Equal(t, created.Date, listed[0].Date)
}

func TestCreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"date":"2024-05-01"}`},
		{"missing date", `{"title":"Easter Service"}`},
		{"malformed date", `{"title":"Easter Service","date":"first of may"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeEventRepo()
			app := newTestApp(repo)

			status, _ := doJSON(t, app, "POST", "/api/event", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Empty(t, repo.events, "invalid input must not reach the store")
		})
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	repo := newFakeEventRepo()
	app := newTestApp(repo)

	status, body := doJSON(t, app, "PUT", "/api/event/"+primitive.NewObjectID().Hex(),
		`{"title":"Moved","date":"2024-06-01"}`)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Event not found"}`, body)
	assert.Empty(t, repo.events, "a failed update must not create a record")
}

func TestUpdateEvent_FullReplace(t *testing.T) {
	repo := newFakeEventRepo()
	app := newTestApp(repo)

	_, body := doJSON(t, app, "POST", "/api/event",
		`{"title":"Prayer Night","date":"2024-05-01","time":"20:00","description":"Monthly","location":"Chapel"}`)
	var created model.EventModel
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// update body omits time/description/location: they are replaced with
	// empty values, not merged
	status, body := doJSON(t, app, "PUT", "/api/event/"+created.ID.Hex(),
		`{"title":"Prayer Night (moved)","date":"2024-05-08"}`)
	assert.Equal(t, fiber.StatusOK, status)

	var updated model.EventModel
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Prayer Night (moved)", updated.Title)
	assert.Empty(t, updated.Time)
	assert.Empty(t, updated.Description)
	assert.Empty(t, updated.Location)
}

func TestDeleteEvent_Twice(t *testing.T) {
	repo := newFakeEventRepo()
	app := newTestApp(repo)

	_, body := doJSON(t, app, "POST", "/api/event", `{"title":"One-off","date":"2024-07-01"}`)
	var created model.EventModel
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	status, body := doJSON(t, app, "DELETE", "/api/event/"+created.ID.Hex(), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"message":"Event deleted successfully"}`, body)

	status, body = doJSON(t, app, "DELETE", "/api/event/"+created.ID.Hex(), "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.JSONEq(t, `{"message":"Event not found"}`, body)
}

func TestGetEvents_StoreError(t *testing.T) {
	repo := newFakeEventRepo()
	repo.err = errors.New("no reachable servers")
	app := newTestApp(repo)

	status, body := doJSON(t, app, "GET", "/api/event", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.JSONEq(t, `{"error":"Error fetching events"}`, body)
}

func TestGetEvents_EmptyListIsArray(t *testing.T) {
	app := newTestApp(newFakeEventRepo())

	status, body := doJSON(t, app, "GET", "/api/event", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, body)
}
