package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cnnct/internal/models"
	"github.com/joshua-takyi/cnnct/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memEventRepo is a minimal in-memory EventRepo used to exercise the HTTP
// surface without a database.
type memEventRepo struct {
	events map[primitive.ObjectID]*models.Event
}

func newMemEventRepo(events ...*models.Event) *memEventRepo {
	repo := &memEventRepo{events: map[primitive.ObjectID]*models.Event{}}
	for _, e := range events {
		if e.ID.IsZero() {
			e.ID = primitive.NewObjectID()
		}
		repo.events[e.ID] = e
	}
	return repo
}

func (m *memEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.BeforeCreate()
	m.events[event.ID] = event
	return event, nil
}

func (m *memEventRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return event, nil
}

func (m *memEventRepo) ListEventsByUser(ctx context.Context, userId primitive.ObjectID) ([]*models.Event, error) {
	out := []*models.Event{}
	for _, e := range m.events {
		if e.User == userId {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEventRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if v, ok := update["active"].(bool); ok {
		event.Active = v
	}
	if v, ok := update["conflict"].(bool); ok {
		event.Conflict = v
	}
	return event, nil
}

func (m *memEventRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := m.events[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *memEventRepo) FindConflictCandidates(ctx context.Context, userId primitive.ObjectID, date string, excludeId primitive.ObjectID) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range m.events {
		if e.User != userId || e.Date != date || !e.Active {
			continue
		}
		if !excludeId.IsZero() && e.ID == excludeId {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// testRouter wires the event routes behind a stub auth middleware that
// injects the given user id, standing in for the real token check.
func testRouter(es *services.EventService, userId primitive.ObjectID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", userId)
		c.Next()
	})
	r.GET("/events", ListEvents(es))
	r.POST("/events", CreateEvent(es))
	r.POST("/events/check-conflict", CheckConflict(es))
	r.GET("/events/:id", GetEvent(es))
	r.PUT("/events/:id/toggle", ToggleEvent(es))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckConflictEndpoint(t *testing.T) {
	user := primitive.NewObjectID()
	repo := newMemEventRepo(&models.Event{
		User: user, Topic: "Busy", Date: "2025-06-10",
		StartTime: "9:00", EndTime: "10:00", TimeFormat: "AM", Active: true,
	})
	r := testRouter(services.NewEventService(repo), user)

	w := doJSON(t, r, http.MethodPost, "/events/check-conflict", gin.H{
		"date": "2025-06-10", "startTime": "9:30", "endTime": "9:45", "timeFormat": "AM",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success     bool `json:"success"`
		HasConflict bool `json:"hasConflict"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || !resp.HasConflict {
		t.Errorf("response = %+v, want success with conflict", resp)
	}

	// boundary touch reports clean
	w = doJSON(t, r, http.MethodPost, "/events/check-conflict", gin.H{
		"date": "2025-06-10", "startTime": "10:00", "endTime": "11:00", "timeFormat": "AM",
	})
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.HasConflict {
		t.Error("boundary touch should not report a conflict")
	}
}

func TestCreateEventEndpoint(t *testing.T) {
	user := primitive.NewObjectID()
	r := testRouter(services.NewEventService(newMemEventRepo()), user)

	w := doJSON(t, r, http.MethodPost, "/events", gin.H{
		"topic": "Standup", "date": "2025-06-10",
		"startTime": "9:00", "endTime": "10:00", "timeFormat": "AM",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool         `json:"success"`
		Data    models.Event `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Data.Active {
		t.Error("events default to active")
	}
	if resp.Data.Conflict {
		t.Error("first event of the day cannot conflict")
	}

	// missing timeFormat is a validation error
	w = doJSON(t, r, http.MethodPost, "/events", gin.H{
		"topic": "Bad", "date": "2025-06-10", "startTime": "9:00", "endTime": "10:00",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetEventStatusCodes(t *testing.T) {
	owner := primitive.NewObjectID()
	event := &models.Event{
		User: owner, Topic: "Private", Date: "2025-06-10",
		StartTime: "9:00", EndTime: "10:00", TimeFormat: "AM", Active: true,
	}
	repo := newMemEventRepo(event)

	// stranger gets a 401, with no resource data in the body
	stranger := primitive.NewObjectID()
	r := testRouter(services.NewEventService(repo), stranger)
	w := doJSON(t, r, http.MethodGet, "/events/"+event.ID.Hex(), nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("Private")) {
		t.Error("unauthorized response must not leak the event")
	}

	// unknown id is a 404
	w = doJSON(t, r, http.MethodGet, "/events/"+primitive.NewObjectID().Hex(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	// malformed id is a 400
	w = doJSON(t, r, http.MethodGet, "/events/not-an-id", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestListEventsEnvelope(t *testing.T) {
	user := primitive.NewObjectID()
	repo := newMemEventRepo(
		&models.Event{User: user, Topic: "One", Date: "2025-06-10", StartTime: "9:00", EndTime: "10:00", TimeFormat: "AM", Active: true},
		&models.Event{User: user, Topic: "Two", Date: "2025-06-11", StartTime: "9:00", EndTime: "10:00", TimeFormat: "AM", Active: true},
		&models.Event{User: primitive.NewObjectID(), Topic: "Other", Date: "2025-06-10", StartTime: "9:00", EndTime: "10:00", TimeFormat: "AM", Active: true},
	)
	r := testRouter(services.NewEventService(repo), user)

	w := doJSON(t, r, http.MethodGet, "/events", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Success bool           `json:"success"`
		Count   int            `json:"count"`
		Data    []models.Event `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 || len(resp.Data) != 2 {
		t.Errorf("count = %d, len = %d, want 2 each (caller's events only)", resp.Count, len(resp.Data))
	}
}
