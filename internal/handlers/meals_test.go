package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/LucieneFagundes/daily-diet-api/internal/store"
)

func newMealRouter(db *sql.DB, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewMealHandler(store.NewMealStore(db))
	router := gin.New()
	meals := router.Group("/api/meals", withTestUserID(userID))
	meals.POST("", handler.CreateMeal)
	meals.GET("", handler.ListMeals)
	meals.GET("/summary", handler.Summary)
	meals.GET("/:id", handler.GetMeal)
	meals.PATCH("/:id", handler.UpdateMeal)
	meals.DELETE("/:id", handler.DeleteMeal)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json.Marshal: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func mealColumns() []string {
	return []string{"id", "name", "description", "is_on_diet", "time", "created_at", "user_id"}
}

func TestCreateMealSuccess(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.
		ExpectQuery(regexp.QuoteMeta(`INSERT INTO meals (id, name, description, is_on_diet, "time", user_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`)).
		WithArgs(sqlmock.AnyArg(), "Breakfast", "Oats and fruit", true, sqlmock.AnyArg(), testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	router := newMealRouter(db, testUserID)
	resp := doJSON(t, router, http.MethodPost, "/api/meals", map[string]any{
		"name":        "Breakfast",
		"description": "Oats and fruit",
		"is_on_diet":  true,
		"time":        "2024-03-01T08:00:00Z",
	})
	mustStatus(t, resp.Code, http.StatusCreated)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if mealID, _ := out["meal_id"].(string); mealID == "" {
		t.Fatal("expected meal_id in response")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestCreateMealRequiresDietFlag(t *testing.T) {
	db, _ := setupMockDB(t)

	router := newMealRouter(db, testUserID)
	resp := doJSON(t, router, http.MethodPost, "/api/meals", map[string]any{
		"name": "Breakfast",
		"time": "2024-03-01T08:00:00Z",
	})
	mustStatus(t, resp.Code, http.StatusBadRequest)
}

func TestCreateMealRequiresTime(t *testing.T) {
	db, _ := setupMockDB(t)

	router := newMealRouter(db, testUserID)
	resp := doJSON(t, router, http.MethodPost, "/api/meals", map[string]any{
		"name":       "Breakfast",
		"is_on_diet": true,
	})
	mustStatus(t, resp.Code, http.StatusBadRequest)
}

func TestListMealsScopedToOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM meals WHERE user_id = $1`)).
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.
		ExpectQuery(`SELECT id, name, description, is_on_diet, "time", created_at, user_id\s+FROM meals\s+WHERE user_id = \$1`).
		WithArgs(testUserID, 50, 0).
		WillReturnRows(
			sqlmock.NewRows(mealColumns()).
				AddRow(testMealID, "Dinner", "", true, now, now, testUserID).
				AddRow("2e2d3c4b-5a69-4788-b697-a5b4c3d2e1f1", "Lunch", "", false, now.Add(-time.Hour), now, testUserID),
		)

	router := newMealRouter(db, testUserID)
	resp := doJSON(t, router, http.MethodGet, "/api/meals", nil)
	expectHTTP200(t, resp.Code)

	var out struct {
		Meals []map[string]any `json:"meals"`
		Count int              `json:"count"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out.Count != 2 || out.Total != 2 {
		t.Fatalf("expected count=2 total=2, got count=%d total=%d", out.Count, out.Total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListMealsEmptyForUnknownOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	strangerID := "00000000-0000-4000-8000-000000000000"

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM meals WHERE user_id = $1`)).
		WithArgs(strangerID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.
		ExpectQuery(`SELECT id, name, description, is_on_diet, "time", created_at, user_id\s+FROM meals\s+WHERE user_id = \$1`).
		WithArgs(strangerID, 50, 0).
		WillReturnRows(sqlmock.NewRows(mealColumns()))

	router := newMealRouter(db, strangerID)
	resp := doJSON(t, router, http.MethodGet, "/api/meals", nil)
	expectHTTP200(t, resp.Code)

	var out struct {
		Meals []map[string]any `json:"meals"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out.Meals) != 0 {
		t.Fatalf("expected no meals for unknown owner, got %d", len(out.Meals))
	}
}

func TestGetMealOwnedByAnotherUser(t *testing.T) {
	db, mock := setupMockDB(t)

	// The query filters by id AND owner, so someone else's meal scans zero rows.
	mock.
		ExpectQuery(`SELECT id, name, description, is_on_diet, "time", created_at, user_id\s+FROM meals\s+WHERE id = \$1 AND user_id = \$2`).
		WithArgs(testMealID, testUserID).
		WillReturnRows(sqlmock.NewRows(mealColumns()))

	router := newMealRouter(db, testUserID)
	resp := doJSON(t, router, http.MethodGet, "/api/meals/"+testMealID, nil)
	mustStatus(t, resp.Code, http.StatusNotFound)
}

func TestUpdateMealNotOwned(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.
		ExpectExec(`UPDATE meals`).
		WithArgs("Supper", nil, nil, nil, testMealID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	router := newMealRouter(db, testUserID)
	resp := doJSON(t, router, http.MethodPatch, "/api/meals/"+testMealID, map[string]any{
		"name": "Supper",
	})
	mustStatus(t, resp.Code, http.StatusNotFound)
}

func TestUpdateMealSuccess(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.
		ExpectExec(`UPDATE meals`).
		WithArgs(nil, nil, false, nil, testMealID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := newMealRouter(db, testUserID)
	resp := doJSON(t, router, http.MethodPatch, "/api/meals/"+testMealID, map[string]any{
		"is_on_diet": false,
	})
	expectHTTP200(t, resp.Code)
}

func TestUpdateMealRequiresFields(t *testing.T) {
	db, _ := setupMockDB(t)

	router := newMealRouter(db, testUserID)
	resp := doJSON(t, router, http.MethodPatch, "/api/meals/"+testMealID, map[string]any{})
	mustStatus(t, resp.Code, http.StatusBadRequest)
}

func TestDeleteMealTwice(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.
		ExpectExec(regexp.QuoteMeta(`DELETE FROM meals WHERE id = $1 AND user_id = $2`)).
		WithArgs(testMealID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.
		ExpectExec(regexp.QuoteMeta(`DELETE FROM meals WHERE id = $1 AND user_id = $2`)).
		WithArgs(testMealID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	router := newMealRouter(db, testUserID)

	first := doJSON(t, router, http.MethodDelete, "/api/meals/"+testMealID, nil)
	expectHTTP200(t, first.Code)

	second := doJSON(t, router, http.MethodDelete, "/api/meals/"+testMealID, nil)
	mustStatus(t, second.Code, http.StatusNotFound)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
