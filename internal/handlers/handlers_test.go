package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/willhughes11/triviaApi/internal/config"
	"github.com/willhughes11/triviaApi/internal/database"
	"github.com/willhughes11/triviaApi/internal/models"
	"github.com/willhughes11/triviaApi/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T, seed bool) *testServer {
	t.Helper()
	db, err := database.Open(&config.Config{DBDriver: config.DriverSQLite, DBName: ":memory:", LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	if seed {
		require.NoError(t, database.Seed(db))
	}

	questionService := services.NewQuestionService(db)
	router := NewRouter(Services{
		Categories: services.NewCategoryService(db),
		Questions:  questionService,
		Quizzes:    services.NewQuizService(questionService),
	})
	return &testServer{router: router, db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	body := decode[ErrorResponse](t, w)
	assert.False(t, body.Success)
	assert.Equal(t, status, body.Error)
	assert.Equal(t, message, body.Message)
}

func TestListCategories(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[CategoriesResponse](t, w)
	assert.True(t, body.Success)
	assert.Equal(t, 6, body.TotalCategories)
	assert.Equal(t, "Science", body.Categories[1])
	assert.Equal(t, "Sports", body.Categories[6])
}

func TestListCategoriesEmpty(t *testing.T) {
	s := newTestServer(t, false)
	assertError(t, s.do(t, http.MethodGet, "/categories", nil), http.StatusNotFound, "resource not found")
}

func TestUnknownCategoryPath(t *testing.T) {
	s := newTestServer(t, true)
	assertError(t, s.do(t, http.MethodGet, "/categories/1", nil), http.StatusNotFound, "resource not found")
}

func TestListQuestionsPaginated(t *testing.T) {
	s := newTestServer(t, true)

	first := decode[QuestionsPageResponse](t, s.do(t, http.MethodGet, "/questions", nil))
	assert.True(t, first.Success)
	assert.Len(t, first.Questions, 10)
	assert.EqualValues(t, 19, first.TotalQuestions)
	assert.Len(t, first.Categories, 6)

	w := s.do(t, http.MethodGet, "/questions?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[QuestionsPageResponse](t, w)
	assert.Len(t, second.Questions, 9)
	assert.EqualValues(t, 19, second.TotalQuestions)
}

func TestListQuestionsNonIntegerPageFallsBack(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodGet, "/questions?page=abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[QuestionsPageResponse](t, w).Questions, 10)
}

func TestListQuestionsBeyondValidPage(t *testing.T) {
	s := newTestServer(t, true)
	assertError(t, s.do(t, http.MethodGet, "/questions?page=1000", nil), http.StatusNotFound, "resource not found")
	assertError(t, s.do(t, http.MethodGet, "/questions?page=0", nil), http.StatusNotFound, "resource not found")
	assertError(t, s.do(t, http.MethodGet, "/questions?page=922337203685477582", nil), http.StatusNotFound, "resource not found")
	assertError(t, s.do(t, http.MethodGet, "/questions?page=9223372036854775807", nil), http.StatusNotFound, "resource not found")
}

func TestDeleteQuestion(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodDelete, "/questions/21", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[DeleteQuestionResponse](t, w)
	assert.True(t, body.Success)
	assert.EqualValues(t, 21, body.Deleted)
	assert.EqualValues(t, 18, body.TotalQuestions)
	require.Len(t, body.Questions, 10)
	for i := 1; i < len(body.Questions); i++ {
		assert.Less(t, body.Questions[i-1].ID, body.Questions[i].ID)
	}

	var count int64
	require.NoError(t, s.db.Model(&models.Question{}).Where("id = ?", 21).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteMissingQuestion(t *testing.T) {
	s := newTestServer(t, true)
	assertError(t, s.do(t, http.MethodDelete, "/questions/1000", nil), http.StatusNotFound, "resource not found")
	assertError(t, s.do(t, http.MethodDelete, "/questions/abc", nil), http.StatusNotFound, "resource not found")
}

func TestCreateQuestion(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodPost, "/questions/submit", map[string]any{
		"question":   "Who discovered penicillin?",
		"answer":     "Alexander Fleming",
		"category":   1,
		"difficulty": 3,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode[CreateQuestionResponse](t, w)
	assert.True(t, body.Success)
	assert.NotZero(t, body.Created)
	assert.EqualValues(t, 20, body.TotalQuestions)

	var stored models.Question
	require.NoError(t, s.db.First(&stored, body.Created).Error)
	assert.Equal(t, "Alexander Fleming", *stored.Answer)
	assert.Equal(t, 3, *stored.Difficulty)
}

func TestCreateQuestionLenient(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodPost, "/questions/submit", map[string]any{
		"question": "Unfinished?",
		"category": "42",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode[CreateQuestionResponse](t, w)

	var stored models.Question
	require.NoError(t, s.db.First(&stored, body.Created).Error)
	assert.Nil(t, stored.Answer)
	assert.Nil(t, stored.Difficulty)
	assert.Equal(t, 42, *stored.Category)
}

func TestCreateQuestionMalformedBody(t *testing.T) {
	s := newTestServer(t, true)
	assertError(t, s.do(t, http.MethodPost, "/questions/submit", "{not json"), http.StatusBadRequest, "bad request")
	assertError(t, s.do(t, http.MethodPost, "/questions/submit", map[string]any{"difficulty": "hard"}), http.StatusBadRequest, "bad request")
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, true)
	assertError(t, s.do(t, http.MethodPost, "/questions/45", map[string]any{"question": "x"}), http.StatusMethodNotAllowed, "method not allowed")
}

func TestSearchQuestions(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodPost, "/questions/search", map[string]any{"searchTerm": "which"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[SearchQuestionsResponse](t, w)
	assert.True(t, body.Success)
	assert.Equal(t, 7, body.TotalQuestions)
	assert.Len(t, body.Questions, 7)
}

func TestSearchQuestionsWithoutResults(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodPost, "/questions/search", map[string]any{"searchTerm": "capfoundry"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[SearchQuestionsResponse](t, w)
	assert.True(t, body.Success)
	assert.Equal(t, 0, body.TotalQuestions)
	assert.NotNil(t, body.Questions)
	assert.Empty(t, body.Questions)
}

func TestSearchQuestionsCountsReturnedPageOnly(t *testing.T) {
	s := newTestServer(t, true)

	body := decode[SearchQuestionsResponse](t, s.do(t, http.MethodPost, "/questions/search", map[string]any{"searchTerm": ""}))
	assert.Len(t, body.Questions, 10)
	assert.Equal(t, 10, body.TotalQuestions)

	body = decode[SearchQuestionsResponse](t, s.do(t, http.MethodPost, "/questions/search?page=2", map[string]any{"searchTerm": ""}))
	assert.Len(t, body.Questions, 9)
	assert.Equal(t, 9, body.TotalQuestions)
}

func TestQuestionsByCategory(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodGet, "/categories/6/questions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[CategoryQuestionsResponse](t, w)
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.TotalQuestions)
	require.Len(t, body.Questions, 2)
	for _, q := range body.Questions {
		assert.Equal(t, 6, *q.Category)
	}
}

func TestQuestionsByNonexistentCategory(t *testing.T) {
	s := newTestServer(t, true)
	assertError(t, s.do(t, http.MethodGet, "/categories/7/questions", nil), http.StatusNotFound, "resource not found")
	assertError(t, s.do(t, http.MethodGet, "/categories/6/questions?page=2", nil), http.StatusNotFound, "resource not found")
	assertError(t, s.do(t, http.MethodGet, "/categories/6/questions?page=9223372036854775807", nil), http.StatusNotFound, "resource not found")
}

func TestPlayQuizSkipsPrevious(t *testing.T) {
	s := newTestServer(t, true)

	for i := 0; i < 20; i++ {
		w := s.do(t, http.MethodPost, "/quizzes", map[string]any{
			"previous_questions": []int{2},
			"quiz_category":      map[string]any{"type": "click", "id": 0},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[PlayQuizResponse](t, w)
		assert.True(t, body.Success)
		require.NotNil(t, body.Question)
		assert.NotEqual(t, uint(2), body.Question.ID)
	}
}

func TestPlayQuizUntilExhausted(t *testing.T) {
	s := newTestServer(t, true)

	previous := []uint{}
	for {
		w := s.do(t, http.MethodPost, "/quizzes", map[string]any{
			"previous_questions": previous,
			"quiz_category":      map[string]any{"type": "Sports", "id": "6"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[PlayQuizResponse](t, w)
		assert.True(t, body.Success)
		if body.Question == nil {
			break
		}
		assert.NotContains(t, previous, body.Question.ID)
		previous = append(previous, body.Question.ID)
		require.LessOrEqual(t, len(previous), 2)
	}
	assert.Len(t, previous, 2)
}

func TestPlayQuizNullQuestionIsEncoded(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodPost, "/quizzes", map[string]any{
		"previous_questions": []int{10, 11},
		"quiz_category":      map[string]any{"id": 6},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"question":null}`, w.Body.String())
}

func TestPlayQuizMalformed(t *testing.T) {
	s := newTestServer(t, true)
	assertError(t, s.do(t, http.MethodPost, "/quizzes", "{"), http.StatusUnprocessableEntity, "unprocessable")
	assertError(t, s.do(t, http.MethodPost, "/quizzes", map[string]any{"previous_questions": []int{}}), http.StatusUnprocessableEntity, "unprocessable")
	assertError(t, s.do(t, http.MethodPost, "/quizzes", map[string]any{"quiz_category": map[string]any{"id": "science"}, "previous_questions": []int{}}), http.StatusUnprocessableEntity, "unprocessable")
	assertError(t, s.do(t, http.MethodPost, "/quizzes", map[string]any{"quiz_category": map[string]any{}, "previous_questions": []int{}}), http.StatusUnprocessableEntity, "unprocessable")
	assertError(t, s.do(t, http.MethodPost, "/quizzes", map[string]any{"quiz_category": map[string]any{"id": nil}, "previous_questions": []int{}}), http.StatusUnprocessableEntity, "unprocessable")
	assertError(t, s.do(t, http.MethodPost, "/quizzes", map[string]any{"quiz_category": map[string]any{"id": 0}}), http.StatusUnprocessableEntity, "unprocessable")
	assertError(t, s.do(t, http.MethodPost, "/quizzes", map[string]any{"quiz_category": map[string]any{"id": 0}, "previous_questions": nil}), http.StatusUnprocessableEntity, "unprocessable")
}

func TestPlayQuizEmptyPreviousQuestions(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(t, http.MethodPost, "/quizzes", map[string]any{
		"quiz_category":      map[string]any{"id": 0},
		"previous_questions": []int{},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotNil(t, decode[PlayQuizResponse](t, w).Question)
}

func TestStorageFailures(t *testing.T) {
	s := newTestServer(t, true)
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	assertError(t, s.do(t, http.MethodGet, "/categories", nil), http.StatusInternalServerError, "internal server error")
	assertError(t, s.do(t, http.MethodGet, "/questions", nil), http.StatusInternalServerError, "internal server error")
	assertError(t, s.do(t, http.MethodGet, "/categories/6/questions", nil), http.StatusInternalServerError, "internal server error")
	assertError(t, s.do(t, http.MethodPost, "/questions/search", map[string]any{"searchTerm": "which"}), http.StatusInternalServerError, "internal server error")

	assertError(t, s.do(t, http.MethodDelete, "/questions/21", nil), http.StatusUnprocessableEntity, "unprocessable")
	assertError(t, s.do(t, http.MethodPost, "/questions/submit", map[string]any{
		"question": "Who discovered penicillin?",
		"answer":   "Alexander Fleming",
	}), http.StatusUnprocessableEntity, "unprocessable")
	assertError(t, s.do(t, http.MethodPost, "/quizzes", map[string]any{
		"quiz_category":      map[string]any{"id": 0},
		"previous_questions": []int{},
	}), http.StatusUnprocessableEntity, "unprocessable")
}

func TestCORSHeaders(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = s.do(t, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = s.do(t, http.MethodGet, "/questions?page=1000", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
