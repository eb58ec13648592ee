package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hazelhedmine/elememory-backend/auth"
	"github.com/hazelhedmine/elememory-backend/handlers"
	"github.com/hazelhedmine/elememory-backend/models"
	"github.com/hazelhedmine/elememory-backend/router"
)

const testSecret = "test-secret"

type testEnv struct {
	db     *gorm.DB
	mux    http.Handler
	tokens *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Deck{}, &models.Card{}))

	tokens := auth.NewTokenService(testSecret)
	h := &handlers.DBHandler{DB: db, Tokens: tokens}

	return &testEnv{db: db, mux: router.New(h, tokens), tokens: tokens}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// createUser registers a user through the API and returns its id.
func (e *testEnv) createUser(t *testing.T, username, password string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/users", map[string]string{
		"username":  username,
		"firstName": "Hazel",
		"lastName":  "Tan",
		"password":  password,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "createUser: %s", rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func (e *testEnv) createDeck(t *testing.T, name, userID string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/decks", map[string]string{
		"name":   name,
		"userId": userID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "createDeck: %s", rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func (e *testEnv) createCard(t *testing.T, question, answer, deckID string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/api/cards", map[string]string{
		"question": question,
		"answer":   answer,
		"deckId":   deckID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, "createCard: %s", rec.Body.String())
	return decodeBody(t, rec)["id"].(string)
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()

	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}
