package handlers

import (
	"context"
	"net/http"

	"daily_diet/internal/models"
	"daily_diet/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID    int
	signUpErr   error
	signInToken string
	signInErr   error
	ident       models.Identity
	parseErr    error
	signOutErr  error

	lastSignUpUsername string
	lastSignUpPassword string
	lastSignInUsername string
	lastSignInPassword string
	lastParseToken     string
	lastSignOutSession string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) SignIn(ctx context.Context, username, password string) (string, error) {
	m.lastSignInUsername = username
	m.lastSignInPassword = password
	return m.signInToken, m.signInErr
}
func (m *mockAuth) ParseSession(ctx context.Context, token string) (models.Identity, error) {
	m.lastParseToken = token
	return m.ident, m.parseErr
}
func (m *mockAuth) SignOut(ctx context.Context, sessionID string) error {
	m.lastSignOutSession = sessionID
	return m.signOutErr
}

type mockMeals struct {
	meal    models.Meal
	getErr  error
	created models.Meal
	creErr  error
	updated models.Meal
	updErr  error
	delErr  error
	list    service.UserMeals
	listErr error

	lastGetID      int
	lastCreateUser int
	lastCreate     service.MealInput
	lastUpdateUser int
	lastUpdateMeal int
	lastUpdate     service.MealChanges
	lastDeleteUser int
	lastDeleteMeal int
	lastListUser   int
	createCalls    int
}

func (m *mockMeals) Get(ctx context.Context, id int) (models.Meal, error) {
	m.lastGetID = id
	return m.meal, m.getErr
}
func (m *mockMeals) Create(ctx context.Context, userID int, in service.MealInput) (models.Meal, error) {
	m.createCalls++
	m.lastCreateUser = userID
	m.lastCreate = in
	return m.created, m.creErr
}
func (m *mockMeals) Update(ctx context.Context, userID, mealID int, in service.MealChanges) (models.Meal, error) {
	m.lastUpdateUser = userID
	m.lastUpdateMeal = mealID
	m.lastUpdate = in
	return m.updated, m.updErr
}
func (m *mockMeals) Delete(ctx context.Context, userID, mealID int) error {
	m.lastDeleteUser = userID
	m.lastDeleteMeal = mealID
	return m.delErr
}
func (m *mockMeals) ListByUser(ctx context.Context, userID int) (service.UserMeals, error) {
	m.lastListUser = userID
	return m.list, m.listErr
}

// ---- Shared Test Helpers ----

const testCookie = "session"

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, Config{CookieName: testCookie})
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func withSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	return req
}
