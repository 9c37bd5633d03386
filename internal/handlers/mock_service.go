package handlers

import (
	"context"
	"net/http"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser models.User
	signUpErr  error
	loginUser  models.User
	loginPair  service.TokenPair
	loginErr   error
	logoutErr  error
	refreshOut service.TokenPair
	refreshErr error
	authUserID string
	authErr    error

	lastSignUp       service.SignUpInput
	lastLoginEmail   string
	lastLoginPass    string
	lastLogoutUserID string
	lastLogoutToken  string
	lastRefreshToken string
	lastAccessToken  string
}

func (m *mockAuth) SignUp(_ context.Context, in service.SignUpInput) (models.User, error) {
	m.lastSignUp = in
	return m.signUpUser, m.signUpErr
}
func (m *mockAuth) Login(_ context.Context, email, password string) (models.User, service.TokenPair, error) {
	m.lastLoginEmail = email
	m.lastLoginPass = password
	return m.loginUser, m.loginPair, m.loginErr
}
func (m *mockAuth) Logout(_ context.Context, userID, refreshToken string) error {
	m.lastLogoutUserID = userID
	m.lastLogoutToken = refreshToken
	return m.logoutErr
}
func (m *mockAuth) Refresh(_ context.Context, refreshToken string) (service.TokenPair, error) {
	m.lastRefreshToken = refreshToken
	return m.refreshOut, m.refreshErr
}
func (m *mockAuth) Authenticate(_ context.Context, accessToken string) (string, error) {
	m.lastAccessToken = accessToken
	return m.authUserID, m.authErr
}

type mockAccounts struct {
	getUser    models.User
	getErr     error
	updateUser models.User
	updateErr  error

	lastGetTarget    string
	lastUpdateTarget string
	lastUpdate       service.ProfileUpdate
}

func (m *mockAccounts) GetProfile(_ context.Context, authUserID, targetID string) (models.User, error) {
	m.lastGetTarget = targetID
	return m.getUser, m.getErr
}
func (m *mockAccounts) UpdateProfile(_ context.Context, authUserID, targetID string, in service.ProfileUpdate) (models.User, error) {
	m.lastUpdateTarget = targetID
	m.lastUpdate = in
	return m.updateUser, m.updateErr
}

type mockIncomes struct {
	listOut   []models.Income
	listErr   error
	createOut models.Income
	createErr error
	getOut    models.Income
	getErr    error
	updateOut models.Income
	updateErr error
	deleteErr error

	lastUserID string
	lastID     string
	lastCreate service.IncomeInput
	lastUpdate service.IncomeUpdate
}

func (m *mockIncomes) List(_ context.Context, userID string) ([]models.Income, error) {
	m.lastUserID = userID
	return m.listOut, m.listErr
}
func (m *mockIncomes) Create(_ context.Context, userID string, in service.IncomeInput) (models.Income, error) {
	m.lastUserID = userID
	m.lastCreate = in
	return m.createOut, m.createErr
}
func (m *mockIncomes) Get(_ context.Context, userID, id string) (models.Income, error) {
	m.lastUserID = userID
	m.lastID = id
	return m.getOut, m.getErr
}
func (m *mockIncomes) Update(_ context.Context, userID, id string, in service.IncomeUpdate) (models.Income, error) {
	m.lastUserID = userID
	m.lastID = id
	m.lastUpdate = in
	return m.updateOut, m.updateErr
}
func (m *mockIncomes) Delete(_ context.Context, userID, id string) error {
	m.lastUserID = userID
	m.lastID = id
	return m.deleteErr
}

type mockExpenditures struct {
	listOut   []models.Expenditure
	listErr   error
	createOut models.Expenditure
	createErr error
	getOut    models.Expenditure
	getErr    error
	updateOut models.Expenditure
	updateErr error
	deleteErr error

	lastUserID string
	lastID     string
	lastCreate service.ExpenditureInput
	lastUpdate service.ExpenditureUpdate
}

func (m *mockExpenditures) List(_ context.Context, userID string) ([]models.Expenditure, error) {
	m.lastUserID = userID
	return m.listOut, m.listErr
}
func (m *mockExpenditures) Create(_ context.Context, userID string, in service.ExpenditureInput) (models.Expenditure, error) {
	m.lastUserID = userID
	m.lastCreate = in
	return m.createOut, m.createErr
}
func (m *mockExpenditures) Get(_ context.Context, userID, id string) (models.Expenditure, error) {
	m.lastUserID = userID
	m.lastID = id
	return m.getOut, m.getErr
}
func (m *mockExpenditures) Update(_ context.Context, userID, id string, in service.ExpenditureUpdate) (models.Expenditure, error) {
	m.lastUserID = userID
	m.lastID = id
	m.lastUpdate = in
	return m.updateOut, m.updateErr
}
func (m *mockExpenditures) Delete(_ context.Context, userID, id string) error {
	m.lastUserID = userID
	m.lastID = id
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
