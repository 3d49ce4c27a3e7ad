package http

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/service"
	"github.com/resumekit/resumekit/internal/store"
	"github.com/resumekit/resumekit/models"
)

// The handler tests run against the real service implementations wired to
// in-memory collaborators, so every assertion covers the full path from the
// router down to the repository boundary.

const (
	testSignKey       = "test-sign-key"
	testIssuer        = "resumekit-test"
	testGatewaySecret = "gateway-secret"
)

// memUserRepo is an in-memory store.UserRepository with the same error
// contract as the PostgreSQL implementation.
type memUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User // keyed by email
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (m *memUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Email]; exists {
		return models.User{}, store.ErrEmailAlreadyExists
	}

	m.nextID++
	user.UserID = m.nextID
	user.CreatedAt = time.Now()
	m.users[user.Email] = &user

	return user, nil
}

func (m *memUserRepo) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[email]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return *u, nil
}

func (m *memUserRepo) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.UserID == userID {
			return *u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memUserRepo) SetResetCode(_ context.Context, userID int64, code string, expires time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.UserID == userID {
			u.OTP = code
			u.OTPExpires = &expires
			return nil
		}
	}
	return store.ErrNoUserWasFound
}

func (m *memUserRepo) ClearResetCode(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.UserID == userID {
			u.OTP = ""
			u.OTPExpires = nil
		}
	}
	return nil
}

func (m *memUserRepo) ResetPassword(_ context.Context, email, code, newHash string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[email]
	if !ok || u.OTP == "" || u.OTP != code || u.OTPExpires == nil || !u.OTPExpires.After(now) {
		return store.ErrResetCodeMismatch
	}

	u.PasswordHash = newHash
	u.OTP = ""
	u.OTPExpires = nil

	return nil
}

func (m *memUserRepo) IncrementDownloadCount(_ context.Context, userID int64) (models.DownloadStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.UserID == userID {
			if !u.IsPremium && u.DownloadCount >= 1 {
				return models.DownloadStatus{}, store.ErrDownloadLimitReached
			}
			u.DownloadCount++
			return models.DownloadStatus{DownloadCount: u.DownloadCount, IsPremium: u.IsPremium}, nil
		}
	}
	return models.DownloadStatus{}, store.ErrDownloadLimitReached
}

func (m *memUserRepo) ListUsers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

func (m *memUserRepo) Stats(_ context.Context) (models.AdminStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stats models.AdminStats
	stats.TotalUsers = int64(len(m.users))
	for _, u := range m.users {
		if u.IsPremium {
			stats.PremiumUsers++
		}
		stats.TotalDownloads += int64(u.DownloadCount)
	}
	return stats, nil
}

// memMailer captures deliveries and optionally fails them.
type memMailer struct {
	mu       sync.Mutex
	sendErr  error
	lastTo   string
	lastCode string
}

func (m *memMailer) IsEnabled() bool { return true }

func (m *memMailer) SendResetCode(to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sendErr != nil {
		return m.sendErr
	}
	m.lastTo = to
	m.lastCode = code
	return nil
}

// memGateway signs and verifies with a fixed secret, like the real gateway,
// without the Orders API round trip.
type memGateway struct {
	createOrderErr error
}

func (g *memGateway) CreateOrder(_ context.Context) (models.PaymentOrder, error) {
	if g.createOrderErr != nil {
		return models.PaymentOrder{}, g.createOrderErr
	}
	return models.PaymentOrder{ID: "order_test_1", Amount: 9900, Currency: "INR", Status: "created"}, nil
}

func (g *memGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return signature == signCheckout(orderID, paymentID)
}

// signCheckout produces the signature a genuine checkout callback would carry.
func signCheckout(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testGatewaySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// testEnv bundles the handler under test with its mutable collaborators.
type testEnv struct {
	handler *Handler
	repo    *memUserRepo
	mailer  *memMailer
	gateway *memGateway
}

func newTestEnv() *testEnv {
	repo := newMemUserRepo()
	mail := &memMailer{}
	gw := &memGateway{}
	log := logger.Nop()

	appCfg := config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: time.Hour,
	}

	services := &service.Services{
		AuthService:        service.NewAuthService(repo, appCfg, log),
		ResetService:       service.NewResetService(repo, mail, log),
		EntitlementService: service.NewEntitlementService(repo, log),
		PaymentService:     service.NewPaymentService(gw, log),
		AdminService:       service.NewAdminService(repo, log),
	}

	return &testEnv{
		handler: NewHandler(services, config.Server{}, log),
		repo:    repo,
		mailer:  mail,
		gateway: gw,
	}
}

var errMailDown = errors.New("smtp refused")

// doJSON performs one request against the router and returns the recorder.
// An empty token leaves the Authorization header unset.
func doJSON(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

// decodeBody unmarshals a recorded JSON response body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// registerUser drives the register endpoint and returns the issued account.
func registerUser(t *testing.T, router http.Handler, fullName, email, password string) models.AuthResponse {
	t.Helper()

	rec := doJSON(router, http.MethodPost, "/api/auth/register", "",
		`{"fullName":"`+fullName+`","email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, "register failed: %s", rec.Body.String())

	var account models.AuthResponse
	decodeBody(t, rec, &account)
	require.NotEmpty(t, account.Token)

	return account
}
