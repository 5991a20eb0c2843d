package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/admin"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/catalog"
	"hotelbooking/internal/modules/reservation"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type E2ETestSuite struct {
	router     *gin.Engine
	db         *gorm.DB
	jwtService *jwtsvc.Service
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	models := []interface{}{
		&domain.User{},
		&domain.Room{},
		&domain.Reservation{},
	}
	for _, model := range models {
		require.NoError(t, db.AutoMigrate(model), fmt.Sprintf("Failed to migrate %T", model))
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	j := jwtsvc.New("e2e-test-secret", time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	catalogHandler := catalog.NewHandler(catalog.NewService(roomRepo))
	reservationHandler := reservation.NewHandler(reservation.NewService(reservationRepo, roomRepo, nil))
	adminHandler := admin.NewHandler(admin.NewService(userRepo, roomRepo, reservationRepo))

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			reservationHandler.RegisterRoutes(protected)

			adminOnly := protected.Group("/")
			adminOnly.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminOnly)
			}
		}
	}

	return &E2ETestSuite{router: r, db: db, jwtService: j}
}

func (s *E2ETestSuite) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var parsed TestResponse
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	}
	return w, parsed
}

func (s *E2ETestSuite) createAdmin(t *testing.T) string {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	admin := &domain.User{
		Email:        "admin@hotel.local",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, repository.NewUserRepository(s.db).Create(t.Context(), admin))

	token, err := s.jwtService.GenerateToken(admin.ID, string(domain.RoleAdmin))
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) createRoom(t *testing.T, adminToken string, roomType string, price float64, available bool) int64 {
	w, resp := s.request(t, http.MethodPost, "/api/v1/admin/rooms", adminToken, gin.H{
		"type":            roomType,
		"price_per_night": price,
		"capacity":        2,
		"availability":    available,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	room := resp.Data["room"].(map[string]interface{})
	return int64(room["id"].(float64))
}

func (s *E2ETestSuite) registerAndLogin(t *testing.T, email string) string {
	w, resp := s.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     "Guest",
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp.Data["token"].(string)
}

func TestBookingFlow(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.createAdmin(t)
	roomID := s.createRoom(t, adminToken, "Standard", 80, true)

	userA := s.registerAndLogin(t, "a@example.com")
	userB := s.registerAndLogin(t, "b@example.com")

	// rooms are publicly listable
	w, resp := s.request(t, http.MethodGet, "/api/v1/rooms", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["rooms"], 1)

	// user A books [2025-06-01, 2025-06-05)
	w, resp = s.request(t, http.MethodPost, "/api/v1/reservations", userA, gin.H{
		"room_id":    roomID,
		"start_date": "2025-06-01T00:00:00Z",
		"end_date":   "2025-06-05T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := resp.Data["reservation"].(map[string]interface{})
	assert.Equal(t, "booked", created["status"])
	assert.NotEmpty(t, created["confirmation_code"])
	reservationID := int64(created["id"].(float64))

	// user B overlaps [2025-06-03, 2025-06-07) and is rejected
	w, resp = s.request(t, http.MethodPost, "/api/v1/reservations", userB, gin.H{
		"room_id":    roomID,
		"start_date": "2025-06-03T00:00:00Z",
		"end_date":   "2025-06-07T00:00:00Z",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DATE_CONFLICT", resp.Error.Code)

	// adjacent range [2025-06-05, 2025-06-08) touches at the boundary and succeeds
	w, _ = s.request(t, http.MethodPost, "/api/v1/reservations", userB, gin.H{
		"room_id":    roomID,
		"start_date": "2025-06-05T00:00:00Z",
		"end_date":   "2025-06-08T00:00:00Z",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// equal start and end dates are rejected
	w, resp = s.request(t, http.MethodPost, "/api/v1/reservations", userB, gin.H{
		"room_id":    roomID,
		"start_date": "2025-06-10T00:00:00Z",
		"end_date":   "2025-06-10T00:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_DATE_RANGE", resp.Error.Code)

	// user B cannot cancel user A's reservation
	w, _ = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/reservations/%d", reservationID), userB, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// user A cancels, then the same dates can be booked again
	w, resp = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/reservations/%d", reservationID), userA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cancelled := resp.Data["reservation"].(map[string]interface{})
	assert.Equal(t, "cancelled", cancelled["status"])

	w, _ = s.request(t, http.MethodPost, "/api/v1/reservations", userB, gin.H{
		"room_id":    roomID,
		"start_date": "2025-06-01T00:00:00Z",
		"end_date":   "2025-06-05T00:00:00Z",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// history shows both of user B's reservations with room data
	w, resp = s.request(t, http.MethodGet, "/api/v1/reservations/history", userB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	history := resp.Data["reservations"].([]interface{})
	require.Len(t, history, 2)
	first := history[0].(map[string]interface{})
	assert.Equal(t, "Standard", first["room_type"])
}

func TestBookingUnavailableRoom(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.createAdmin(t)
	roomID := s.createRoom(t, adminToken, "Standard", 80, false)
	user := s.registerAndLogin(t, "u@example.com")

	w, resp := s.request(t, http.MethodPost, "/api/v1/reservations", user, gin.H{
		"room_id":    roomID,
		"start_date": "2025-06-01T00:00:00Z",
		"end_date":   "2025-06-05T00:00:00Z",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ROOM_UNAVAILABLE", resp.Error.Code)
}

func TestBookingUnknownRoom(t *testing.T) {
	s := setupTestSuite(t)

	s.createAdmin(t)
	user := s.registerAndLogin(t, "u@example.com")

	w, resp := s.request(t, http.MethodPost, "/api/v1/reservations", user, gin.H{
		"room_id":    12345,
		"start_date": "2025-06-01T00:00:00Z",
		"end_date":   "2025-06-05T00:00:00Z",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	s := setupTestSuite(t)

	s.createAdmin(t)
	user := s.registerAndLogin(t, "u@example.com")

	w, _ := s.request(t, http.MethodGet, "/api/v1/admin/reservations", user, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = s.request(t, http.MethodGet, "/api/v1/admin/reservations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminReservationOverride(t *testing.T) {
	s := setupTestSuite(t)

	adminToken := s.createAdmin(t)
	roomID := s.createRoom(t, adminToken, "Suite", 260, true)
	user := s.registerAndLogin(t, "u@example.com")

	w, resp := s.request(t, http.MethodPost, "/api/v1/reservations", user, gin.H{
		"room_id":    roomID,
		"start_date": "2025-06-01T00:00:00Z",
		"end_date":   "2025-06-05T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := resp.Data["reservation"].(map[string]interface{})
	reservationID := int64(created["id"].(float64))

	// admin can cancel someone else's reservation through the user endpoint
	w, _ = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/reservations/%d", reservationID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// and reactivate it through the override endpoint
	w, resp = s.request(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/reservations/%d", reservationID), adminToken, gin.H{
		"status": "booked",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := resp.Data["reservation"].(map[string]interface{})
	assert.Equal(t, "booked", updated["status"])

	// hard delete removes the record entirely
	w, _ = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/reservations/%d/record", reservationID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.request(t, http.MethodGet, "/api/v1/admin/reservations", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
