package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/handler/dto"
	hmocks "github.com/hooong/edu-api/internal/handler/mocks"
)

const testUserID = int64(1)

func setupRouter(t *testing.T) (*hmocks.MockAuthSvc, *hmocks.MockCatalogSvc, *hmocks.MockRegistrationSvc, *hmocks.MockPaymentSvc, http.Handler) {
	t.Helper()
	authSvc := hmocks.NewMockAuthSvc(t)
	catalogSvc := hmocks.NewMockCatalogSvc(t)
	registrationSvc := hmocks.NewMockRegistrationSvc(t)
	paymentSvc := hmocks.NewMockPaymentSvc(t)

	h := NewHandler(authSvc, catalogSvc, registrationSvc, paymentSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/signup", h.Signup)
		api.POST("/login", h.Login)

		protected := api.Group("")
		protected.Use(func(c *ginext.Context) {
			c.Set("user_id", testUserID)
			c.Next()
		})
		{
			protected.GET("/courses", h.ListCourses)
			protected.GET("/tests", h.ListTests)
			protected.POST("/courses/:id/enroll", h.EnrollCourse)
			protected.POST("/tests/:id/apply", h.ApplyTest)
			protected.POST("/courses/:id/complete", h.CompleteCourse)
			protected.POST("/tests/:id/complete", h.CompleteTest)
			protected.POST("/payments/:id/cancel", h.CancelPayment)
			protected.GET("/me/payments", h.ListMyPayments)
		}
	}

	return authSvc, catalogSvc, registrationSvc, paymentSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Signup_Success(t *testing.T) {
	authSvc, _, _, _, r := setupRouter(t)

	authSvc.EXPECT().Signup(mock.Anything, domain.SignupInput{
		Email:    "student@example.com",
		Password: "secret-pw-1",
	}).Return(int64(1), nil)

	w := doJSON(t, r, http.MethodPost, "/api/signup", dto.SignupRequest{
		Email:    "student@example.com",
		Password: "secret-pw-1",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
}

func TestHandler_Signup_EmailTaken(t *testing.T) {
	authSvc, _, _, _, r := setupRouter(t)

	authSvc.EXPECT().Signup(mock.Anything, mock.Anything).Return(int64(0), domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/signup", dto.SignupRequest{
		Email:    "student@example.com",
		Password: "secret-pw-1",
	})

	require.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrEmailTaken.Error(), resp.Error)
}

func TestHandler_Signup_InvalidBody(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/signup", map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	authSvc, _, _, _, r := setupRouter(t)

	authSvc.EXPECT().Login(mock.Anything, "student@example.com", "secret-pw-1").
		Return("jwt-token", nil)

	w := doJSON(t, r, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    "student@example.com",
		Password: "secret-pw-1",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "jwt-token", resp.AccessToken)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	authSvc, _, _, _, r := setupRouter(t)

	authSvc.EXPECT().Login(mock.Anything, "student@example.com", "wrong-pw").
		Return("", domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/login", dto.LoginRequest{
		Email:    "student@example.com",
		Password: "wrong-pw",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Catalog ---

func TestHandler_ListCourses_Success(t *testing.T) {
	_, catalogSvc, _, _, r := setupRouter(t)

	now := time.Now().UTC()
	items := []*domain.ItemWithStats{
		{
			Item: domain.Item{
				ID:      2,
				Title:   "백엔드 기초 강의",
				Type:    domain.ItemTypeCourse,
				StartAt: now.Add(-time.Hour),
				EndAt:   now.Add(time.Hour),
			},
			RegistrationCount: 3,
			IsRegistered:      true,
		},
	}

	catalogSvc.EXPECT().ListCourses(mock.Anything, domain.ItemListParams{
		UserID: testUserID,
		Page:   2,
		Size:   5,
		Status: domain.ItemStatusAvailable,
		Sort:   domain.ItemSortPopular,
	}).Return(items, 11, nil)

	w := doJSON(t, r, http.MethodGet, "/api/courses?page=2&size=5&status=AVAILABLE&sort=POPULAR", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ItemListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 5, resp.Size)
	assert.Equal(t, 11, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].ID)
	assert.True(t, resp.Items[0].IsRegistered)
	assert.Equal(t, 3, resp.Items[0].RegistrationCount)
}

func TestHandler_ListCourses_InvalidStatus(t *testing.T) {
	_, catalogSvc, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/courses?status=SOMETHING", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	catalogSvc.AssertNotCalled(t, "ListCourses", mock.Anything, mock.Anything)
}

func TestHandler_ListTests_Success(t *testing.T) {
	_, catalogSvc, _, _, r := setupRouter(t)

	catalogSvc.EXPECT().ListTests(mock.Anything, domain.ItemListParams{
		UserID: testUserID,
		Page:   1,
		Size:   10,
	}).Return(nil, 0, nil)

	w := doJSON(t, r, http.MethodGet, "/api/tests", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Registrations ---

func TestHandler_EnrollCourse_Success(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().Register(mock.Anything, testUserID, int64(2), domain.ItemTypeCourse,
		domain.PaymentInfo{Amount: 30000, Method: domain.PaymentMethodCard}).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/courses/2/enroll", dto.EnrollRequest{
		Amount: 30000,
		Method: "CARD",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_EnrollCourse_AlreadyRegistered(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().Register(mock.Anything, testUserID, int64(2), domain.ItemTypeCourse, mock.Anything).
		Return(domain.ErrAlreadyRegistered)

	w := doJSON(t, r, http.MethodPost, "/api/courses/2/enroll", dto.EnrollRequest{
		Amount: 30000,
		Method: "CARD",
	})

	require.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrAlreadyRegistered.Error(), resp.Error)
}

func TestHandler_EnrollCourse_Busy(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().Register(mock.Anything, testUserID, int64(2), domain.ItemTypeCourse, mock.Anything).
		Return(domain.ErrRegistrationBusy)

	w := doJSON(t, r, http.MethodPost, "/api/courses/2/enroll", dto.EnrollRequest{
		Amount: 30000,
		Method: "CARD",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_EnrollCourse_InvalidItemID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/courses/abc/enroll", dto.EnrollRequest{
		Amount: 30000,
		Method: "CARD",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApplyTest_InvalidMethod(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/tests/3/apply", map[string]any{
		"amount":         30000,
		"payment_method": "CASH",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	registrationSvc.AssertNotCalled(t, "Register",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_CompleteCourse_Success(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().Complete(mock.Anything, testUserID, int64(2), domain.ItemTypeCourse).
		Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/courses/2/complete", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_CompleteTest_WrongItemType(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().Complete(mock.Anything, testUserID, int64(2), domain.ItemTypeTest).
		Return(domain.ErrWrongItemType)

	w := doJSON(t, r, http.MethodPost, "/api/tests/2/complete", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CompleteCourse_NotFound(t *testing.T) {
	_, _, registrationSvc, _, r := setupRouter(t)

	registrationSvc.EXPECT().Complete(mock.Anything, testUserID, int64(2), domain.ItemTypeCourse).
		Return(domain.ErrRegistrationNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/courses/2/complete", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Payments ---

func TestHandler_CancelPayment_Success(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	paymentSvc.EXPECT().Cancel(mock.Anything, int64(20), testUserID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/payments/20/cancel", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_CancelPayment_NotOwner(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	paymentSvc.EXPECT().Cancel(mock.Anything, int64(20), testUserID).
		Return(domain.ErrNotPaymentOwner)

	w := doJSON(t, r, http.MethodPost, "/api/payments/20/cancel", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ErrNotPaymentOwner.Error(), resp.Error)
}

func TestHandler_CancelPayment_Completed(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	paymentSvc.EXPECT().Cancel(mock.Anything, int64(20), testUserID).
		Return(domain.ErrCompletedNotRefundable)

	w := doJSON(t, r, http.MethodPost, "/api/payments/20/cancel", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListMyPayments_Success(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	now := time.Now().UTC()
	details := []*domain.PaymentDetail{
		{
			Payment: domain.Payment{
				ID:             20,
				RegistrationID: 10,
				Amount:         30000,
				Status:         domain.PaymentStatusPaid,
				Method:         domain.PaymentMethodCard,
				PaidAt:         &now,
				CreatedAt:      now,
			},
			Registration: domain.Registration{ID: 10, ItemType: domain.ItemTypeCourse},
			ItemTitle:    "백엔드 기초 강의",
		},
	}

	paymentSvc.EXPECT().ListByUser(mock.Anything, domain.PaymentListParams{
		UserID: testUserID,
		Page:   1,
		Size:   10,
		Status: domain.PaymentStatusPaid,
	}).Return(details, 1, nil)

	w := doJSON(t, r, http.MethodGet, "/api/me/payments?status=PAID", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.PaymentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "백엔드 기초 강의", resp.Payments[0].ItemTitle)
	assert.Equal(t, "PAID", resp.Payments[0].Status)
}

func TestHandler_ListMyPayments_RangeIncludesEndDay(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Nanosecond)

	paymentSvc.EXPECT().ListByUser(mock.Anything, domain.PaymentListParams{
		UserID: testUserID,
		Page:   1,
		Size:   10,
		From:   &from,
		To:     &to,
	}).Return(nil, 0, nil)

	w := doJSON(t, r, http.MethodGet, "/api/me/payments?from=2026-03-01&to=2026-03-01", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListMyPayments_InvalidDate(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/me/payments?from=03-01-2026", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	paymentSvc.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestHandler_InternalError(t *testing.T) {
	_, _, _, paymentSvc, r := setupRouter(t)

	paymentSvc.EXPECT().ListByUser(mock.Anything, mock.Anything).
		Return(nil, 0, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/me/payments", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
