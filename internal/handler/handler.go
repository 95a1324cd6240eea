package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/hooong/edu-api/internal/domain"
	"github.com/hooong/edu-api/internal/handler/dto"
	"github.com/hooong/edu-api/internal/middleware"
)

const dateLayout = "2006-01-02"

type AuthSvc interface {
	Signup(ctx context.Context, input domain.SignupInput) (int64, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type CatalogSvc interface {
	ListCourses(ctx context.Context, p domain.ItemListParams) ([]*domain.ItemWithStats, int, error)
	ListTests(ctx context.Context, p domain.ItemListParams) ([]*domain.ItemWithStats, int, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, userID, itemID int64, itemType domain.ItemType, info domain.PaymentInfo) error
	Complete(ctx context.Context, userID, itemID int64, itemType domain.ItemType) error
}

type PaymentSvc interface {
	Cancel(ctx context.Context, paymentID, userID int64) error
	ListByUser(ctx context.Context, params domain.PaymentListParams) ([]*domain.PaymentDetail, int, error)
}

type Handler struct {
	authService         AuthSvc
	catalogService      CatalogSvc
	registrationService RegistrationSvc
	paymentService      PaymentSvc
}

func NewHandler(authService AuthSvc, catalogService CatalogSvc, registrationService RegistrationSvc, paymentService PaymentSvc) *Handler {
	return &Handler{
		authService:         authService,
		catalogService:      catalogService,
		registrationService: registrationService,
		paymentService:      paymentService,
	}
}

// Auth

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.authService.Signup(c.Request.Context(), domain.SignupInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{ID: id})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token})
}

// Catalog

func (h *Handler) ListCourses(c *ginext.Context) {
	h.listItems(c, h.catalogService.ListCourses)
}

func (h *Handler) ListTests(c *ginext.Context) {
	h.listItems(c, h.catalogService.ListTests)
}

func (h *Handler) listItems(c *ginext.Context, list func(context.Context, domain.ItemListParams) ([]*domain.ItemWithStats, int, error)) {
	params, err := itemListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items, total, err := list(c.Request.Context(), params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ItemListResponse{
		Items: make([]dto.ItemResponse, 0, len(items)),
		Page:  params.Page,
		Size:  params.Size,
		Total: total,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.ToItemResponse(it))
	}

	c.JSON(http.StatusOK, resp)
}

func itemListParams(c *ginext.Context) (domain.ItemListParams, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return domain.ItemListParams{}, errors.New("invalid page")
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		return domain.ItemListParams{}, errors.New("invalid size")
	}

	params := domain.ItemListParams{
		UserID: middleware.UserID(c),
		Page:   page,
		Size:   size,
	}

	switch status := c.Query("status"); status {
	case "":
	case string(domain.ItemStatusAvailable):
		params.Status = domain.ItemStatusAvailable
	default:
		return domain.ItemListParams{}, errors.New("invalid status filter")
	}

	switch sort := c.Query("sort"); sort {
	case "":
	case string(domain.ItemSortCreated), string(domain.ItemSortPopular):
		params.Sort = domain.ItemSort(sort)
	default:
		return domain.ItemListParams{}, errors.New("invalid sort")
	}

	return params, nil
}

// Registrations

func (h *Handler) EnrollCourse(c *ginext.Context) {
	h.register(c, domain.ItemTypeCourse)
}

func (h *Handler) ApplyTest(c *ginext.Context) {
	h.register(c, domain.ItemTypeTest)
}

func (h *Handler) register(c *ginext.Context, itemType domain.ItemType) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid item id"})
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	info := domain.PaymentInfo{
		Amount: req.Amount,
		Method: domain.PaymentMethod(req.Method),
	}

	if err := h.registrationService.Register(c.Request.Context(), middleware.UserID(c), itemID, itemType, info); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CompleteCourse(c *ginext.Context) {
	h.complete(c, domain.ItemTypeCourse)
}

func (h *Handler) CompleteTest(c *ginext.Context) {
	h.complete(c, domain.ItemTypeTest)
}

func (h *Handler) complete(c *ginext.Context, itemType domain.ItemType) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid item id"})
		return
	}

	if err := h.registrationService.Complete(c.Request.Context(), middleware.UserID(c), itemID, itemType); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Payments

func (h *Handler) CancelPayment(c *ginext.Context) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	if err := h.paymentService.Cancel(c.Request.Context(), paymentID, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListMyPayments(c *ginext.Context) {
	params, err := paymentListParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payments, total, err := h.paymentService.ListByUser(c.Request.Context(), params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.PaymentListResponse{
		Payments: make([]dto.PaymentResponse, 0, len(payments)),
		Page:     params.Page,
		Size:     params.Size,
		Total:    total,
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, dto.ToPaymentResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func paymentListParams(c *ginext.Context) (domain.PaymentListParams, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return domain.PaymentListParams{}, errors.New("invalid page")
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		return domain.PaymentListParams{}, errors.New("invalid size")
	}

	params := domain.PaymentListParams{
		UserID: middleware.UserID(c),
		Page:   page,
		Size:   size,
	}

	switch status := c.Query("status"); status {
	case "":
	case string(domain.PaymentStatusPaid), string(domain.PaymentStatusCanceled):
		params.Status = domain.PaymentStatus(status)
	default:
		return domain.PaymentListParams{}, errors.New("invalid status filter")
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return domain.PaymentListParams{}, errors.New("invalid from date, expected YYYY-MM-DD")
		}
		params.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return domain.PaymentListParams{}, errors.New("invalid to date, expected YYYY-MM-DD")
		}
		// the range is inclusive of the whole end day
		t = t.Add(24*time.Hour - time.Nanosecond)
		params.To = &t
	}

	return params, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrOutsidePeriod),
		errors.Is(err, domain.ErrPaymentFailed),
		errors.Is(err, domain.ErrWrongItemType),
		errors.Is(err, domain.ErrNotCompletable),
		errors.Is(err, domain.ErrNotPayable),
		errors.Is(err, domain.ErrNotCancellable),
		errors.Is(err, domain.ErrCompletedNotRefundable),
		errors.Is(err, domain.ErrCancelFailed),
		errors.Is(err, domain.ErrRegistrationBusy),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotPaymentOwner),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
