package dto

import (
	"time"

	"github.com/hooong/edu-api/internal/domain"
)

type SignupResponse struct {
	ID int64 `json:"id"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type ItemResponse struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Type              string `json:"item_type"`
	StartAt           string `json:"start_at"`
	EndAt             string `json:"end_at"`
	RegistrationCount int    `json:"registration_count"`
	IsRegistered      bool   `json:"is_registered"`
	CreatedAt         string `json:"created_at"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int            `json:"total"`
}

type PaymentResponse struct {
	ID          int64  `json:"id"`
	ItemTitle   string `json:"item_title"`
	ItemType    string `json:"item_type"`
	Amount      int64  `json:"amount"`
	Status      string `json:"status"`
	Method      string `json:"method"`
	PaidAt      string `json:"paid_at,omitempty"`
	CancelledAt string `json:"cancelled_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Page     int               `json:"page"`
	Size     int               `json:"size"`
	Total    int               `json:"total"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToItemResponse(it *domain.ItemWithStats) ItemResponse {
	return ItemResponse{
		ID:                it.ID,
		Title:             it.Title,
		Type:              string(it.Type),
		StartAt:           it.StartAt.Format(time.RFC3339),
		EndAt:             it.EndAt.Format(time.RFC3339),
		RegistrationCount: it.RegistrationCount,
		IsRegistered:      it.IsRegistered,
		CreatedAt:         it.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponse(p *domain.PaymentDetail) PaymentResponse {
	resp := PaymentResponse{
		ID:        p.ID,
		ItemTitle: p.ItemTitle,
		ItemType:  string(p.Registration.ItemType),
		Amount:    p.Amount,
		Status:    string(p.Status),
		Method:    string(p.Method),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.PaidAt != nil {
		resp.PaidAt = p.PaidAt.Format(time.RFC3339)
	}
	if p.CancelledAt != nil {
		resp.CancelledAt = p.CancelledAt.Format(time.RFC3339)
	}
	return resp
}
