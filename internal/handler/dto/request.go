package dto

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type EnrollRequest struct {
	Amount int64  `json:"amount" binding:"required,gt=0"`
	Method string `json:"payment_method" binding:"required,oneof=CARD BANK_TRANSFER KAKAO_PAY"`
}
