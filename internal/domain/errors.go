package domain

import "errors"

// Not found
var (
	ErrItemNotFound         = errors.New("존재하지 않는 Item입니다.")
	ErrRegistrationNotFound = errors.New("완료처리 할 내역을 찾을 수 없습니다.")
	ErrPaymentNotFound      = errors.New("존재하지 않는 결제 내역입니다.")
	ErrUserNotFound         = errors.New("존재하지 않는 사용자입니다.")
)

// Conflict (business-rule violations)
var (
	ErrAlreadyRegistered      = errors.New("이미 등록한 Item이 존재합니다.")
	ErrOutsidePeriod          = errors.New("신청 가능 기간이 아닙니다.")
	ErrPaymentFailed          = errors.New("결제에 실패하였습니다. 재시도 부탁드립니다.")
	ErrWrongItemType          = errors.New("잘못된 타입의 Item에 대한 요청입니다.")
	ErrNotCompletable         = errors.New("완료 처리가 불가능한 상태입니다.")
	ErrNotPayable             = errors.New("결제 완료 처리가 불가능한 상태입니다.")
	ErrNotCancellable         = errors.New("결제 취소가 불가능한 상태입니다.")
	ErrCompletedNotRefundable = errors.New("이미 완료된 내역은 취소가 불가능합니다.")
	ErrCancelFailed           = errors.New("결제 취소에 실패하였습니다.")
	ErrRegistrationBusy       = errors.New("동일한 신청이 처리 중입니다. 잠시 후 다시 시도해주세요.")
	ErrEmailTaken             = errors.New("이미 존재하는 이메일입니다.")
)

// Unauthorized
var (
	ErrNotPaymentOwner    = errors.New("본인의 결제 내역만 취소가 가능합니다.")
	ErrInvalidCredentials = errors.New("이메일 또는 비밀번호가 올바르지 않습니다.")
	ErrTokenExpired       = errors.New("토큰이 만료되었습니다.")
	ErrInvalidToken       = errors.New("유효하지 않은 토큰입니다.")
)

var (
	ErrValidation = errors.New("validation error")
)
