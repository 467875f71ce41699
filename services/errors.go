package services

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// Upstream failure kinds observed by the dashboard
const (
	ErrKindTimeout      = "UPSTREAM_TIMEOUT"
	ErrKindNetwork      = "UPSTREAM_UNREACHABLE"
	ErrKindUnauthorized = "UNAUTHORIZED"
	ErrKindForbidden    = "FORBIDDEN"
	ErrKindNotFound     = "NOT_FOUND"
	ErrKindServer       = "UPSTREAM_ERROR"
	ErrKindBadShape     = "UNEXPECTED_RESPONSE"
)

// UpstreamError is a classified failure from the HomeCare API. Message is the
// fixed Lao string shown to the operator; none of these trigger a retry.
type UpstreamError struct {
	Kind       string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// upstreamMessages are the fixed localized strings, one per failure kind
var upstreamMessages = map[string]string{
	ErrKindTimeout:      "ການເຊື່ອມຕໍ່ໃຊ້ເວລາດົນເກີນໄປ, ກະລຸນາລອງໃໝ່ອີກຄັ້ງ",
	ErrKindNetwork:      "ບໍ່ສາມາດເຊື່ອມຕໍ່ຫາເຊີບເວີໄດ້",
	ErrKindUnauthorized: "ກະລຸນາເຂົ້າສູ່ລະບົບໃໝ່",
	ErrKindForbidden:    "ທ່ານບໍ່ມີສິດເຂົ້າເຖິງຂໍ້ມູນນີ້",
	ErrKindNotFound:     "ບໍ່ພົບຂໍ້ມູນທີ່ຮ້ອງຂໍ",
	ErrKindServer:       "ເຊີບເວີເກີດຂໍ້ຜິດພາດ, ກະລຸນາລອງໃໝ່ພາຍຫຼັງ",
	ErrKindBadShape:     "ຮູບແບບຂໍ້ມູນຈາກເຊີບເວີບໍ່ຖືກຕ້ອງ",
}

func newUpstreamError(kind string, statusCode int) *UpstreamError {
	return &UpstreamError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    upstreamMessages[kind],
	}
}

// classifyTransportError maps a transport-level failure (no HTTP response)
// onto the error taxonomy
func classifyTransportError(err error) *UpstreamError {
	if errors.Is(err, context.DeadlineExceeded) {
		return newUpstreamError(ErrKindTimeout, 0)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newUpstreamError(ErrKindTimeout, 0)
	}
	return newUpstreamError(ErrKindNetwork, 0)
}

// classifyStatus maps a non-2xx HTTP status onto the error taxonomy
func classifyStatus(statusCode int) *UpstreamError {
	switch {
	case statusCode == http.StatusUnauthorized:
		return newUpstreamError(ErrKindUnauthorized, statusCode)
	case statusCode == http.StatusForbidden:
		return newUpstreamError(ErrKindForbidden, statusCode)
	case statusCode == http.StatusNotFound:
		return newUpstreamError(ErrKindNotFound, statusCode)
	default:
		return newUpstreamError(ErrKindServer, statusCode)
	}
}

// HTTPStatus maps an error to the status the dashboard endpoint should return
func HTTPStatus(err error) int {
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		return http.StatusInternalServerError
	}
	switch upstreamErr.Kind {
	case ErrKindUnauthorized:
		return http.StatusUnauthorized
	case ErrKindForbidden:
		return http.StatusForbidden
	case ErrKindNotFound:
		return http.StatusNotFound
	case ErrKindTimeout, ErrKindNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode extracts the taxonomy code, defaulting to a server error
func ErrorCode(err error) string {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Kind
	}
	return ErrKindServer
}
