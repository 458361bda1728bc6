package util

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/artloom/mediagate/common/logger"
	relaymodel "github.com/artloom/mediagate/relay/model"
)

// ErrorWrapper converts an internal error into the relay error envelope
// returned to clients.
func ErrorWrapper(err error, code string, statusCode int) *relaymodel.ErrorWithStatusCode {
	return &relaymodel.ErrorWithStatusCode{
		Error: relaymodel.Error{
			Message: err.Error(),
			Type:    "mediagate_error",
			Code:    code,
		},
		StatusCode: statusCode,
	}
}

// GeneralErrorResponse covers the error body shapes seen across upstreams
// so a usable message can be extracted from any of them.
type GeneralErrorResponse struct {
	Error    relaymodel.Error `json:"error"`
	Message  string           `json:"message"`
	Msg      string           `json:"msg"`
	Detail   string           `json:"detail"`
	ErrorMsg string           `json:"error_msg"`
}

func (e GeneralErrorResponse) ToMessage() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Detail != "" {
		return e.Detail
	}
	if e.ErrorMsg != "" {
		return e.ErrorMsg
	}
	return ""
}

// RelayErrorHandler turns a non-2xx upstream response into the relay error
// envelope, keeping the upstream status code.
func RelayErrorHandler(resp *http.Response) *relaymodel.ErrorWithStatusCode {
	errWithStatusCode := &relaymodel.ErrorWithStatusCode{
		StatusCode: resp.StatusCode,
		Error: relaymodel.Error{
			Message: fmt.Sprintf("upstream returned status %d", resp.StatusCode),
			Type:    "upstream_error",
			Code:    resp.StatusCode,
		},
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errWithStatusCode
	}
	_ = resp.Body.Close()

	var errResponse GeneralErrorResponse
	if err = json.Unmarshal(body, &errResponse); err != nil {
		trimmed := strings.TrimSpace(string(body))
		if trimmed != "" {
			errWithStatusCode.Error.Message = trimmed
		}
		return errWithStatusCode
	}
	if msg := errResponse.ToMessage(); msg != "" {
		errWithStatusCode.Error.Message = msg
	}
	if errResponse.Error.Type != "" {
		errWithStatusCode.Error.Type = errResponse.Error.Type
	}
	logger.SysError(fmt.Sprintf("upstream error: status=%d, message=%s", resp.StatusCode, errWithStatusCode.Error.Message))
	return errWithStatusCode
}
