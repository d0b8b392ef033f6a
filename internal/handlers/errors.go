package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators teaches gin's validator the "role" tag and makes it
// report fields by their JSON names.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			return domain.Role(fl.Field().String()).IsValid()
		})
	})
}

// respondError writes err as an AppError body. Errors that carry no client
// facing code are treated as storage faults and their details are not exposed.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.ErrorCode != apperrors.CodeInternal {
		if appErr.Code >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode), slog.String("error", err.Error()))
		} else {
			logger.Warn("Request rejected", slog.String("code", appErr.ErrorCode), slog.String("error", appErr.Message))
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	logger.Error("Unhandled error", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, &apperrors.AppError{
		Code:      http.StatusInternalServerError,
		ErrorCode: apperrors.CodeDBError,
		Message:   "database error",
	})
}

// respondBindError reports a request that could not be decoded or failed tag validation.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
		respondError(c, apperrors.NewValidationError(apperrors.CodeValidation, "invalid request", fields...))
		return
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		respondError(c, apperrors.NewValidationError(apperrors.CodeInvalidJSON, "request body is not valid JSON"))
		return
	}
	respondError(c, apperrors.NewBadRequestError("invalid request: "+err.Error()))
}

// currentUserID returns the authenticated caller, writing a 401 when absent.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthorizedError("Unauthorized"))
		return "", false
	}
	return userID, true
}
