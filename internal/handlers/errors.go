package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	v1 "github.com/learnloop/academy/api/v1"
	srvErrors "github.com/learnloop/academy/pkg/errors"
)

// handlerFunc is an endpoint that reports failures as errors. wrap turns it
// into a gin.HandlerFunc and maps the error kind to a status code.
type handlerFunc func(c *gin.Context) error

func wrap(fn handlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c); err != nil {
			writeError(c, err)
		}
	}
}

func writeError(c *gin.Context, err error) {
	var verr *srvErrors.ValidationError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, v1.Error{Error: verr.Error(), Fields: verr.Fields()})
	case srvErrors.IsUnauthorizedError(err):
		c.JSON(http.StatusUnauthorized, v1.Error{Error: "unauthorized"})
	case srvErrors.IsForbiddenError(err):
		c.JSON(http.StatusForbidden, v1.Error{Error: "forbidden"})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, v1.Error{Error: err.Error()})
	case srvErrors.IsConflictError(err):
		c.JSON(http.StatusConflict, v1.Error{Error: err.Error()})
	default:
		zap.S().Named("handlers").Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, v1.Error{Error: "internal server error"})
	}
}

var registerValidation sync.Once

// setupValidation reports validation errors under JSON field names and adds
// the notblank tag to the gin binding validator.
func setupValidation() {
	registerValidation.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			s, ok := fl.Field().Interface().(string)
			return ok && strings.TrimSpace(s) != ""
		})
	})
}

func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		return srvErrors.NewFieldValidationError(fields)
	}
	return srvErrors.NewValidationError("malformed request body: %v", err)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "this field is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}

func pathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, srvErrors.NewValidationError("invalid id %q", raw)
	}
	return id, nil
}
