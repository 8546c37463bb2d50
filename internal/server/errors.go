package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Skufu/SymptomAnalyzer/internal/normalize"
)

const (
	parseFailureDetail = "Failed to parse response into valid JSON"
	validationDetail   = "Input validation failed"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report json field names.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

func writeDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// writeBindError maps request decoding and validation failures to client errors.
func writeBindError(c *gin.Context, err error) {
	_ = c.Error(err)

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeDetail(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msg := fieldMessage(fe)
			fields = append(fields, FieldError{Field: fe.Field(), Message: msg})
			msgs = append(msgs, fe.Field()+": "+msg)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": validationDetail + ": " + strings.Join(msgs, "; "),
			"errors": fields,
		})
		return
	}

	writeDetail(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
}

// writeAnalysisError maps every analyzer failure to a 500.
func writeAnalysisError(c *gin.Context, err error) {
	_ = c.Error(err)

	if errors.Is(err, normalize.ErrUnparseable) {
		writeDetail(c, http.StatusInternalServerError, parseFailureDetail)
		return
	}
	writeDetail(c, http.StatusInternalServerError, "Analysis error: "+err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	isCollection := fe.Kind() == reflect.Slice || fe.Kind() == reflect.Array
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		if isCollection {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		if isCollection {
			return fmt.Sprintf("must contain at most %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
