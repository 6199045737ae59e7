package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/willhughes11/triviaApi/internal/models"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

func abortWithError(c *gin.Context, status int) {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: status, Message: message})
}

// FlexInt decodes from a JSON number or a numeric JSON string. The web
// client sends ids taken from object keys and <select> values as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

func (f *FlexInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// Type alias so swag can resolve the model in annotations.
type FormattedQuestion = models.FormattedQuestion
