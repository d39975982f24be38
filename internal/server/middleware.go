package server

import (
	"errors"
	"fmt"
	"net/http"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/labstack/echo/v4"

	"github.com/Adityakumarsinghstm/ChatBot/internal/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

// errorHandler maps pipeline failures onto the API error envelope. Invalid
// requests map to 400 and upstream catalog or generation failures to 502.
// Anything unrecognized is an internal error carrying its message.
func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var (
			httpErr  *echo.HTTPError
			valErr   *models.ValidationError
			fetchErr *models.FetchError
			genErr   *models.GenerationError
		)

		code := http.StatusInternalServerError
		message := err.Error()
		switch {
		case errors.As(err, &httpErr):
			code = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		case errors.As(err, &valErr):
			code = http.StatusBadRequest
		case errors.As(err, &fetchErr):
			code = http.StatusBadGateway
		case errors.As(err, &genErr):
			code = http.StatusBadGateway
		}

		if code >= http.StatusInternalServerError {
			log.Errorw(c.Request().Context(), "request failed", "error", err)
		}

		if !c.Response().Committed {
			var writeErr error
			if c.Request().Method == http.MethodHead {
				writeErr = c.NoContent(code)
			} else {
				writeErr = c.JSON(code, errorResponse{Error: message})
			}
			if writeErr != nil {
				log.Errorw(c.Request().Context(), "write error response", "error", writeErr)
			}
		}
	}
}
