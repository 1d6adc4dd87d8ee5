package resizer

import (
	"net/http"

	"github.com/denismitr/resizefn/internal/media/manipulator"
	"github.com/denismitr/resizefn/internal/registry"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrNoUpload = errors.New("no image was uploaded")

type httpError struct {
	statusCode int
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
}

func makeErrorHandler(lg *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		httpErr := toHTTPError(err)

		if lg != nil {
			if httpErr.statusCode >= http.StatusInternalServerError {
				lg.Errorln(err.Error())
			} else {
				lg.Warnln(err.Error())
			}
		}

		var respErr error
		if c.Request().Method == http.MethodHead {
			respErr = c.NoContent(httpErr.statusCode)
		} else {
			respErr = c.JSON(httpErr.statusCode, httpErr)
		}

		if respErr != nil && lg != nil {
			lg.Errorln(respErr)
		}
	}
}

func toHTTPError(err error) *httpError {
	switch {
	case errors.Is(err, ErrNoUpload), errors.Is(err, manipulator.ErrBadImage):
		return &httpError{statusCode: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, registry.ErrInvalidID):
		return &httpError{statusCode: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, registry.ErrEntityNotFound):
		return &httpError{statusCode: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, manipulator.ErrEncodingFailed):
		return &httpError{statusCode: http.StatusInternalServerError, Message: "image could not be encoded"}
	}

	if vErr, ok := err.(*manipulator.ValidationError); ok {
		return &httpError{
			statusCode: http.StatusUnprocessableEntity,
			Message:    "The given data was invalid",
			Details:    vErr.Errors(),
		}
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return &httpError{statusCode: echoErr.Code, Message: http.StatusText(echoErr.Code)}
	}

	return &httpError{statusCode: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
}
