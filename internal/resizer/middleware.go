package resizer

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// requestLogger logs every request once the response is complete
func requestLogger(lg *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			lg.WithFields(logrus.Fields{
				"method":  req.Method,
				"uri":     req.RequestURI,
				"status":  res.Status,
				"size":    res.Size,
				"latency": time.Since(start).String(),
			}).Infoln("request")

			return nil
		}
	}
}
