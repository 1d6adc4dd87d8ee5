package resizer

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/denismitr/resizefn/internal/media"
	"github.com/denismitr/resizefn/internal/media/manipulator"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	UploadField      = "file"
	DownloadFilename = "file.jpeg"
)

func (s *Server) resizeImage(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return errors.Wrapf(ErrNoUpload, "%v", err)
	}

	upload, err := firstUpload(form)
	if err != nil {
		return err
	}

	source, err := upload.Open()
	if err != nil {
		return errors.Wrapf(ErrNoUpload, "could not open %s: %v", upload.Filename, err)
	}
	defer source.Close()

	params, report := s.manipulator.ConvertParameters(c.QueryParams())
	if !report.Empty() {
		s.logger.WithField("query", c.QueryString()).Warnln(report.Error())
	}

	var buf bytes.Buffer
	result, err := s.manipulator.Process(source, &buf, params)
	if err != nil {
		return err
	}

	body := buf.Bytes()
	prepareDownloadHeaders(c.Response().Header(), result, len(body))

	if s.archive != nil {
		s.archive.saveAsync(upload.Filename, int(upload.Size), result, body)
	}

	return c.Blob(http.StatusOK, result.Mime(), body)
}

func (s *Server) getRender(c echo.Context) error {
	if s.archive == nil {
		return echo.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	render, err := s.archive.render(ctx, media.ID(c.Param("id")))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, render)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// firstUpload picks the file under UploadField, falling back to the first
// file of the alphabetically first field
func firstUpload(form *multipart.Form) (*multipart.FileHeader, error) {
	if files := form.File[UploadField]; len(files) > 0 {
		return files[0], nil
	}

	fields := make([]string, 0, len(form.File))
	for field := range form.File {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	for _, field := range fields {
		if files := form.File[field]; len(files) > 0 {
			return files[0], nil
		}
	}

	return nil, errors.Wrap(ErrNoUpload, "multipart form contains no files")
}

func prepareDownloadHeaders(h http.Header, result *manipulator.Result, size int) {
	// Enable CORS for 3rd party applications
	h.Set("Access-Control-Allow-Origin", "*")

	// Add a Content-Security-Policy to prevent stored-XSS attacks
	h.Set("Content-Security-Policy", "script-src 'none'")

	// Disable Content-Type sniffing
	h.Set("X-Content-Type-Options", "nosniff")

	h.Set("Content-Disposition", "attachment;filename="+DownloadFilename)
	h.Set("Content-Length", strconv.Itoa(size))
	h.Set("X-Resize-Mode", string(result.Transformation.Mode()))
}
