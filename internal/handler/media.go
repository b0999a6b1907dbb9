package handler

import (
	"io"
	"math"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/server"
)

// imageFormField is the multipart field name the upload route expects.
const imageFormField = "image"

// MediaHandler serves the image upload route. Uploads do not fit the
// typed bind/validate pipeline (the payload is a multipart stream, not
// a struct), so this is a plain Echo handler like CheckHealth.
type MediaHandler struct {
	Handler
}

// NewMediaHandler constructs a MediaHandler.
func NewMediaHandler(s *server.Server) *MediaHandler {
	return &MediaHandler{
		Handler: NewHandler(s),
	}
}

// UploadImageResponse reports what was received: the original filename,
// the declared content type, and the size in kilobytes rounded to two
// decimals.
type UploadImageResponse struct {
	Filename string  `json:"filename"`
	Format   string  `json:"format"`
	SizeKB   float64 `json:"size_kb"`
}

// UploadImage accepts a multipart image upload. The file is read and
// measured, never stored; the route exists to exercise file handling,
// not persistence.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "upload_image").
		Logger()

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return errs.NewBadRequestError("image file is required", false, nil, nil, nil)
	}

	maxBytes := h.server.Config.Upload.MaxBytes
	if fileHeader.Size > maxBytes {
		return errs.NewPayloadTooLargeError("image exceeds the upload size limit")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return errs.NewUnsupportedMediaTypeError("only image uploads are accepted")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errs.NewInternalServerError()
	}
	defer src.Close()

	// Count what is actually readable rather than trusting the
	// multipart header; LimitReader guards against a lying Size.
	read, err := io.Copy(io.Discard, io.LimitReader(src, maxBytes+1))
	if err != nil {
		return errs.NewInternalServerError()
	}
	if read > maxBytes {
		return errs.NewPayloadTooLargeError("image exceeds the upload size limit")
	}

	sizeKB := math.Round(float64(read)/1024*100) / 100

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("content_type", contentType).
		Float64("size_kb", sizeKB).
		Msg("image received")

	return c.JSON(http.StatusOK, UploadImageResponse{
		Filename: fileHeader.Filename,
		Format:   contentType,
		SizeKB:   sizeKB,
	})
}
