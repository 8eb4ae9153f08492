package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"vedika_events/internal/domain/models"
	"vedika_events/internal/lib/logger/sl"
	gallery "vedika_events/internal/services/gallery_service"
	"vedika_events/internal/storage"
	"vedika_events/internal/transport/http/dto"
	"vedika_events/internal/transport/http/dto/request"
	"vedika_events/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	_ "vedika_events/docs"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type GalleryService interface {
	CreateEvent(ctx context.Context, input dto.CreateEventInput) (*models.GalleryEvent, error)
	ListEvents(ctx context.Context) ([]models.GalleryEvent, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type ContactService interface {
	SubmitInquiry(ctx context.Context, req dto.ContactRequest) (uuid.UUID, error)
}

// AssetStore is the read side of the asset store, used to serve uploads.
type AssetStore interface {
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
}

type Routers struct {
	log            *slog.Logger
	AuthService    AuthService
	GalleryService GalleryService
	ContactService ContactService
	Assets         AssetStore
}

func NewRouter(log *slog.Logger, authService AuthService, galleryService GalleryService, contactService ContactService, assets AssetStore) *Routers {
	return &Routers{
		log:            log,
		AuthService:    authService,
		GalleryService: galleryService,
		ContactService: contactService,
		Assets:         assets,
	}
}

// Login godoc
// @Summary Admin login
// @Description Exchanges admin credentials for a bearer token with a fixed expiry.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Credentials"
// @Success 200 {object} response.Response{data=map[string]string} "Token"
// @Failure 400 {object} response.ErrorResponse "Invalid request format"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid login request", slog.String("username", req.Username))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	token, err := r.AuthService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// one generic body for every login failure
		return c.JSON(http.StatusUnauthorized, response.ErrAuthenticationFailed)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
		Data:   map[string]string{"token": token},
	})
}

// ListEvents godoc
// @Summary List gallery events
// @Description Returns all gallery events, most recent first.
// @Tags gallery
// @Produce json
// @Success 200 {array} models.GalleryEvent
// @Failure 500 {object} response.ErrorResponse
// @Router /gallery [get]
func (r *Routers) ListEvents(c echo.Context) error {
	const op = "http.routers.ListEvents"

	log := r.log.With(
		slog.String("op", op),
	)

	events, err := r.GalleryService.ListEvents(c.Request().Context())
	if err != nil {
		log.Error("failed to list events", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create a gallery event
// @Description Persists the uploaded images and the event metadata referencing them.
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param eventName formData string true "Event name"
// @Param eventLocation formData string true "Event location"
// @Param eventDate formData string true "Event date"
// @Param eventTime formData string true "Event time"
// @Param details formData string false "Details"
// @Param mapUrl formData string false "Map URL"
// @Param images formData file true "One or more image files"
// @Success 201 {object} models.GalleryEvent
// @Failure 400 {object} response.ErrorResponse "No images or missing metadata"
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /gallery [post]
func (r *Routers) CreateEvent(c echo.Context) error {
	const op = "http.routers.CreateEvent"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind form", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid event metadata", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	form, err := c.MultipartForm()
	if err != nil {
		log.Warn("not a multipart request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	files := form.File["images"]
	if len(files) == 0 {
		log.Warn("create rejected: no image payloads")
		return c.JSON(http.StatusBadRequest, response.ErrNoImages)
	}

	event, err := r.GalleryService.CreateEvent(c.Request().Context(), dto.CreateEventInput{
		CreateEventRequest: req,
		Files:              files,
	})
	if err != nil {
		if errors.Is(err, gallery.ErrNoImages) || errors.Is(err, gallery.ErrValidation) {
			return c.JSON(http.StatusBadRequest, response.ErrNoImages)
		}
		log.Error("failed to create event", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	log.Info("event created",
		slog.String("id", event.ID.String()),
		slog.Int("images", len(event.Images)),
	)

	return c.JSON(http.StatusCreated, event)
}

// DeleteEvent godoc
// @Summary Delete a gallery event
// @Description Removes the event record and reclaims its image files.
// @Tags gallery
// @Produce json
// @Param id path string true "Event UUID" format(uuid)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} response.ErrorResponse "Unknown event id"
// @Failure 500 {object} response.ErrorResponse
// @Security ApiKeyAuth
// @Router /gallery/{id} [delete]
func (r *Routers) DeleteEvent(c echo.Context) error {
	const op = "http.routers.DeleteEvent"

	log := r.log.With(
		slog.String("op", op),
	)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Warn("invalid event id", sl.Err(err))
		return c.JSON(http.StatusNotFound, response.ErrEventNotFound)
	}

	if err := r.GalleryService.DeleteEvent(c.Request().Context(), id); err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrEventNotFound)
		}
		log.Error("failed to delete event", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.MessageResponse("Event deleted successfully"))
}

// SubmitInquiry godoc
// @Summary Submit a contact inquiry
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Inquiry"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /contact [post]
func (r *Routers) SubmitInquiry(c echo.Context) error {
	const op = "http.routers.SubmitInquiry"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ContactRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("invalid inquiry", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails("validation_failed", err.Error()))
	}

	if _, err := r.ContactService.SubmitInquiry(c.Request().Context(), req); err != nil {
		log.Error("failed to save inquiry", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.MessageResponse("Contact information saved successfully"))
}

// FetchAsset godoc
// @Summary Fetch an uploaded image
// @Produce octet-stream
// @Param filename path string true "Asset file name"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorResponse
// @Router /uploads/{filename} [get]
func (r *Routers) FetchAsset(c echo.Context) error {
	const op = "http.routers.FetchAsset"

	log := r.log.With(
		slog.String("op", op),
	)

	filename := c.Param("filename")
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("not_found", "File not found"))
	}

	rc, err := r.Assets.Open(c.Request().Context(), filename)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrorResponseWithDetails("not_found", "File not found"))
		}
		log.Error("failed to open asset", sl.Err(err), slog.String("filename", filename))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, rc)
}
