package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"

	"luxestate/internal/auth"
	"luxestate/internal/models"
	"luxestate/internal/service"
)

type CreatePropertyRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Price        float64  `json:"price" validate:"gte=0"`
	Location     string   `json:"location"`
	Bedrooms     int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms    int      `json:"bathrooms" validate:"gte=0"`
	Area         float64  `json:"area" validate:"gt=0"`
	PropertyType string   `json:"property_type" validate:"required"`
	Images       []string `json:"images" validate:"dive,url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// multipartOverhead is the slack allowed on top of MaxUploadSize for form
// boundaries and headers.
const multipartOverhead = 1 << 20

func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req CreatePropertyRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	property, err := h.PropertyService.Create(r.Context(), auth.UserFromContext(r.Context()), service.CreatePropertyRequest(req))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, property, http.StatusCreated)
}

func (h *Handlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePropertyFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	properties, err := h.PropertyService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, properties, http.StatusOK)
}

func parsePropertyFilter(q url.Values) (models.PropertyFilter, error) {
	filter := models.PropertyFilter{
		Status:       strings.TrimSpace(q.Get("status")),
		PropertyType: strings.TrimSpace(q.Get("property_type")),
		Location:     strings.TrimSpace(q.Get("location")),
	}

	var err error
	if filter.MinPrice, err = parseFloatParam(q, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = parseFloatParam(q, "max_price"); err != nil {
		return filter, err
	}

	if raw := q.Get("bedrooms"); raw != "" {
		bedrooms, convErr := strconv.Atoi(raw)
		if convErr != nil || bedrooms < 0 {
			return filter, fmt.Errorf("%w: bedrooms must be a non-negative integer", models.ErrValidation)
		}
		filter.Bedrooms = &bedrooms
	}

	return filter, nil
}

func parseFloatParam(q url.Values, name string) (*float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", models.ErrValidation, name)
	}
	return &value, nil
}

func (h *Handlers) ListSellerProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.PropertyService.ListBySeller(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, properties, http.StatusOK)
}

func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	property, err := h.PropertyService.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, property, http.StatusOK)
}

func (h *Handlers) UpdatePropertyStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	property, err := h.PropertyService.UpdateStatus(r.Context(), auth.UserFromContext(r.Context()), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, property, http.StatusOK)
}

// UploadPropertyImage accepts a multipart "image" field. The content type is
// sniffed from the bytes; the client-declared type is ignored.
func (h *Handlers) UploadPropertyImage(w http.ResponseWriter, r *http.Request) {
	maxSize := h.Cfg.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		WriteError(w, fmt.Sprintf("invalid upload, images are limited to %s", humanize.IBytes(uint64(maxSize))), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > maxSize {
		WriteError(w, fmt.Sprintf("image is %s, limit is %s",
			humanize.IBytes(uint64(header.Size)), humanize.IBytes(uint64(maxSize))), http.StatusBadRequest)
		return
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		WriteError(w, "could not read image", http.StatusBadRequest)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeServiceError(w, r, err)
		return
	}

	property, err := h.PropertyService.AddImage(r.Context(), auth.UserFromContext(r.Context()), mux.Vars(r)["id"], service.ImageUpload{
		FileName:    header.Filename,
		ContentType: mtype.String(),
		Body:        file,
		Size:        header.Size,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, property, http.StatusOK)
}
