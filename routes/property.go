package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"house-rental-server/models"
	"house-rental-server/storage"
	"house-rental-server/utils"

	"github.com/kataras/iris/v12"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/exp/slices"
)

var furnishings = []string{models.FurnishingNone, models.FurnishingSemi, models.FurnishingFull}

const defaultListLimit = 100

// GET /api/properties?q=...&city=...&furnishing=...&min_price=...&max_price=...&limit=...
func (h *Handler) ListProperties(ctx iris.Context) {
	filter := storage.PropertyFilter{
		Query:      ctx.URLParam("q"),
		City:       ctx.URLParam("city"),
		Furnishing: ctx.URLParam("furnishing"),
	}

	if raw := ctx.URLParam("min_price"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "min_price must be a number", ctx)
			return
		}
		filter.MinPrice = &min
	}
	if raw := ctx.URLParam("max_price"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "max_price must be a number", ctx)
			return
		}
		filter.MaxPrice = &max
	}

	limit := ctx.URLParamIntDefault("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}

	properties, err := h.Store.FindProperties(ctx.Request().Context(), filter, limit)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}

	ctx.JSON(iris.Map{"items": properties})
}

// GET /api/properties/{id} — id may be the store id or the property_id
func (h *Handler) GetProperty(ctx iris.Context) {
	property, _, ok := h.resolveProperty(ctx)
	if !ok {
		return
	}

	ctx.JSON(property)
}

// POST /api/properties — multipart form with an optional image file
func (h *Handler) CreateProperty(ctx iris.Context) {
	var form propertyForm
	form.read(ctx)

	if err := form.validateRequired(); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
		return
	}

	rentPrice, areaSqft, err := form.parseNumbers()
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
		return
	}

	// Duplicate check before any side effect, so a failed attempt leaves
	// both the store and the upload directory unchanged.
	taken, err := h.Store.PropertyIDTaken(ctx.Request().Context(), form.PropertyID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if taken {
		utils.CreateError(iris.StatusBadRequest, "Conflict", "property_id must be unique", ctx)
		return
	}

	now := time.Now().UTC()
	property := models.Property{
		PropertyID:     form.PropertyID,
		Title:          form.Title,
		City:           form.City,
		Locality:       form.Locality,
		RentPrice:      rentPrice,
		AreaSqft:       areaSqft,
		Furnishing:     form.Furnishing,
		ContactDetails: form.ContactDetails,
		OwnerID:        form.OwnerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	imageURL, ok := h.saveUploadedImage(ctx, form.PropertyID)
	if !ok {
		return
	}
	property.ImageURL = imageURL

	createErr := h.Store.CreateProperty(ctx.Request().Context(), &property)
	if createErr != nil {
		if errors.Is(createErr, storage.ErrDuplicate) {
			utils.CreateError(iris.StatusBadRequest, "Conflict", "property_id must be unique", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(property)
}

// PUT /api/properties/{id} — multipart form, every field optional
func (h *Handler) UpdateProperty(ctx iris.Context) {
	property, filter, ok := h.resolveProperty(ctx)
	if !ok {
		return
	}

	var form propertyForm
	form.read(ctx)

	set := bson.M{}
	if form.Title != "" {
		set["title"] = form.Title
	}
	if form.City != "" {
		set["city"] = form.City
	}
	if form.Locality != "" {
		set["locality"] = form.Locality
	}
	if form.ContactDetails != "" {
		set["contact_details"] = form.ContactDetails
	}
	if form.Furnishing != "" {
		set["furnishing"] = form.Furnishing
	}
	if form.RentPrice != "" || form.AreaSqft != "" {
		rentPrice, areaSqft, err := form.parseNumbers()
		if err != nil {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
			return
		}
		if form.RentPrice != "" {
			set["rent_price"] = rentPrice
		}
		if form.AreaSqft != "" {
			set["area_sqft"] = areaSqft
		}
	}

	if err := validateFieldLimits(set); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", err.Error(), ctx)
		return
	}

	// A replacement image is keyed by the resolved document's business key,
	// not by whatever reference the caller addressed it with.
	imageURL, imgOK := h.saveUploadedImage(ctx, property.PropertyID)
	if !imgOK {
		return
	}
	if imageURL != "" {
		set["image_url"] = imageURL
	}

	if len(set) == 0 {
		ctx.JSON(iris.Map{"message": "No changes"})
		return
	}

	set["updated_at"] = time.Now().UTC()

	updated, err := h.Store.UpdateProperty(ctx.Request().Context(), filter, set)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(updated)
}

// DELETE /api/properties/{id}
func (h *Handler) DeleteProperty(ctx iris.Context) {
	_, filter, ok := h.resolveProperty(ctx)
	if !ok {
		return
	}

	// Contact messages referencing the property are kept; there is no cascade.
	err := h.Store.DeleteProperty(ctx.Request().Context(), filter)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"deleted": true})
}

// resolveProperty resolves the {id} path parameter against the store and
// writes the error response itself on failure.
func (h *Handler) resolveProperty(ctx iris.Context) (*models.Property, bson.M, bool) {
	ref := ctx.Params().Get("id")

	property, filter, err := h.Store.ResolveProperty(ctx.Request().Context(), ref)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Property not found", ctx)
			return nil, nil, false
		}
		utils.CreateInternalServerError(ctx)
		return nil, nil, false
	}

	return property, filter, true
}

// saveUploadedImage persists the optional "image" form file and returns its
// public URL. A missing file yields an empty URL. On failure it writes the
// error response and returns ok=false.
func (h *Handler) saveUploadedImage(ctx iris.Context, propertyID string) (string, bool) {
	file, info, err := ctx.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", true
		}
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid image upload", ctx)
		return "", false
	}
	defer file.Close()

	url, saveErr := h.Uploads.Save(propertyID, info.Filename, file)
	if saveErr != nil {
		utils.CreateInternalServerError(ctx)
		return "", false
	}
	return url, true
}

// propertyForm carries the raw multipart fields. Numeric fields stay strings
// until parsed so "absent" and "zero" remain distinguishable on update.
type propertyForm struct {
	PropertyID     string
	Title          string
	City           string
	Locality       string
	RentPrice      string
	AreaSqft       string
	Furnishing     string
	ContactDetails string
	OwnerID        string
}

func (f *propertyForm) read(ctx iris.Context) {
	f.PropertyID = ctx.FormValue("property_id")
	f.Title = ctx.FormValue("title")
	f.City = ctx.FormValue("city")
	f.Locality = ctx.FormValue("locality")
	f.RentPrice = ctx.FormValue("rent_price")
	f.AreaSqft = ctx.FormValue("area_sqft")
	f.Furnishing = ctx.FormValue("furnishing")
	f.ContactDetails = ctx.FormValue("contact_details")
	f.OwnerID = ctx.FormValue("owner_id")
}

// validateRequired enforces presence and length limits of every create field.
func (f *propertyForm) validateRequired() error {
	switch {
	case f.PropertyID == "" || len(f.PropertyID) > 20:
		return errors.New("property_id is required and must be 1-20 characters")
	case f.Title == "" || len(f.Title) > 200:
		return errors.New("title is required and must be at most 200 characters")
	case f.City == "" || len(f.City) > 100:
		return errors.New("city is required and must be at most 100 characters")
	case f.Locality == "" || len(f.Locality) > 150:
		return errors.New("locality is required and must be at most 150 characters")
	case f.RentPrice == "":
		return errors.New("rent_price is required")
	case f.AreaSqft == "":
		return errors.New("area_sqft is required")
	case !slices.Contains(furnishings, f.Furnishing):
		return errors.New("furnishing must be one of unfurnished, semi, furnished")
	case f.ContactDetails == "" || len(f.ContactDetails) > 255:
		return errors.New("contact_details is required and must be at most 255 characters")
	case f.OwnerID == "":
		return errors.New("owner_id is required")
	}
	return nil
}

// parseNumbers coerces the numeric form fields, skipping empty ones.
func (f *propertyForm) parseNumbers() (rentPrice float64, areaSqft int, err error) {
	if f.RentPrice != "" {
		rentPrice, err = strconv.ParseFloat(f.RentPrice, 64)
		if err != nil || rentPrice < 0 {
			return 0, 0, errors.New("rent_price must be a non-negative number")
		}
	}
	if f.AreaSqft != "" {
		areaSqft, err = strconv.Atoi(f.AreaSqft)
		if err != nil || areaSqft < 0 {
			return 0, 0, errors.New("area_sqft must be a non-negative integer")
		}
	}
	return rentPrice, areaSqft, nil
}

// validateFieldLimits re-checks length and enum limits on a partial update
// set built from optional fields.
func validateFieldLimits(set bson.M) error {
	limits := map[string]int{
		"title":           200,
		"city":            100,
		"locality":        150,
		"contact_details": 255,
	}
	for field, max := range limits {
		if v, exists := set[field]; exists {
			if s, isString := v.(string); isString && len(s) > max {
				return fmt.Errorf("%s must be at most %d characters", field, max)
			}
		}
	}
	if v, exists := set["furnishing"]; exists {
		if s, isString := v.(string); isString && !slices.Contains(furnishings, s) {
			return errors.New("furnishing must be one of unfurnished, semi, furnished")
		}
	}
	return nil
}
