package schools

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/user/schoolfinder-go/apperror"
	"github.com/user/schoolfinder-go/auth"
	"github.com/user/schoolfinder-go/validation"
)

// SchoolHandlers provides the HTTP handlers for the school endpoints.
type SchoolHandlers struct {
	store Store
}

// NewSchoolHandlers creates new SchoolHandlers.
func NewSchoolHandlers(store Store) *SchoolHandlers {
	return &SchoolHandlers{store: store}
}

// HandleAddSchool godoc
// @Summary Add a school
// @Description Creates a school record with validated coordinates.
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolBody body AddSchoolRequest true "School details"
// @Success 201 {object} AddSchoolResponse "School created"
// @Failure 400 {object} apperror.ErrorResponse "Validation failure"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /addSchool [post]
func (h *SchoolHandlers) HandleAddSchool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddSchoolRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if result := validation.School(req.Name, req.Address, req.Latitude, req.Longitude); !result.IsValid {
			auth.WriteError(w, r, apperror.NewValidationError(result.Error, nil))
			return
		}

		school := &School{
			Name:      strings.TrimSpace(req.Name),
			Address:   strings.TrimSpace(req.Address),
			Latitude:  req.Latitude,
			Longitude: req.Longitude,
		}
		created, err := h.store.AddSchool(r.Context(), school)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, AddSchoolResponse{
			Message: "School added successfully.",
			School:  created,
		})
	}
}

// HandleListSchools godoc
// @Summary List schools by proximity
// @Description Returns all schools sorted by ascending distance from the caller's location.
// @Tags schools
// @Produce json
// @Param latitude query number true "Caller latitude in degrees"
// @Param longitude query number true "Caller longitude in degrees"
// @Success 200 {object} ListSchoolsResponse "Ranked schools"
// @Failure 400 {object} apperror.ErrorResponse "Missing or out-of-range coordinates"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /listSchools [get]
func (h *SchoolHandlers) HandleListSchools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The query point is validated in full before the store is touched.
		query, appErr := parseQueryLocation(r)
		if appErr != nil {
			auth.WriteError(w, r, appErr)
			return
		}

		records, err := h.store.FindAll(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		ranked := RankByDistance(*query, records)
		auth.WriteJSON(w, http.StatusOK, ListSchoolsResponse{
			Message:      "Schools retrieved successfully.",
			UserLocation: *query,
			TotalSchools: len(ranked),
			Schools:      ranked,
		})
	}
}

// parseQueryLocation extracts and range-checks the latitude/longitude query
// parameters.
func parseQueryLocation(r *http.Request) (*Location, *apperror.AppError) {
	latStr := r.URL.Query().Get("latitude")
	lngStr := r.URL.Query().Get("longitude")

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latStr == "" || lngStr == "" || latErr != nil || lngErr != nil {
		return nil, apperror.NewValidationError("Valid latitude and longitude are required as query parameters.", nil)
	}

	if result := validation.Coordinates(lat, lng); !result.IsValid {
		return nil, apperror.NewValidationError(result.Error, nil)
	}
	return &Location{Latitude: lat, Longitude: lng}, nil
}
