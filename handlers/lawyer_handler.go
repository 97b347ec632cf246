package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"lawbandhu-backend/models"
	"lawbandhu-backend/service"

	"github.com/gin-gonic/gin"
)

// LawyerHandler handles HTTP requests for the lawyer directory
type LawyerHandler struct {
	lawyers *service.LawyerService
}

// NewLawyerHandler creates a new lawyer handler
func NewLawyerHandler(lawyers *service.LawyerService) *LawyerHandler {
	return &LawyerHandler{lawyers: lawyers}
}

// ListLawyers handles GET /api/lawyers
func (h *LawyerHandler) ListLawyers(c *gin.Context) {
	criteria, err := parseFilterCriteria(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	result, err := h.lawyers.List(c.Request.Context(), service.ListLawyersRequest{
		ViewerID: currentUser(c),
		Search:   c.Query("q"),
		Criteria: criteria,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, result)
}

// GetOptions handles GET /api/lawyers/options
func (h *LawyerHandler) GetOptions(c *gin.Context) {
	respond(c, http.StatusOK, h.lawyers.Options())
}

// GetLawyer handles GET /api/lawyers/:id
func (h *LawyerHandler) GetLawyer(c *gin.Context) {
	id, ok := lawyerID(c)
	if !ok {
		return
	}

	lawyer, err := h.lawyers.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, lawyer)
}

// ToggleStar handles POST /api/lawyers/:id/star
func (h *LawyerHandler) ToggleStar(c *gin.Context) {
	id, ok := lawyerID(c)
	if !ok {
		return
	}

	lawyer, err := h.lawyers.ToggleStar(c.Request.Context(), currentUser(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, lawyer)
}

// Recommended handles GET /api/lawyers/recommended?field=
func (h *LawyerHandler) Recommended(c *gin.Context) {
	field, ok := models.ParseLegalField(c.Query("field"))
	if !ok {
		respondError(c, http.StatusBadRequest, "INVALID_FIELD", "Unknown legal field")
		return
	}

	lawyers, err := h.lawyers.RecommendFor(c.Request.Context(), currentUser(c), field)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"field":   field,
		"lawyers": lawyers,
	})
}

func lawyerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid lawyer ID")
		return 0, false
	}
	return id, true
}

// parseFilterCriteria reads the directory filter from the query string.
// Missing bounds keep their defaults.
func parseFilterCriteria(c *gin.Context) (models.FilterCriteria, error) {
	criteria := models.DefaultFilterCriteria()
	criteria.Specializations = queryList(c, "specialization")
	criteria.Languages = queryList(c, "language")
	criteria.Locations = queryList(c, "location")

	if raw := c.Query("min_rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 5 {
			return criteria, errors.New("min_rating must be a number between 0 and 5")
		}
		criteria.MinRating = v
	}

	bounds := []struct {
		name string
		dst  *int
	}{
		{"experience_min", &criteria.ExperienceRange.Min},
		{"experience_max", &criteria.ExperienceRange.Max},
		{"fee_min", &criteria.FeeRange.Min},
		{"fee_max", &criteria.FeeRange.Max},
	}
	for _, b := range bounds {
		raw := c.Query(b.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return criteria, fmt.Errorf("%s must be a non-negative integer", b.name)
		}
		*b.dst = v
	}

	if criteria.ExperienceRange.Min > criteria.ExperienceRange.Max {
		return criteria, errors.New("experience_min exceeds experience_max")
	}
	if criteria.FeeRange.Min > criteria.FeeRange.Max {
		return criteria, errors.New("fee_min exceeds fee_max")
	}

	return criteria, nil
}

// queryList accepts both repeated keys and comma separated values
func queryList(c *gin.Context, key string) []string {
	out := []string{}
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
