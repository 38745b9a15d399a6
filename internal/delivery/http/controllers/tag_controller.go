package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// ListTagsSuccessResponse is the success response envelope for GET /tags.
type ListTagsSuccessResponse struct {
	Data  []*domain.Tag     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type TagController struct {
	Logger  *slog.Logger
	Service domain.TagService
}

func NewTagController(logger *slog.Logger, svc domain.TagService) *TagController {
	return &TagController{Logger: logger, Service: svc}
}

// ListTags godoc
// @Summary List tags
// @Description Returns the tag catalogue, official tags first.
// @Tags tags
// @Produce json
// @Success 200 {object} controllers.ListTagsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tags [get]
func (c *TagController) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.Service.ListTags(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}
