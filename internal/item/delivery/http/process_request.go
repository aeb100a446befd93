package http

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory-service/internal/item"
)

var errInvalidID = errors.New("invalid id")

// bindJSONErr classifies a body decoding failure. An empty body counts as
// missing every field.
func bindJSONErr(err error) error {
	if errors.Is(err, io.EOF) {
		return item.ErrMissingFields
	}
	return fmt.Errorf("%w: %v", item.ErrInvalidInput, err)
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindJSONErr(err)
	}
	return req, req.validate()
}

// processListReq binds and validates the list items query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, fmt.Errorf("%w: %v", item.ErrInvalidInput, err)
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindJSONErr(err)
	}
	req.ID = id
	return req, req.validate()
}

// processID parses the :id URI param.
func (h *handler) processID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}
	return id, nil
}
