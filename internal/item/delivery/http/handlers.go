package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-service/internal/item"
	"inventory-service/pkg/response"
)

// Create godoc
// @Summary     Add an item
// @Description Stores a new item. Every field is required and the id must be unused.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201  {object} response.StatusResp
// @Failure     400  {object} response.ErrorResp "Missing fields or invalid value"
// @Failure     401  {object} response.ErrorResp "Unauthorized (API v2)"
// @Failure     409  {object} response.ErrorResp "Item exists"
// @Failure     500  {object} response.ErrorResp "Internal Server Error"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if _, err := h.uc.Create(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Status(c, http.StatusCreated, response.StatusAdded)
}

// List serves GET /items in API v1: a plain array of every stored item.
// The route is documented once, on ListPage.
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx, item.ListItemsInput{})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemsResp(output.Items))
}

// ListPage godoc
// @Summary     List items page
// @Description API v2: returns one page of items whose name contains q, with the total match count.
// @Description API v1: ignores the query parameters and returns a plain array of every item (itemResp[]).
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       page query int    false "Page number, 1-based (default: 1)"
// @Param       size query int    false "Page size (default: 10, max: 100)"
// @Param       q    query string false "Name substring filter"
// @Success     200 {object} listPageResp
// @Failure     400 {object} response.ErrorResp "Bad Request"
// @Failure     401 {object} response.ErrorResp "Unauthorized"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /items [GET]
func (h *handler) ListPage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListPageResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Replaces every field of an existing item except its id.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Item ID"
// @Param       body body updateReq true "New field values"
// @Success     200 {object} response.StatusResp
// @Failure     400 {object} response.ErrorResp "Missing fields or invalid value"
// @Failure     401 {object} response.ErrorResp "Unauthorized (API v2)"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if _, err := h.uc.Update(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Status(c, http.StatusOK, response.StatusUpdated)
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} response.StatusResp
// @Failure     400 {object} response.ErrorResp "Invalid id"
// @Failure     401 {object} response.ErrorResp "Unauthorized (API v2)"
// @Failure     404 {object} response.ErrorResp "Not Found"
// @Failure     500 {object} response.ErrorResp "Internal Server Error"
// @Router      /items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Status(c, http.StatusOK, response.StatusDeleted)
}
