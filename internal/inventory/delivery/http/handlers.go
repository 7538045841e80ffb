package http

import (
	"github.com/gin-gonic/gin"

	"preference-service/pkg/response"
)

// Create godoc
// @Summary     Create an inventory
// @Description Creates a named shirt inventory with an optional giveaway strategy.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Inventory data"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - name already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventories [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Inventory))
}

// List godoc
// @Summary     List inventories
// @Description Returns a paginated list of inventories, newest first.
// @Tags        Inventory
// @Produce     json
// @Param       limit  query int false "Page size (default: 20)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/inventories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get inventory detail
// @Description Inventories live in a bounded in-memory store; once inventory.cache_size is reached the least recently used one is evicted and returns 404.
// @Tags        Inventory
// @Produce     json
// @Param       id path string true "Inventory ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/inventories/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Inventory))
}

// Delete godoc
// @Summary     Delete an inventory
// @Tags        Inventory
// @Produce     json
// @Param       id path string true "Inventory ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/inventories/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Stock godoc
// @Summary     Stock shirts
// @Description Appends shirts to an inventory in the given order.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id   path string   true "Inventory ID"
// @Param       body body stockReq true "Shirts to add"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/inventories/{id}/stock [POST]
func (h *handler) Stock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStockReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Stock(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Inventory))
}

// Giveaway godoc
// @Summary     Pick a giveaway shirt
// @Description Returns the preferred color when given, otherwise the inventory's fallback choice. Stock is not changed. Evicted inventories (see inventory.cache_size) return 404.
// @Tags        Inventory
// @Produce     json
// @Param       id         path  string true  "Inventory ID"
// @Param       preference query string false "Preferred color (red/blue, case-insensitive)"
// @Param       strategy   query string false "Fallback override (most_stocked/most_recent)"
// @Success     200 {object} giveawayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - inventory is empty"
// @Router      /api/v1/inventories/{id}/giveaway [GET]
func (h *handler) Giveaway(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGiveawayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Giveaway(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newGiveawayResp(output))
}
