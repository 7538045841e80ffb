package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds the create inventory request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds the list inventories query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processStockReq binds the stock request body + URI param.
func (h *handler) processStockReq(c *gin.Context) (stockReq, error) {
	var req stockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

// processGiveawayReq binds the giveaway URI param + query parameters.
func (h *handler) processGiveawayReq(c *gin.Context) (giveawayReq, error) {
	var req giveawayReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, err
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
