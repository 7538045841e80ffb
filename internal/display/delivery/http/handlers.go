package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"preference-service/internal/display"
	pkgErrors "preference-service/pkg/errors"
	"preference-service/pkg/response"
)

// Resolve godoc
// @Summary     Resolve display mode
// @Description Returns the preferred mode when given, otherwise dark at night and light during the day.
// @Tags        Display
// @Produce     json
// @Param       preference query string false "Preferred mode (light/dark, case-insensitive)"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/display/mode [GET]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	var req resolveReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Resolve(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResolveResp(output))
}

func (h *handler) mapError(err error) error {
	if errors.Is(err, display.ErrInvalidMode) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
