package http

import (
	"insight-srv/pkg/response"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Connect - Connect an Instagram business account
// @Summary Connect account
// @Description Validates the Graph access token, stores it encrypted and creates the account record
// @Tags Accounts
// @Accept json
// @Produce json
// @Param body body connectReq true "Connect request"
// @Success 200 {object} connectResp
// @Failure 422 {object} response.Resp
// @Router /api/v1/accounts [post]
func (h *handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processConnectRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.Connect: processConnectRequest failed: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	output, err := h.uc.Connect(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.Connect: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, connectResp{
		ID:       output.ID,
		Username: output.Username,
		Existing: output.Existing,
	})
}

// GetList - List the caller's connected accounts
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listResp
// @Router /api/v1/accounts [get]
func (h *handler) GetList(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processGetListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.GetList: processGetListRequest failed: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	accounts, pag, err := h.uc.GetList(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.GetList: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, listResp{
		Items:     newAccountResps(accounts),
		Paginator: pag.ToResponse(),
	})
}

// GetDetail - One connected account
// @Summary Get account detail
// @Tags Accounts
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} accountResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/accounts/{account_id} [get]
func (h *handler) GetDetail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	acc, err := h.uc.GetDetail(ctx, sc, c.Param("account_id"))
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.GetDetail: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAccountResp(acc))
}

// RefreshProfile - Re-read profile fields from the provider
// @Summary Refresh account profile
// @Tags Accounts
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} accountResp
// @Failure 409 {object} response.Resp
// @Router /api/v1/accounts/{account_id}/refresh [post]
func (h *handler) RefreshProfile(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	acc, err := h.uc.RefreshProfile(ctx, sc, c.Param("account_id"))
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.RefreshProfile: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newAccountResp(acc))
}

// Disconnect - Remove the account and its stored token
// @Summary Disconnect account
// @Tags Accounts
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/accounts/{account_id} [delete]
func (h *handler) Disconnect(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.Disconnect(ctx, sc, c.Param("account_id")); err != nil {
		h.l.Errorf(ctx, "account.delivery.http.Disconnect: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
