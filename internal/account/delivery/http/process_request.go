package http

import (
	"insight-srv/internal/account"
	"insight-srv/internal/model"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processConnectRequest(c *gin.Context) (account.ConnectInput, model.Scope, error) {
	var req connectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return account.ConnectInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return account.ConnectInput{
		IGUserID:    req.IGUserID,
		AccessToken: req.AccessToken,
	}, sc, nil
}

func (h *handler) processGetListRequest(c *gin.Context) (account.GetListInput, model.Scope, error) {
	var req getListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return account.GetListInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return account.GetListInput{
		PagQuery: req.PaginateQuery,
	}, sc, nil
}
