package account

import "insight-srv/pkg/paginator"

type ConnectInput struct {
	IGUserID    string
	AccessToken string
}

type ConnectOutput struct {
	ID       string
	Username string
	Existing bool
}

type GetListInput struct {
	PagQuery paginator.PaginateQuery
}
