package handlers

import "github.com/gin-gonic/gin"

// Listing endpoints page by offset with a fixed page size.
const pageSize = 10

type listQuery struct {
	Offset int `form:"offset,default=0" binding:"gte=0"`
}

func bindListQuery(ctx *gin.Context) (listQuery, bool) {
	var query listQuery

	if err := ctx.ShouldBindQuery(&query); err != nil {
		return listQuery{}, false
	}

	return query, true
}
