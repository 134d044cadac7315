package handler

import (
	"strconv"

	"artistry/internal/repository"

	"github.com/gin-gonic/gin"
)

// listOptions reads the shared admin-table query parameters. filterParam
// names the enum filter for the entity ("category", "size", "medium", ...);
// an absent or empty value means no filter.
func listOptions(c *gin.Context, defaultPerPage int, filterParam string) repository.ListOptions {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	opts := repository.ListOptions{
		Search:  c.Query("search"),
		Page:    page,
		PerPage: perPage,
	}
	if filterParam != "" {
		opts.Filter = c.Query(filterParam)
	}
	return opts
}
