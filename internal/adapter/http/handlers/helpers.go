package handlers

import (
	"net/http"
	"strconv"

	"servicedesk/internal/adapter/http/dto/response"
	"servicedesk/internal/usecase"
	"servicedesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pageParams extracts the 1-indexed page/page_size query pair. Garbage
// values fall through as zero and pick up the usecase defaults.
func pageParams(c *gin.Context) usecase.PageParams {
	page, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("page_size"))
	return usecase.PageParams{Page: page, PageSize: size}
}

// respondList wraps one result page in the paginated envelope, deriving
// next/previous links from the request URL.
func respondList(c *gin.Context, count int, p usecase.PageParams, results interface{}) {
	p = p.Normalize()
	c.JSON(http.StatusOK, response.NewListResponse(c.Request.URL, count, p.Page, p.PageSize, results))
}
