package response

import (
	"net/url"
	"strconv"
)

// ListResponse is the paginated envelope every list endpoint returns:
// a total count, absolute next/previous page links and the page results.
type ListResponse struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// NewListResponse builds the envelope from the request URL so the
// next/previous links preserve every other query parameter.
func NewListResponse(requestURL *url.URL, count, page, pageSize int, results interface{}) ListResponse {
	resp := ListResponse{Count: count, Results: results}
	if page*pageSize < count {
		resp.Next = pageLink(requestURL, page+1)
	}
	if page > 1 {
		resp.Previous = pageLink(requestURL, page-1)
	}
	return resp
}

func pageLink(requestURL *url.URL, page int) *string {
	u := *requestURL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
