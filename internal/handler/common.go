package handler // handler defines the HTTP handlers of the public API

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Every endpoint answers with the same envelope: {success, message, data}
// plus a count on list responses. The helpers below keep the shape
// consistent across handlers.

func ok(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, echo.Map{"success": true, "message": message, "data": data})
}

func okList(c echo.Context, message string, count int, data any) error {
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": message, "count": count, "data": data})
}

func fail(c echo.Context, code int, message string) error {
	return c.JSON(code, echo.Map{"success": false, "message": message})
}

// pathID parses the numeric id path parameter named by key.
func pathID(c echo.Context, key string) (uint64, error) {
	return strconv.ParseUint(c.Param(key), 10, 64)
}

// queryPage parses the zero-based ?page parameter; absent or malformed
// values fall back to the first page.
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 0 {
		return 0
	}
	return page
}
