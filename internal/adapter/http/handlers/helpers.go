package handlers

import (
	"net/http"
	"strconv"

	"sarb_ai/pkg"

	"github.com/gin-gonic/gin"
)

// paramInt reads a positive integer path parameter or answers 400 itself.
// The bool tells the caller whether to continue.
func paramInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid "+name, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return v, true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
