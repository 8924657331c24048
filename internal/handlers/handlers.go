// Package handlers contains the HTTP resource endpoints. Handlers bind and
// validate the client payload first, then merge in the authenticated
// caller's identity before anything is persisted; owner fields submitted by
// the client are never read.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apierrors "github.com/kaitoh/sns-api/internal/errors"
)

// parseIDParam reads the :id path parameter. On failure it writes the 400
// response and returns false.
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
