package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"daily_diet/internal/service"

	"github.com/gin-gonic/gin"
)

// Client-facing messages.
const (
	msgInvalidData        = "Invalid data"
	msgUsernameTaken      = "Username already taken"
	msgUserCreated        = "User successfully created."
	msgInvalidCredentials = "Invalid credentials"
	msgSignedIn           = "The user signed in successfully."
	msgSignedOut          = "User logout successfully"
	msgAuthRequired       = "Authentication required"
	msgMealNotFound       = "Meal not found."
	msgInvalidDateTime    = "Invalid date or time format"
	msgNotAllowed         = "Action not allowed."
	msgMealDeleted        = "Meal successfully deleted."
	msgUserNotFound       = "User not found"
	msgNoMeals            = "No meals found for this user."
	msgInvalidID          = "Invalid id"
	msgInternal           = "Internal server error"
)

// errorResponses maps domain errors to status and message; first match wins.
var errorResponses = []struct {
	err  error
	code int
	msg  string
}{
	{service.ErrInvalidData, http.StatusBadRequest, msgInvalidData},
	{service.ErrUsernameTaken, http.StatusBadRequest, msgUsernameTaken},
	{service.ErrInvalidCredentials, http.StatusBadRequest, msgInvalidCredentials},
	{service.ErrInvalidDateTime, http.StatusBadRequest, msgInvalidDateTime},
	{service.ErrMealNotFound, http.StatusBadRequest, msgMealNotFound},
	{service.ErrUserNotFound, http.StatusBadRequest, msgUserNotFound},
	{service.ErrNotAllowed, http.StatusForbidden, msgNotAllowed},
	{service.ErrInvalidSession, http.StatusUnauthorized, msgAuthRequired},
}

type messageResponse struct {
	Message string `json:"message" example:"Invalid data"`
}

func respondMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, messageResponse{Message: msg})
}

// respondError writes the response for err. Domain errors are logged at info,
// anything else is a server error logged at error level.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	for _, r := range errorResponses {
		if errors.Is(err, r.err) {
			if h.log != nil {
				h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
			}
			respondMessage(c, r.code, r.msg)
			return
		}
	}
	if h.log != nil {
		h.log.Errorw(logKey, append([]interface{}{"err", err}, kv...)...)
	}
	respondMessage(c, http.StatusInternalServerError, msgInternal)
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 with msg on failure.
// Returns false if the request was already handled, true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		respondMessage(c, http.StatusBadRequest, msg)
		return false
	}
	return true
}

// pathID reads the numeric :id parameter, answering 400 when it is not a positive integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondMessage(c, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}
