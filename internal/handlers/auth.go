package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both registration and login.
// Emptiness is checked by the service so each endpoint can answer with its own message.
type authCredentials struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"s3cr3t"`
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]interface{}  "message, id"
// @Failure      400   {object}  messageResponse
// @Router       /user [post]
func (h *Handler) signUp(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input, msgInvalidData); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, err, "auth_sign_up_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUserCreated, "id": id})
}

// @Summary      Log in
// @Description  Sets the session cookie on success.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /login [post]
func (h *Handler) signIn(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input, msgInvalidCredentials); !ok {
		return
	}

	token, err := h.services.SignIn(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, err, "auth_sign_in_failed", "username", input.Username)
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.SessionTTL.Seconds()))
	respondMessage(c, http.StatusOK, msgSignedIn)
}

// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /logout [get]
// @Security     SessionCookie
func (h *Handler) signOut(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, msgAuthRequired)
		return
	}
	if err := h.services.SignOut(c.Request.Context(), ident.SessionID); err != nil {
		h.respondError(c, err, "auth_sign_out_failed", "user_id", ident.UserID)
		return
	}

	h.setSessionCookie(c, "", -1)
	respondMessage(c, http.StatusOK, msgSignedOut)
}

// setSessionCookie writes the HttpOnly session cookie; maxAge < 0 deletes it.
func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, value, maxAge, "/", "", h.cfg.CookieSecure, true)
}
