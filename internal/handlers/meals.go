package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"daily_diet/internal/models"
	"daily_diet/internal/service"

	"github.com/gin-gonic/gin"
)

type createMealRequest struct {
	Name        string `json:"name" binding:"required" example:"Oatmeal"`
	Description string `json:"description" example:"with berries"`
	Date        string `json:"date" example:"03/14/24"`
	Time        string `json:"time" example:"07:30"`
	IsInDiet    *bool  `json:"is_in_diet" binding:"required" example:"true"`
}

// updateMealRequest: every field is optional; absent fields keep their value.
type updateMealRequest struct {
	Name        *string `json:"name,omitempty" example:"Salad"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty" example:"03/15/24"`
	Time        *string `json:"time,omitempty" example:"12:00"`
	IsInDiet    *bool   `json:"is_in_diet,omitempty"`
}

type mealResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date" example:"03/14/24"`
	Time        string `json:"time" example:"07:30"`
	IsInDiet    bool   `json:"is_in_diet"`
	UserID      int    `json:"user_id"`
}

// mealItem is a listing row; the owner is implied by the path.
type mealItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	IsInDiet    bool   `json:"is_in_diet"`
}

type userMealsResponse struct {
	MealsData     []mealItem       `json:"meals_data"`
	UserDashboard models.Dashboard `json:"user_dashboard"`
}

func newMealResponse(m models.Meal) mealResponse {
	return mealResponse{
		Name:        m.Name,
		Description: m.Description,
		Date:        m.FormattedDate(),
		Time:        m.FormattedTime(),
		IsInDiet:    m.IsInDiet,
		UserID:      m.UserID,
	}
}

func newUserMealsResponse(list service.UserMeals) userMealsResponse {
	items := make([]mealItem, 0, len(list.Meals))
	for _, m := range list.Meals {
		items = append(items, mealItem{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Date:        m.FormattedDate(),
			Time:        m.FormattedTime(),
			IsInDiet:    m.IsInDiet,
		})
	}
	return userMealsResponse{MealsData: items, UserDashboard: list.Dashboard}
}

// @Summary      Get a meal
// @Tags         meals
// @Produce      json
// @Param        id   path      int  true  "Meal ID"
// @Success      200  {object}  mealResponse
// @Failure      400  {object}  messageResponse
// @Router       /meals/{id} [get]
func (h *Handler) getMeal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.services.Meals.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "meal_get_failed", "meal_id", id)
		return
	}
	c.JSON(http.StatusOK, newMealResponse(m))
}

// @Summary      Create a meal
// @Description  date is MM/DD/YY, time is HH:MM (24-hour)
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        body  body      createMealRequest  true  "Meal"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /meals [post]
// @Security     SessionCookie
func (h *Handler) createMeal(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, msgAuthRequired)
		return
	}
	var req createMealRequest
	if ok := h.bindJSONOrBadRequest(c, &req, msgInvalidData); !ok {
		return
	}

	m, err := h.services.Meals.Create(c.Request.Context(), ident.UserID, service.MealInput{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		IsInDiet:    *req.IsInDiet,
	})
	if err != nil {
		h.respondError(c, err, "meal_create_failed", "user_id", ident.UserID)
		return
	}
	respondMessage(c, http.StatusOK, fmt.Sprintf("The meal %s was successfully created", m.Name))
}

// @Summary      Update a meal
// @Description  Partial update; only the owner may change a meal.
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Meal ID"
// @Param        body  body      updateMealRequest  false "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /meals/{id} [patch]
// @Security     SessionCookie
func (h *Handler) updateMeal(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, msgAuthRequired)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		respondMessage(c, http.StatusBadRequest, msgInvalidData)
		return
	}

	m, err := h.services.Meals.Update(c.Request.Context(), ident.UserID, id, service.MealChanges{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		IsInDiet:    req.IsInDiet,
	})
	if err != nil {
		h.respondError(c, err, "meal_update_failed", "user_id", ident.UserID, "meal_id", id)
		return
	}
	respondMessage(c, http.StatusOK, fmt.Sprintf("Meal %s successfully updated.", m.Name))
}

// @Summary      Delete a meal
// @Tags         meals
// @Produce      json
// @Param        id   path      int  true  "Meal ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /meals/{id} [delete]
// @Security     SessionCookie
func (h *Handler) deleteMeal(c *gin.Context) {
	ident, ok := currentIdentity(c)
	if !ok {
		respondMessage(c, http.StatusUnauthorized, msgAuthRequired)
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.services.Meals.Delete(c.Request.Context(), ident.UserID, id); err != nil {
		h.respondError(c, err, "meal_delete_failed", "user_id", ident.UserID, "meal_id", id)
		return
	}
	respondMessage(c, http.StatusOK, msgMealDeleted)
}

// @Summary      List a user's meals with the diet dashboard
// @Description  Answers with only a message when the user has no meals.
// @Tags         meals
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  userMealsResponse
// @Failure      400  {object}  messageResponse
// @Router       /meals/user/{id} [get]
func (h *Handler) listUserMeals(c *gin.Context) {
	userID, ok := pathID(c)
	if !ok {
		return
	}
	list, err := h.services.Meals.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "meal_list_failed", "user_id", userID)
		return
	}
	if len(list.Meals) == 0 {
		respondMessage(c, http.StatusOK, msgNoMeals)
		return
	}
	c.JSON(http.StatusOK, newUserMealsResponse(list))
}
