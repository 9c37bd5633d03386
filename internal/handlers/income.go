package handlers

import (
	"net/http"

	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type incomeCreateRequest struct {
	NameOfRevenue string  `json:"nameOfRevenue" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
}

// PUT bodies may carry a subset of fields; absent fields stay unchanged.
type incomeUpdateRequest struct {
	NameOfRevenue *string  `json:"nameOfRevenue"`
	Amount        *float64 `json:"amount"`
}

// checkRecordID validates a path id as UUID and writes a 400 if it isn't one.
func checkRecordID(c *gin.Context, label string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid " + label + " ID"})
		return "", false
	}
	return id, true
}

// @Summary      Get user's income data
// @Tags         income
// @Produce      json
// @Success      200  {array}   models.Income
// @Failure      401  {object}  map[string]string
// @Router       /user/income [get]
// @Security     BearerAuth
func (h *Handler) listIncome(c *gin.Context) {
	records, err := h.services.Incomes.List(c.Request.Context(), authedUserID(c))
	if err != nil {
		h.serviceError(c, err, "income_list_failed")
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary      Add income data
// @Tags         income
// @Accept       json
// @Produce      json
// @Param        body  body  incomeCreateRequest  true  "Income payload"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /user/income [post]
// @Security     BearerAuth
func (h *Handler) createIncome(c *gin.Context) {
	var req incomeCreateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if _, err := h.services.Incomes.Create(c.Request.Context(), authedUserID(c), service.IncomeInput{
		NameOfRevenue: req.NameOfRevenue,
		Amount:        req.Amount,
	}); err != nil {
		h.serviceError(c, err, "income_create_failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "new income added"})
}

// @Summary      Get income data by ID
// @Tags         income
// @Produce      json
// @Param        id  path  string  true  "Income ID"
// @Success      200  {object}  models.Income
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/income/{id} [get]
// @Security     BearerAuth
func (h *Handler) getIncome(c *gin.Context) {
	id, ok := checkRecordID(c, "income")
	if !ok {
		return
	}

	rec, err := h.services.Incomes.Get(c.Request.Context(), authedUserID(c), id)
	if err != nil {
		h.serviceError(c, err, "income_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Update income data by ID
// @Tags         income
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Income ID"
// @Param        body  body  incomeUpdateRequest  true  "Fields to change"
// @Success      200  {object}  models.Income
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/income/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateIncome(c *gin.Context) {
	id, ok := checkRecordID(c, "income")
	if !ok {
		return
	}

	var req incomeUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	rec, err := h.services.Incomes.Update(c.Request.Context(), authedUserID(c), id, service.IncomeUpdate{
		NameOfRevenue: req.NameOfRevenue,
		Amount:        req.Amount,
	})
	if err != nil {
		h.serviceError(c, err, "income_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Delete income data by ID
// @Tags         income
// @Produce      json
// @Param        id  path  string  true  "Income ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/income/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteIncome(c *gin.Context) {
	id, ok := checkRecordID(c, "income")
	if !ok {
		return
	}

	if err := h.services.Incomes.Delete(c.Request.Context(), authedUserID(c), id); err != nil {
		h.serviceError(c, err, "income_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "income deleted successfully"})
}
