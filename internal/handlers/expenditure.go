package handlers

import (
	"net/http"

	"expense_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type expenditureCreateRequest struct {
	Category        string  `json:"category" binding:"required"`
	NameOfItem      string  `json:"nameOfItem" binding:"required"`
	EstimatedAmount float64 `json:"estimatedAmount" binding:"required"`
}

// PUT bodies may carry a subset of fields; absent fields stay unchanged.
type expenditureUpdateRequest struct {
	Category        *string  `json:"category"`
	NameOfItem      *string  `json:"nameOfItem"`
	EstimatedAmount *float64 `json:"estimatedAmount"`
}

// @Summary      Get user's expenditure data
// @Tags         expenditure
// @Produce      json
// @Success      200  {array}   models.Expenditure
// @Failure      401  {object}  map[string]string
// @Router       /user/expenditure [get]
// @Security     BearerAuth
func (h *Handler) listExpenditure(c *gin.Context) {
	records, err := h.services.Expenditures.List(c.Request.Context(), authedUserID(c))
	if err != nil {
		h.serviceError(c, err, "expenditure_list_failed")
		return
	}
	c.JSON(http.StatusOK, records)
}

// @Summary      Add expenditure data
// @Tags         expenditure
// @Accept       json
// @Produce      json
// @Param        body  body  expenditureCreateRequest  true  "Expenditure payload"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /user/expenditure [post]
// @Security     BearerAuth
func (h *Handler) createExpenditure(c *gin.Context) {
	var req expenditureCreateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	if _, err := h.services.Expenditures.Create(c.Request.Context(), authedUserID(c), service.ExpenditureInput{
		Category:        req.Category,
		NameOfItem:      req.NameOfItem,
		EstimatedAmount: req.EstimatedAmount,
	}); err != nil {
		h.serviceError(c, err, "expenditure_create_failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "new expenditure added"})
}

// @Summary      Get expenditure data by ID
// @Tags         expenditure
// @Produce      json
// @Param        id  path  string  true  "Expenditure ID"
// @Success      200  {object}  models.Expenditure
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/expenditure/{id} [get]
// @Security     BearerAuth
func (h *Handler) getExpenditure(c *gin.Context) {
	id, ok := checkRecordID(c, "expenditure")
	if !ok {
		return
	}

	rec, err := h.services.Expenditures.Get(c.Request.Context(), authedUserID(c), id)
	if err != nil {
		h.serviceError(c, err, "expenditure_get_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Update expenditure data by ID
// @Tags         expenditure
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Expenditure ID"
// @Param        body  body  expenditureUpdateRequest  true  "Fields to change"
// @Success      200  {object}  models.Expenditure
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/expenditure/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateExpenditure(c *gin.Context) {
	id, ok := checkRecordID(c, "expenditure")
	if !ok {
		return
	}

	var req expenditureUpdateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	rec, err := h.services.Expenditures.Update(c.Request.Context(), authedUserID(c), id, service.ExpenditureUpdate{
		Category:        req.Category,
		NameOfItem:      req.NameOfItem,
		EstimatedAmount: req.EstimatedAmount,
	})
	if err != nil {
		h.serviceError(c, err, "expenditure_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      Delete expenditure data by ID
// @Tags         expenditure
// @Produce      json
// @Param        id  path  string  true  "Expenditure ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/expenditure/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteExpenditure(c *gin.Context) {
	id, ok := checkRecordID(c, "expenditure")
	if !ok {
		return
	}

	if err := h.services.Expenditures.Delete(c.Request.Context(), authedUserID(c), id); err != nil {
		h.serviceError(c, err, "expenditure_delete_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expenditure deleted successfully"})
}
