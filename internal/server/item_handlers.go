package server

import (
	"github.com/gin-gonic/gin"

	"github.com/Wichtowski/whobought/internal/models"
	"github.com/Wichtowski/whobought/internal/responses"
)

type itemRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=500"`
	PurchasedBy string   `json:"purchasedBy" binding:"required"`
	Amount      float64  `json:"amount" binding:"required,gt=0"`
	PaidFor     []string `json:"paidFor" binding:"required"`
}

func (r *itemRequest) toModel() *models.Item {
	return &models.Item{
		Name:        r.Name,
		Description: r.Description,
		PurchasedBy: r.PurchasedBy,
		Amount:      r.Amount,
		PaidFor:     r.PaidFor,
	}
}

// listItems returns all items, or a filtered subset when one of the query
// params is present: ?name= (substring), ?purchased_by=, ?paid_for=.
func (s *Server) listItems(c *gin.Context) {
	ctx := c.Request.Context()
	items := s.store.Items()

	var (
		result []models.Item
		err    error
	)
	switch {
	case c.Query("name") != "":
		result, err = items.SearchByName(ctx, c.Query("name"))
	case c.Query("purchased_by") != "":
		result, err = items.FindByPurchaser(ctx, c.Query("purchased_by"))
	case c.Query("paid_for") != "":
		result, err = items.FindPaidFor(ctx, c.Query("paid_for"))
	default:
		result, err = items.List(ctx)
	}
	if err != nil {
		s.storeError(c, "list items", err)
		return
	}
	responses.OK(c, result, "Success")
}

func (s *Server) createItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid item payload", err.Error())
		return
	}

	item := req.toModel()
	if err := s.store.Items().Create(c.Request.Context(), item); err != nil {
		s.storeError(c, "create item", err)
		return
	}
	responses.Created(c, item, "Item created successfully")
}

func (s *Server) getItem(c *gin.Context) {
	item, err := s.store.Items().Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, "get item", err)
		return
	}
	if item == nil {
		responses.NotFound(c, "Item not found")
		return
	}
	responses.OK(c, item, "Success")
}

func (s *Server) updateItem(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid item payload", err.Error())
		return
	}

	updated, err := s.store.Items().Update(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		s.storeError(c, "update item", err)
		return
	}
	if updated == nil {
		responses.NotFound(c, "Item not found")
		return
	}
	responses.OK(c, updated, "Item updated successfully")
}

func (s *Server) deleteItem(c *gin.Context) {
	deleted, err := s.store.Items().Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, "delete item", err)
		return
	}
	if !deleted {
		responses.NotFound(c, "Item not found")
		return
	}
	responses.OK(c, nil, "Item deleted successfully")
}
