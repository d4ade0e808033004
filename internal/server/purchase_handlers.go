package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wichtowski/whobought/internal/models"
	"github.com/Wichtowski/whobought/internal/responses"
)

type purchaseRequest struct {
	Name         string    `json:"name" binding:"required,max=100"`
	Description  string    `json:"description" binding:"max=500"`
	UserID       string    `json:"user_id" binding:"required"`
	GroupID      string    `json:"group_id" binding:"required"`
	PurchaseDate time.Time `json:"purchase_date" binding:"required"`
	TotalAmount  float64   `json:"total_amount" binding:"required,gt=0"`
}

func (r *purchaseRequest) toModel() *models.Purchase {
	return &models.Purchase{
		Name:         r.Name,
		Description:  r.Description,
		UserID:       r.UserID,
		GroupID:      r.GroupID,
		PurchaseDate: r.PurchaseDate,
		TotalAmount:  r.TotalAmount,
	}
}

// listPurchases returns all purchases, or a filtered subset: ?group_id=
// optionally combined with ?from= and ?to= (RFC 3339), or ?user_id=.
func (s *Server) listPurchases(c *gin.Context) {
	ctx := c.Request.Context()
	purchases := s.store.Purchases()
	groupID := c.Query("group_id")

	var (
		result []models.Purchase
		err    error
	)
	switch {
	case groupID != "" && (c.Query("from") != "" || c.Query("to") != ""):
		from, to, perr := parseTimeframe(c.Query("from"), c.Query("to"))
		if perr != nil {
			responses.BadRequest(c, "Invalid timeframe", perr.Error())
			return
		}
		result, err = purchases.ListByGroupBetween(ctx, groupID, from, to)
	case groupID != "":
		result, err = purchases.ListByGroup(ctx, groupID)
	case c.Query("user_id") != "":
		result, err = purchases.ListByUser(ctx, c.Query("user_id"))
	default:
		result, err = purchases.List(ctx)
	}
	if err != nil {
		s.storeError(c, "list purchases", err)
		return
	}
	responses.OK(c, result, "Success")
}

func parseTimeframe(fromStr, toStr string) (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Now().UTC()

	var err error
	if fromStr != "" {
		if from, err = time.Parse(time.RFC3339, fromStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if toStr != "" {
		if to, err = time.Parse(time.RFC3339, toStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}

func (s *Server) createPurchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid purchase payload", err.Error())
		return
	}

	purchase := req.toModel()
	if err := s.store.Purchases().Create(c.Request.Context(), purchase); err != nil {
		s.storeError(c, "create purchase", err)
		return
	}
	responses.Created(c, purchase, "Purchase created successfully")
}

func (s *Server) getPurchase(c *gin.Context) {
	purchase, err := s.store.Purchases().Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, "get purchase", err)
		return
	}
	if purchase == nil {
		responses.NotFound(c, "Purchase not found")
		return
	}
	responses.OK(c, purchase, "Success")
}

func (s *Server) updatePurchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid purchase payload", err.Error())
		return
	}

	updated, err := s.store.Purchases().Update(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		s.storeError(c, "update purchase", err)
		return
	}
	if updated == nil {
		responses.NotFound(c, "Purchase not found")
		return
	}
	responses.OK(c, updated, "Purchase updated successfully")
}

func (s *Server) deletePurchase(c *gin.Context) {
	deleted, err := s.store.Purchases().Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, "delete purchase", err)
		return
	}
	if !deleted {
		responses.NotFound(c, "Purchase not found")
		return
	}
	responses.OK(c, nil, "Purchase deleted successfully")
}
