package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wichtowski/whobought/internal/models"
	"github.com/Wichtowski/whobought/internal/responses"
)

type paymentRequest struct {
	UserID      string    `json:"user_id" binding:"required"`
	GroupID     string    `json:"group_id" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Description string    `json:"description" binding:"max=500"`
	PaymentDate time.Time `json:"payment_date" binding:"required"`
}

func (r *paymentRequest) toModel() *models.Payment {
	return &models.Payment{
		UserID:      r.UserID,
		GroupID:     r.GroupID,
		Amount:      r.Amount,
		Description: r.Description,
		PaymentDate: r.PaymentDate,
	}
}

// listPayments returns all payments, or a filtered subset via ?group_id= or
// ?user_id=.
func (s *Server) listPayments(c *gin.Context) {
	ctx := c.Request.Context()
	payments := s.store.Payments()

	var (
		result []models.Payment
		err    error
	)
	switch {
	case c.Query("group_id") != "":
		result, err = payments.ListByGroup(ctx, c.Query("group_id"))
	case c.Query("user_id") != "":
		result, err = payments.ListByUser(ctx, c.Query("user_id"))
	default:
		result, err = payments.List(ctx)
	}
	if err != nil {
		s.storeError(c, "list payments", err)
		return
	}
	responses.OK(c, result, "Success")
}

func (s *Server) createPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid payment payload", err.Error())
		return
	}

	payment := req.toModel()
	if err := s.store.Payments().Create(c.Request.Context(), payment); err != nil {
		s.storeError(c, "create payment", err)
		return
	}
	responses.Created(c, payment, "Payment created successfully")
}

func (s *Server) getPayment(c *gin.Context) {
	payment, err := s.store.Payments().Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, "get payment", err)
		return
	}
	if payment == nil {
		responses.NotFound(c, "Payment not found")
		return
	}
	responses.OK(c, payment, "Success")
}

func (s *Server) updatePayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid payment payload", err.Error())
		return
	}

	updated, err := s.store.Payments().Update(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		s.storeError(c, "update payment", err)
		return
	}
	if updated == nil {
		responses.NotFound(c, "Payment not found")
		return
	}
	responses.OK(c, updated, "Payment updated successfully")
}

func (s *Server) deletePayment(c *gin.Context) {
	deleted, err := s.store.Payments().Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, "delete payment", err)
		return
	}
	if !deleted {
		responses.NotFound(c, "Payment not found")
		return
	}
	responses.OK(c, nil, "Payment deleted successfully")
}
