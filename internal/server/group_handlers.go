package server

import (
	"github.com/gin-gonic/gin"

	"github.com/Wichtowski/whobought/internal/balance"
	"github.com/Wichtowski/whobought/internal/models"
	"github.com/Wichtowski/whobought/internal/responses"
)

type groupRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=500"`
	MemberIDs   []string `json:"member_ids" binding:"required"`
	AdminIDs    []string `json:"admin_ids" binding:"required"`
}

func (r *groupRequest) toModel() *models.Group {
	return &models.Group{
		Name:        r.Name,
		Description: r.Description,
		MemberIDs:   r.MemberIDs,
		AdminIDs:    r.AdminIDs,
	}
}

// listGroups returns all groups, or a filtered subset via ?member= or
// ?name= (substring).
func (s *Server) listGroups(c *gin.Context) {
	ctx := c.Request.Context()
	groups := s.store.Groups()

	var (
		result []models.Group
		err    error
	)
	switch {
	case c.Query("member") != "":
		result, err = groups.FindByMember(ctx, c.Query("member"))
	case c.Query("name") != "":
		result, err = groups.SearchByName(ctx, c.Query("name"))
	default:
		result, err = groups.List(ctx)
	}
	if err != nil {
		s.storeError(c, "list groups", err)
		return
	}
	responses.OK(c, result, "Success")
}

func (s *Server) createGroup(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid group payload", err.Error())
		return
	}

	group := req.toModel()
	if err := s.store.Groups().Create(c.Request.Context(), group); err != nil {
		s.storeError(c, "create group", err)
		return
	}
	responses.Created(c, group, "Group created successfully")
}

func (s *Server) getGroup(c *gin.Context) {
	group, err := s.store.Groups().Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, "get group", err)
		return
	}
	if group == nil {
		responses.NotFound(c, "Group not found")
		return
	}
	responses.OK(c, group, "Success")
}

func (s *Server) updateGroup(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid group payload", err.Error())
		return
	}

	updated, err := s.store.Groups().Update(c.Request.Context(), c.Param("id"), req.toModel())
	if err != nil {
		s.storeError(c, "update group", err)
		return
	}
	if updated == nil {
		responses.NotFound(c, "Group not found")
		return
	}
	responses.OK(c, updated, "Group updated successfully")
}

// groupBalances aggregates the group's purchases and payments into
// per-member balances and suggested settling transfers.
func (s *Server) groupBalances(c *gin.Context) {
	ctx := c.Request.Context()
	groupID := c.Param("id")

	group, err := s.store.Groups().Get(ctx, groupID)
	if err != nil {
		s.storeError(c, "get group", err)
		return
	}
	if group == nil {
		responses.NotFound(c, "Group not found")
		return
	}

	purchases, err := s.store.Purchases().ListByGroup(ctx, groupID)
	if err != nil {
		s.storeError(c, "list group purchases", err)
		return
	}
	payments, err := s.store.Payments().ListByGroup(ctx, groupID)
	if err != nil {
		s.storeError(c, "list group payments", err)
		return
	}

	balances, edges := balance.Compute(group, purchases, payments)
	responses.OK(c, gin.H{
		"balances":    balances,
		"settlements": edges,
	}, "Success")
}

// deleteGroup removes only the group document; its purchases and payments
// are left in place.
func (s *Server) deleteGroup(c *gin.Context) {
	deleted, err := s.store.Groups().Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.storeError(c, "delete group", err)
		return
	}
	if !deleted {
		responses.NotFound(c, "Group not found")
		return
	}
	responses.OK(c, nil, "Group deleted successfully")
}
