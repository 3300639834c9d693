package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct{ Svc *services.CatalogService }

func NewFoodController(s *services.CatalogService) *FoodController { return &FoodController{Svc: s} }

// GET /foods?category=&search=
func (h *FoodController) List(c *gin.Context) {
	foods, err := h.Svc.List(c.Query("category"), c.Query("search"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, foods)
}

// GET /foods/:id
func (h *FoodController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid food item id")
		return
	}
	food, err := h.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, food)
}

// POST /foods
func (h *FoodController) Create(c *gin.Context) {
	var req services.CreateFoodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := h.Svc.Create(&req, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, food)
}

// PATCH /foods/:id
func (h *FoodController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid food item id")
		return
	}
	var req services.FoodItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	food, err := h.Svc.Update(uint(id), &req, utils.CurrentUserID(c), utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, food)
}

// DELETE /foods/:id
func (h *FoodController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid food item id")
		return
	}
	if err := h.Svc.Delete(uint(id), utils.CurrentUserID(c), utils.CurrentRole(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
