package handlers

import (
	"logistics_dashboard/internal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIHandler struct {
	orderService     services.OrderService
	inventoryService services.InventoryService
	routeService     services.RouteService
	dashboardService services.DashboardService
	userService      services.UserService
}

func NewAPIHandler(
	orderService services.OrderService,
	inventoryService services.InventoryService,
	routeService services.RouteService,
	dashboardService services.DashboardService,
	userService services.UserService,
) *APIHandler {
	return &APIHandler{
		orderService:     orderService,
		inventoryService: inventoryService,
		routeService:     routeService,
		dashboardService: dashboardService,
		userService:      userService,
	}
}

func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Orders
func (h *APIHandler) ListOrders(c *gin.Context) {
	criteria, ok := bindCriteria(c, "status")
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "count": len(orders)})
}

func (h *APIHandler) GetOrder(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// Inventory
func (h *APIHandler) ListInventory(c *gin.Context) {
	criteria, ok := bindCriteria(c, "category")
	if !ok {
		return
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": services.DescribeAll(items), "count": len(items)})
}

func (h *APIHandler) GetInventoryItem(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Routes
func (h *APIHandler) ListRoutes(c *gin.Context) {
	criteria, ok := bindCriteria(c, "status")
	if !ok {
		return
	}

	routes, err := h.routeService.ListRoutes(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes, "count": len(routes)})
}

func (h *APIHandler) GetRoute(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	route, err := h.routeService.GetRoute(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, route)
}

func (h *APIHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
