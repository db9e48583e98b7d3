// Package http exposes the marketplace operations over a REST API. Routes
// are grouped by marketplace role; authentication and the role gate run as
// Echo middleware, while transition authorization stays in the domain policy.
package http

import (
	"net/http"

	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/application/usecases/queries"
	"freshcart/internal/core/domain/model/auth"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	forceSetStatusHandler    commands.ForceSetStatusCommandHandler
	assignPartnerHandler     commands.AssignPartnerCommandHandler
	createPartnerHandler     commands.CreatePartnerCommandHandler
	linkUserHandler          commands.LinkUserToPartnerCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getVendorOrdersHandler   queries.GetVendorOrdersQueryHandler
	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	forceSetStatusHandler commands.ForceSetStatusCommandHandler,
	assignPartnerHandler commands.AssignPartnerCommandHandler,
	createPartnerHandler commands.CreatePartnerCommandHandler,
	linkUserHandler commands.LinkUserToPartnerCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getVendorOrdersHandler queries.GetVendorOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAssignedOrdersHandler queries.GetAssignedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		forceSetStatusHandler:    forceSetStatusHandler,
		assignPartnerHandler:     assignPartnerHandler,
		createPartnerHandler:     createPartnerHandler,
		linkUserHandler:          linkUserHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getVendorOrdersHandler:   getVendorOrdersHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getAssignedOrdersHandler: getAssignedOrdersHandler,
	}
}

// RegisterRoutes mounts the role-scoped API under /api/v1. Every route
// requires a valid bearer token; the role gate narrows each group further.
func (s *Server) RegisterRoutes(e *echo.Echo, authn *Authenticator) {
	api := e.Group("/api/v1", authn.Middleware)

	customer := api.Group("", RequireRole(auth.RoleCustomer))
	customer.POST("/orders", s.CreateOrder)
	customer.GET("/me/orders", s.GetMyOrders)

	vendor := api.Group("", RequireRole(auth.RoleVendor))
	vendor.GET("/vendors/me/orders", s.GetVendorOrders)

	delivery := api.Group("", RequireRole(auth.RoleDelivery))
	delivery.GET("/partners/me/orders", s.GetAssignedOrders)

	// Status changes are policy-checked per actor inside the domain, so the
	// route admits both roles and lets the transition policy decide.
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus,
		RequireRole(auth.RoleAdmin, auth.RoleDelivery))

	// Customers may fetch their own orders by ID; the handler enforces
	// ownership so one customer cannot read another's order.
	api.GET("/orders/:id", s.GetOrder,
		RequireRole(auth.RoleAdmin, auth.RoleCustomer))

	admin := api.Group("", RequireRole(auth.RoleAdmin))
	admin.GET("/orders", s.GetAllOrders)
	admin.PUT("/orders/:id/status", s.ForceSetOrderStatus)
	admin.POST("/orders/:id/assignment", s.AssignPartner)
	admin.POST("/partners", s.CreatePartner)
	admin.POST("/partners/:id/user-link", s.LinkUserToPartner)
}

// CreateOrder handles POST /api/v1/orders - checks out the caller's cart
// into a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, principal.ID())
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetMyOrders handles GET /api/v1/me/orders - the caller's own orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	query, err := queries.NewGetCustomerOrdersQuery(principal.ID())
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	details, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailsListResponse(details))
}

// GetVendorOrders handles GET /api/v1/vendors/me/orders - orders containing
// at least one of the caller's products.
func (s *Server) GetVendorOrders(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	query, err := queries.NewGetVendorOrdersQuery(principal.ID())
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	summaries, err := s.getVendorOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListResponse(summaries))
}

// GetAssignedOrders handles GET /api/v1/partners/me/orders - the caller's
// deliveries, past and present. The principal already carries the partner ID.
func (s *Server) GetAssignedOrders(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	query, err := queries.NewGetAssignedOrdersQuery(principal.ID())
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	details, err := s.getAssignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderDetailsListResponse(details))
}

// GetAllOrders handles GET /api/v1/orders - every order in the system.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	summaries, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderListResponse(summaries))
}

// GetOrder handles GET /api/v1/orders/:id - a single order with its items.
// Admins see any order; a customer sees only their own, and an order owned
// by someone else reads as not found.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if !mayViewOrder(principal, details) {
		return errorResponse(ctx, http.StatusNotFound, "Order not found")
	}

	return ctx.JSON(http.StatusOK, toOrderDetailsResponse(details))
}

// mayViewOrder decides whether the principal may read the order. Owning
// customers and admins qualify.
func mayViewOrder(principal auth.Principal, details queries.OrderDetailsResponse) bool {
	if principal.IsAdmin() {
		return true
	}
	return principal.Role() == auth.RoleCustomer && details.CustomerID.IsEqual(principal.ID())
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - a status
// change checked against the transition policy for the calling actor.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, principal)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ForceSetOrderStatus handles PUT /api/v1/orders/:id/status - the admin
// override that skips the transition graph.
func (s *Server) ForceSetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	cmd, err := commands.NewForceSetStatusCommand(orderID, status)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.forceSetStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignPartner handles POST /api/v1/orders/:id/assignment - dispatches the
// order to a delivery partner.
func (s *Server) AssignPartner(ctx echo.Context) error {
	principal, err := principalFrom(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Missing bearer token")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var request AssignPartnerRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	partnerID, err := kernel.UUIDFromString(request.PartnerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid partner ID")
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID, principal)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePartner handles POST /api/v1/partners - registers a delivery partner.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var request CreatePartnerRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	var linkedUserID *kernel.UUID
	if request.LinkedUserID != "" {
		userID, parseErr := kernel.UUIDFromString(request.LinkedUserID)
		if parseErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid linked user ID")
		}
		linkedUserID = &userID
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(
		partnerID, request.Name, request.Phone, request.VehicleType, linkedUserID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.createPartnerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: partnerID.String()})
}

// LinkUserToPartner handles POST /api/v1/partners/:id/user-link - binds a
// user account to a partner record. The link is permanent.
func (s *Server) LinkUserToPartner(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid partner ID")
	}

	var request LinkUserRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.Validate(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid user ID")
	}

	cmd, err := commands.NewLinkUserToPartnerCommand(partnerID, userID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if handleErr := s.linkUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}
