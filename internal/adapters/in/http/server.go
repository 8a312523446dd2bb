// Package http exposes the orchestration engine over a REST API.
// It coordinates between HTTP handlers and application use cases; all
// business logic stays in the command and query handlers.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/commands"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/application/usecases/queries"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/allocation"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/kernel"
	"github.com/mantoshmedhansh-dot/ilms-sub004/internal/core/domain/model/node"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server holds the use case handlers behind the REST endpoints.
type Server struct {
	orchestrateHandler     commands.OrchestrateOrderCommandHandler
	registerNodeHandler    commands.RegisterNodeCommandHandler
	registerRuleHandler    commands.RegisterRuleCommandHandler
	stockReceiptHandler    *commands.AllocateIncomingStockCommandHandler
	createBackorderHandler commands.CreateBackorderCommandHandler
	createPreorderHandler  commands.CreatePreorderCommandHandler
	holdReservationHandler commands.HoldReservationCommandHandler

	checkATPHandler      queries.CheckATPQueryHandler
	getBackordersHandler queries.GetBackordersQueryHandler
	getLogsHandler       queries.GetOrchestrationLogsQueryHandler
	getNodesHandler      queries.GetNodesQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	orchestrateHandler commands.OrchestrateOrderCommandHandler,
	registerNodeHandler commands.RegisterNodeCommandHandler,
	registerRuleHandler commands.RegisterRuleCommandHandler,
	stockReceiptHandler *commands.AllocateIncomingStockCommandHandler,
	createBackorderHandler commands.CreateBackorderCommandHandler,
	createPreorderHandler commands.CreatePreorderCommandHandler,
	holdReservationHandler commands.HoldReservationCommandHandler,
	checkATPHandler queries.CheckATPQueryHandler,
	getBackordersHandler queries.GetBackordersQueryHandler,
	getLogsHandler queries.GetOrchestrationLogsQueryHandler,
	getNodesHandler queries.GetNodesQueryHandler,
) *Server {
	return &Server{
		orchestrateHandler:     orchestrateHandler,
		registerNodeHandler:    registerNodeHandler,
		registerRuleHandler:    registerRuleHandler,
		stockReceiptHandler:    stockReceiptHandler,
		createBackorderHandler: createBackorderHandler,
		createPreorderHandler:  createPreorderHandler,
		holdReservationHandler: holdReservationHandler,
		checkATPHandler:        checkATPHandler,
		getBackordersHandler:   getBackordersHandler,
		getLogsHandler:         getLogsHandler,
		getNodesHandler:        getNodesHandler,
	}
}

// RegisterRoutes mounts every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/orchestrations", s.Orchestrate)
	v1.GET("/atp", s.CheckATP)
	v1.GET("/backorders", s.GetBackorders)
	v1.POST("/backorders", s.CreateBackorder)
	v1.GET("/orchestration-logs", s.GetOrchestrationLogs)
	v1.GET("/nodes", s.GetNodes)
	v1.POST("/nodes", s.RegisterNode)
	v1.POST("/rules", s.RegisterRule)
	v1.POST("/stock-receipts", s.ReceiveStock)
	v1.POST("/preorders", s.CreatePreorder)
	v1.POST("/reservations", s.HoldReservation)
	v1.DELETE("/reservations/:id", s.ReleaseReservation)
}

// Health reports process liveness.
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	plain
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Orchestrate handles POST /api/v1/orchestrations - allocates one order.
//
//	@Summary	Allocate an order to fulfillment nodes
//	@Tags		orchestrations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		OrchestrationRequest	true	"Order to allocate"
//	@Success	200		{object}	OrchestrationResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/orchestrations [post]
func (s *Server) Orchestrate(ctx echo.Context) error {
	var request OrchestrationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := s.buildOrchestrateCommand(request)
	if err != nil {
		return badRequest(ctx, "Invalid orchestration request: "+err.Error())
	}

	decision, handleErr := s.orchestrateHandler.Handle(ctx.Request().Context(), cmd)
	if decision == nil {
		if handleErr != nil {
			return badRequest(ctx, "Invalid orchestration request: "+handleErr.Error())
		}
		return internalError(ctx, "Orchestration produced no decision")
	}

	status := http.StatusOK
	switch {
	case errors.Is(handleErr, commands.ErrNotServiceable):
		status = http.StatusUnprocessableEntity
	case errors.Is(handleErr, commands.ErrInsufficientInventory):
		status = http.StatusConflict
	case errors.Is(handleErr, commands.ErrPartialWriteFailure):
		status = http.StatusConflict
	case handleErr != nil:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, decisionToResponse(decision))
}

// CheckATP handles GET /api/v1/atp - availability without allocation.
// product_id and quantity repeat pairwise for multi-item checks.
//
//	@Summary	Check available-to-promise quantities
//	@Tags		atp
//	@Produce	json
//	@Param		product_id	query		[]string	true	"Product IDs (repeatable)"
//	@Param		quantity	query		[]int		true	"Quantities, pairwise with product_id"
//	@Param		destination	query		string		true	"Destination pincode"
//	@Param		channel		query		string		false	"Sales channel"
//	@Success	200			{array}		ItemATP
//	@Failure	400			{object}	ErrorResponse
//	@Router		/atp [get]
func (s *Server) CheckATP(ctx echo.Context) error {
	productIDs := ctx.QueryParams()["product_id"]
	quantities := ctx.QueryParams()["quantity"]
	if len(productIDs) == 0 || len(productIDs) != len(quantities) {
		return badRequest(ctx, "product_id and quantity must repeat pairwise")
	}

	items := make([]queries.ATPItem, 0, len(productIDs))
	for i, raw := range productIDs {
		productID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid product_id: "+raw)
		}
		qty, err := strconv.Atoi(quantities[i])
		if err != nil {
			return badRequest(ctx, "Invalid quantity: "+quantities[i])
		}
		items = append(items, queries.ATPItem{ProductID: productID, Quantity: qty})
	}

	destination, err := kernel.NewPincode(ctx.QueryParam("destination"))
	if err != nil {
		return badRequest(ctx, "Invalid destination pincode")
	}

	query, err := queries.NewCheckATPQuery(items, destination, ctx.QueryParam("channel"))
	if err != nil {
		return badRequest(ctx, "Invalid ATP query: "+err.Error())
	}

	result, err := s.checkATPHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to compute availability")
	}

	response := make([]ItemATP, len(result))
	for i, item := range result {
		nodes := make([]NodeATP, len(item.Nodes))
		for j, nodeATP := range item.Nodes {
			nodes[j] = NodeATP{NodeCode: nodeATP.NodeCode, Available: nodeATP.Available}
		}
		response[i] = ItemATP{
			ProductID:       item.ProductID.String(),
			Requested:       item.Requested,
			TotalAvailable:  item.TotalAvailable,
			Fulfillable:     item.Fulfillable,
			RecommendedNode: item.RecommendedNode,
			Nodes:           nodes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBackorders handles GET /api/v1/backorders - lists backorders in drain order.
//
//	@Summary	List backorders
//	@Tags		backorders
//	@Produce	json
//	@Param		product_id	query		string	false	"Filter by product"
//	@Param		open		query		bool	false	"Only open backorders"
//	@Success	200			{array}		BackorderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/backorders [get]
func (s *Server) GetBackorders(ctx echo.Context) error {
	var productID *kernel.UUID
	if raw := ctx.QueryParam("product_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid product_id")
		}
		productID = &parsed
	}
	openOnly := ctx.QueryParam("open") == "true"

	query := queries.NewGetBackordersQuery(productID, openOnly)
	backorders, err := s.getBackordersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve backorders")
	}

	response := make([]BackorderResponse, len(backorders))
	for i, entry := range backorders {
		response[i] = BackorderResponse{
			ID:                entry.ID.String(),
			OrderID:           entry.OrderID.String(),
			ProductID:         entry.ProductID.String(),
			QuantityRequested: entry.QuantityRequested,
			QuantityAvailable: entry.QuantityAvailable,
			QuantityAllocated: entry.QuantityAllocated,
			Priority:          entry.Priority,
			Status:            entry.Status,
			CreatedAt:         entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateBackorder handles POST /api/v1/backorders - captures demand manually.
//
//	@Summary	Create a backorder
//	@Tags		backorders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateBackorderRequest	true	"Backorder to capture"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/backorders [post]
func (s *Server) CreateBackorder(ctx echo.Context) error {
	var request CreateBackorderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order_id")
	}
	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product_id")
	}

	backorderID := kernel.NewUUID()
	cmd, err := commands.NewCreateBackorderCommand(backorderID, orderID, productID,
		request.Quantity, request.Priority)
	if err != nil {
		return badRequest(ctx, "Invalid backorder data: "+err.Error())
	}

	if handleErr := s.createBackorderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create backorder")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: backorderID.String()})
}

// GetOrchestrationLogs handles GET /api/v1/orchestration-logs.
//
//	@Summary	List orchestration decision logs
//	@Tags		orchestrations
//	@Produce	json
//	@Param		order_id	query		string	false	"Filter by order"
//	@Param		limit		query		int		false	"Page size, default 50"
//	@Success	200			{array}		OrchestrationLogResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orchestration-logs [get]
func (s *Server) GetOrchestrationLogs(ctx echo.Context) error {
	var orderID *kernel.UUID
	if raw := ctx.QueryParam("order_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order_id")
		}
		orderID = &parsed
	}

	limit := 50
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetOrchestrationLogsQuery(orderID, limit)
	if err != nil {
		return badRequest(ctx, "Invalid log query: "+err.Error())
	}

	logs, err := s.getLogsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orchestration logs")
	}

	response := make([]OrchestrationLogResponse, len(logs))
	for i, entry := range logs {
		response[i] = OrchestrationLogResponse{
			ID:            entry.ID.String(),
			OrderID:       entry.OrderID.String(),
			Status:        entry.Status,
			AppliedRule:   entry.AppliedRule,
			Strategy:      entry.Strategy,
			Assignments:   entry.Assignments,
			Shortfalls:    entry.Shortfalls,
			Candidates:    entry.Candidates,
			Warnings:      entry.Warnings,
			FailureReason: entry.FailureReason,
			LatencyMicros: entry.LatencyMicros,
			DryRun:        entry.DryRun,
			CreatedAt:     entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNodes handles GET /api/v1/nodes - lists all fulfillment nodes.
//
//	@Summary	List fulfillment nodes
//	@Tags		nodes
//	@Produce	json
//	@Success	200	{array}		NodeResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/nodes [get]
func (s *Server) GetNodes(ctx echo.Context) error {
	nodes, err := s.getNodesHandler.Handle(ctx.Request().Context(), queries.NewGetNodesQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve nodes")
	}

	response := make([]NodeResponse, len(nodes))
	for i, entry := range nodes {
		response[i] = NodeResponse{
			ID:               entry.ID.String(),
			Code:             entry.Code,
			Name:             entry.Name,
			NodeType:         entry.NodeType,
			Pincode:          entry.Pincode,
			Active:           entry.Active,
			AcceptingOrders:  entry.AcceptingOrders,
			DailyCapacity:    entry.DailyCapacity,
			CurrentDayOrders: entry.CurrentDayOrders,
			PerformanceScore: entry.PerformanceScore,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterNode handles POST /api/v1/nodes - onboards a fulfillment node.
//
//	@Summary	Register a fulfillment node
//	@Tags		nodes
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RegisterNodeRequest	true	"Node to register"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/nodes [post]
func (s *Server) RegisterNode(ctx echo.Context) error {
	var request RegisterNodeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	nodeType, err := node.TypeFromString(request.NodeType)
	if err != nil {
		return badRequest(ctx, "Invalid node_type")
	}

	var geo *kernel.GeoPoint
	if request.Latitude != nil && request.Longitude != nil {
		point, geoErr := kernel.NewGeoPoint(*request.Latitude, *request.Longitude)
		if geoErr != nil {
			return badRequest(ctx, "Invalid coordinates")
		}
		geo = &point
	}

	coverage := make([]commands.CoverageInput, len(request.Coverage))
	for i, entry := range request.Coverage {
		coverage[i] = commands.CoverageInput{
			Pincode:        entry.Pincode,
			CODAllowed:     entry.CODAllowed,
			PrepaidAllowed: entry.PrepaidAllowed,
			PriorityRank:   entry.PriorityRank,
			TransitDays:    entry.TransitDays,
			ShippingCost:   entry.ShippingCost,
		}
	}

	nodeID := kernel.NewUUID()
	cmd, err := commands.NewRegisterNodeCommand(nodeID, request.Code, request.Name,
		nodeType, request.OriginPincode, request.DailyCapacity,
		request.B2C, request.B2B, geo, coverage)
	if err != nil {
		return badRequest(ctx, "Invalid node data: "+err.Error())
	}

	if handleErr := s.registerNodeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return conflict(ctx, "Failed to register node")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: nodeID.String()})
}

// RegisterRule handles POST /api/v1/rules - configures a routing rule.
//
//	@Summary	Register a routing rule
//	@Tags		rules
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RegisterRuleRequest	true	"Rule to register"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/rules [post]
func (s *Server) RegisterRule(ctx echo.Context) error {
	var request RegisterRuleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ruleID := kernel.NewUUID()
	cmd, err := commands.NewRegisterRuleCommand(ruleID, commands.RuleInput{
		Name:             request.Name,
		Priority:         request.Priority,
		Strategy:         request.Strategy,
		Channels:         request.Channels,
		PaymentMode:      request.PaymentMode,
		MinOrderValue:    request.MinOrderValue,
		MaxOrderValue:    request.MaxOrderValue,
		PincodePatterns:  request.PincodePatterns,
		TargetNode:       request.TargetNode,
		PreferredNodes:   request.PreferredNodes,
		ExcludedNodes:    request.ExcludedNodes,
		SplitAllowed:     request.SplitAllowed,
		MaxSplits:        request.MaxSplits,
		MinSplitValue:    request.MinSplitValue,
		BackorderAllowed: request.BackorderAllowed,
	})
	if err != nil {
		return badRequest(ctx, "Invalid rule data: "+err.Error())
	}

	if handleErr := s.registerRuleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return conflict(ctx, "Failed to register rule")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: ruleID.String()})
}

// ReceiveStock handles POST /api/v1/stock-receipts - applies incoming stock.
//
//	@Summary	Apply a stock receipt
//	@Tags		stock
//	@Accept		json
//	@Produce	json
//	@Param		request	body		StockReceiptRequest	true	"Receipt to apply"
//	@Success	200		{object}	StockReceiptResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/stock-receipts [post]
func (s *Server) ReceiveStock(ctx echo.Context) error {
	var request StockReceiptRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product_id")
	}

	cmd, err := commands.NewAllocateIncomingStockCommand(request.NodeCode, productID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid receipt data: "+err.Error())
	}

	summary, handleErr := s.stockReceiptHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return internalError(ctx, "Failed to apply stock receipt")
	}

	return ctx.JSON(http.StatusOK, StockReceiptResponse{
		NodeCode:         summary.NodeCode,
		ProductID:        summary.ProductID.String(),
		QtyReceived:      summary.QtyReceived,
		QtyToBackorders:  summary.QtyToBackorders,
		QtyToPool:        summary.QtyToPool,
		BackordersServed: summary.BackordersServed,
		BackordersClosed: summary.BackordersClosed,
	})
}

// CreatePreorder handles POST /api/v1/preorders - queues a preorder.
//
//	@Summary	Create a preorder
//	@Tags		preorders
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreatePreorderRequest	true	"Preorder to queue"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/preorders [post]
func (s *Server) CreatePreorder(ctx echo.Context) error {
	var request CreatePreorderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer_id")
	}
	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product_id")
	}

	preorderID := kernel.NewUUID()
	cmd, err := commands.NewCreatePreorderCommand(preorderID, customerID, productID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid preorder data: "+err.Error())
	}

	if handleErr := s.createPreorderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create preorder")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: preorderID.String()})
}

// HoldReservation handles POST /api/v1/reservations - places a checkout hold.
//
//	@Summary	Hold a soft reservation
//	@Tags		reservations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		HoldReservationRequest	true	"Hold to place"
//	@Success	201		{object}	CreatedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/reservations [post]
func (s *Server) HoldReservation(ctx echo.Context) error {
	var request HoldReservationRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product_id")
	}

	reservationID := kernel.NewUUID()
	cmd, err := commands.NewHoldReservationCommand(reservationID, request.NodeCode,
		productID, request.Channel, request.Quantity,
		time.Duration(request.TTLSeconds)*time.Second)
	if err != nil {
		return badRequest(ctx, "Invalid reservation data: "+err.Error())
	}

	if handleErr := s.holdReservationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to place reservation")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: reservationID.String()})
}

// ReleaseReservation handles DELETE /api/v1/reservations/:id.
//
//	@Summary	Release a soft reservation
//	@Tags		reservations
//	@Param		id	path	string	true	"Reservation ID"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Router		/reservations/{id} [delete]
func (s *Server) ReleaseReservation(ctx echo.Context) error {
	reservationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid reservation id")
	}

	if handleErr := s.holdReservationHandler.ReleaseReservation(
		ctx.Request().Context(), reservationID); handleErr != nil {
		return internalError(ctx, "Failed to release reservation")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) buildOrchestrateCommand(request OrchestrationRequest) (commands.OrchestrateOrderCommand, error) {
	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return commands.OrchestrateOrderCommand{}, err
	}

	tradeChannel, err := node.ChannelFromString(request.TradeChannel)
	if err != nil {
		return commands.OrchestrateOrderCommand{}, err
	}

	paymentMode, err := allocation.PaymentModeFromString(request.PaymentMode)
	if err != nil {
		return commands.OrchestrateOrderCommand{}, err
	}

	items := make([]commands.LineItemInput, 0, len(request.Items))
	for _, item := range request.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return commands.OrchestrateOrderCommand{}, itemErr
		}
		items = append(items, commands.LineItemInput{
			ProductID:    productID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			UnitWeightKg: item.UnitWeightKg,
		})
	}

	return commands.NewOrchestrateOrderCommand(orderID, request.Destination,
		request.Channel, tradeChannel, paymentMode, items, allocation.Overrides{
			ForcedNodeCode: request.ForcedNodeCode,
			ForceSplit:     request.ForceSplit,
			ForceBackorder: request.ForceBackorder,
			DryRun:         request.DryRun,
		})
}

func decisionToResponse(decision *allocation.Decision) OrchestrationResponse {
	return OrchestrationResponse{
		DecisionID:    decision.ID().String(),
		OrderID:       decision.OrderID().String(),
		Status:        decision.Status().String(),
		AppliedRule:   decision.AppliedRule(),
		Strategy:      decision.Strategy(),
		Assignments:   decision.Assignments(),
		Shortfalls:    decision.Shortfalls(),
		Candidates:    decision.Candidates(),
		Warnings:      decision.Warnings(),
		FailureReason: decision.FailureReason(),
		LatencyMicros: decision.Latency().Microseconds(),
		DryRun:        decision.IsDryRun(),
		CreatedAt:     decision.CreatedAt(),
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, ErrorResponse{
		Code:    http.StatusConflict,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
