// File: services/dispatch/service.go
package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"labassist/models"
	"labassist/services/booking"
	"labassist/services/knowledge"
	"labassist/services/order"
	"labassist/utils"
)

// TODO: replace the fixed confidence score with a calibrated value.
const confidenceScore = 0.85

// DefaultDispatchService wires the oracle to the knowledge store and the
// booking and order ledgers. No state survives across calls; all durable
// state lives in the ledgers.
type DefaultDispatchService struct {
	Oracle    Oracle
	Knowledge *knowledge.Store
	Booking   booking.BookingService
	Orders    order.OrderService
	// Timeout bounds the single oracle round trip per request.
	Timeout time.Duration
}

func NewDefaultDispatchService(
	oracle Oracle,
	kb *knowledge.Store,
	bookingSvc booking.BookingService,
	orderSvc order.OrderService,
	timeout time.Duration,
) *DefaultDispatchService {
	return &DefaultDispatchService{
		Oracle:    oracle,
		Knowledge: kb,
		Booking:   bookingSvc,
		Orders:    orderSvc,
		Timeout:   timeout,
	}
}

func (s *DefaultDispatchService) HandleQuery(ctx context.Context, query, customerID string, extra map[string]any) (*models.DispatchResult, error) {
	logger := utils.GetLogger()

	// 1) Knowledge context from both namespaces, possibly empty.
	kbResults := append(s.Knowledge.SearchProtocols(query), s.Knowledge.SearchFAQ(query)...)
	contextInfo := strings.Join(kbResults, "\n")

	// 2) Single oracle round trip, bounded by the configured timeout. Any
	// failure is fatal for the request; no retry, no partial response.
	oracleCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	reply, err := s.Oracle.Complete(oracleCtx, Prompt{
		KnowledgeContext: contextInfo,
		CustomerID:       customerID,
		Query:            query,
	})
	if err != nil {
		return nil, &OracleError{Err: err}
	}

	// 3) Execute the selected action, if any.
	actionsTaken := []models.ActionRecord{}
	if reply.Call != nil {
		record, err := s.executeAction(ctx, reply.Call)
		if err != nil {
			return nil, err
		}
		if record != nil {
			actionsTaken = append(actionsTaken, *record)
		}
	}

	// 4) Escalation is computed against the original query, not the
	// oracle's response.
	result := &models.DispatchResult{
		Response:            reply.Content,
		ActionsTaken:        actionsTaken,
		ConfidenceScore:     confidenceScore,
		RequiresHumanReview: NeedsHumanReview(query),
	}
	logger.Debug("Dispatch completed",
		zap.String("customerID", customerID),
		zap.Int("actions", len(actionsTaken)),
		zap.Bool("escalated", result.RequiresHumanReview))
	return result, nil
}

// executeAction dispatches the oracle's chosen action to the matching
// component. An unknown action name is ignored, matching the upstream
// contract of zero-or-one declared actions per call.
func (s *DefaultDispatchService) executeAction(ctx context.Context, call *FunctionCall) (*models.ActionRecord, error) {
	logger := utils.GetLogger()

	switch call.Name {
	case ActionScheduleEquipment:
		input, err := bookingInputFromArgs(call.Args)
		if err != nil {
			return nil, err
		}
		result, err := s.Booking.CheckAndBook(ctx, input)
		if err != nil {
			return nil, err
		}
		return &models.ActionRecord{Action: ActionScheduleEquipment, Result: result}, nil

	case ActionCheckOrderStatus:
		orderID, err := stringArg(call.Args, call.Name, "order_id")
		if err != nil {
			return nil, err
		}
		customerID, err := stringArg(call.Args, call.Name, "customer_id")
		if err != nil {
			return nil, err
		}
		result, err := s.Orders.GetStatus(ctx, orderID, customerID)
		if err != nil {
			return nil, err
		}
		return &models.ActionRecord{Action: ActionCheckOrderStatus, Result: result}, nil

	case ActionSearchKnowledge:
		query, err := stringArg(call.Args, call.Name, "query")
		if err != nil {
			return nil, err
		}
		// Recorded under "knowledge_search" and limited to the protocol
		// namespace, matching the established wire behavior.
		return &models.ActionRecord{Action: "knowledge_search", Result: s.Knowledge.SearchProtocols(query)}, nil

	default:
		logger.Warn("Oracle selected unknown action", zap.String("action", call.Name))
		return nil, nil
	}
}

func bookingInputFromArgs(args map[string]any) (models.BookingInput, error) {
	equipmentID, err := stringArg(args, ActionScheduleEquipment, "equipment_id")
	if err != nil {
		return models.BookingInput{}, err
	}
	customerID, err := stringArg(args, ActionScheduleEquipment, "customer_id")
	if err != nil {
		return models.BookingInput{}, err
	}
	startTime, err := stringArg(args, ActionScheduleEquipment, "start_time")
	if err != nil {
		return models.BookingInput{}, err
	}
	duration, err := intArg(args, ActionScheduleEquipment, "duration_hours")
	if err != nil {
		return models.BookingInput{}, err
	}
	purpose, _ := args["purpose"].(string) // optional

	return models.BookingInput{
		EquipmentID:   equipmentID,
		CustomerID:    customerID,
		StartTime:     startTime,
		DurationHours: duration,
		Purpose:       purpose,
	}, nil
}

func stringArg(args map[string]any, action, key string) (string, error) {
	value, ok := args[key].(string)
	if !ok || value == "" {
		return "", NewValidationError(action, fmt.Sprintf("missing required argument %q", key))
	}
	return value, nil
}

// intArg accepts float64 because JSON numbers decode as float64.
func intArg(args map[string]any, action, key string) (int, error) {
	switch v := args[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, NewValidationError(action, fmt.Sprintf("missing required argument %q", key))
	}
}
