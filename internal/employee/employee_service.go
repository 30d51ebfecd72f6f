package employee

import (
	"context"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	employeeerrors "go-staff/internal/employee/errors"
	"go-staff/internal/events"
	"go-staff/internal/messaging/kafka"
	"go-staff/internal/shared/apperror"
	"go-staff/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	minAge = 5
	maxAge = 95
)

// pathIDPattern is the strict integer format for path parameters: digits
// only, no sign, no decimal point.
var pathIDPattern = regexp.MustCompile(`^[0-9]+$`)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id string) (Employee, error)
}

type service struct {
	repo      Repository
	publisher kafka.Publisher
	logger    *zap.Logger
}

func NewService(repo Repository, publisher kafka.Publisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested", zap.String("request_id", rid))

	if err := validateFields(req.Name, req.Age); err != nil {
		s.logger.Warn("create employee validation failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return Employee{}, err
	}

	records := s.repo.List()

	id, explicit, err := validateRequestedID(req.ID, records)
	if err != nil {
		s.logger.Warn("create employee id rejected",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return Employee{}, err
	}
	if !explicit {
		// The counter advances only for ids it issues itself. Explicitly
		// supplied ids do not move it, so a later auto-assign can still
		// hand out a value below a custom id already in the store.
		id = s.repo.NextID()
		s.repo.SetNextID(id + 1)
	}

	empl := Employee{
		ID:   id,
		Name: *req.Name,
		Age:  int(req.Age.(float64)),
	}
	s.repo.ReplaceAll(append(records, empl))

	s.publish(ctx, events.EmployeeCreated, empl.ID)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return empl, nil
}

func (s *service) GetAll(ctx context.Context) ([]Employee, error) {
	s.logger.Debug("get all employees requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
	)
	return s.repo.List(), nil
}

func (s *service) GetByID(ctx context.Context, id string) (Employee, error) {
	s.logger.Debug("get employee by id requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", id),
	)

	parsed, err := parsePathID(id)
	if err != nil {
		return Employee{}, err
	}

	for _, empl := range s.repo.List() {
		if empl.ID == parsed {
			return empl, nil
		}
	}
	return Employee{}, employeeerrors.ErrEmployeeNotFound
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	parsed, err := parsePathID(id)
	if err != nil {
		return Employee{}, err
	}

	if err := validateFields(req.Name, req.Age); err != nil {
		s.logger.Warn("update employee validation failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return Employee{}, err
	}

	records := s.repo.List()
	for i := range records {
		if records[i].ID != parsed {
			continue
		}

		records[i].Name = *req.Name
		records[i].Age = int(req.Age.(float64))
		s.repo.ReplaceAll(records)

		s.publish(ctx, events.EmployeeUpdated, parsed)
		s.logger.Info("update employee success",
			zap.String("request_id", rid),
			zap.Int64("employee_id", parsed),
		)
		return records[i], nil
	}

	return Employee{}, employeeerrors.ErrEmployeeNotFound
}

func (s *service) Delete(ctx context.Context, id string) (Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	parsed, err := parsePathID(id)
	if err != nil {
		return Employee{}, err
	}

	records := s.repo.List()
	for i := range records {
		if records[i].ID != parsed {
			continue
		}

		removed := records[i]
		s.repo.ReplaceAll(append(records[:i], records[i+1:]...))

		s.publish(ctx, events.EmployeeDeleted, parsed)
		s.logger.Info("delete employee success",
			zap.String("request_id", rid),
			zap.Int64("employee_id", parsed),
		)
		return removed, nil
	}

	return Employee{}, employeeerrors.ErrEmployeeNotFound
}

func (s *service) publish(ctx context.Context, eventType string, employeeID int64) {
	if s.publisher == nil {
		return
	}

	event := events.EmployeeLifecycleEvent{
		EventType:  eventType,
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: employeeID,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal employee event failed", zap.Error(err))
		return
	}

	// Eventing is best effort: a broker outage must not fail the request.
	if err := s.publisher.Publish(ctx, kafka.Event{
		Topic:         events.EmployeeLifecycleTopic,
		EventType:     eventType,
		AggregateType: "employee",
		AggregateID:   strconv.FormatInt(employeeID, 10),
		Payload:       payload,
	}); err != nil {
		s.logger.Warn("publish employee event failed",
			zap.String("event_type", eventType),
			zap.Int64("employee_id", employeeID),
			zap.Error(err),
		)
	}
}

// parsePathID enforces the strict integer format for :id path parameters.
func parsePathID(raw string) (int64, error) {
	if !pathIDPattern.MatchString(raw) {
		return 0, employeeerrors.ErrInvalidIDFormat
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, employeeerrors.ErrInvalidIDFormat
	}
	return id, nil
}

// validateFields applies the shared name/age rules in their documented order:
// missing name, missing age, empty name, then the age constraint. Age arrives
// as the raw decoded JSON value, so a JSON string or a fractional number both
// land on the age constraint error rather than a type error.
func validateFields(name *string, age any) error {
	if name == nil {
		return apperror.RequiredField("name")
	}
	if age == nil {
		return apperror.RequiredField("age")
	}
	if strings.TrimSpace(*name) == "" {
		return employeeerrors.ErrEmptyName
	}

	f, ok := age.(float64)
	if !ok || f != math.Trunc(f) || f < minAge || f > maxAge {
		return employeeerrors.ErrInvalidAge
	}
	return nil
}

// validateRequestedID checks an explicitly supplied create id. Returns
// (0, false, nil) when no id was supplied and auto-assignment should kick in.
// The lower-bound rule runs before the wholeness rule, so 0.5 is rejected as
// too small while 2.5 is rejected as not whole.
func validateRequestedID(raw any, existing []Employee) (int64, bool, error) {
	if raw == nil {
		return 0, false, nil
	}

	f, ok := raw.(float64)
	if !ok {
		return 0, false, employeeerrors.ErrIDNotWhole
	}
	if f < 1 {
		return 0, false, employeeerrors.ErrIDTooSmall
	}
	if f != math.Trunc(f) {
		return 0, false, employeeerrors.ErrIDNotWhole
	}

	id := int64(f)
	for _, empl := range existing {
		if empl.ID == id {
			return 0, false, employeeerrors.DuplicateEmployeeID(id)
		}
	}
	return id, true, nil
}
