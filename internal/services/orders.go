package services

import (
	"errors"
	"strconv"

	"github.com/orderdesk-dev/orderdesk/internal/cart"
	"github.com/orderdesk-dev/orderdesk/internal/logger"
	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/orderdesk-dev/orderdesk/internal/types"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService implements the order lifecycle: cart confirmation, executor
// assignment, status changes, comments and the filtered listings.
type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(conn *gorm.DB) *OrderService {
	return &OrderService{DB: conn}
}

// OrderFilter narrows the admin order listing. StatusID is "new" for orders
// without a status, empty or "all" for no status filter, or a status id.
// Zero ClientID/ExecutorID mean no filter. Filters combine conjunctively.
type OrderFilter struct {
	StatusID   string
	ClientID   uint
	ExecutorID uint
}

// OrderListing is one page of parsed orders plus the data the filter
// dropdowns are built from.
type OrderListing struct {
	Orders    types.Page[OrderView] `json:"orders"`
	Statuses  []models.Status       `json:"statuses"`
	Clients   []models.User         `json:"clients"`
	Executors []models.User         `json:"executors"`
}

// OrderDetail aggregates everything the order page shows. A missing order id
// yields Found=false with an empty order view rather than an error.
type OrderDetail struct {
	Order              OrderView               `json:"order"`
	Found              bool                    `json:"found"`
	Executors          []models.User           `json:"executors"`
	AvailableExecutors []models.User           `json:"available_executors"`
	Comments           types.Page[CommentView] `json:"comments"`
	Statuses           []models.Status         `json:"statuses"`
}

// List returns the filtered, paginated order listing.
func (s *OrderService) List(filter OrderFilter, page int) (OrderListing, error) {
	listing := OrderListing{}

	query := s.DB.Model(&models.Order{})

	switch filter.StatusID {
	case "", "all":
	case models.StatusNew:
		query = query.Where("status_id IS NULL")
	default:
		statusID, err := strconv.ParseUint(filter.StatusID, 10, 64)
		if err == nil {
			query = query.Where("status_id = ?", statusID)
		}
	}

	if filter.ClientID != 0 {
		query = query.Where("user_id = ?", filter.ClientID)
	}

	if filter.ExecutorID != 0 {
		assigned := s.DB.Model(&models.OrderExecutor{}).
			Select("order_id").
			Where("user_id = ?", filter.ExecutorID)
		query = query.Where("id IN (?)", assigned)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return listing, err
	}

	var orders []models.Order
	err := query.
		Preload("User").
		Preload("Status").
		Preload("Items.Service").
		Order("created_at DESC").
		Limit(types.PageSize).
		Offset(types.Offset(page)).
		Find(&orders).Error
	if err != nil {
		return listing, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, ParseOrder(order))
	}
	listing.Orders = types.NewPage(views, page, total)

	if err := s.DB.Order("position, id").Find(&listing.Statuses).Error; err != nil {
		return listing, err
	}

	// every user that appears on any order, for the client dropdown
	clientIDs := s.DB.Model(&models.Order{}).Distinct("user_id").Select("user_id")
	if err := s.DB.Where("id IN (?)", clientIDs).Find(&listing.Clients).Error; err != nil {
		return listing, err
	}

	executorIDs := s.DB.Model(&models.OrderExecutor{}).Distinct("user_id").Select("user_id")
	if err := s.DB.Where("id IN (?)", executorIDs).Find(&listing.Executors).Error; err != nil {
		return listing, err
	}

	return listing, nil
}

// ListForClient returns one client's orders, newest first.
func (s *OrderService) ListForClient(clientID uint, page int) (types.Page[OrderView], error) {
	return s.listFiltered(OrderFilter{ClientID: clientID}, page)
}

// ListForExecutor returns the orders a user is assigned to, newest first.
func (s *OrderService) ListForExecutor(executorID uint, page int) (types.Page[OrderView], error) {
	return s.listFiltered(OrderFilter{ExecutorID: executorID}, page)
}

func (s *OrderService) listFiltered(filter OrderFilter, page int) (types.Page[OrderView], error) {
	listing, err := s.List(filter, page)
	return listing.Orders, err
}

// Detail aggregates the order page: the order, its executors, the executors
// still available for assignment, paginated comments and the status list.
func (s *OrderService) Detail(orderID uint, commentsPage int) (OrderDetail, error) {
	detail := OrderDetail{
		Executors: []models.User{},
		Comments:  types.NewPage([]CommentView{}, commentsPage, 0),
	}

	var order models.Order
	err := s.DB.
		Preload("User").
		Preload("Status").
		Preload("Items.Service").
		First(&order, orderID).Error

	switch {
	case err == nil:
		detail.Order = ParseOrder(order)
		detail.Found = true
	case errors.Is(err, gorm.ErrRecordNotFound):
		// tolerated: render an empty order view
	default:
		return detail, err
	}

	if detail.Found {
		assignedIDs := s.DB.Model(&models.OrderExecutor{}).
			Select("user_id").
			Where("order_id = ?", orderID)
		if err := s.DB.Where("id IN (?)", assignedIDs).Find(&detail.Executors).Error; err != nil {
			return detail, err
		}

		comments, err := s.comments(orderID, commentsPage)
		if err != nil {
			return detail, err
		}
		detail.Comments = comments
	}

	available, err := NewRoleService(s.DB).Executors()
	if err != nil && !errors.Is(err, models.ErrRoleUnconfigured) {
		return detail, err
	}

	detail.AvailableExecutors = []models.User{}
	for _, executor := range available {
		if !containsUser(detail.Executors, executor.ID) {
			detail.AvailableExecutors = append(detail.AvailableExecutors, executor)
		}
	}

	if err := s.DB.Order("position, id").Find(&detail.Statuses).Error; err != nil {
		return detail, err
	}

	return detail, nil
}

func (s *OrderService) comments(orderID uint, page int) (types.Page[CommentView], error) {
	query := s.DB.Model(&models.Comment{}).Where("order_id = ?", orderID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return types.Page[CommentView]{}, err
	}

	var comments []models.Comment
	err := query.
		Preload("User").
		Order("created_at DESC").
		Limit(types.PageSize).
		Offset(types.Offset(page)).
		Find(&comments).Error
	if err != nil {
		return types.Page[CommentView]{}, err
	}

	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, parseComment(comment))
	}

	return types.NewPage(views, page, total), nil
}

// AssignExecutor assigns a user to an order. It returns false without
// mutation when the pair already exists or the user does not hold the
// executor role, and ErrRoleUnconfigured when no executor role exists at all.
// The unique index on (order_id, user_id) closes the check-then-act race: a
// concurrent duplicate insert surfaces as a duplicated-key error and is
// reported as false.
func (s *OrderService) AssignExecutor(orderID, userID uint) (bool, error) {
	var role models.Role
	err := s.DB.Where("name = ?", models.RoleExecutor).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, models.ErrRoleUnconfigured
	}
	if err != nil {
		return false, err
	}

	var isExecutor int64
	err = s.DB.Model(&models.UserRole{}).
		Where("user_id = ? AND role_id = ?", userID, role.ID).
		Count(&isExecutor).Error
	if err != nil {
		return false, err
	}
	if isExecutor == 0 {
		return false, nil
	}

	var assigned int64
	err = s.DB.Model(&models.OrderExecutor{}).
		Where("order_id = ? AND user_id = ?", orderID, userID).
		Count(&assigned).Error
	if err != nil {
		return false, err
	}
	if assigned > 0 {
		return false, nil
	}

	err = s.DB.Create(&models.OrderExecutor{OrderID: orderID, UserID: userID}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// RevokeExecutor removes the assignment and reports whether a row was
// actually deleted.
func (s *OrderService) RevokeExecutor(orderID, userID uint) (bool, error) {
	res := s.DB.
		Where("order_id = ? AND user_id = ?", orderID, userID).
		Delete(&models.OrderExecutor{})

	return res.RowsAffected > 0, res.Error
}

// SetStatus moves the order to the given status. Any status may follow any
// other; only existence of both rows is checked.
func (s *OrderService) SetStatus(orderID, statusID uint) (bool, error) {
	var status models.Status
	if err := s.DB.First(&status, statusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	res := s.DB.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status_id", status.ID)

	return res.RowsAffected > 0, res.Error
}

// SubmitComment appends a comment to the order.
func (s *OrderService) SubmitComment(orderID, userID uint, text string) (bool, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := s.DB.Create(&models.Comment{OrderID: order.ID, UserID: userID, Text: text}).Error
	if err != nil {
		return false, err
	}

	return true, nil
}

// Delete removes the order with its items, comments and assignments.
func (s *OrderService) Delete(orderID uint) (bool, error) {
	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderExecutor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// Confirm converts the session cart into a persisted order with a nil status.
// The caller clears the session cart afterwards.
func (s *OrderService) Confirm(userID uint, c *cart.Cart, description string) (*models.Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, models.ErrEmptyCart
	}

	order := models.Order{
		UserID:      userID,
		Description: description,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range c.Items() {
			item := models.OrderItem{
				OrderID:   order.ID,
				ServiceID: line.ServiceID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("order confirmed",
		zap.Uint("order_id", order.ID),
		zap.Uint("client_id", userID),
		zap.Int("items", len(c.Items())))

	return &order, nil
}

func containsUser(users []models.User, id uint) bool {
	for _, user := range users {
		if user.ID == id {
			return true
		}
	}
	return false
}
