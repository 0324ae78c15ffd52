package services

import (
	"time"

	"github.com/orderdesk-dev/orderdesk/internal/models"
)

// OrderView is the display-ready order shape shared by the client, executor
// and admin listings.
type OrderView struct {
	ID          uint            `json:"id"`
	ClientID    uint            `json:"client_id"`
	Client      string          `json:"client"`
	StatusID    *uint           `json:"status_id"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	Items       []OrderItemView `json:"items"`
	TotalQty    int             `json:"total_qty"`
	TotalPrice  float64         `json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

type OrderItemView struct {
	ServiceID uint    `json:"service_id"`
	Service   string  `json:"service"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CommentView struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ParseOrder flattens an order (with User, Status and Items.Service loaded)
// into its display shape. Orders without a status row show as "new".
func ParseOrder(order models.Order) OrderView {
	view := OrderView{
		ID:          order.ID,
		ClientID:    order.UserID,
		Client:      order.User.Name,
		StatusID:    order.StatusID,
		Status:      models.StatusNew,
		Description: order.Description,
		Items:       []OrderItemView{},
		CreatedAt:   order.CreatedAt,
	}

	if order.Status != nil {
		view.Status = order.Status.Name
	}

	for _, item := range order.Items {
		view.Items = append(view.Items, OrderItemView{
			ServiceID: item.ServiceID,
			Service:   item.Service.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		view.TotalQty += item.Quantity
		view.TotalPrice += item.Price * float64(item.Quantity)
	}

	return view
}

func parseComment(comment models.Comment) CommentView {
	return CommentView{
		ID:        comment.ID,
		Author:    comment.User.Name,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
