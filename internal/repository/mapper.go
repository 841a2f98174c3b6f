package repository

import (
	orderResponse "github.com/Alturino/audiophile/order/pkg/response"
	productResponse "github.com/Alturino/audiophile/product/pkg/response"
	userResponse "github.com/Alturino/audiophile/user/pkg/response"
)

func (p Product) Response() productResponse.Product {
	return productResponse.Product{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Category:      p.Category,
		ColorVariants: p.ColorVariants,
		Price:         DecimalFromNumeric(p.Price),
		Quantity:      p.Quantity,
		CreatedAt:     p.CreatedAt.Time,
		UpdatedAt:     p.UpdatedAt.Time,
	}
}

func (o Order) Response(items []FindOrderItemsByOrderIdRow) orderResponse.Order {
	orderItems := make([]orderResponse.OrderItem, 0, len(items))
	for _, i := range items {
		orderItems = append(orderItems, i.Response())
	}
	return orderResponse.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserId:      o.UserID,
		Status:      string(o.Status),
		Total:       DecimalFromNumeric(o.Total),
		OrderItems:  orderItems,
		CreatedAt:   o.CreatedAt.Time,
		UpdatedAt:   o.UpdatedAt.Time,
	}.Summarized()
}

func (i FindOrderItemsByOrderIdRow) Response() orderResponse.OrderItem {
	return orderResponse.OrderItem{
		ID:          i.ID,
		OrderId:     i.OrderID,
		ProductId:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		Price:       DecimalFromNumeric(i.Price),
	}
}

func (u User) Response() userResponse.User {
	return userResponse.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Time,
		UpdatedAt: u.UpdatedAt.Time,
	}
}
