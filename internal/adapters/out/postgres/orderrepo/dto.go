// Package orderrepo maps order aggregates onto the orders and order_items tables.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Items live in order_items and are written once,
// on insert.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number             int             `gorm:"uniqueIndex;not null"`
	Workflow           string          `gorm:"type:varchar(16);not null"`
	Status             string          `gorm:"type:varchar(32);not null;index"`
	CustomerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryPersonID   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt          *time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt          *time.Time      `gorm:"autoUpdateTime:false"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Address            AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	CancellationReason string          `gorm:"not null;default:''"`
	Version            int             `gorm:"not null;default:0"`
	Items              []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is nullable as a whole; both columns are null for orders without one.
type AddressDTO struct {
	Street *string
	City   *string
}

type ItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"not null"`
	Service  string    `gorm:"not null"`
	Quantity int       `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryPersonID *uuid.UUID
	if id := aggregate.DeliveryPersonID(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	var address AddressDTO
	if a := aggregate.Address(); a != nil {
		street, city := a.Street(), a.City()
		address = AddressDTO{Street: &street, City: &city}
	}

	items := make([]ItemDTO, 0)
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			Position: i,
			Service:  item.Service(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		Number:             aggregate.Number(),
		Workflow:           aggregate.Workflow().String(),
		Status:             aggregate.Status().String(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		DeliveryPersonID:   deliveryPersonID,
		CreatedAt:          timePtr(aggregate.CreatedAt()),
		UpdatedAt:          timePtr(aggregate.UpdatedAt()),
		Price:              aggregate.Price().Decimal(),
		Address:            address,
		CancellationReason: aggregate.CancellationReason(),
		Version:            aggregate.Version(),
		Items:              items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		deliveryPersonID = &riderID
	}

	workflow, err := order.ParseWorkflow(dto.Workflow)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	var address *kernel.Address
	if dto.Address.Street != nil && dto.Address.City != nil {
		a, addrErr := kernel.NewAddress(*dto.Address.Street, *dto.Address.City)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &a
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Service, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.State{
		ID:                 id,
		Number:             dto.Number,
		Workflow:           workflow,
		Status:             status,
		CustomerID:         customerID,
		DeliveryPersonID:   deliveryPersonID,
		CreatedAt:          timeValue(dto.CreatedAt),
		UpdatedAt:          timeValue(dto.UpdatedAt),
		Price:              price,
		Items:              items,
		Address:            address,
		CancellationReason: dto.CancellationReason,
		Version:            dto.Version,
	})
}

// A zero time is stored as NULL so malformed history round-trips unchanged.
func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
