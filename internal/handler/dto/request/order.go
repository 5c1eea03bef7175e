package request

import (
	"strings"

	"entitlement-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	PackageID uuid.UUID `json:"packageId" binding:"required"`
	Amount    int64     `json:"amount" binding:"required,gt=0"`
	Currency  string    `json:"currency" binding:"required,len=3"`
}

func (r CreateOrderRequest) ToInput() commands.CreateOrderInput {
	return commands.CreateOrderInput{
		PackageID: r.PackageID,
		Amount:    r.Amount,
		Currency:  strings.ToUpper(strings.TrimSpace(r.Currency)),
	}
}
