package routes

import (
	"time"

	"house-rental-server/models"
	"house-rental-server/utils"

	"github.com/kataras/iris/v12"
)

// POST /api/properties/{id}/contact
func (h *Handler) ContactOwner(ctx iris.Context) {
	var input ContactInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// The property must exist before anything is stored.
	if _, _, ok := h.resolveProperty(ctx); !ok {
		return
	}

	message := models.ContactMessage{
		PropertyID:  input.PropertyID,
		SenderID:    input.SenderID,
		SenderName:  input.SenderName,
		SenderEmail: input.SenderEmail,
		Message:     input.Message,
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.Store.CreateContactMessage(ctx.Request().Context(), &message); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// The inserted id is deliberately not returned.
	ctx.JSON(iris.Map{"sent": true})
}

type ContactInput struct {
	PropertyID  string `json:"property_id" validate:"required"`
	SenderID    string `json:"sender_id" validate:"required"`
	SenderName  string `json:"sender_name" validate:"required"`
	SenderEmail string `json:"sender_email" validate:"required,email"`
	Message     string `json:"message" validate:"required,min=1,max=2000"`
}
