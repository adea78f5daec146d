package routes

import (
	"house-rental-server/storage"

	"github.com/kataras/iris/v12"
)

// Handler bundles the store and upload dependencies for every route.
type Handler struct {
	Store   *storage.Store
	Uploads *storage.UploadStore
}

func NewHandler(store *storage.Store, uploads *storage.UploadStore) *Handler {
	return &Handler{Store: store, Uploads: uploads}
}

// Register wires all API routes onto the app.
func (h *Handler) Register(app *iris.Application) {
	app.Get("/", h.Root)

	auth := app.Party("/api/auth")
	{
		auth.Post("/signup", h.Signup)
		auth.Post("/login", h.Login)
	}

	properties := app.Party("/api/properties")
	{
		properties.Get("/", h.ListProperties)
		properties.Post("/", h.CreateProperty)
		properties.Get("/{id}", h.GetProperty)
		properties.Put("/{id}", h.UpdateProperty)
		properties.Delete("/{id}", h.DeleteProperty)
		properties.Post("/{id}/contact", h.ContactOwner)
	}
}

func (h *Handler) Root(ctx iris.Context) {
	ctx.JSON(iris.Map{"message": "House Rental API running"})
}
