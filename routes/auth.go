package routes

import (
	"errors"
	"time"

	"house-rental-server/models"
	"house-rental-server/storage"
	"house-rental-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

var validRoles = []string{models.RoleCustomer, models.RoleLandlord}

func (h *Handler) Signup(ctx iris.Context) {
	var input SignupInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// Unrecognized roles silently become customer
	role := input.Role
	if !slices.Contains(validRoles, role) {
		role = models.RoleCustomer
	}

	hashedPassword, hashErr := utils.HashPassword(input.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser := models.User{
		Username:       input.Username,
		Email:          input.Email,
		Role:           role,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	err := h.Store.CreateUser(ctx.Request().Context(), &newUser)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			utils.CreateError(iris.StatusBadRequest, "Conflict", "Username already exists", ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"_id":      newUser.ID.Hex(),
		"username": newUser.Username,
		"role":     newUser.Role,
	})
}

func (h *Handler) Login(ctx iris.Context) {
	var input LoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	// Uniform message whether the user is missing or the password is wrong
	errorMsg := "Invalid credentials"

	user, err := h.Store.FindUserByUsername(ctx.Request().Context(), input.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.CreateError(iris.StatusBadRequest, "Credentials Error", errorMsg, ctx)
			return
		}
		utils.CreateInternalServerError(ctx)
		return
	}

	if !utils.CheckPassword(input.Password, user.HashedPassword) {
		utils.CreateError(iris.StatusBadRequest, "Credentials Error", errorMsg, ctx)
		return
	}

	// No token or session is issued; the caller keeps this payload
	// client-side. Known-insecure demo auth, kept by design.
	ctx.JSON(iris.Map{
		"_id":      user.ID.Hex(),
		"username": user.Username,
		"role":     user.Role,
	})
}

type SignupInput struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
