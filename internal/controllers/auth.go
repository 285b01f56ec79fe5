package controllers

import (
	"net/http"

	"github.com/financas-app/backend/internal/httputil"
	"github.com/financas-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterAuthRoutes registers the routes for user accounts with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login)

	r.OPTIONS("/info", httputil.OptionsGet)
	r.GET("/info", GetUserInfo)

	r.OPTIONS("/alterar", httputil.OptionsGetPut)
	r.PUT("/alterar", UpdateUser)
}

type RegisterRequest struct {
	Name          string          `json:"nome"`
	Email         string          `json:"email"`
	Password      string          `json:"senha_hash"`
	MonthlySalary decimal.Decimal `json:"salario_mensal"`
}

type LoginRequest struct {
	Name     string `json:"nome"`
	Password string `json:"senha_hash"`
}

type UserUpdateRequest struct {
	ID            uint             `json:"id"`
	Name          *string          `json:"nome"`
	Email         *string          `json:"email"`
	MonthlySalary *decimal.Decimal `json:"salario_mensal"`
}

// UserResponse is the user object returned by the auth endpoints.
// The password hash never leaves the backend.
type UserResponse struct {
	ID            uint             `json:"id"`
	Name          string           `json:"nome"`
	Email         string           `json:"email"`
	MonthlySalary *decimal.Decimal `json:"salario_mensal,omitempty"`
}

// Register creates a new user account.
func Register(c *gin.Context) {
	var request RegisterRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.Name == "" || request.Email == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrMissingFields.Error()})
		return
	}

	user := models.User{
		Name:          request.Name,
		Email:         request.Email,
		MonthlySalary: request.MonthlySalary,
	}

	if err := user.SetPassword(request.Password); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	if err := models.DB.Create(&user).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário cadastrado com sucesso",
		"usuario": UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Login verifies the credentials and returns the user object.
func Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.Name == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrMissingFields.Error()})
		return
	}

	var user models.User
	err := models.DB.Where(&models.User{Name: request.Name}).First(&user).Error
	if err != nil || !user.CheckPassword(request.Password) {
		// Do not leak whether the user exists
		c.JSON(http.StatusUnauthorized, httpError{Error: models.ErrInvalidCredentials.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login realizado com sucesso",
		"usuario": UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// GetUserInfo returns the user's profile, including the monthly salary.
func GetUserInfo(c *gin.Context) {
	user, err := queryUser(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario": UserResponse{
			ID:            user.ID,
			Name:          user.Name,
			Email:         user.Email,
			MonthlySalary: &user.MonthlySalary,
		},
	})
}

// UpdateUser partially updates the user's profile. Only the fields that
// are present in the request body are changed.
func UpdateUser(c *gin.Context) {
	var request UserUpdateRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.ID == 0 {
		c.JSON(http.StatusBadRequest, httpError{Error: errUserIDRequired.Error()})
		return
	}

	var user models.User
	if err := models.DB.First(&user, request.ID).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Email != nil {
		user.Email = *request.Email
	}
	if request.MonthlySalary != nil {
		user.MonthlySalary = *request.MonthlySalary
	}

	if err := models.DB.Save(&user).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuário atualizado com sucesso"})
}

// queryUser loads the user identified by the user_id query parameter.
func queryUser(c *gin.Context) (models.User, error) {
	var query UserIDQuery
	_ = c.Bind(&query)

	if query.UserID == 0 {
		return models.User{}, errUserIDRequired
	}

	var user models.User
	if err := models.DB.First(&user, query.UserID).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}
