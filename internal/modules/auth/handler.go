package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/middleware"
	"rentalhub/internal/pkg/pagination"
	"rentalhub/internal/pkg/request"
	"rentalhub/internal/pkg/response"
)

// Handler manages all HTTP interactions for authentication and accounts
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts login; throttle guards it against guessing.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup, throttle gin.HandlerFunc) {
	v1.POST("/auth/login", throttle, h.Login)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/auth/me", h.GetMe)
}

// RegisterAdminRoutes expects a group already gated on user management.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	users := admin.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// Login godoc
// @Summary  Log in with email and password
// @Tags     Auth
// @Param    request body LoginRequest true "credentials"
// @Success  200 {object} LoginResponse
// @Failure  401 {object} map[string]string
// @Failure  429 {object} map[string]string
// @Router   /auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !request.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.service.GetCurrentUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) ListUsers(c *gin.Context) {
	page, err := h.service.ListUsers(c.Request.Context(), pagination.FromQuery(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !request.BindJSON(c, &req) {
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !request.BindJSON(c, &req) {
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := request.ID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteUser(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "user deleted"})
}
