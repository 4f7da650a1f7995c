package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"teklif-api/internal/auth"
	"teklif-api/internal/middleware"
	"teklif-api/internal/models"
	"teklif-api/internal/repository"
)

type CustomerHandler struct {
	customers *repository.CustomerRepository
	quotes    *repository.QuoteRepository
	jwtSecret string
}

func NewCustomerHandler(customers *repository.CustomerRepository, quotes *repository.QuoteRepository, jwtSecret string) *CustomerHandler {
	return &CustomerHandler{customers: customers, quotes: quotes, jwtSecret: jwtSecret}
}

func (h *CustomerHandler) Register(c *gin.Context) {
	var register models.CustomerRegister
	if err := c.ShouldBindJSON(&register); err != nil {
		badRequest(c, err)
		return
	}

	hash, err := auth.HashPassword(register.Password)
	if err != nil {
		repoError(c, err, "")
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), &register, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "Bu e-posta adresi zaten kayıtlı"})
			return
		}
		repoError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// Login verifies the password and issues the session token that scopes
// profile and quote access to this customer.
func (h *CustomerHandler) Login(c *gin.Context) {
	var login models.CustomerLogin
	if err := c.ShouldBindJSON(&login); err != nil {
		badRequest(c, err)
		return
	}

	customer, err := h.customers.FindByEmail(c.Request.Context(), login.Email)
	if err != nil || !auth.CheckPassword(login.Password, customer.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Hatalı e-posta veya şifre"})
		return
	}

	token, err := auth.IssueCustomerToken(h.jwtSecret, customer.ID, customer.Email)
	if err != nil {
		repoError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "customer": customer})
}

func (h *CustomerHandler) GetProfile(c *gin.Context) {
	if !h.authorizedForID(c, c.Param("id")) {
		return
	}

	customer, err := h.customers.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		repoError(c, err, "Müşteri bulunamadı")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	if !h.authorizedForID(c, c.Param("id")) {
		return
	}

	var update models.CustomerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err)
		return
	}

	customer, err := h.customers.Update(c.Request.Context(), c.Param("id"), &update)
	if err != nil {
		repoError(c, err, "Müşteri bulunamadı")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// QuotesByEmail lists a customer's quotes. The path email must match the
// authenticated principal; admins may look up anyone.
func (h *CustomerHandler) QuotesByEmail(c *gin.Context) {
	requested := strings.ToLower(strings.TrimSpace(c.Param("email")))

	if !middleware.IsAdmin(c) {
		sessionEmail := strings.ToLower(c.GetString(middleware.CtxCustomerEmail))
		if sessionEmail == "" || sessionEmail != requested {
			c.JSON(http.StatusForbidden, gin.H{"error": "Bu kayıtlara erişim yetkiniz yok"})
			return
		}
	}

	quotes, err := h.quotes.FindByEmail(c.Request.Context(), requested)
	if err != nil {
		repoError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, quotes)
}

// authorizedForID enforces that a customer token may only touch its own
// profile. Writes the error response itself when access is denied.
func (h *CustomerHandler) authorizedForID(c *gin.Context, id string) bool {
	if middleware.IsAdmin(c) {
		return true
	}
	if c.GetString(middleware.CtxCustomerID) == id {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "Bu kayıtlara erişim yetkiniz yok"})
	return false
}
