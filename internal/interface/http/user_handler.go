// Package handlers maps HTTP requests onto application service calls and
// translates every failure into a problem-details response.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/emocionario/usuarios-api/internal/application"
	"github.com/emocionario/usuarios-api/internal/domain"
	"github.com/emocionario/usuarios-api/pkg/problem"
	"github.com/emocionario/usuarios-api/pkg/validation"
)

const (
	titleInvalidArgument = "Argumento inválido"
	titleConflict        = "Operação inválida"
	titleNotFound        = "Usuário não encontrado"
	titleInternal        = "Erro interno do servidor"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Nome           string            `json:"nome" binding:"required,min=3,max=50,lettersonly"`
	Sobrenome      string            `json:"sobrenome" binding:"required,min=3,max=50,lettersonly"`
	Email          string            `json:"email" binding:"required,email,max=255"`
	DataNascimento *application.Date `json:"dataNascimento"`
}

type updateUserRequest struct {
	ID             string            `json:"id" binding:"required,uuid"`
	Nome           string            `json:"nome" binding:"omitempty,min=3,max=50,lettersonly"`
	Sobrenome      string            `json:"sobrenome" binding:"omitempty,min=3,max=50,lettersonly"`
	DataNascimento *application.Date `json:"dataNascimento"`
}

// Create handles POST /api/usuarios.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		problem.WriteValidation(c, validation.ToDetails(err))
		return
	}

	user, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Nome:           req.Nome,
		Sobrenome:      req.Sobrenome,
		Email:          req.Email,
		DataNascimento: req.DataNascimento,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", "/api/usuarios/"+user.ID)
	c.JSON(http.StatusCreated, user)
}

// GetByID handles GET /api/usuarios/:id.
func (h *UserHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if user == nil {
		problem.Write(c, http.StatusNotFound, titleNotFound, fmt.Sprintf("Nenhum usuário encontrado com o ID %s.", id))
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetByEmail handles GET /api/usuarios/email/:email.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Param("email")
	if strings.TrimSpace(email) == "" {
		problem.Write(c, http.StatusBadRequest, "Email inválido", "O email fornecido não pode ser vazio.")
		return
	}

	user, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if user == nil {
		problem.Write(c, http.StatusNotFound, titleNotFound, fmt.Sprintf("Nenhum usuário encontrado com o email '%s'.", email))
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/usuarios/:id.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		problem.WriteValidation(c, validation.ToDetails(err))
		return
	}
	if req.ID != id {
		problem.Write(c, http.StatusBadRequest, "ID incompatível", "O ID da rota não corresponde ao ID no corpo da requisição.")
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), application.UpdateUserInput{
		ID:             id,
		Nome:           req.Nome,
		Sobrenome:      req.Sobrenome,
		DataNascimento: req.DataNascimento,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !updated {
		problem.Write(c, http.StatusNotFound, titleNotFound, fmt.Sprintf("Nenhum usuário encontrado com o ID %s.", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/usuarios/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !deleted {
		problem.Write(c, http.StatusNotFound, titleNotFound, fmt.Sprintf("Nenhum usuário encontrado com o ID %s.", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID rejects malformed ids up front; the original system's route
// constraint made them unroutable, here they are an explicit 400.
func parseID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		problem.Write(c, http.StatusBadRequest, titleInvalidArgument, "O ID fornecido não é um UUID válido.")
		return "", false
	}
	return id, true
}

func (h *UserHandler) writeError(c *gin.Context, err error) {
	var invalidArg *domain.InvalidArgumentError
	if errors.As(err, &invalidArg) {
		problem.Write(c, http.StatusBadRequest, titleInvalidArgument, invalidArg.Message)
		return
	}
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		problem.Write(c, http.StatusConflict, titleConflict, conflict.Message)
		return
	}
	h.Logger.WithError(err).WithFields(logrus.Fields{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"request_id": c.GetString("request_id"),
	}).Error("unhandled service error")
	problem.Write(c, http.StatusInternalServerError, titleInternal, "Ocorreu um erro inesperado.")
}
