// Package problem writes problem-details style error bodies:
// {tipo, titulo, status, detalhe|erros, dataHora}.
package problem

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Details is the error body returned by every failing endpoint.
type Details struct {
	Type      string            `json:"tipo"`
	Title     string            `json:"titulo"`
	Status    int               `json:"status"`
	Detail    string            `json:"detalhe,omitempty"`
	Errors    map[string]string `json:"erros,omitempty"`
	Timestamp time.Time         `json:"dataHora"`
}

func typeFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	case http.StatusConflict:
		return "https://tools.ietf.org/html/rfc7231#section-6.5.8"
	case http.StatusTooManyRequests:
		return "https://tools.ietf.org/html/rfc6585#section-4"
	case http.StatusInternalServerError:
		return "https://tools.ietf.org/html/rfc7231#section-6.6.1"
	default:
		return "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	}
}

// Write aborts the request with a single-detail problem body.
func Write(c *gin.Context, status int, title, detail string) {
	c.AbortWithStatusJSON(status, Details{
		Type:      typeFor(status),
		Title:     title,
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

// WriteValidation aborts the request with a 400 problem body carrying a
// field→message map instead of a single detail.
func WriteValidation(c *gin.Context, errs map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Details{
		Type:      typeFor(http.StatusBadRequest),
		Title:     "Erro de validação",
		Status:    http.StatusBadRequest,
		Errors:    errs,
		Timestamp: time.Now().UTC(),
	})
}
