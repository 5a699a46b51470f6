package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/emocionario/usuarios-api/pkg/problem"
)

// Recovery is the outermost fault boundary: any panic that escapes a
// handler is logged with full detail server-side and answered with a
// generic 500 problem body.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithFields(logrus.Fields{
					"panic":      r,
					"stack":      string(debug.Stack()),
					"method":     c.Request.Method,
					"path":       c.Request.URL.Path,
					"request_id": c.GetString("request_id"),
				}).Error("unhandled panic")
				problem.Write(c, http.StatusInternalServerError, "Erro interno do servidor", "Ocorreu um erro inesperado.")
			}
		}()
		c.Next()
	}
}
