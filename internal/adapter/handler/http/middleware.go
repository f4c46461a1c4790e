package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rgladkov/shoporder/internal/core/domain"
	"github.com/rgladkov/shoporder/internal/core/port"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const adminPayloadKey = "admin_payload"

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(adminPayloadKey, payload)

		ctx.Next()
	}
}

func handleAbort(ctx *gin.Context, err error) {
	statusCode, _ := statusForError(err)
	ctx.AbortWithError(statusCode, err)
}

func getAdminPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(adminPayloadKey).(*port.TokenPayload)
}
