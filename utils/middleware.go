package utils

import (
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// UserIDFromTokenMiddleware extracts the user ID from the verified JWT and
// stores it in the request context for downstream handlers.
func UserIDFromTokenMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// AdminOnlyMiddleware ensures the requester carries the admin role. The role
// lives on the user record and is embedded in the access token at sign time.
func AdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != "admin" {
		ctx.StopWithJSON(iris.StatusForbidden, iris.Map{
			"success": false,
			"error":   "Forbidden",
			"message": "Admin access required",
		})
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}
