package utils

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/Hima-Kishore/turf-booking-system/models"
	"github.com/Hima-Kishore/turf-booking-system/storage"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

var bgContext = context.Background()

const (
	accessTokenLifetime  = 24 * time.Hour
	refreshTokenLifetime = 30 * 24 * time.Hour
)

type AccessToken struct {
	ID    uint   `json:"ID"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// CreateTokenPair signs an access/refresh pair for the user and whitelists the
// refresh token in Redis so it can be revoked and rotated.
func CreateTokenPair(id uint) (*jwt.TokenPair, error) {
	accessTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), accessTokenLifetime)
	refreshTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("REFRESH_TOKEN_SECRET"), refreshTokenLifetime)

	userID := strconv.FormatUint(uint64(id), 10)
	refreshClaims := jwt.Claims{Subject: userID}

	// Role and email ride in the access token so middleware never hits the DB.
	var u models.User
	role := "user"
	email := ""
	if err := storage.DB.Select("id, email, role").First(&u, id).Error; err == nil {
		email = u.Email
		if u.Role != "" {
			role = u.Role
		}
	}

	accessTokenClaims := AccessToken{ID: id, Email: email, Role: role}

	accessToken, err := accessTokenSigner.Sign(accessTokenClaims)
	if err != nil {
		return nil, err
	}

	refreshToken, err := refreshTokenSigner.Sign(refreshClaims)
	if err != nil {
		return nil, err
	}

	var tokenPair jwt.TokenPair
	tokenPair.AccessToken = accessToken
	tokenPair.RefreshToken = refreshToken

	storage.Redis.Set(bgContext, string(refreshToken), "true", refreshTokenLifetime+5*time.Minute)

	return &tokenPair, nil
}

// RefreshToken rotates a whitelisted refresh token into a fresh pair.
func RefreshToken(ctx iris.Context) {
	token := jwt.GetVerifiedToken(ctx)
	tokenStr := string(token.Token)
	validToken, tokenErr := storage.Redis.Get(bgContext, tokenStr).Result()

	if tokenErr != nil {
		CreateError(iris.StatusUnauthorized, "Unauthorized", "Refresh token is not recognized", ctx)
		return
	}

	if validToken != "true" {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	storage.Redis.Del(bgContext, tokenStr)
	userID, parseErr := strconv.ParseUint(token.StandardClaims.Subject, 10, 32)
	if parseErr != nil {
		CreateInternalServerError(ctx)
		return
	}

	tokenPair, tokenPairErr := CreateTokenPair(uint(userID))
	if tokenPairErr != nil {
		CreateInternalServerError(ctx)
		return
	}

	JSONSuccess(ctx, iris.Map{
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

// RevokeRefreshToken drops the token from the whitelist; used by logout.
func RevokeRefreshToken(refreshToken string) {
	if refreshToken == "" {
		return
	}
	storage.Redis.Del(bgContext, refreshToken)
}
