package utils

import (
	"net/http"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/sharpplay-labs/sharpplay-backend/internal/pkg/model"
)

const (
	emailClaimKey   string = "email"
	nameClaimKey    string = "name"
	pictureClaimKey string = "picture"
	tokenCtxKey     string = "accessToken"
)

type AccessToken struct {
	Token    auth.Token
	RawToken string
}

func GetAccessToken(ctx *gin.Context) auth.Token {
	at := getAccessToken(ctx)
	return at.Token
}

func GetAccessTokenRaw(ctx *gin.Context) string {
	at := getAccessToken(ctx)
	return at.RawToken
}

func getAccessToken(ctx *gin.Context) AccessToken {
	return getCtxValue(tokenCtxKey, ctx).(AccessToken)
}

// GetIdentity builds the signed-in identity descriptor from the verified token.
// Only uid is guaranteed; the remaining claims are optional.
func GetIdentity(ctx *gin.Context) model.Identity {
	token := GetAccessToken(ctx)
	return model.Identity{
		Uid:         token.Subject,
		Email:       stringClaim(token, emailClaimKey),
		DisplayName: stringClaim(token, nameClaimKey),
		PhotoURL:    stringClaim(token, pictureClaimKey),
	}
}

func stringClaim(token auth.Token, key string) string {
	value, ok := token.Claims[key].(string)
	if !ok {
		return ""
	}
	return value
}

func getCtxValue(key string, ctx *gin.Context) any {
	value, exists := ctx.Get(key)
	if !exists {
		ctx.AbortWithStatus(http.StatusInternalServerError)
	}
	return value
}

func SetAccessTokenCtx(token *AccessToken, ctx *gin.Context) {
	ctx.Set(tokenCtxKey, *token)
}
