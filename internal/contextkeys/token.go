package contextkeys

import "context"

type tokenKeyType struct{}

var tokenKey = tokenKeyType{}

// ContextWithToken кладет токен авторизации пользователя, от имени которого идут запросы к API.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey).(string); ok {
		return token
	}
	return ""
}
