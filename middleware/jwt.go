package middleware

import (
	"fmt"
	"time"

	"learnhub/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// TokenPayload is the identity carried by a verified session token
type TokenPayload struct {
	UserID uint
	Email  string
}

// GenerateJWT generates a signed session token for the user
func GenerateJWT(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"iat":    time.Now().Unix(),                     // issued at
		"exp":    time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// VerifyJWT parses and validates a session token. It returns nil on any
// failure (bad signature, expiry, malformed payload) and never panics, so
// callers can treat the result as a simple present/absent identity.
func VerifyJWT(tokenString string) *TokenPayload {
	if tokenString == "" {
		return nil
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return nil
	}

	// JWT numeric claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return nil
	}
	email, _ := claims["email"].(string)

	return &TokenPayload{UserID: uint(userID), Email: email}
}

// JsonResponse writes the success envelope {success, message, data}
func JsonResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse writes the failure envelope {success:false, error}
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ValidationErrorResponse reports a 400 with the first validation error as
// the message plus the full field map
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	first := "Validation failed!"
	for _, msg := range errors {
		first = msg
		break
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   first,
		"errors":  errors,
	})
}
