package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// DeviceCookie holds the signed device token
	DeviceCookie = "velomap_device"

	deviceContextKey = "device_id"
	deviceIssuedKey  = "device_issued"
	deviceIssuer     = "velomap"
	deviceTTL        = 365 * 24 * time.Hour
)

// DeviceTokens issues and verifies anonymous device tokens. The token only
// names the favourites entry a browser uses; it carries no permissions.
type DeviceTokens struct {
	secret []byte
	now    func() time.Time
}

// NewDeviceTokens creates a token issuer signing with secret
func NewDeviceTokens(secret string) (*DeviceTokens, error) {
	if secret == "" {
		return nil, errors.New("device secret must not be empty")
	}
	return &DeviceTokens{secret: []byte(secret), now: time.Now}, nil
}

// Issue returns a new device id and its signed token
func (d *DeviceTokens) Issue() (id, token string, err error) {
	id = uuid.NewString()
	now := d.now()

	claims := jwt.RegisteredClaims{
		Subject:   id,
		Issuer:    deviceIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(deviceTTL)),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.secret)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign device token: %w", err)
	}
	return id, token, nil
}

// Verify returns the device id inside a valid token
func (d *DeviceTokens) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	keyFunc := func(*jwt.Token) (interface{}, error) { return d.secret, nil }

	_, err := jwt.ParseWithClaims(token, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(deviceIssuer),
		jwt.WithTimeFunc(d.now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid device token: %w", err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("invalid device id: %w", err)
	}
	return claims.Subject, nil
}

// Device middleware attaches a device id to every request, issuing a fresh
// cookie when the request has none or an invalid one
func Device(tokens *DeviceTokens, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(DeviceCookie); err == nil {
			if id, err := tokens.Verify(raw); err == nil {
				c.Set(deviceContextKey, id)
				c.Next()
				return
			}
		}

		// a client that drops cookies gets a new id on every request
		c.Set(deviceIssuedKey, true)

		id, token, err := tokens.Issue()
		if err != nil {
			log.Printf("[Device] %v", err)
			c.Next()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(DeviceCookie, token, int(deviceTTL.Seconds()), "/", "", secureCookie, true)
		c.Set(deviceContextKey, id)
		c.Next()
	}
}

// DeviceID returns the device id attached by Device, or ""
func DeviceID(c *gin.Context) string {
	return c.GetString(deviceContextKey)
}

// KnownDevice reports whether the request carried a valid device cookie
func KnownDevice(c *gin.Context) bool {
	return DeviceID(c) != "" && !c.GetBool(deviceIssuedKey)
}
