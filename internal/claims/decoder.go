// Package claims decodes token payloads into a claims mapping.
//
// The client never holds the identity service's signing key, so tokens are
// parsed without signature verification; the server remains the authority
// and re-validates every token it receives.
package claims

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// UserIDClaim is the claim carrying the user identifier.
const UserIDClaim = "user_id"

// ErrMissingUserID is returned when the token has no usable user_id claim.
var ErrMissingUserID = errors.New("token has no user_id claim")

// Decoder parses JWT strings into claim maps.
type Decoder struct {
	parser *jwt.Parser
}

// NewDecoder returns a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{parser: jwt.NewParser()}
}

// Decode parses token and returns its claims without verifying the signature.
func (d *Decoder) Decode(token string) (map[string]any, error) {
	mc := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, mc); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return mc, nil
}

// UserID extracts the user_id claim. Numeric ids are formatted without a
// fractional part; anything else is ErrMissingUserID.
func UserID(c map[string]any) (string, error) {
	switch v := c[UserIDClaim].(type) {
	case string:
		if v == "" {
			return "", ErrMissingUserID
		}
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", ErrMissingUserID
	}
}
