package server

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	uuid "github.com/satori/go.uuid"
)

// sessionClaims are the complete claims of a player credential: the seat
// index in the subject and the room the seat belongs to. There is no
// expiry; a credential lives as long as its room.
type sessionClaims struct {
	jwt.RegisteredClaims
	RoomID string `json:"room_id"`
}

func (reg *Registry) mintToken(seat int, roomID uuid.UUID) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.Itoa(seat),
		},
		RoomID: roomID.String(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(reg.signingKey)
}

// Verify checks that the token was signed by this process and decodes the
// (seat, room id) pair it binds. Every failure mode, bad signature,
// malformed claims, garbage input, collapses to ErrInvalidToken.
func (reg *Registry) Verify(token string) (seat int, roomID uuid.UUID, err error) {
	var claims sessionClaims
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return reg.verifyKey, nil
	}, jwt.WithValidMethods([]string{"EdDSA"}))
	if err != nil {
		return 0, uuid.Nil, ErrInvalidToken
	}
	seat, err = strconv.Atoi(claims.Subject)
	if err != nil || seat < 0 {
		return 0, uuid.Nil, ErrInvalidToken
	}
	roomID, err = uuid.FromString(claims.RoomID)
	if err != nil {
		return 0, uuid.Nil, ErrInvalidToken
	}
	return seat, roomID, nil
}
