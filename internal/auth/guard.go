package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/EnesKotay/Fitness-App/internal/apperr"
	"github.com/EnesKotay/Fitness-App/internal/middleware"
)

// AuthorizeSelf allows a request only when the verified token identity equals
// the user id addressed in the path. Profile reads report the mismatch as
// forbidden, regardless of whether the path id exists.
func AuthorizeSelf(tokenUserID, pathUserID int64) error {
	if tokenUserID != pathUserID {
		return apperr.New(apperr.Forbidden, "Sadece kendi kullanıcı bilginize erişebilirsiniz.")
	}
	return nil
}

// AuthorizeOwnership allows access to a resource only when the verified token
// identity equals its recorded owner. A foreign resource is reported with the
// same not-found message as a missing one, so mutation endpoints never
// confirm existence to non-owners.
func AuthorizeOwnership(tokenUserID, ownerID int64, message string) error {
	if tokenUserID != ownerID {
		return apperr.New(apperr.NotFound, message)
	}
	return nil
}

// SelfFromPath parses the userId path parameter and authorizes it against the
// verified token identity. Resource handlers run this before touching
// persistence.
func SelfFromPath(c *fiber.Ctx, param string) (int64, error) {
	pathID, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil {
		return 0, apperr.New(apperr.NotFound, "Kullanıcı bulunamadı!")
	}
	if err := AuthorizeSelf(middleware.UserID(c), pathID); err != nil {
		return 0, err
	}
	return pathID, nil
}
