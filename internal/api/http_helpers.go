package api

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// emailParam decodes the :email route segment; parents are addressed by
// their (URL-escaped) email, there is no session to look one up from.
func emailParam(c *fiber.Ctx) string {
	raw := c.Params("email")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// formValues collects every submitted value for a repeated form field
// (the category form posts one "days" entry per checked weekday).
func formValues(c *fiber.Ctx, field string) []string {
	raw := c.Request().PostArgs().PeekMulti(field)
	values := make([]string, 0, len(raw))
	for _, value := range raw {
		values = append(values, string(value))
	}
	return values
}

func parentPath(email string) string {
	return "/parent/" + url.PathEscape(email)
}
