package delivery

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"memberhub/domain"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		kind    string
		message string
	}{
		{"validation", &domain.ValidationError{Fields: []string{"email: required"}}, fiber.StatusBadRequest, "validation", "Validation failed"},
		{"invalid referral", domain.ErrInvalidReferral, fiber.StatusBadRequest, "validation", "Invalid referral code"},
		{"email taken", domain.ErrEmailTaken, fiber.StatusConflict, "conflict", "Email already exists"},
		{"member number exhausted", domain.ErrDuplicateMemberNo, fiber.StatusConflict, "conflict", "Could not allocate a member number, please retry"},
		{"not found", domain.ErrNotFound, fiber.StatusNotFound, "not_found", "Record not found"},
		{"unexpected", errors.New("connection reset"), fiber.StatusInternalServerError, "persistence", "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/err", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var body map[string]interface{}
			require.NoError(t, sonic.Unmarshal(raw, &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.kind, body["kind"])
			assert.Equal(t, tc.message, body["message"])
		})
	}
}
