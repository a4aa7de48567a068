package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/phanumatwang/finance-dashboard/app/config"
	"github.com/phanumatwang/finance-dashboard/app/database"
	"github.com/phanumatwang/finance-dashboard/app/models"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Get("/me", MeAPI)

	app.Get("/logout", LogoutPage)

	// Key management, superadmin only
	keys := app.Group("/api/keys", AuthMiddleware, RoleMiddleware(models.RoleSuperadmin))
	keys.Get("/", ListKeysAPI)
	keys.Post("/", CreateKeyAPI)
	keys.Delete("/:name", DeactivateKeyAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/dashboard")
		}
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Finance Dashboard",
	}, "")
}

type loginRequest struct {
	Key string `json:"key" form:"key"`
}

// LoginAPI exchanges an access key for a JWT cookie. Keys are matched
// against the bcrypt hashes of every active key, mirroring the original
// key-list login but without plaintext keys in the build environment.
func LoginAPI(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Access key is required"})
	}

	keys, err := database.GetActiveAccessKeys(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to verify access key"})
	}

	for _, k := range keys {
		if !CheckKeyHash(req.Key, k.KeyHash) {
			continue
		}

		token, err := GenerateJWT(k.Name, k.Role, k.DailyWageCents)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create session"})
		}

		c.Cookie(&fiber.Cookie{
			Name:     "jwt_token",
			Value:    token,
			Expires:  time.Now().Add(24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})

		return c.JSON(fiber.Map{
			"success": true,
			"caller": models.Caller{
				Name:           k.Name,
				Role:           k.Role,
				DailyWageCents: k.DailyWageCents,
			},
		})
	}

	return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid access key"})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:    "jwt_token",
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"success": true})
}

// LogoutPage clears the session cookie for plain link navigation.
func LogoutPage(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:    "jwt_token",
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
	})
	return c.Redirect("/auth/login")
}

func MeAPI(c *fiber.Ctx) error {
	return c.JSON(CallerFromCtx(c))
}

// CallerFromCtx returns the authenticated identity set by AuthMiddleware.
func CallerFromCtx(c *fiber.Ctx) models.Caller {
	caller, _ := c.Locals("caller").(models.Caller)
	return caller
}

// AuthMiddleware validates the JWT and sets the caller context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	// Check if this is an API request
	isAPIRequest := strings.HasPrefix(c.Path(), "/api/")

	if tokenString == "" {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	c.Locals("caller", models.Caller{
		Name:           claims.Name,
		Role:           claims.Role,
		DailyWageCents: claims.DailyWageCents,
	})

	return c.Next()
}

// RoleMiddleware checks if the caller has one of the required roles
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := CallerFromCtx(c)

		for _, allowed := range allowedRoles {
			if caller.Role == allowed {
				return c.Next()
			}
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Access Forbidden - Finance Dashboard",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		})
	}
}
