package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spec-kit/edudigital/internal/api/http/handlers"
	"github.com/spec-kit/edudigital/internal/auth"
	"github.com/spec-kit/edudigital/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Courses        *handlers.CoursesHandler
	Profile        *handlers.ProfileHandler
	Student        *handlers.StudentHandler
	Teacher        *handlers.TeacherHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	// MetricsPath exposes the Prometheus registry when non-empty.
	MetricsPath string
	// LoginRateLimit caps login attempts per IP per minute; zero disables it.
	LoginRateLimit int
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.MetricsPath != "" {
		app.Get(cfg.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	}

	authenticated := cfg.AuthMiddleware.Handle
	anyRole := cfg.AuthMiddleware.RequireAnyRole()
	requireRole := cfg.AuthMiddleware.RequireRole

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	if cfg.LoginRateLimit > 0 {
		authGroup.Post("/login", loginLimiter(cfg.LoginRateLimit), cfg.Auth.Login)
	} else {
		authGroup.Post("/login", cfg.Auth.Login)
	}
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)
	authGroup.Post("/password/change", authenticated, anyRole, cfg.Auth.ChangePassword)

	app.Get("/courses", cfg.Courses.ListCourses)
	app.Get("/courses/:id", cfg.Courses.GetCourse)
	app.Get("/courses/:id/lessons", cfg.Courses.ListLessons)
	app.Get("/discussions", cfg.Courses.ListDiscussions)
	app.Post("/discussions", authenticated, anyRole, cfg.Courses.CreateDiscussion)

	user := app.Group("/user", authenticated, anyRole)
	user.Get("/profile", cfg.Profile.Get)
	user.Put("/profile", cfg.Profile.Update)

	student := app.Group("/student", authenticated, requireRole(domain.RoleStudent))
	student.Get("/enrollments", cfg.Student.ListEnrollments)
	student.Post("/enrollments", cfg.Student.Enroll)
	student.Get("/wishlist", cfg.Student.ListWishlist)
	student.Post("/wishlist", cfg.Student.AddToWishlist)
	student.Delete("/wishlist/:courseId", cfg.Student.RemoveFromWishlist)
	student.Get("/quizzes/:id", cfg.Student.GetQuiz)
	student.Post("/quiz/submit", cfg.Student.SubmitQuiz)

	teacher := app.Group("/teacher", authenticated, requireRole(domain.RoleTeacher))
	teacher.Get("/courses", cfg.Teacher.ListCourses)
	teacher.Post("/courses", cfg.Teacher.CreateCourse)
	teacher.Get("/courses/:id", cfg.Teacher.GetCourse)
	teacher.Put("/courses/:id", cfg.Teacher.UpdateCourse)
	teacher.Delete("/courses/:id", cfg.Teacher.DeleteCourse)
	teacher.Post("/courses/:id/modules", cfg.Teacher.AddModule)
	teacher.Post("/courses/:id/quizzes", cfg.Teacher.CreateQuiz)
	teacher.Post("/modules/:id/lessons", cfg.Teacher.AddLesson)

	admin := app.Group("/admin", authenticated, requireRole(domain.RoleAdmin))
	admin.Get("/stats", cfg.Admin.Stats)
	admin.Get("/summary", cfg.Admin.Summary)
	admin.Get("/users", cfg.Admin.ListUsers)
}
