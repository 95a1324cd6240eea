package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	ListCourses(c *ginext.Context)
	ListTests(c *ginext.Context)
	EnrollCourse(c *ginext.Context)
	ApplyTest(c *ginext.Context)
	CompleteCourse(c *ginext.Context)
	CompleteTest(c *ginext.Context)
	CancelPayment(c *ginext.Context)
	ListMyPayments(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/signup", h.Signup)
		api.POST("/login", h.Login)

		protected := api.Group("")
		protected.Use(auth)
		{
			// Catalog
			protected.GET("/courses", h.ListCourses)
			protected.GET("/tests", h.ListTests)

			// Registrations
			protected.POST("/courses/:id/enroll", h.EnrollCourse)
			protected.POST("/tests/:id/apply", h.ApplyTest)
			protected.POST("/courses/:id/complete", h.CompleteCourse)
			protected.POST("/tests/:id/complete", h.CompleteTest)

			// Payments
			protected.POST("/payments/:id/cancel", h.CancelPayment)
			protected.GET("/me/payments", h.ListMyPayments)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
