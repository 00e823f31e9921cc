package router

import (
	"net/http"

	"employee-admin/internal/config"
	"employee-admin/internal/handlers"
	"employee-admin/internal/middleware"
	"employee-admin/internal/store"
	"employee-admin/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Deps struct {
	Cfg         config.AppConfig
	Log         zerolog.Logger
	Employees   *store.EmployeeStore
	Departments *store.DepartmentStore
	Metrics     *middleware.Metrics
}

func Setup(r *gin.Engine, d Deps) {
	r.SetHTMLTemplate(web.Templates())
	r.Use(middleware.RequestLog(d.Log))
	if d.Metrics != nil {
		r.Use(d.Metrics.Handler())
		r.GET("/metrics", d.Metrics.Expose())
	}

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	guard := func(c *gin.Context) { c.Next() }
	if d.Cfg.AuthEnabled() {
		sa := middleware.NewSessionAuth(d.Cfg.SessionSecret)
		ah := handlers.NewAuthHandler(d.Cfg, sa)
		r.GET("/login", ah.LoginForm)
		r.POST("/login", ah.Login)
		r.POST("/logout", ah.Logout)
		guard = sa.Require()
	}

	admin := r.Group("/", guard)
	admin.GET("", func(c *gin.Context) { c.Redirect(http.StatusSeeOther, "/employees") })

	eh := handlers.NewEmployeeHandler(d.Employees, d.Departments, d.Log)
	admin.GET("/employees", eh.List)
	admin.GET("/add-employee", eh.NewForm)
	admin.POST("/add-employee", eh.Create)
	admin.GET("/edit-employee/:id", eh.EditForm)
	admin.POST("/edit-employee/:id", eh.Update)
	admin.GET("/delete-employee/:id", eh.ConfirmDelete)
	admin.POST("/delete-employee/:id", eh.Delete)

	dh := handlers.NewDepartmentHandler(d.Departments, d.Log)
	admin.GET("/departments", dh.List)
	admin.GET("/add-department", dh.NewForm)
	admin.POST("/add-department", dh.Create)
	admin.GET("/edit-department/:id", dh.EditForm)
	admin.POST("/edit-department/:id", dh.Update)
	admin.GET("/delete-department/:id", dh.ConfirmDelete)
	admin.POST("/delete-department/:id", dh.Delete)
}
