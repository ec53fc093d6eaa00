package routes

import (
	aboutapi "portfolio-admin/internal/api/about"
	authapi "portfolio-admin/internal/api/auth"
	competenceapi "portfolio-admin/internal/api/competence"
	contactapi "portfolio-admin/internal/api/contact"
	homeapi "portfolio-admin/internal/api/home"
	inboxapi "portfolio-admin/internal/api/inbox"
	mediaapi "portfolio-admin/internal/api/media"
	resumeapi "portfolio-admin/internal/api/resume"
	scriptsapi "portfolio-admin/internal/api/scripts"
	skillsapi "portfolio-admin/internal/api/skills"
	worksapi "portfolio-admin/internal/api/works"
	"portfolio-admin/internal/app/http/middleware"
	"portfolio-admin/internal/domain/works"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the content API. Reads are public because the
// portfolio site consumes them; every write except the inbound contact form
// requires the admin token.
func RegisterRoutes(r *gin.Engine, jwtSecret string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/api")
	public.Use(middleware.SanitizeJSONInput())

	public.POST("/auth/login", authapi.Login)

	public.GET("/about", aboutapi.Get)
	public.GET("/video/latest", mediaapi.LatestVideo)
	public.GET("/textLink/bigText", homeapi.GetBigText)
	public.GET("/textLink/link", homeapi.GetLinks)
	public.GET("/images", mediaapi.ListImages)
	public.GET("/content", worksapi.List(works.KindCharacter))
	public.GET("/environment", worksapi.List(works.KindEnvironment))
	public.GET("/scripts", scriptsapi.List)
	public.GET("/skills", skillsapi.ListSkills)
	public.GET("/strength", skillsapi.ListStrengths)
	public.GET("/education", resumeapi.ListEducation)
	public.GET("/experience", resumeapi.ListExperience)
	public.GET("/competence", competenceapi.List)
	public.GET("/contact", contactapi.List)
	public.GET("/contact/details", contactapi.GetDetails)

	// inbound contact form of the public site
	public.POST("/queries", inboxapi.Create)

	auth := r.Group("/api")
	auth.Use(middleware.Auth(jwtSecret), middleware.SanitizeJSONInput())

	auth.POST("/auth/change-password", authapi.ChangePassword)

	auth.POST("/about", aboutapi.Upsert)

	auth.POST("/video/add", mediaapi.AddVideo)
	auth.POST("/textLink/bigText", homeapi.SetBigText)
	auth.POST("/textLink/link", homeapi.SetLinks)

	auth.POST("/images/upload", mediaapi.UploadImages)
	auth.DELETE("/images/:id", mediaapi.DeleteImage)

	auth.POST("/content/upload", worksapi.Create(works.KindCharacter))
	auth.PUT("/content/:id", worksapi.Update(works.KindCharacter))
	auth.DELETE("/content/:id", worksapi.Delete(works.KindCharacter))

	auth.POST("/environment/upload", worksapi.Create(works.KindEnvironment))
	auth.PUT("/environment/:id", worksapi.Update(works.KindEnvironment))
	auth.DELETE("/environment/:id", worksapi.Delete(works.KindEnvironment))

	auth.POST("/scripts", scriptsapi.Create)
	auth.PUT("/scripts/:id", scriptsapi.Update)
	auth.DELETE("/scripts/:id", scriptsapi.Delete)

	auth.POST("/skills", skillsapi.CreateSkill)
	auth.PUT("/skills/:id", skillsapi.UpdateSkill)
	auth.DELETE("/skills/:id", skillsapi.DeleteSkill)

	auth.POST("/strength", skillsapi.CreateStrength)
	auth.PUT("/strength/:id", skillsapi.UpdateStrength)
	auth.DELETE("/strength/:id", skillsapi.DeleteStrength)

	auth.POST("/education", resumeapi.CreateEducation)
	auth.PUT("/education/:id", resumeapi.UpdateEducation)
	auth.DELETE("/education/:id", resumeapi.DeleteEducation)

	auth.POST("/experience", resumeapi.CreateExperience)
	auth.PUT("/experience/:id", resumeapi.UpdateExperience)
	auth.DELETE("/experience/:id", resumeapi.DeleteExperience)

	auth.POST("/competence", competenceapi.Create)
	auth.PUT("/competence/:id", competenceapi.Update)
	auth.DELETE("/competence/:id", competenceapi.Delete)

	auth.POST("/contact", contactapi.Create)
	auth.POST("/contact/details", contactapi.UpsertDetails)
	auth.PUT("/contact/:id", contactapi.Update)
	auth.DELETE("/contact/:id", contactapi.Delete)

	auth.GET("/queries", inboxapi.List)
	auth.DELETE("/queries/:id", inboxapi.Delete)
}
