package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/config"
	"github.com/Itohan1/ultimateBliss-back-office-sub000/external/mailer"
	"gorm.io/gorm"
)

// SetupRoutes wires every route group onto the engine.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.App, mail *mailer.Client) {
	SetupAuthRoutes(r, db, cfg, mail)
	SetupPublicRoutes(r, db, cfg, mail)
	SetupUserRoutes(r, db, cfg)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db)
	SetupAdminRoutes(r, db, cfg)
}
