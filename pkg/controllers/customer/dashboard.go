package customer

import (
	"backend_savanna/pkg/database"
	"backend_savanna/pkg/greeting"
	"backend_savanna/pkg/middleware"
	"backend_savanna/pkg/models"
	"backend_savanna/pkg/utils"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const lastGreetKey = "last_greet_date"

// Dashboard greets the customer once per day; online customers get a
// birthday message on the day itself. The only session state is the
// last-greeted date fed explicitly into the greeting decision.
func Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.UnauthorizedResponse(c, "Authentication required.")
		return
	}

	name := user.FirstName
	var birthday *time.Time
	var profile models.OnlineCustomerProfile
	if err := database.DB.Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		birthday = profile.Birthday
		if name == "" {
			name = profile.FullName
		}
	}
	if name == "" {
		name = user.Email
	}

	session := sessions.Default(c)
	var lastGreeted *time.Time
	if raw, ok := session.Get(lastGreetKey).(string); ok {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			lastGreeted = &parsed
		}
	}

	now := time.Now()
	message := greeting.Decide(name, birthday, lastGreeted, now)
	if message != "" {
		session.Set(lastGreetKey, now.Format("2006-01-02"))
		if err := session.Save(); err != nil {
			utils.InternalServerErrorResponse(c, "Failed to save session")
			return
		}
	}

	utils.OKResponse(c, gin.H{
		"name":     name,
		"greeting": message,
	})
}
