package handler

import (
	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/logic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie  = "donation_session"
	sessionCtxKey  = "session_id"
	sessionMaxAge  = 180 * 24 * 3600
	languageCtxKey = "language"
)

// SessionMiddleware gives every browser a stable session id cookie; the
// preference store keys language and referral state on it.
func SessionMiddleware(prefs *logic.PreferenceLogic) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionCtxKey, sid)

		// ?lang overrides the stored preference for this request.
		if q := c.Query("lang"); q != "" {
			c.Set(languageCtxKey, i18n.ParseLanguage(q))
		} else {
			c.Set(languageCtxKey, prefs.Language(c.Request.Context(), sid))
		}
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	if v, ok := c.Get(sessionCtxKey); ok {
		if sid, ok := v.(string); ok {
			return sid
		}
	}
	return ""
}

func language(c *gin.Context) i18n.Language {
	if v, ok := c.Get(languageCtxKey); ok {
		if lang, ok := v.(i18n.Language); ok {
			return lang
		}
	}
	return i18n.English
}
