package handler

import (
	"net/http"

	"github.com/TTJ-s/qr-annujoom/internal/i18n"
	"github.com/TTJ-s/qr-annujoom/internal/logic"
	"github.com/gin-gonic/gin"
)

type PreferenceHandler struct {
	prefs *logic.PreferenceLogic
}

func NewPreferenceHandler(prefs *logic.PreferenceLogic) *PreferenceHandler {
	return &PreferenceHandler{prefs: prefs}
}

// GetLanguage returns the session's remembered language.
func (h *PreferenceHandler) GetLanguage(c *gin.Context) {
	lang := h.prefs.Language(c.Request.Context(), sessionID(c))
	SuccessResponse(c, http.StatusOK, "ok", LanguageResponse{Language: string(lang)})
}

// SetLanguage remembers a language for the session.
func (h *PreferenceHandler) SetLanguage(c *gin.Context) {
	var req LanguageResponse
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	lang := i18n.ParseLanguage(req.Language)
	if err := h.prefs.SetLanguage(c.Request.Context(), sessionID(c), lang); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "ok", LanguageResponse{Language: string(lang)})
}

// ToggleLanguage flips between English and Malayalam.
func (h *PreferenceHandler) ToggleLanguage(c *gin.Context) {
	sid := sessionID(c)
	lang := h.prefs.Language(c.Request.Context(), sid).Toggle()
	if err := h.prefs.SetLanguage(c.Request.Context(), sid, lang); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "ok", LanguageResponse{Language: string(lang)})
}

// CaptureReferral stores the referral code from the /user/:user_id route so
// the next donation is attributed to the referrer.
func (h *PreferenceHandler) CaptureReferral(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		ErrorResponse(c, http.StatusBadRequest, "missing user id")
		return
	}
	if err := h.prefs.SetReferral(c.Request.Context(), sessionID(c), userID); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "ok", gin.H{"referred_by": userID})
}
