package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"atrium/internal/application/access"
	"atrium/internal/domain/catalog"
	"atrium/internal/shared/config"
	"atrium/internal/shared/constants"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

// GuardConfig declares what a route requires. PageActions holds explicit
// "PAGE:ACTION" entries; when it is empty and AutoDetect is set, one pair is
// derived from the request itself. Explicit entries fully define the route's
// requirements and are never widened by detection. Entries are OR'd: any
// single allowed pair admits the request.
type GuardConfig struct {
	PageActions    []string
	AutoDetect     bool
	ActionOverride string
	Message        string
}

// methodActions maps HTTP verbs to default action codes for auto-detection.
var methodActions = map[string]string{
	http.MethodGet:    constants.ActionView,
	http.MethodPost:   constants.ActionCreate,
	http.MethodPut:    constants.ActionEdit,
	http.MethodPatch:  constants.ActionEdit,
	http.MethodDelete: constants.ActionDelete,
}

// AccessControlMiddleware is the route guard. It resolves required
// page:action pairs against the grant store on every request; nothing is
// cached, so revocations bite immediately.
type AccessControlMiddleware struct {
	pageActions catalog.PageActionRepository
	resolver    *access.Resolver
	admin       *access.AdminChecker
	cfg         config.AccessControlConfig
	logger      logger.Interface
}

func NewAccessControlMiddleware(
	pageActions catalog.PageActionRepository,
	resolver *access.Resolver,
	admin *access.AdminChecker,
	cfg config.AccessControlConfig,
	logger logger.Interface,
) *AccessControlMiddleware {
	return &AccessControlMiddleware{
		pageActions: pageActions,
		resolver:    resolver,
		admin:       admin,
		cfg:         cfg,
		logger:      logger,
	}
}

// Require returns the guard handler for one route. Evaluation order: admin
// bypass, then each candidate pair until one allows. Unknown pairs and
// malformed entries are skipped, never treated as allows; infrastructure
// failures abort with 500 rather than guessing.
func (m *AccessControlMiddleware) Require(cfg GuardConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgNotAuthenticated)
			c.Abort()
			return
		}
		uid := userID.(uint)

		if m.cfg.AdminBypassEnabled {
			isAdmin, err := m.admin.IsAdmin(c.Request.Context(), uid, m.authorities(c))
			if err != nil {
				m.logger.Errorw("admin check failed", "error", err, "user_id", uid)
				utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
				c.Abort()
				return
			}
			if isAdmin {
				c.Next()
				return
			}
		}

		entries := append([]string(nil), cfg.PageActions...)
		if len(entries) == 0 && cfg.AutoDetect {
			if detected, ok := m.detect(c, cfg.ActionOverride); ok {
				entries = append(entries, detected)
			}
		}

		if len(entries) == 0 {
			m.logger.Warnw("route guard has no permissions to check",
				"path", c.Request.URL.Path, "method", c.Request.Method)
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgNoPermissionsSpecified)
			c.Abort()
			return
		}

		for _, entry := range entries {
			pageCode, actionCode, ok := splitEntry(entry)
			if !ok {
				m.logger.Warnw("malformed page:action entry skipped", "entry", entry)
				continue
			}

			pair, err := m.pageActions.GetByCodes(c.Request.Context(), pageCode, actionCode)
			if err != nil {
				m.logger.Errorw("page action lookup failed",
					"error", err, "page_code", pageCode, "action_code", actionCode)
				utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
				c.Abort()
				return
			}
			if pair == nil {
				continue
			}

			allowed, err := m.resolver.Resolve(c.Request.Context(), uid, pair.ID())
			if err != nil {
				m.logger.Errorw("permission resolution failed",
					"error", err, "user_id", uid, "page_action_id", pair.ID())
				utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
				c.Abort()
				return
			}
			if allowed {
				c.Next()
				return
			}
		}

		message := cfg.Message
		if message == "" {
			message = constants.ErrMsgNoMatchingPermission
		}
		m.logger.Warnw("access denied",
			"user_id", uid, "path", c.Request.URL.Path, "method", c.Request.Method)
		utils.ErrorResponse(c, http.StatusForbidden, message)
		c.Abort()
	}
}

// detect derives a "PAGE:ACTION" pair from the request. The page-code header
// wins; otherwise the resource segment of an /api/v1/... path is uppercased.
// The action comes from the override or from the request method.
func (m *AccessControlMiddleware) detect(c *gin.Context, actionOverride string) (string, bool) {
	pageCode := strings.TrimSpace(c.GetHeader(m.pageCodeHeader()))
	if pageCode == "" {
		pageCode = pageCodeFromPath(c.Request.URL.Path)
	}
	if pageCode == "" {
		return "", false
	}

	actionCode := strings.ToUpper(strings.TrimSpace(actionOverride))
	if actionCode == "" {
		actionCode = methodActions[c.Request.Method]
	}
	if actionCode == "" {
		return "", false
	}

	return pageCode + ":" + actionCode, true
}

func (m *AccessControlMiddleware) pageCodeHeader() string {
	if m.cfg.PageCodeHeader != "" {
		return m.cfg.PageCodeHeader
	}
	return constants.HeaderPageCode
}

func (m *AccessControlMiddleware) authorities(c *gin.Context) []string {
	if v, ok := c.Get(constants.ContextKeyUserRoles); ok {
		if roles, ok := v.([]string); ok {
			return roles
		}
	}
	return nil
}

// pageCodeFromPath extracts the resource segment from /api/v1/{resource}/...
// paths and uppercases it. Paths of any other shape yield nothing.
func pageCodeFromPath(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 3 || segments[0] != "api" || segments[1] != "v1" {
		return ""
	}
	return strings.ToUpper(segments[2])
}

// splitEntry parses a "PAGE:ACTION" entry. Exactly one colon with non-empty
// halves, or the entry is rejected.
func splitEntry(entry string) (string, string, bool) {
	parts := strings.Split(entry, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
