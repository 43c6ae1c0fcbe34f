package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shelterhub/models"
	"shelterhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStaffRepo struct {
	accounts map[string]*models.StaffAccount
	err      error
}

func (f *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.StaffAccount, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[id], nil
}

func authRouter(repo *fakeStaffRepo) *gin.Engine {
	r := gin.New()
	r.GET("/probe", JWTAuthStaffMiddleware(repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"staffId": c.GetString("staffID"),
			"orgId":   c.GetString("orgID"),
		})
	})
	return r
}

func probe(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func staffToken(t *testing.T, staffID string) string {
	t.Helper()
	token, err := utils.GenerateToken(staffID, "casey@sunnypaws.org", time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestJWTAuthStaffMiddleware(t *testing.T) {
	repo := &fakeStaffRepo{accounts: map[string]*models.StaffAccount{
		"staff-1": {ID: "staff-1", OrganizationID: "org-1", Active: true},
		"staff-2": {ID: "staff-2", OrganizationID: "org-1", Active: false},
		"staff-3": {ID: "staff-3", Active: true},
	}}
	r := authRouter(repo)

	t.Run("resolves the organization scope", func(t *testing.T) {
		w := probe(r, "Bearer "+staffToken(t, "staff-1"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"orgId":"org-1"`)
		assert.Contains(t, w.Body.String(), `"staffId":"staff-1"`)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		w := probe(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a non-bearer header", func(t *testing.T) {
		w := probe(r, "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		w := probe(r, "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := utils.GenerateToken("staff-1", "casey@sunnypaws.org", -time.Minute)
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		w := probe(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an unknown staff id", func(t *testing.T) {
		w := probe(r, "Bearer "+staffToken(t, "ghost"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a disabled account", func(t *testing.T) {
		w := probe(r, "Bearer "+staffToken(t, "staff-2"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an account without an organization", func(t *testing.T) {
		w := probe(r, "Bearer "+staffToken(t, "staff-3"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("repository failures read as authentication errors", func(t *testing.T) {
		failing := authRouter(&fakeStaffRepo{err: assert.AnError})
		w := probe(failing, "Bearer "+staffToken(t, "staff-1"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
