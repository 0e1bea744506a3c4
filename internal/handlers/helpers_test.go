package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"github.com/learnloop/academy/internal/auth"
	"github.com/learnloop/academy/internal/authz"
	"github.com/learnloop/academy/internal/config"
	"github.com/learnloop/academy/internal/handlers"
	"github.com/learnloop/academy/internal/services"
	"github.com/learnloop/academy/internal/store"
	"github.com/learnloop/academy/internal/store/migrations"
	"github.com/learnloop/academy/pkg/listquery"
)

const (
	testSecret = "handlers-test-secret"
	adminID    = "admin-1"
	learnerID  = "learner-1"
)

type testAPI struct {
	router *gin.Engine
	store  *store.Store
	db     *sql.DB
}

func newTestAPI(ctx context.Context) *testAPI {
	gin.SetMode(gin.TestMode)

	db, err := store.NewDB(":memory:")
	Expect(err).NotTo(HaveOccurred())
	Expect(migrations.Run(ctx, db)).To(Succeed())

	st := store.NewStore(db)
	Expect(st.Admins().Grant(ctx, adminID)).To(Succeed())

	authCfg := config.Authentication{Enabled: true, JWTSecret: testSecret, AdminPolicy: config.AdminPolicyTable}
	authenticator := auth.NewAuthenticator(authCfg)
	policy, err := authz.NewPolicy(authCfg, st.Admins())
	Expect(err).NotTo(HaveOccurred())

	h := handlers.New(services.New(st), listquery.NewParser(), st.Ping)

	router := gin.New()
	handlers.RegisterRoutes(router.Group("/api/v1"), h, handlers.Middlewares{
		Authenticate: authenticator.Required(),
		Identify:     authenticator.Optional(),
		RequireAdmin: authz.RequireAdmin(policy),
	})

	return &testAPI{router: router, store: st, db: db}
}

func (a *testAPI) close() {
	a.db.Close()
}

func tokenFor(userID string) string {
	token, err := auth.NewValidator(testSecret).Issue(userID, userID+" name", "", time.Hour)
	Expect(err).NotTo(HaveOccurred())
	return token
}

// do sends method path as userID. An empty userID sends no token.
func (a *testAPI) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+tokenFor(userID))
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](w *httptest.ResponseRecorder) T {
	var out T
	Expect(json.Unmarshal(w.Body.Bytes(), &out)).To(Succeed())
	return out
}
