package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	appcontact "github.com/helenrojas261991-debug/home-services-florida/internal/application/contact"
	appcontent "github.com/helenrojas261991-debug/home-services-florida/internal/application/content"
	"github.com/helenrojas261991-debug/home-services-florida/internal/application/identity"
	"github.com/helenrojas261991-debug/home-services-florida/internal/application/media"
	appsocial "github.com/helenrojas261991-debug/home-services-florida/internal/application/social"
	"github.com/helenrojas261991-debug/home-services-florida/internal/domain/social"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/auth"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/config"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/persistence"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/persistence/models"
	"github.com/helenrojas261991-debug/home-services-florida/internal/infrastructure/storage"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/middleware"
	"github.com/helenrojas261991-debug/home-services-florida/internal/interfaces/http/router"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// stubGoogleConnector is a controllable in-memory Google upstream
type stubGoogleConnector struct {
	valid   bool
	account *social.GoogleAccountInfo
	reviews []social.Review
}

func (s *stubGoogleConnector) ValidateToken(_ context.Context, _ string) bool {
	return s.valid
}

func (s *stubGoogleConnector) AccountInfo(_ context.Context, _ string) *social.GoogleAccountInfo {
	return s.account
}

func (s *stubGoogleConnector) FetchReviews(_ context.Context, _, _ string, _ int) []social.Review {
	if s.reviews == nil {
		return []social.Review{}
	}
	return s.reviews
}

// stubInstagramConnector is a controllable in-memory Instagram upstream
type stubInstagramConnector struct {
	valid      bool
	accountID  string
	account    *social.InstagramAccountInfo
	posts      []social.Post
	mediaURL   string
	freshToken string
}

func (s *stubInstagramConnector) ValidateToken(_ context.Context, _ string) bool {
	return s.valid
}

func (s *stubInstagramConnector) BusinessAccountID(_ context.Context, _ string) string {
	return s.accountID
}

func (s *stubInstagramConnector) AccountInfo(_ context.Context, _ string) *social.InstagramAccountInfo {
	return s.account
}

func (s *stubInstagramConnector) FetchPosts(_ context.Context, _, _ string, _ int) []social.Post {
	if s.posts == nil {
		return []social.Post{}
	}
	return s.posts
}

func (s *stubInstagramConnector) ResolveMediaURL(_ context.Context, _, _ string) string {
	return s.mediaURL
}

func (s *stubInstagramConnector) RefreshAccessToken(_ context.Context, _ string) string {
	return s.freshToken
}

// testApp wires the full HTTP stack over an in-memory database
type testApp struct {
	engine    *gin.Engine
	google    *stubGoogleConnector
	instagram *stubInstagramConnector
	storage   *storage.StubMediaStorage
}

func setupTestApp(t *testing.T) *testApp {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.CredentialModel{},
		&models.ReviewModel{},
		&models.PostModel{},
		&models.ContentModel{},
		&models.ContactSubmissionModel{},
	))

	credentials := persistence.NewGormCredentialRepository(db)
	reviews := persistence.NewGormReviewRepository(db)
	posts := persistence.NewGormPostRepository(db)
	contents := persistence.NewGormContentRepository(db)
	contacts := persistence.NewGormContactRepository(db)

	google := &stubGoogleConnector{}
	instagram := &stubInstagramConnector{}
	mediaStorage := storage.NewStubMediaStorage()

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "handler-test-secret",
		Expiration: time.Hour,
		Issuer:     "home-services-test",
	})
	sessions := auth.NewMemorySessionStore()
	identityService := identity.NewService(config.AdminConfig{
		Username: "admin",
		Password: "correct-horse",
	}, jwtService, sessions, nil)

	authMiddleware := middleware.AdminAuth(identityService)

	engine := gin.New()
	engine.Use(middleware.RequestID())

	r := router.New(engine, "")
	r.Register(NewSystemHandler())
	r.Register(NewAuthHandler(identityService, authMiddleware))
	r.Register(NewIntegrationHandler(
		appsocial.NewGoogleService(credentials, reviews, google, nil),
		appsocial.NewInstagramService(credentials, posts, instagram, nil),
		authMiddleware,
	))
	r.Register(NewContentHandler(appcontent.NewService(contents, nil), authMiddleware))
	r.Register(NewMediaHandler(media.NewService(mediaStorage, contents, nil), authMiddleware))
	r.Register(NewContactHandler(appcontact.NewService(contacts, nil), authMiddleware))
	r.Register(NewI18nHandler())
	r.Setup()

	return &testApp{
		engine:    engine,
		google:    google,
		instagram: instagram,
		storage:   mediaStorage,
	}
}

// do runs a JSON request against the app and returns the recorder
func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// login authenticates as the test admin and returns the bearer token
func (a *testApp) login(t *testing.T) string {
	w := a.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "admin",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

// decodeBody unmarshals a response body into a generic envelope map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
